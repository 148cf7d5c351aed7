package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/graphlayout/pkg/buildinfo"
	"github.com/matzehuels/graphlayout/pkg/diagram"
	"github.com/matzehuels/graphlayout/pkg/engine"
	lerrors "github.com/matzehuels/graphlayout/pkg/errors"
	"github.com/matzehuels/graphlayout/pkg/httputil"
	lio "github.com/matzehuels/graphlayout/pkg/io"
	"github.com/matzehuels/graphlayout/pkg/layout"
	"github.com/matzehuels/graphlayout/pkg/pipeline"
)

// MaxBodyBytes bounds the size of a layout request.
const MaxBodyBytes = 8 << 20

// Server serves the layout API.
type Server struct {
	runner *pipeline.Runner
	config layout.Config
	logger *log.Logger
	router chi.Router
}

// New creates a server that lays out documents with runner, starting from
// config for every request.
func New(runner *pipeline.Runner, config layout.Config, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{runner: runner, config: config, logger: logger}

	r := chi.NewRouter()
	r.Use(withRequestID)
	r.Use(withHooks)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/v1/engines", s.handleEngines)
	r.Post("/v1/layout/{engine}", s.handleLayout)
	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, healthResponse{Status: "ok", Version: buildinfo.Version})
}

func (s *Server) handleEngines(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, layout.Engines())
}

// layoutResponse is the JSON response of the layout endpoint.
type layoutResponse struct {
	RunID    string           `json:"run_id"`
	CacheHit bool             `json:"cache_hit"`
	Stats    engine.Stats     `json:"stats"`
	Document diagram.Document `json:"document"`
}

var contentTypes = map[string]string{
	pipeline.FormatSVG: "image/svg+xml",
	pipeline.FormatDOT: "text/vnd.graphviz",
	pipeline.FormatPNG: "image/png",
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	logger := s.logger.With("request", RequestID(r.Context()))

	opts, format, err := s.options(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	m, err := lio.ReadJSON(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		httputil.WriteError(w, lerrors.Wrap(lerrors.ErrCodeInvalidInput, err, "invalid document"))
		return
	}

	if format != pipeline.FormatJSON {
		opts.Formats = []string{format}
	}
	opts.Logger = logger
	res, err := s.runner.Execute(r.Context(), m, opts)
	if err != nil {
		logger.Warn("layout failed", "engine", opts.Config.Engine, "err", err)
		httputil.WriteError(w, err)
		return
	}

	if format == pipeline.FormatJSON {
		httputil.WriteJSON(w, http.StatusOK, layoutResponse{
			RunID:    res.RunID,
			CacheHit: res.CacheHit,
			Stats:    res.Stats,
			Document: m.Document(),
		})
		return
	}
	w.Header().Set("Content-Type", contentTypes[format])
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Artifacts[format])
}

// options derives the pipeline options from the path and query.
func (s *Server) options(r *http.Request) (pipeline.Options, string, error) {
	cfg := s.config
	cfg.Engine = strings.ToLower(chi.URLParam(r, "engine"))
	if err := lerrors.ValidateEngine(cfg.Engine); err != nil {
		return pipeline.Options{}, "", err
	}

	q := r.URL.Query()
	if v := q.Get("seed"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return pipeline.Options{}, "", lerrors.New(lerrors.ErrCodeInvalidConfig, "invalid seed %q", v)
		}
		cfg.SetSeed(seed)
	}
	if v := q.Get("orientation"); v != "" {
		o, err := engine.ParseOrientation(v)
		if err != nil {
			return pipeline.Options{}, "", err
		}
		cfg.SetOrientation(o)
	}

	format := strings.ToLower(q.Get("format"))
	if format == "" {
		format = pipeline.FormatJSON
	}
	if err := lerrors.ValidateFormat(format); err != nil {
		return pipeline.Options{}, "", err
	}
	return pipeline.Options{Config: cfg}, format, nil
}
