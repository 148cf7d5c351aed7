package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/graphlayout/pkg/cache"
	"github.com/matzehuels/graphlayout/pkg/diagram"
	"github.com/matzehuels/graphlayout/pkg/engine"
	"github.com/matzehuels/graphlayout/pkg/geom"
	"github.com/matzehuels/graphlayout/pkg/layout"
	"github.com/matzehuels/graphlayout/pkg/observability"
)

const cacheKeyType = "layout"

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can share a Runner as long as each lays out its own diagram.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and logger.
// If c is nil, a NullCache is used (caching disabled).
// If logger is nil, the default logger is used.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Execute lays out m and renders the requested formats.
func (r *Runner) Execute(ctx context.Context, m *diagram.Memory, opts Options) (*Result, error) {
	opts.normalize()
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	logger := r.logger(opts)

	result, err := r.LayoutWithCacheInfo(ctx, m, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}

	if len(opts.Formats) > 0 {
		renderStart := time.Now()
		artifacts, err := Render(ctx, m, opts.Formats)
		if err != nil {
			return nil, fmt.Errorf("render: %w", err)
		}
		result.Artifacts = artifacts
		result.RenderTime = time.Since(renderStart)

		logger.Info("rendered outputs",
			"run", result.RunID,
			"formats", opts.Formats,
			"duration", result.RenderTime)
	}
	return result, nil
}

// LayoutWithCacheInfo lays out m, serving the result from the cache when
// the same document was laid out with the same options before.
func (r *Runner) LayoutWithCacheInfo(ctx context.Context, m *diagram.Memory, opts Options) (*Result, error) {
	opts.normalize()
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}
	docData, err := json.Marshal(m.Document())
	if err != nil {
		return nil, fmt.Errorf("serialize document for cache key: %w", err)
	}
	result := &Result{
		RunID:     uuid.NewString(),
		DocHash:   cache.Hash(docData),
		Artifacts: map[string][]byte{},
	}
	logger := r.logger(opts).With("run", result.RunID)
	opts.Config.SetLogger(logger)
	cacheKey := cache.LayoutKey(result.DocHash, cache.LayoutKeyOpts{
		Engine:  opts.Config.Engine,
		Options: opts.Config.Options(),
	})

	start := time.Now()
	if !opts.Refresh {
		if entry, ok := r.lookup(ctx, cacheKey, logger); ok {
			err := entry.apply(m)
			if err == nil {
				result.Stats = entry.Stats
				result.CacheHit = true
				result.LayoutTime = time.Since(start)
				logger.Info("applied cached layout",
					"engine", opts.Config.Engine,
					"nodes", len(entry.Nodes),
					"duration", result.LayoutTime)
				return result, nil
			}
			logger.Debug("cached layout does not fit document", "err", err)
		}
	}

	stats, err := layout.Run(ctx, m, opts.Config)
	if err != nil {
		return nil, err
	}
	result.Stats = *stats
	result.LayoutTime = time.Since(start)

	logger.Info("computed layout",
		"engine", opts.Config.Engine,
		"nodes", stats.Vertices,
		"clusters", stats.Clusters,
		"duration", result.LayoutTime)

	r.store(ctx, cacheKey, newEntry(m, *stats), logger)
	return result, nil
}

// Layout is a convenience wrapper around LayoutWithCacheInfo that discards
// everything but the engine stats.
func (r *Runner) Layout(ctx context.Context, m *diagram.Memory, opts Options) (*engine.Stats, error) {
	res, err := r.LayoutWithCacheInfo(ctx, m, opts)
	if err != nil {
		return nil, err
	}
	return &res.Stats, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) logger(opts Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return r.Logger
}

func (r *Runner) lookup(ctx context.Context, key string, logger *log.Logger) (*entry, bool) {
	hooks := observability.Cache()
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		logger.Warn("cache lookup failed", "err", err)
	}
	if err != nil || !hit {
		hooks.OnCacheMiss(ctx, cacheKeyType)
		return nil, false
	}
	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		logger.Debug("discarding corrupt cache entry", "err", err)
		hooks.OnCacheMiss(ctx, cacheKeyType)
		return nil, false
	}
	hooks.OnCacheHit(ctx, cacheKeyType)
	return &e, true
}

func (r *Runner) store(ctx context.Context, key string, e entry, logger *log.Logger) {
	data, err := json.Marshal(e)
	if err != nil {
		logger.Warn("serialize layout for cache", "err", err)
		return
	}
	if err := r.Cache.Set(ctx, key, data, cache.DefaultTTL); err != nil {
		logger.Warn("cache write failed", "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, cacheKeyType, len(data))
}

// entry is the cached outcome of a layout: what the engine wrote back.
type entry struct {
	Stats engine.Stats       `json:"stats"`
	Nodes []diagram.NodeData `json:"nodes"`
	Links []diagram.LinkData `json:"links"`
}

func newEntry(m *diagram.Memory, stats engine.Stats) entry {
	doc := m.Document()
	return entry{Stats: stats, Nodes: doc.Nodes, Links: doc.Links}
}

// apply replays the cached bounds and routes onto m in one update. It
// checks that every item exists before touching m.
func (e *entry) apply(m *diagram.Memory) error {
	for _, nd := range e.Nodes {
		if m.Node(nd.ID) == nil {
			return fmt.Errorf("%w: %q", diagram.ErrUnknownNode, nd.ID)
		}
	}
	for _, ld := range e.Links {
		if m.Link(ld.ID) == nil {
			return fmt.Errorf("unknown link %q", ld.ID)
		}
	}

	m.BeginUpdate()
	defer m.EndUpdate()
	for _, nd := range e.Nodes {
		n := m.Node(nd.ID)
		n.SetSize(nd.W, nd.H)
		n.SetPosition(nd.X, nd.Y)
	}
	for _, ld := range e.Links {
		l := m.Link(ld.ID)
		l.ClearPoints()
		for _, p := range ld.Points {
			l.AddPoint(geom.Pt(p.X, p.Y))
		}
		if ld.Polyline {
			l.SetPolyline()
		}
		l.SetAdjustable(ld.AdjustableOrigin, ld.AdjustableDestination)
	}
	return nil
}
