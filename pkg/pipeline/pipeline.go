// Package pipeline runs layout and rendering with result caching.
//
// The CLI and the HTTP API both drive layouts through a [Runner], so cached
// results, logging and observability hooks behave the same everywhere.
//
// # Stages
//
//  1. Layout: compute positions with the configured engine, or apply a
//     cached result for the same document and options
//  2. Render: produce the requested output formats (JSON, SVG, DOT, PNG)
//
// # Caching
//
// The cache key is derived from the input document and the selected
// engine's options. A hit replays the stored node positions and link routes
// onto the diagram inside a single update, so the host sees exactly one
// commit either way.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, logger)
//	defer runner.Close()
//
//	result, err := runner.Execute(ctx, doc, pipeline.Options{
//	    Config:  layout.DefaultConfig(),
//	    Formats: []string{"svg"},
//	})
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphlayout/pkg/engine"
	lerrors "github.com/matzehuels/graphlayout/pkg/errors"
	"github.com/matzehuels/graphlayout/pkg/layout"
)

// Format constants for output formats.
const (
	FormatJSON = "json"
	FormatSVG  = "svg"
	FormatDOT  = "dot"
	FormatPNG  = "png"
)

// Options configures one pipeline run.
type Options struct {
	Config layout.Config `json:"config"`

	// Formats lists the artifacts to render. Empty means none.
	Formats []string `json:"formats,omitempty"`
	// Refresh skips the cache lookup but still stores the new result.
	Refresh bool `json:"refresh,omitempty"`

	// Logger overrides the runner's logger for this run.
	Logger *log.Logger `json:"-"`
}

// Validate checks the layout config and the formats.
func (o Options) Validate() error {
	if err := o.Config.Validate(); err != nil {
		return err
	}
	for _, f := range o.Formats {
		if err := lerrors.ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// normalize lowercases the engine name and formats.
func (o *Options) normalize() {
	if o.Config.Engine == "" {
		o.Config.Engine = layout.DefaultEngine
	}
	o.Config.Engine = strings.ToLower(o.Config.Engine)
	for i, f := range o.Formats {
		o.Formats[i] = strings.ToLower(f)
	}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies the run in logs.
	RunID string `json:"run_id"`

	// DocHash is the content hash of the input document.
	DocHash string `json:"doc_hash"`

	// Stats is the engine's report. On a cache hit it is the report of the
	// run that produced the cached result.
	Stats engine.Stats `json:"stats"`

	// CacheHit reports whether the layout came from the cache.
	CacheHit bool `json:"cache_hit"`

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte `json:"-"`

	// LayoutTime and RenderTime are wall-clock durations of the stages.
	LayoutTime time.Duration `json:"layout_time"`
	RenderTime time.Duration `json:"render_time"`
}

// Artifact returns the rendered output for format or an error naming it.
func (r *Result) Artifact(format string) ([]byte, error) {
	data, ok := r.Artifacts[format]
	if !ok {
		return nil, fmt.Errorf("format %q was not rendered", format)
	}
	return data, nil
}
