// Package cli implements the graphlayout command-line interface.
//
// # Commands
//
//   - layout: lay out a diagram document and write JSON, SVG, DOT or PNG
//   - engines: list the available layout engines
//   - serve: run the HTTP layout API
//   - cache: inspect or clear the local layout cache
//   - completion: generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// enables the per-cluster debug output of the engines. Loggers are passed
// through context.Context.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphlayout/pkg/cache"
	"github.com/matzehuels/graphlayout/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "graphlayout"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Out receives command output. Defaults to os.Stdout.
	Out io.Writer
}

// New creates a new CLI instance with a logger writing to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level), Out: os.Stdout}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// cacheOptions selects the cache backend.
type cacheOptions struct {
	disabled bool
	redisURL string
	mongoURI string
}

// newRunner creates a pipeline runner backed by the selected cache.
func (c *CLI) newRunner(ctx context.Context, opts cacheOptions) (*pipeline.Runner, error) {
	cc, err := newCache(ctx, opts)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cc, c.Logger), nil
}

// newCache picks Redis, then MongoDB, then the local file cache. The file
// cache falls back to no caching when no home directory is available.
func newCache(ctx context.Context, opts cacheOptions) (cache.Cache, error) {
	switch {
	case opts.disabled:
		return cache.NewNullCache(), nil
	case opts.redisURL != "":
		rc, err := cache.NewRedisCache(ctx, opts.redisURL, "")
		if err != nil {
			return nil, err
		}
		return rc, nil
	case opts.mongoURI != "":
		mc, err := cache.NewMongoCache(ctx, opts.mongoURI, "", "")
		if err != nil {
			return nil, err
		}
		return mc, nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return nil, err
	}
	return fc, nil
}

// cacheDir returns the cache directory using XDG standard (~/.cache/graphlayout/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
