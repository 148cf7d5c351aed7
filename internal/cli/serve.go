package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphlayout/pkg/layout"
	"github.com/matzehuels/graphlayout/pkg/server"
)

// Environment variables consulted when the corresponding flag is empty.
const (
	envRedisURL = "GRAPHLAYOUT_REDIS_URL"
	envMongoURI = "GRAPHLAYOUT_MONGO_URI"
)

// serveCommand creates the command running the HTTP layout API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr       string
		configPath string
		opts       cacheOptions
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP layout API",
		Long: `Serve the HTTP layout API.

Layout results are cached in Redis when --redis-url is set, in MongoDB when
--mongo-uri is set, and in the local cache directory otherwise. The URLs can
also be supplied through GRAPHLAYOUT_REDIS_URL and GRAPHLAYOUT_MONGO_URI.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.redisURL == "" {
				opts.redisURL = os.Getenv(envRedisURL)
			}
			if opts.mongoURI == "" {
				opts.mongoURI = os.Getenv(envMongoURI)
			}
			return c.runServe(cmd.Context(), addr, configPath, opts)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML file with default engine options")
	cmd.Flags().StringVar(&opts.redisURL, "redis-url", "", "cache layouts in Redis (redis://host:port/db)")
	cmd.Flags().StringVar(&opts.mongoURI, "mongo-uri", "", "cache layouts in MongoDB (mongodb://host:port)")
	cmd.Flags().BoolVar(&opts.disabled, "no-cache", false, "disable caching")
	cmd.MarkFlagsMutuallyExclusive("redis-url", "mongo-uri", "no-cache")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr, configPath string, opts cacheOptions) error {
	cfg := layout.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = layout.LoadConfig(configPath); err != nil {
			return err
		}
	}

	runner, err := c.newRunner(ctx, opts)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}
	defer runner.Close()

	c.printInfo("Serving layout API on %s", addr)
	return server.New(runner, cfg, c.Logger).ListenAndServe(ctx, addr)
}
