package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphlayout/pkg/diagram"
	"github.com/matzehuels/graphlayout/pkg/engine"
	lio "github.com/matzehuels/graphlayout/pkg/io"
	"github.com/matzehuels/graphlayout/pkg/layout"
	"github.com/matzehuels/graphlayout/pkg/pipeline"
)

// layoutFlags holds the command-line flags for the layout command.
type layoutFlags struct {
	engine      string // engine name, overrides the config file
	config      string // TOML config path
	orientation string // N, E, S or W for the layered engines
	seed        uint64 // random seed
	formats     string // comma-separated output formats
	output      string // output file, base path for several formats, "-" for stdout
	noCache     bool   // disable the layout cache
	refresh     bool   // recompute even when cached
	interactive bool   // choose the engine interactively
}

// layoutCommand creates the layout command.
func (c *CLI) layoutCommand() *cobra.Command {
	var flags layoutFlags

	cmd := &cobra.Command{
		Use:   "layout [doc.json]",
		Short: "Lay out a diagram document",
		Long: `Lay out a diagram document.

The document lists nodes with sizes and links between them. The layout
command computes node positions and link routes with the selected engine and
writes the result as JSON (the same document with coordinates filled in),
SVG, DOT or PNG. Use "-" to read the document from stdin.

Engine options can be tuned in a TOML file passed with --config; flags take
precedence over the file. Results are cached locally for faster subsequent
runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.buildConfig(cmd)
			if err != nil {
				return err
			}
			if flags.interactive {
				name, ok, err := pickEngine(cfg.Engine)
				if err != nil {
					return err
				}
				if !ok {
					return nil
				}
				cfg.Engine = name
			}
			return c.runLayout(cmd.Context(), args[0], cfg, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.engine, "engine", "e", layout.DefaultEngine, "layout engine (see 'graphlayout engines')")
	cmd.Flags().StringVarP(&flags.config, "config", "c", "", "TOML file with engine options")
	cmd.Flags().StringVar(&flags.orientation, "orientation", "", "orientation of layered engines: N, E, S, W")
	cmd.Flags().Uint64Var(&flags.seed, "seed", engine.DefaultSeed, "random seed")
	cmd.Flags().StringVarP(&flags.formats, "format", "f", pipeline.FormatJSON, "output format(s): json, svg, dot, png (comma-separated)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file, base path for several formats, or - for stdout")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&flags.refresh, "refresh", false, "recompute the layout even if it is cached")
	cmd.Flags().BoolVarP(&flags.interactive, "interactive", "i", false, "choose the engine interactively")

	_ = cmd.RegisterFlagCompletionFunc("engine", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		var names []string
		for _, e := range layout.Engines() {
			names = append(names, e.Name+"\t"+e.Description)
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// buildConfig loads the config file and applies the flags that were set.
func (f layoutFlags) buildConfig(cmd *cobra.Command) (layout.Config, error) {
	cfg := layout.DefaultConfig()
	if f.config != "" {
		var err error
		if cfg, err = layout.LoadConfig(f.config); err != nil {
			return layout.Config{}, err
		}
	}
	if cmd.Flags().Changed("engine") || f.config == "" {
		cfg.Engine = strings.ToLower(f.engine)
	}
	if f.orientation != "" {
		o, err := engine.ParseOrientation(f.orientation)
		if err != nil {
			return layout.Config{}, err
		}
		cfg.SetOrientation(o)
	}
	if cmd.Flags().Changed("seed") {
		cfg.SetSeed(f.seed)
	}
	return cfg, nil
}

// runLayout loads the document, lays it out, and writes the outputs.
func (c *CLI) runLayout(ctx context.Context, input string, cfg layout.Config, flags layoutFlags) error {
	m, err := readDocument(input)
	if err != nil {
		return fmt.Errorf("load document %s: %w", input, err)
	}

	runner, err := c.newRunner(ctx, cacheOptions{disabled: flags.noCache})
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts := pipeline.Options{
		Config:  cfg,
		Formats: parseFormats(flags.formats),
		Refresh: flags.refresh,
		Logger:  runLogger(ctx, cfg.Engine, input),
	}

	spinner := newSpinnerWithContext(ctx, os.Stderr, fmt.Sprintf("Computing %s layout...", cfg.Engine))
	spinner.Start()
	res, err := runner.Execute(ctx, m, opts)
	spinner.Stop()
	if err != nil {
		c.printError("Layout failed")
		return err
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	if flags.output == "-" {
		for _, format := range opts.Formats {
			if _, err := os.Stdout.Write(res.Artifacts[format]); err != nil {
				return err
			}
		}
		return nil
	}

	paths := outputPaths(input, flags.output, opts.Formats)
	for _, format := range opts.Formats {
		if err := os.WriteFile(paths[format], res.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write output %s: %w", paths[format], err)
		}
	}

	c.printSuccess("Layout complete")
	for _, format := range opts.Formats {
		c.printFile(paths[format])
	}
	c.printStats(res.Stats.Vertices, res.Stats.Clusters, res.Stats.Bends, res.CacheHit)
	if jsonOut, ok := paths[pipeline.FormatJSON]; ok && len(opts.Formats) == 1 {
		c.printNewline()
		c.printNextStep("Preview", fmt.Sprintf("%s layout -e %s -f svg %s", appName, cfg.Engine, jsonOut))
	}
	return nil
}

// readDocument reads a document file, or stdin for "-".
func readDocument(path string) (*diagram.Memory, error) {
	if path == "-" {
		return lio.ReadJSON(os.Stdin)
	}
	return lio.ImportJSON(path)
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			out = append(out, f)
		}
	}
	if len(out) == 0 {
		return []string{pipeline.FormatJSON}
	}
	return out
}

// outputPaths names the output file of every format. A single format is
// written to output when set. Otherwise output, or the input without its
// extension, is the base name and the format is the extension; JSON output
// gets ".layout.json" so it never overwrites its input.
func outputPaths(input, output string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if output != "" && len(formats) == 1 {
		paths[formats[0]] = output
		return paths
	}

	base := output
	if base == "" {
		base = input
		if input == "-" {
			base = "stdin"
		}
	}
	base = strings.TrimSuffix(base, filepath.Ext(base))
	for _, f := range formats {
		ext := "." + f
		if f == pipeline.FormatJSON {
			ext = ".layout.json"
		}
		paths[f] = base + ext
	}
	return paths
}
