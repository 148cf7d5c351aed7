package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphlayout/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
// The --verbose flag switches the CLI logger to debug level before any
// subcommand runs and attaches it to the command context.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "graphlayout arranges node-link diagrams",
		Long:         `graphlayout computes positions and edge routes for node-link diagrams with force-directed, tree, series-parallel, orthogonal and hierarchic layout engines.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := LogInfo
			if verbose {
				level = LogDebug
			}
			c.SetLogLevel(level)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.enginesCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}
