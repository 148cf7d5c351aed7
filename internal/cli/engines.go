package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphlayout/pkg/layout"
)

// enginesCommand creates the command listing the layout engines.
func (c *CLI) enginesCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "engines",
		Short: "List the available layout engines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engines := layout.Engines()
			if asJSON {
				enc := json.NewEncoder(c.Out)
				enc.SetIndent("", "  ")
				return enc.Encode(engines)
			}
			fmt.Fprintln(c.Out, engineTable(engines))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the engine list as JSON")
	return cmd
}
