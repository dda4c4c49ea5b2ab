package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// normalize <expr...>: print what the evaluator would see.
func normalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <expr...>",
		Short: "Print the normalized form of expressions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, expr := range args {
				fmt.Fprintln(cmd.OutOrStdout(), appCtx.Wire.Normalizer.Normalize(expr))
			}
			return nil
		},
	}
}
