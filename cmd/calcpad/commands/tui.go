package commands

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"calcpad/internal/tui"
)

// tui: full-screen keypad over the shared calculator.
func tuiCmd() *cobra.Command {
	var inline bool

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Full-screen calculator keypad",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []tea.ProgramOption{
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			}
			if !inline {
				opts = append(opts, tea.WithAltScreen())
			}
			return tui.Run(appCtx.Calc, opts...)
		},
	}
	cmd.Flags().BoolVar(&inline, "inline", false, "render below the prompt instead of the alternate screen")
	return cmd
}
