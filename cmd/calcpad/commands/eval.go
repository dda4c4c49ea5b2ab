package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// eval [expr...]: evaluate each expression, or each stdin line without args.
func evalCmd() *cobra.Command {
	var showNormalized bool

	cmd := &cobra.Command{
		Use:   "eval [expr...]",
		Short: "Evaluate calculator expressions",
		Long: `Evaluates each argument as a calculator expression (× ÷ − % √ ^ allowed)
and prints its result. Without arguments, evaluates each line of stdin.
A failed expression prints the error indicator; the command then exits non-zero.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			exprs := args
			if len(exprs) == 0 {
				sc := bufio.NewScanner(cmd.InOrStdin())
				for sc.Scan() {
					if line := strings.TrimSpace(sc.Text()); line != "" {
						exprs = append(exprs, line)
					}
				}
				if err := sc.Err(); err != nil {
					return err
				}
			}

			out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
			failed := 0
			for _, expr := range exprs {
				ev, err := appCtx.Evaluate(cmd.Context(), expr)
				if err != nil {
					failed++
					logger.Debug("eval failed", zap.String("expression", expr), zap.Error(err))
					fmt.Fprintln(out, settings.Display.ErrorIndicator)
					fmt.Fprintf(errOut, "%s: %v\n", expr, err)
					continue
				}
				if showNormalized {
					fmt.Fprintf(out, "%s => %s\n", ev.Normalized, ev.Result)
				} else {
					fmt.Fprintln(out, ev.Result)
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d expression(s) failed", failed, len(exprs))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showNormalized, "show-normalized", false, "print the normalized expression before the result")
	return cmd
}
