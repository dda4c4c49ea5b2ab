package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"calcpad/internal/domain"
	"calcpad/internal/services/calculator"
)

const replHelp = `Type an expression and press enter to evaluate it.
A line starting with an operator continues from the current result.
  :history        list past results (0 is newest)
  :use N          put result N on the display
  :clear          clear the display
  :clear-history  drop all history
  :quit           leave`

var errQuit = errors.New("quit")

// repl: a line-oriented calculator sharing one display and history.
func replCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactive line calculator with history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			r := &repl{calc: appCtx.Calc, out: out, errOut: cmd.ErrOrStderr()}
			if !quiet {
				fmt.Fprintln(out, replHelp)
			}

			sc := bufio.NewScanner(cmd.InOrStdin())
			for {
				if !quiet {
					fmt.Fprint(out, "> ")
				}
				if !sc.Scan() {
					return sc.Err()
				}
				if err := r.line(strings.TrimSpace(sc.Text())); errors.Is(err, errQuit) {
					return nil
				}
			}
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "no banner or prompt")
	return cmd
}

type repl struct {
	calc   domain.CalculatorService
	out    io.Writer
	errOut io.Writer
}

func (r *repl) line(text string) error {
	if text == "" {
		return nil
	}
	if strings.HasPrefix(text, ":") {
		return r.meta(text)
	}

	keys, err := calculator.Keys(text)
	if err != nil {
		fmt.Fprintln(r.errOut, err)
		return nil
	}
	for len(keys) > 0 && keys[len(keys)-1].Kind == domain.KeyEquals {
		keys = keys[:len(keys)-1]
	}
	if len(keys) == 0 {
		return nil
	}
	if !continuesResult(keys[0]) {
		r.calc.Clear()
		if k := keys[0]; k.Kind == domain.KeyOperator {
			// Start from the glyph rather than behind the "0" placeholder.
			r.calc.SelectEntry(k.Value)
			keys = keys[1:]
		}
	}
	for _, k := range keys {
		if err := r.calc.Press(k); err != nil {
			fmt.Fprintln(r.errOut, err)
			return nil
		}
	}
	if _, err := r.calc.Evaluate(); err != nil {
		fmt.Fprintln(r.errOut, err)
	}
	fmt.Fprintln(r.out, r.calc.Snapshot().Expression)
	return nil
}

// continuesResult reports whether a line opening with k extends the value on
// the display. Infix and postfix operators do; digits and prefix operators
// start a new expression.
func continuesResult(k domain.Key) bool {
	return k.Kind == domain.KeyOperator && k.Value != "(" && k.Value != "√"
}

func (r *repl) meta(text string) error {
	cmd, arg, _ := strings.Cut(text, " ")
	switch cmd {
	case ":quit", ":q", ":exit":
		return errQuit
	case ":help", ":h":
		fmt.Fprintln(r.out, replHelp)
	case ":history":
		history := r.calc.History()
		if len(history) == 0 {
			fmt.Fprintln(r.out, "(empty)")
		}
		for i, e := range history {
			fmt.Fprintf(r.out, "%d: %s = %s\n", i, e.Expression, e.Result)
		}
	case ":use":
		n, err := strconv.Atoi(strings.TrimSpace(arg))
		if err != nil {
			fmt.Fprintln(r.errOut, "usage: :use N")
			return nil
		}
		if err := r.calc.SelectIndex(n); err != nil {
			fmt.Fprintln(r.errOut, err)
			return nil
		}
		fmt.Fprintln(r.out, r.calc.Snapshot().Expression)
	case ":clear":
		r.calc.Clear()
		fmt.Fprintln(r.out, r.calc.Snapshot().Expression)
	case ":clear-history":
		r.calc.ClearHistory()
	default:
		fmt.Fprintf(r.errOut, "unknown command %s (try :help)\n", cmd)
	}
	return nil
}
