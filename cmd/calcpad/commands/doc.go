// Package commands defines the calcpad CLI and wires dependencies for subcommands.
//
// Commands
//
//   - eval         Evaluate expressions given as arguments or read from stdin
//   - normalize    Print the normalized form of expressions
//   - repl         Line-oriented calculator with history
//   - tui          Full-screen keypad
//   - config init  Write the default configuration file
//   - config show  Print the effective configuration
//
// # Implementation
//
// The root command loads the YAML config, builds a zap logger and the
// dependency graph (normalizer, evaluator, calculator, optional calcd client)
// before any subcommand runs, so handlers share one app context.
package commands
