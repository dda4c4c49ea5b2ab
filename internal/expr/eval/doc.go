// Package eval is a sandboxed arithmetic evaluator for normalized calculator
// expressions.
//
// # Grammar
//
//	expr    = term { ("+" | "-") term }
//	term    = unary { ("*" | "/") unary }
//	unary   = ("+" | "-") unary | primary
//	primary = number | "(" expr ")" | ident "(" expr { "," expr } ")"
//
// Numbers are decimal literals with an optional fraction and exponent
// (".5", "5.", "1e+21"). The only callable identifiers are sqrt (one
// argument) and pow (two arguments). Nothing else is reachable: there are no
// variables, assignments or host calls.
//
// # Errors
//
// Every failure wraps exactly one of ErrSyntax, ErrArithmetic or
// ErrUnsupported; Kind classifies an error for transports. Division by zero
// and non-finite results (NaN, ±Inf) are arithmetic errors.
//
// # Formatting
//
// FormatNumber renders a float64 the way ECMAScript's Number#toString does:
// shortest round-trip digits, fixed notation between 1e-7 and 1e21 and
// exponent notation ("1e+21", "1e-7") outside that range.
package eval
