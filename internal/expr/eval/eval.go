package eval

import (
	"fmt"
	"math"

	"calcpad/internal/domain"
)

// DefaultMaxDepth bounds unary and parenthesis nesting.
const DefaultMaxDepth = 256

// Evaluator evaluates normalized expressions. The zero value is ready to use.
type Evaluator struct {
	// MaxDepth overrides DefaultMaxDepth when positive.
	MaxDepth int
}

// Evaluate computes normalized with a zero Evaluator.
func Evaluate(normalized string) (string, error) {
	return Evaluator{}.Evaluate(normalized)
}

// Evaluate computes normalized and returns its canonical string form.
func (e Evaluator) Evaluate(normalized string) (string, error) {
	v, err := e.Compute(normalized)
	if err != nil {
		return "", err
	}
	return FormatNumber(v), nil
}

// Compute parses and evaluates normalized, returning a finite value.
func (e Evaluator) Compute(normalized string) (float64, error) {
	toks, err := lex(normalized)
	if err != nil {
		return 0, err
	}
	if toks[0].kind == tokEOF {
		return 0, fmt.Errorf("%w: empty expression", ErrSyntax)
	}

	p := &parser{toks: toks, maxDepth: e.MaxDepth}
	if p.maxDepth <= 0 {
		p.maxDepth = DefaultMaxDepth
	}
	v, err := p.parseExpression()
	if err != nil {
		return 0, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return 0, p.unexpected(t)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: result %s is not a finite number", ErrArithmetic, FormatNumber(v))
	}
	return v, nil
}

// Compile-time assertion that Evaluator implements domain.Evaluator.
var _ domain.Evaluator = Evaluator{}
