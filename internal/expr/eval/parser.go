package eval

import (
	"fmt"
	"math"
)

type function struct {
	arity int
	apply func(args []float64) float64
}

var functions = map[string]function{
	"sqrt": {arity: 1, apply: func(a []float64) float64 { return math.Sqrt(a[0]) }},
	"pow":  {arity: 2, apply: func(a []float64) float64 { return math.Pow(a[0], a[1]) }},
}

type parser struct {
	toks     []token
	pos      int
	depth    int
	maxDepth int
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) match(kind tokenKind) bool {
	if p.peek().kind != kind {
		return false
	}
	p.pos++
	return true
}

func (p *parser) unexpected(t token) error {
	return fmt.Errorf("%w: unexpected %s at offset %d", ErrSyntax, t, t.pos)
}

func (p *parser) parseExpression() (float64, error) {
	value, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		switch {
		case p.match(tokPlus):
			rhs, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			value += rhs
		case p.match(tokMinus):
			rhs, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			value -= rhs
		default:
			return value, nil
		}
	}
}

func (p *parser) parseTerm() (float64, error) {
	value, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	for {
		switch {
		case p.match(tokStar):
			rhs, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			value *= rhs
		case p.peek().kind == tokSlash:
			op := p.next()
			rhs, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			if rhs == 0 {
				return 0, fmt.Errorf("%w: division by zero at offset %d", ErrArithmetic, op.pos)
			}
			value /= rhs
		default:
			return value, nil
		}
	}
}

func (p *parser) parseUnary() (float64, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > p.maxDepth {
		return 0, fmt.Errorf("%w: expression nested deeper than %d", ErrUnsupported, p.maxDepth)
	}

	switch {
	case p.match(tokPlus):
		return p.parseUnary()
	case p.match(tokMinus):
		value, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		return -value, nil
	default:
		return p.parsePrimary()
	}
}

func (p *parser) parsePrimary() (float64, error) {
	t := p.next()
	switch t.kind {
	case tokNumber:
		return t.value, nil
	case tokLParen:
		value, err := p.parseExpression()
		if err != nil {
			return 0, err
		}
		if !p.match(tokRParen) {
			return 0, fmt.Errorf("%w: missing ')' for '(' at offset %d", ErrSyntax, t.pos)
		}
		return value, nil
	case tokIdent:
		return p.parseCall(t)
	default:
		return 0, p.unexpected(t)
	}
}

func (p *parser) parseCall(name token) (float64, error) {
	fn, ok := functions[name.text]
	if !ok {
		return 0, fmt.Errorf("%w: unknown identifier %q at offset %d", ErrUnsupported, name.text, name.pos)
	}
	open := p.peek()
	if !p.match(tokLParen) {
		return 0, fmt.Errorf("%w: %s must be called at offset %d", ErrUnsupported, name.text, name.pos)
	}

	var args []float64
	for {
		arg, err := p.parseExpression()
		if err != nil {
			return 0, err
		}
		args = append(args, arg)
		if !p.match(tokComma) {
			break
		}
	}
	if !p.match(tokRParen) {
		return 0, fmt.Errorf("%w: missing ')' for '(' at offset %d", ErrSyntax, open.pos)
	}
	if len(args) != fn.arity {
		return 0, fmt.Errorf("%w: %s takes %d argument(s), got %d",
			ErrUnsupported, name.text, fn.arity, len(args))
	}
	return fn.apply(args), nil
}
