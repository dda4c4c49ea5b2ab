package eval

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokLParen
	tokRParen
	tokComma
)

type token struct {
	kind  tokenKind
	text  string
	value float64
	pos   int
}

func (t token) String() string {
	if t.kind == tokEOF {
		return "end of input"
	}
	return strconv.Quote(t.text)
}

var punct = map[rune]tokenKind{
	'+': tokPlus,
	'-': tokMinus,
	'*': tokStar,
	'/': tokSlash,
	'(': tokLParen,
	')': tokRParen,
	',': tokComma,
}

// Keypad glyphs that only the normalizer understands.
var calculatorGlyphs = map[rune]bool{
	'%': true,
	'^': true,
	'√': true,
	'×': true,
	'÷': true,
	'−': true,
}

func lex(src string) ([]token, error) {
	var toks []token
	for i := 0; i < len(src); {
		r, size := utf8.DecodeRuneInString(src[i:])
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			i += size
		case isDigit(r) || r == '.':
			tok, next, err := lexNumber(src, i)
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)
			i = next
		case unicode.IsLetter(r) || r == '_':
			start := i
			for i < len(src) {
				r, size := utf8.DecodeRuneInString(src[i:])
				if !unicode.IsLetter(r) && !isDigit(r) && r != '_' {
					break
				}
				i += size
			}
			if i < len(src) && src[i] == '.' {
				return nil, fmt.Errorf("%w: property access on %q at offset %d", ErrUnsupported, src[start:i], i)
			}
			toks = append(toks, token{kind: tokIdent, text: src[start:i], pos: start})
		default:
			if kind, ok := punct[r]; ok {
				toks = append(toks, token{kind: kind, text: string(r), pos: i})
				i += size
				continue
			}
			if calculatorGlyphs[r] {
				return nil, fmt.Errorf("%w: %q at offset %d", ErrUnsupported, r, i)
			}
			if r == utf8.RuneError && size == 1 {
				return nil, fmt.Errorf("%w: invalid UTF-8 at offset %d", ErrSyntax, i)
			}
			return nil, fmt.Errorf("%w: unexpected character %q at offset %d", ErrSyntax, r, i)
		}
	}
	return append(toks, token{kind: tokEOF, pos: len(src)}), nil
}

// lexNumber scans digits [ "." digits ] [ exponent ] starting at start.
func lexNumber(src string, start int) (token, int, error) {
	i := start
	digits := 0
	for i < len(src) && isDigit(rune(src[i])) {
		i++
		digits++
	}
	if i < len(src) && src[i] == '.' {
		i++
		for i < len(src) && isDigit(rune(src[i])) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return token{}, 0, fmt.Errorf("%w: stray '.' at offset %d", ErrSyntax, start)
	}
	// An exponent only counts when digits follow; "5e" leaves "e" for the parser to reject.
	if i < len(src) && (src[i] == 'e' || src[i] == 'E') {
		j := i + 1
		if j < len(src) && (src[j] == '+' || src[j] == '-') {
			j++
		}
		if j < len(src) && isDigit(rune(src[j])) {
			for j < len(src) && isDigit(rune(src[j])) {
				j++
			}
			i = j
		}
	}

	text := src[start:i]
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		var numErr *strconv.NumError
		// Out-of-range literals become ±Inf and fail as non-finite results.
		if !errors.As(err, &numErr) || !errors.Is(numErr.Err, strconv.ErrRange) {
			return token{}, 0, fmt.Errorf("%w: invalid number %q at offset %d", ErrSyntax, text, start)
		}
	}
	return token{kind: tokNumber, text: text, value: v, pos: start}, i, nil
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }
