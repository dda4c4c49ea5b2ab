package calculator

import (
	"fmt"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"calcpad/internal/domain"
)

// Keys translates typed text into keypad events. Compatibility forms such as
// fullwidth digits are folded with NFKC first, whitespace is skipped and
// ASCII stand-ins map to the keypad glyphs ("*" and "x" to "×", "/" to "÷",
// "-" to "−", "r" and "s" to "√"). "=" is the equals key and "c" the clear key.
func Keys(text string) ([]domain.Key, error) {
	var keys []domain.Key
	for _, r := range norm.NFKC.String(text) {
		if unicode.IsSpace(r) {
			continue
		}
		k, ok := keyForRune(r)
		if !ok {
			return nil, fmt.Errorf("%w: no key for %q", ErrInvalidKey, r)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

func keyForRune(r rune) (domain.Key, bool) {
	switch {
	case r >= '0' && r <= '9', r == '.':
		return domain.Key{Kind: domain.KeyNumber, Value: string(r)}, true
	case r == '=':
		return domain.Key{Kind: domain.KeyEquals}, true
	case r == 'c' || r == 'C':
		return domain.Key{Kind: domain.KeyClear}, true
	}

	var glyph string
	switch r {
	case '+', '%', '^', '(', ')', '×', '÷', '−', '√':
		glyph = string(r)
	case '-':
		glyph = "−"
	case '*', 'x':
		glyph = "×"
	case '/':
		glyph = "÷"
	case 'r', 's':
		glyph = "√"
	default:
		return domain.Key{}, false
	}
	return domain.Key{Kind: domain.KeyOperator, Value: glyph}, true
}
