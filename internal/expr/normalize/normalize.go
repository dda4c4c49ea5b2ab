package normalize

import (
	"regexp"
	"strings"

	"calcpad/internal/domain"
)

var glyphs = strings.NewReplacer(
	"×", "*",
	"÷", "/",
	"−", "-",
)

var (
	percentRE = regexp.MustCompile(`(\d+)%`)
	sqrtRE    = regexp.MustCompile(`√(\d+)`)
	powRE     = regexp.MustCompile(`(\d+)\^(\d+)`)
)

// Normalize returns expression with every calculator glyph rewritten.
func Normalize(expression string) string {
	out := glyphs.Replace(expression)
	out = percentRE.ReplaceAllString(out, "(${1}/100)")
	out = sqrtRE.ReplaceAllString(out, "sqrt(${1})")
	out = powRE.ReplaceAllString(out, "pow(${1},${2})")
	return out
}

// Normalizer adapts Normalize to domain.Normalizer.
type Normalizer struct{}

// Normalize implements domain.Normalizer.
func (Normalizer) Normalize(expression string) string { return Normalize(expression) }

// Compile-time assertion that Normalizer implements domain.Normalizer.
var _ domain.Normalizer = Normalizer{}
