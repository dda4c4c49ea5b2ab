package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"calcpad/internal/expr/normalize"
)

func TestNormalize_Rules(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"50%", "(50/100)"},
		{"√9", "sqrt(9)"},
		{"2^10", "pow(2,10)"},
		{"6×7", "6*7"},
		{"8÷2", "8/2"},
		{"9−4", "9-4"},
		{"200×15%", "200*(15/100)"},
		{"√16+2^3", "sqrt(16)+pow(2,3)"},
		{"1%+2%", "(1/100)+(2/100)"},
		{"√2×√8", "sqrt(2)*sqrt(8)"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, normalize.Normalize(tc.in))
		})
	}
}

func TestNormalize_DigitRunProperties(t *testing.T) {
	for _, n := range []string{"0", "7", "42", "1000", "0007", "123456789"} {
		assert.Equal(t, "("+n+"/100)", normalize.Normalize(n+"%"))
		assert.Equal(t, "sqrt("+n+")", normalize.Normalize("√"+n))
		for _, m := range []string{"0", "3", "25"} {
			assert.Equal(t, "pow("+n+","+m+")", normalize.Normalize(n+"^"+m))
		}
	}
}

func TestNormalize_PassthroughWithoutGlyphs(t *testing.T) {
	for _, in := range []string{"", "0", "2+2", "(1+2)*3/4-5", "1.5e3", "sqrt(9)", "hello world"} {
		once := normalize.Normalize(in)
		assert.Equal(t, in, once)
		assert.Equal(t, once, normalize.Normalize(once))
	}
}

func TestNormalize_KnownLimitationsLeftUnrewritten(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"(2+3)%", "(2+3)%"},
		{"√(4)", "√(4)"},
		{"2^3^4", "pow(2,3)^4"},
		{"(2)^3", "(2)^3"},
		{"%", "%"},
		{"2.5%", "2.(5/100)"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, normalize.Normalize(tc.in))
		})
	}
}

func TestNormalizer_ImplementsInterface(t *testing.T) {
	var n normalize.Normalizer
	assert.Equal(t, "pow(2,8)", n.Normalize("2^8"))
}
