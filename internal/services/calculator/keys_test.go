package calculator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calcpad/internal/domain"
	"calcpad/internal/services/calculator"
)

func TestKeys(t *testing.T) {
	num := func(v string) domain.Key { return domain.Key{Kind: domain.KeyNumber, Value: v} }
	op := func(v string) domain.Key { return domain.Key{Kind: domain.KeyOperator, Value: v} }

	cases := []struct {
		in   string
		want []domain.Key
	}{
		{"1 + 2", []domain.Key{num("1"), op("+"), num("2")}},
		{"3*4/5-6", []domain.Key{num("3"), op("×"), num("4"), op("÷"), num("5"), op("−"), num("6")}},
		{"r9", []domain.Key{op("√"), num("9")}},
		{"２×３＝", []domain.Key{num("2"), op("×"), num("3"), {Kind: domain.KeyEquals}}},
		{"c.5%", []domain.Key{{Kind: domain.KeyClear}, num("."), num("5"), op("%")}},
		{"", nil},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := calculator.Keys(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestKeys_Unknown(t *testing.T) {
	_, err := calculator.Keys("2+y")
	assert.ErrorIs(t, err, calculator.ErrInvalidKey)
}

func TestKeys_PressAll(t *testing.T) {
	svc := newService(t)
	keys, err := calculator.Keys("3x(1+2)=")
	require.NoError(t, err)
	for _, k := range keys {
		_ = svc.Press(k)
	}
	assert.Equal(t, "9", svc.Snapshot().Expression)
}
