package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "plain integer", input: "100", want: "100"},
		{name: "two decimal places", input: "12.50", want: "12.5"},
		{name: "negative amount", input: "-3.25", want: "-3.25"},
		{name: "zero", input: "0.00", want: "0"},
		{name: "surrounding whitespace", input: "  42.10 ", want: "42.1"},
		{name: "large magnitude", input: "1234567890.99", want: "1234567890.99"},
		{name: "empty string", input: "", wantErr: true},
		{name: "whitespace only", input: "   ", wantErr: true},
		{name: "letters", input: "abc", wantErr: true},
		{name: "currency symbol", input: "$10.00", wantErr: true},
		{name: "thousands separator", input: "1,000.00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMoney(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidAmountFormat)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

// Decimal sums must be exact for 2-fractional-digit inputs; this is the whole
// point of not using binary floats for money.
func TestDecimalExactness(t *testing.T) {
	a, err := ParseMoney("0.10")
	require.NoError(t, err)
	b, err := ParseMoney("0.20")
	require.NoError(t, err)

	sum := a.Add(b)
	assert.Equal(t, "0.3", sum.String())
	assert.True(t, sum.Equal(decimal.RequireFromString("0.30")))

	// associativity over a pathological float case
	c := decimal.RequireFromString("0.01")
	left := a.Add(b).Add(c)
	right := a.Add(b.Add(c))
	assert.True(t, left.Equal(right))
	assert.Equal(t, "0.31", left.String())
}

func TestClampNonNegative(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "positive unchanged", input: "250.75", want: "250.75"},
		{name: "zero unchanged", input: "0", want: "0"},
		{name: "negative clamped", input: "-100.50", want: "0"},
		{name: "small negative clamped", input: "-0.01", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClampNonNegative(decimal.RequireFromString(tt.input))
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestPercentageOf(t *testing.T) {
	tests := []struct {
		name     string
		actual   string
		budgeted string
		want     float64
	}{
		{name: "half used", actual: "250", budgeted: "500", want: 0.5},
		{name: "fully used", actual: "500", budgeted: "500", want: 1.0},
		{name: "over budget", actual: "600", budgeted: "500", want: 1.2},
		{name: "zero budget is zero not error", actual: "100", budgeted: "0", want: 0},
		{name: "negative budget is zero", actual: "100", budgeted: "-50", want: 0},
		{name: "nothing spent", actual: "0", budgeted: "500", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PercentageOf(decimal.RequireFromString(tt.actual), decimal.RequireFromString(tt.budgeted))
			assert.InDelta(t, tt.want, got, 0.0001)
		})
	}
}
