package visualate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumberFormat(t *testing.T) {
	tests := []struct {
		Format NumberFormat
		Value  float64
		Want   string
	}{
		{
			Format: NumberFormat{Precision: 2},
			Value:  1.2345,
			Want:   "1.23",
		},
		{
			Format: NumberFormat{Precision: 1, SeparateThousands: true},
			Value:  1234.5,
			Want:   "1,234.5",
		},
		{
			Format: NumberFormat{Precision: 2, Exponent: ExponentLower},
			Value:  123456,
			Want:   "1.23e+05",
		},
		{
			Format: NumberFormat{Precision: 1, Exponent: ExponentUpper},
			Value:  -98765,
			Want:   "-9.9E+04",
		},
		{
			Format: NumberFormat{Precision: 1, Exponent: ExponentPower},
			Value:  25000,
			Want:   "2.5×10^4",
		},
		{
			Format: NumberFormat{Precision: 0, Exponent: ExponentNone},
			Value:  25000,
			Want:   "25000",
		},
		{
			Format: NumberFormat{Precision: 2, Exponent: ExponentLower},
			Value:  12.5,
			Want:   "12.50",
		},
		{
			Format: NumberFormat{Precision: 0, Prefix: "$", Suffix: "k"},
			Value:  3,
			Want:   "$3k",
		},
		{
			Format: NumberFormat{Precision: 2},
			Value:  math.NaN(),
			Want:   "NaN",
		},
	}
	for _, tt := range tests {
		got := tt.Format.Format(tt.Value)
		assert.Equal(t, tt.Want, got, "format %v", tt.Value)
	}
}

func TestNumberFormatSI(t *testing.T) {
	f := NumberFormat{Precision: 1, Exponent: ExponentSI}
	assert.Contains(t, f.Format(25000), "k")

	f.Exponent = ExponentB
	assert.Contains(t, f.Format(3e9), "B")
	assert.NotContains(t, f.Format(3e9), "G")
}
