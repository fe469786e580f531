package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseMoney(t *testing.T) {
	cases := map[string]string{
		"R$ 45,90":       "45.9",
		"R$ 1.234,56":    "1234.56",
		"45.90":          "45.9",
		"1.234.567":      "1234567",
		"Total: R$ 80":   "80",
		"":               "0",
		"sem valor":      "0",
		"-R$ 10,00":      "-10",
		"R$1.000.000,01": "1000000.01",
	}
	for in, want := range cases {
		got := ParseMoney(in)
		assert.True(t, got.Equal(decimal.RequireFromString(want)), "ParseMoney(%q) = %s, want %s", in, got, want)
	}
}

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "R$ 0,00", FormatBRL(decimal.Zero))
	assert.Equal(t, "R$ 45,90", FormatBRL(decimal.RequireFromString("45.9")))
	assert.Equal(t, "R$ 1.234,50", FormatBRL(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "R$ 1.000.000,00", FormatBRL(decimal.NewFromInt(1000000)))
	assert.Equal(t, "-R$ 12,00", FormatBRL(decimal.NewFromInt(-12)))
}

func TestFormatCompactBRL(t *testing.T) {
	assert.Equal(t, "R$ 999,99", FormatCompactBRL(decimal.RequireFromString("999.99")))
	assert.Equal(t, "R$ 1.0K", FormatCompactBRL(decimal.NewFromInt(1000)))
	assert.Equal(t, "R$ 12.3K", FormatCompactBRL(decimal.RequireFromString("12345.67")))
}
