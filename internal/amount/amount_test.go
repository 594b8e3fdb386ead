package amount

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse_SeparatorDisambiguation(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1.234,56", "1234.56"},
		{"1,234.56", "1234.56"},
		{"1234.56", "1234.56"},
		{"1234,56", "1234.56"},
		{"12.345.678,90", "12345678.9"},
		{"12,345,678.90", "12345678.9"},
		{"0,05", "0.05"},
		{"100", "100"},
	}
	for _, c := range cases {
		got, ok := Parse(c.in)
		assert.True(t, ok, "parse %q", c.in)
		assert.Equal(t, c.want, got.String(), "parse %q", c.in)
	}
}

func TestParse_Negative(t *testing.T) {
	got, ok := Parse("-1.234,56")
	assert.True(t, ok)
	assert.Equal(t, "-1234.56", got.String())
}

func TestParse_CurrencySymbols(t *testing.T) {
	for _, in := range []string{"€ 1.234,56", "EUR 1,234.56", "€1234.56"} {
		got, ok := Parse(in)
		assert.True(t, ok, "parse %q", in)
		assert.Equal(t, "1234.56", got.String(), "parse %q", in)
	}
}

func TestParse_Empty(t *testing.T) {
	got, ok := Parse("   ")
	assert.True(t, ok)
	assert.True(t, got.IsZero())
}

func TestParse_Garbage(t *testing.T) {
	for _, in := range []string{"n/a", "-", "..", "1.2.3,4,5abc--"} {
		got, ok := Parse(in)
		assert.False(t, ok, "parse %q", in)
		assert.True(t, got.IsZero(), "parse %q", in)
	}
}

func TestParseOrZero(t *testing.T) {
	assert.Equal(t, "121", ParseOrZero("121,00").String())
	assert.True(t, ParseOrZero("not a number").IsZero())
}
