package importer

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func amountCols() Columns {
	return Columns{Date: 0, Description: 1, Amount: 2, Credit: -1, Debit: -1, IBAN: -1, Reference: -1, Counterparty: -1}
}

func TestNormalizeRow_ISODate(t *testing.T) {
	tx, ok, failures := NormalizeRow([]string{"2024-03-10", "Klant Jansen", "121,00"}, amountCols(), "owner-1", "EUR", "csv:test.csv")
	require.True(t, ok)
	assert.Zero(t, failures)
	assert.True(t, tx.Date.Equal(date(2024, 3, 10)))
	assert.True(t, tx.Amount.Equal(dec("121.00")), "amount: got %s", tx.Amount)
	assert.Equal(t, "Klant Jansen", tx.Description)
	assert.Equal(t, "EUR", tx.Currency)
	assert.Equal(t, "owner-1", tx.Owner)
	assert.Equal(t, "csv:test.csv", tx.Source)
	assert.NotEmpty(t, tx.ContentHash)
	assert.False(t, tx.Matched)
}

func TestNormalizeRow_DayFirstDates(t *testing.T) {
	for _, raw := range []string{"10-03-2024", "10/03/2024"} {
		tx, ok, _ := NormalizeRow([]string{raw, "x", "1"}, amountCols(), "o", "EUR", "s")
		require.True(t, ok, "date %q", raw)
		assert.True(t, tx.Date.Equal(date(2024, 3, 10)), "date %q: got %s", raw, tx.Date)
	}
}

func TestNormalizeRow_BadDateSkipsRow(t *testing.T) {
	for _, raw := range []string{"", "  ", "March 10", "2024/03/10"} {
		_, ok, _ := NormalizeRow([]string{raw, "x", "1"}, amountCols(), "o", "EUR", "s")
		assert.False(t, ok, "date %q", raw)
	}
}

func TestNormalizeRow_CreditDebit(t *testing.T) {
	cols := Columns{Date: 0, Credit: 1, Debit: 2, Description: -1, Amount: -1, IBAN: -1, Reference: -1, Counterparty: -1}

	tx, ok, failures := NormalizeRow([]string{"2024-03-10", "", "25,50"}, cols, "o", "EUR", "s")
	require.True(t, ok)
	assert.Zero(t, failures)
	assert.True(t, tx.Amount.Equal(dec("-25.50")), "got %s", tx.Amount)

	tx, ok, _ = NormalizeRow([]string{"2024-03-10", "100,00", "25,50"}, cols, "o", "EUR", "s")
	require.True(t, ok)
	assert.True(t, tx.Amount.Equal(dec("74.50")), "got %s", tx.Amount)
}

func TestNormalizeRow_EmptyAmountFallsBackToCreditDebit(t *testing.T) {
	cols := Columns{Date: 0, Amount: 1, Credit: 2, Debit: 3, Description: -1, IBAN: -1, Reference: -1, Counterparty: -1}
	tx, ok, _ := NormalizeRow([]string{"2024-03-10", "", "10", "4"}, cols, "o", "EUR", "s")
	require.True(t, ok)
	assert.True(t, tx.Amount.Equal(dec("6")), "got %s", tx.Amount)
}

func TestNormalizeRow_UnparseableAmountBecomesZero(t *testing.T) {
	tx, ok, failures := NormalizeRow([]string{"2024-03-10", "x", "niet een getal"}, amountCols(), "o", "EUR", "s")
	require.True(t, ok)
	assert.Equal(t, 1, failures)
	assert.True(t, tx.Amount.IsZero())
}

func TestNormalizeRow_ShortRow(t *testing.T) {
	// Row with fewer cells than the header maps missing columns to empty.
	tx, ok, _ := NormalizeRow([]string{"2024-03-10"}, amountCols(), "o", "EUR", "s")
	require.True(t, ok)
	assert.Empty(t, tx.Description)
	assert.True(t, tx.Amount.IsZero())
}

func TestContentHash_Stable(t *testing.T) {
	a := ContentHash(date(2024, 3, 10), dec("121"), "Klant Jansen", "", "", "")
	b := ContentHash(date(2024, 3, 10), dec("121.00"), "klant jansen", "", "", "")
	assert.Equal(t, a, b, "hash input is lower-cased and amounts fixed to 2 decimals")
}

func TestContentHash_SensitiveToDescription(t *testing.T) {
	a := ContentHash(date(2024, 3, 10), dec("121.00"), "huur maart", "", "", "")
	b := ContentHash(date(2024, 3, 10), dec("121.00"), "huur april", "", "", "")
	assert.NotEqual(t, a, b)
}

func TestContentHash_SensitiveToEachField(t *testing.T) {
	base := ContentHash(date(2024, 3, 10), dec("1"), "d", "c", "i", "r")
	assert.NotEqual(t, base, ContentHash(date(2024, 3, 11), dec("1"), "d", "c", "i", "r"))
	assert.NotEqual(t, base, ContentHash(date(2024, 3, 10), dec("2"), "d", "c", "i", "r"))
	assert.NotEqual(t, base, ContentHash(date(2024, 3, 10), dec("1"), "d2", "c", "i", "r"))
	assert.NotEqual(t, base, ContentHash(date(2024, 3, 10), dec("1"), "d", "c2", "i", "r"))
	assert.NotEqual(t, base, ContentHash(date(2024, 3, 10), dec("1"), "d", "c", "i2", "r"))
	assert.NotEqual(t, base, ContentHash(date(2024, 3, 10), dec("1"), "d", "c", "i", "r2"))
}
