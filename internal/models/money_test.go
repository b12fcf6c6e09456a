package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney_DefaultsCurrency(t *testing.T) {
	m := NewMoney(decimal.NewFromInt(100), "")
	assert.Equal(t, CurrencyINR, m.Currency)

	m = NewMoney(decimal.NewFromInt(100), "USD")
	assert.Equal(t, "USD", m.Currency)
}

func TestINRFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "whole amount", input: "1000", want: "1000.00"},
		{name: "two decimal places", input: "1234.56", want: "1234.56"},
		{name: "zero", input: "0", want: "0.00"},
		{name: "negative", input: "-50.25", want: "-50.25"},
		{name: "not a number", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := INRFromString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Amount.StringFixed(2))
			assert.Equal(t, CurrencyINR, m.Currency)
		})
	}
}

func TestMoney_MinorUnits(t *testing.T) {
	tests := []struct {
		name  string
		minor int64
		want  string
	}{
		{name: "whole rupees", minor: 100000, want: "1000.00"},
		{name: "with paise", minor: 123456, want: "1234.56"},
		{name: "single paisa", minor: 1, want: "0.01"},
		{name: "zero", minor: 0, want: "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := MoneyFromMinorUnits(tt.minor, CurrencyINR)
			assert.Equal(t, tt.want, m.Amount.StringFixed(2))
			assert.Equal(t, tt.minor, m.MinorUnits())
		})
	}
}

func TestMoney_AddSub(t *testing.T) {
	a := INR(decimal.RequireFromString("100.10"))
	b := INR(decimal.RequireFromString("0.02"))

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, "100.12", sum.Amount.StringFixed(2))

	diff, err := a.Sub(b)
	require.NoError(t, err)
	assert.Equal(t, "100.08", diff.Amount.StringFixed(2))
}

func TestMoney_ExactDecimalAddition(t *testing.T) {
	// 0.1 + 0.2 must be exactly 0.3, which float64 cannot represent
	a := INR(decimal.RequireFromString("0.1"))
	b := INR(decimal.RequireFromString("0.2"))

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.True(t, sum.Amount.Equal(decimal.RequireFromString("0.3")))
}

func TestMoney_CurrencyMismatch(t *testing.T) {
	inr := INR(decimal.NewFromInt(100))
	usd := NewMoney(decimal.NewFromInt(100), "USD")

	_, err := inr.Add(usd)
	assert.ErrorIs(t, err, ErrCurrencyMismatch)

	_, err = inr.Sub(usd)
	assert.ErrorIs(t, err, ErrCurrencyMismatch)

	_, err = inr.Cmp(usd)
	assert.ErrorIs(t, err, ErrCurrencyMismatch)
}

func TestMoney_MulRate_BankersRounding(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		rate   string
		want   string
	}{
		{name: "round half to even down", amount: "100.25", rate: "0.01", want: "1.00"},
		{name: "round half to even up", amount: "100.75", rate: "0.01", want: "1.01"},
		{name: "no rounding needed", amount: "1000.00", rate: "0.05", want: "50.00"},
		{name: "monthly interest", amount: "500000", rate: "0.0104166667", want: "5208.33"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := INR(decimal.RequireFromString(tt.amount))
			got := m.MulRate(decimal.RequireFromString(tt.rate))
			assert.Equal(t, tt.want, got.Amount.StringFixed(2))
			assert.Equal(t, CurrencyINR, got.Currency)
		})
	}
}

func TestMoney_Comparisons(t *testing.T) {
	small := INR(decimal.NewFromInt(10))
	big := INR(decimal.NewFromInt(20))

	cmp, err := small.Cmp(big)
	require.NoError(t, err)
	assert.Equal(t, -1, cmp)

	cmp, err = big.Cmp(small)
	require.NoError(t, err)
	assert.Equal(t, 1, cmp)

	cmp, err = small.Cmp(INR(decimal.NewFromInt(10)))
	require.NoError(t, err)
	assert.Equal(t, 0, cmp)

	assert.True(t, small.Equal(INR(decimal.RequireFromString("10.00"))))
	assert.False(t, small.Equal(big))
	assert.False(t, small.Equal(NewMoney(decimal.NewFromInt(10), "USD")))
}

func TestMoney_SignPredicates(t *testing.T) {
	assert.True(t, INR(decimal.NewFromInt(5)).IsPositive())
	assert.True(t, INR(decimal.NewFromInt(-5)).IsNegative())
	assert.True(t, INR(decimal.Zero).IsZero())
	assert.False(t, INR(decimal.Zero).IsPositive())
	assert.False(t, INR(decimal.Zero).IsNegative())
}

func TestMoney_String(t *testing.T) {
	m := INR(decimal.RequireFromString("1234.5"))
	assert.Equal(t, "1234.50 INR", m.String())
}
