package models

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

const CurrencyINR = "INR"

var ErrCurrencyMismatch = errors.New("currency mismatch")

// Money is a fixed-point decimal amount tagged with its currency. Amounts are
// never represented as binary floating point; arithmetic stays exact and rate
// application rounds with banker's rounding at two decimal places.
type Money struct {
	Amount   decimal.Decimal
	Currency string
}

// NewMoney creates a Money value in the given currency.
func NewMoney(amount decimal.Decimal, currency string) Money {
	if currency == "" {
		currency = CurrencyINR
	}
	return Money{Amount: amount, Currency: currency}
}

// INR creates a Money value in the bank's home currency.
func INR(amount decimal.Decimal) Money {
	return Money{Amount: amount, Currency: CurrencyINR}
}

// INRFromString parses a decimal string into an INR Money value.
func INRFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return INR(d), nil
}

// MoneyFromMinorUnits builds a Money value from an integer count of minor
// units (paise for INR).
func MoneyFromMinorUnits(minor int64, currency string) Money {
	return NewMoney(decimal.New(minor, -2), currency)
}

// MinorUnits returns the amount as an integer count of minor units.
func (m Money) MinorUnits() int64 {
	return m.Amount.Shift(2).IntPart()
}

// Add returns the sum of two Money values of the same currency.
func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("%w: %s vs %s", ErrCurrencyMismatch, m.Currency, other.Currency)
	}
	return Money{Amount: m.Amount.Add(other.Amount), Currency: m.Currency}, nil
}

// Sub returns the difference of two Money values of the same currency.
func (m Money) Sub(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("%w: %s vs %s", ErrCurrencyMismatch, m.Currency, other.Currency)
	}
	return Money{Amount: m.Amount.Sub(other.Amount), Currency: m.Currency}, nil
}

// MulRate applies a rate to the amount with banker's rounding at two decimal
// places. Used for interest application, where half-to-even keeps cumulative
// drift bounded.
func (m Money) MulRate(rate decimal.Decimal) Money {
	return Money{Amount: m.Amount.Mul(rate).RoundBank(2), Currency: m.Currency}
}

// Cmp compares two Money values of the same currency. It returns -1, 0 or 1.
func (m Money) Cmp(other Money) (int, error) {
	if m.Currency != other.Currency {
		return 0, fmt.Errorf("%w: %s vs %s", ErrCurrencyMismatch, m.Currency, other.Currency)
	}
	return m.Amount.Cmp(other.Amount), nil
}

// Equal reports whether two Money values have the same currency and amount.
func (m Money) Equal(other Money) bool {
	return m.Currency == other.Currency && m.Amount.Equal(other.Amount)
}

// IsPositive returns true for amounts strictly above zero.
func (m Money) IsPositive() bool {
	return m.Amount.IsPositive()
}

// IsNegative returns true for amounts strictly below zero.
func (m Money) IsNegative() bool {
	return m.Amount.IsNegative()
}

// IsZero returns true for a zero amount.
func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

// String renders the amount with two decimal places and the currency code.
func (m Money) String() string {
	return m.Amount.StringFixed(2) + " " + m.Currency
}
