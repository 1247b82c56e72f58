package kernel

import (
	"fmt"
	"math"

	"github.com/muhammadsaifullahasif/Inventory-Management-System-Devlinkx-sub001/internal/pkg/errs"
)

// ErrMoneyIsNotConstructed is returned when validating a zero-value Money.
// Money must be created via NewMoney or MoneyFromMajorUnits.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"Money must be created via NewMoney or MoneyFromMajorUnits")

// ErrCurrencyMismatch is returned by arithmetic operations on two Money values
// carrying different currencies. An order holds exactly one currency, so a
// mismatch always indicates a caller bug rather than a recoverable condition.
var ErrCurrencyMismatch = errs.NewValueIsInvalidError("currency mismatch")

// Money is a value object representing an exact monetary amount in a single
// currency. Amounts are stored in minor units (cents) so that refund
// arithmetic never suffers floating-point drift: the refund invariant
// 0 <= total_refunded <= total is checked with integer comparisons only.
//
// Money is immutable; arithmetic methods return new values.
//
// Example:
//
//	total, _ := kernel.NewMoney(20000, "USD")        // 200.00 USD
//	part, _ := kernel.MoneyFromMajorUnits(75, "USD") // 75.00 USD
//	rest, _ := total.Sub(part)                       // 125.00 USD
type Money struct {
	amount   int64
	currency string
}

// NewMoney creates a Money value from an amount in minor units and an ISO 4217
// currency code. The amount must be non-negative and the currency must be a
// three-letter uppercase code.
func NewMoney(amount int64, currency string) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", amount, 0, int64(math.MaxInt64))
	}
	if err := validateCurrency(currency); err != nil {
		return Money{}, err
	}

	return Money{amount: amount, currency: currency}, nil
}

// MoneyFromMajorUnits creates a Money value from a decimal amount in major
// units (e.g. 75.50 for 75 units and 50 cents), rounding to the nearest cent.
// This is the conversion used at the API boundary where amounts arrive as
// decimals.
func MoneyFromMajorUnits(value float64, currency string) (Money, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Money{}, errs.NewValueIsInvalidError("amount")
	}
	return NewMoney(int64(math.Round(value*100)), currency)
}

func validateCurrency(currency string) error {
	if currency == "" {
		return errs.NewValueIsRequiredError("currency")
	}
	if len(currency) != 3 {
		return errs.NewValueIsInvalidErrorWithCause("currency",
			fmt.Errorf("%q is not a three-letter ISO code", currency))
	}
	for _, r := range currency {
		if r < 'A' || r > 'Z' {
			return errs.NewValueIsInvalidErrorWithCause("currency",
				fmt.Errorf("%q is not a three-letter ISO code", currency))
		}
	}
	return nil
}

// Amount returns the amount in minor units.
func (m Money) Amount() int64 {
	return m.amount
}

// Currency returns the ISO 4217 currency code.
func (m Money) Currency() string {
	return m.currency
}

// MajorUnits returns the amount as a decimal in major units.
// Intended for display and API responses only, never for arithmetic.
func (m Money) MajorUnits() float64 {
	return float64(m.amount) / 100
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount == 0
}

// IsPositive reports whether the amount is greater than zero.
func (m Money) IsPositive() bool {
	return m.amount > 0
}

// IsEqual reports whether both amount and currency match.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount && m.currency == other.currency
}

// IsGreaterThan reports whether m exceeds other.
// Comparing different currencies always returns false.
func (m Money) IsGreaterThan(other Money) bool {
	return m.currency == other.currency && m.amount > other.amount
}

// Add returns the sum of two Money values.
// Returns ErrCurrencyMismatch if the currencies differ.
func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, ErrCurrencyMismatch
	}
	return Money{amount: m.amount + other.amount, currency: m.currency}, nil
}

// Sub returns the difference of two Money values.
// Returns ErrCurrencyMismatch if the currencies differ and an out-of-range
// error if the result would be negative.
func (m Money) Sub(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, ErrCurrencyMismatch
	}
	if other.amount > m.amount {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", other.amount, 0, m.amount)
	}
	return Money{amount: m.amount - other.amount, currency: m.currency}, nil
}

// String returns the amount formatted in major units with the currency code,
// e.g. "125.00 USD".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d %s", m.amount/100, m.amount%100, m.currency)
}

// Validate checks if the Money value is properly constructed.
// Returns ErrMoneyIsNotConstructed for a zero value.
func (m Money) Validate() error {
	if m.currency == "" {
		return ErrMoneyIsNotConstructed
	}
	return nil
}
