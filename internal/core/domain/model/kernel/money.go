package kernel

import (
	"fmt"

	"tendering/internal/pkg/errs"
)

// ErrMoneyIsNotConstructed indicates that a Money value was not created via NewMoney.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("Money must be created via NewMoney")

// Money is a value object representing a bid price. The engine treats the
// price as an opaque number supplied by the caller: no arithmetic, rate or
// currency conversion happens here.
//
// Amount is expressed in minor units (e.g. cents) to avoid floating point.
// Currency is a three-letter code; the engine does not validate it against
// ISO 4217, only its shape.
//
// Money is immutable. The zero value is invalid and fails Validate.
//
// Example:
//
//	price, err := kernel.NewMoney(125000, "EUR") // 1250.00 EUR
//	if err != nil {
//	    return err
//	}
type Money struct {
	amount   int64
	currency string
}

// NewMoney creates a Money value. Amount must be positive and currency must
// be exactly three letters.
func NewMoney(amount int64, currency string) (Money, error) {
	if amount <= 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d is not greater than 0", amount))
	}

	if len(currency) != 3 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("currency",
			fmt.Errorf("%q is not a three-letter currency code", currency))
	}

	for _, r := range currency {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return Money{}, errs.NewValueIsInvalidErrorWithCause("currency",
				fmt.Errorf("%q is not a three-letter currency code", currency))
		}
	}

	return Money{amount: amount, currency: currency}, nil
}

// Amount returns the price in minor units.
func (m Money) Amount() int64 {
	return m.amount
}

// Currency returns the three-letter currency code.
func (m Money) Currency() string {
	return m.currency
}

// IsEqual compares two Money values by amount and currency.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount && m.currency == other.currency
}

// String returns the price as "<amount> <currency>", amount in minor units.
func (m Money) String() string {
	return fmt.Sprintf("%d %s", m.amount, m.currency)
}

// Validate checks that the Money value was properly constructed.
func (m Money) Validate() error {
	if m.amount == 0 && m.currency == "" {
		return ErrMoneyIsNotConstructed
	}
	return nil
}
