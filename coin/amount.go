// Package coin declares the value types used by the ledger. Values are
// kept in the smallest indivisible unit, so all arithmetic is integer
// arithmetic and no rounding ever takes place outside of explicitly
// documented floor divisions.
package coin

import (
	"strconv"

	"github.com/heirloom-one/heirloom/errors"
)

const (
	// MaxAmount is the largest value we accept
	MaxAmount Amount = 999999999999999 // 10^15-1
)

// Amount is a value expressed in the smallest indivisible unit. An amount
// is never negative.
type Amount int64

// NewAmount returns an amount of given value.
func NewAmount(value int64) Amount {
	return Amount(value)
}

// Validate returns an error if the amount is outside of the accepted range.
func (a Amount) Validate() error {
	if a < 0 {
		return errors.Wrap(errors.ErrAmount, "negative value")
	}
	if a > MaxAmount {
		return errors.Wrap(errors.ErrOverflow, "value too large")
	}
	return nil
}

// IsZero returns true for an amount of no value.
func (a Amount) IsZero() bool {
	return a == 0
}

// IsPositive returns true if the amount holds any value.
func (a Amount) IsPositive() bool {
	return a > 0
}

// Add combines two amounts. It returns an error when the result would
// leave the accepted range.
func (a Amount) Add(o Amount) (Amount, error) {
	sum := a + o
	if err := sum.Validate(); err != nil {
		return 0, err
	}
	return sum, nil
}

// Sub removes given value from the amount. It returns an error when the
// result would be negative.
func (a Amount) Sub(o Amount) (Amount, error) {
	diff := a - o
	if err := diff.Validate(); err != nil {
		return 0, err
	}
	return diff, nil
}

// Int64 returns the raw value.
func (a Amount) Int64() int64 {
	return int64(a)
}

// String returns a human readable representation.
func (a Amount) String() string {
	return strconv.FormatInt(int64(a), 10)
}
