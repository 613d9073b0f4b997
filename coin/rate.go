package coin

import (
	"github.com/heirloom-one/heirloom/errors"
)

const (
	// RateUnit is the denominator of all rates. A rate is always
	// expressed in basis points.
	RateUnit = 10000

	// MaxRate is the highest acceptable rate, meaning the whole value.
	MaxRate Rate = RateUnit
)

// Rate is a fraction expressed in basis points, so a rate of 25 means
// 25/10000 of a value.
type Rate uint32

// Validate returns an error if the rate exceeds the whole value.
func (r Rate) Validate() error {
	if r > MaxRate {
		return errors.Wrapf(errors.ErrAmount, "rate must not be greater than %d", RateUnit)
	}
	return nil
}

// IsZero returns true for a rate that takes no cut.
func (r Rate) IsZero() bool {
	return r == 0
}

// Apply returns the part of given amount that the rate describes. The result
// is rounded down, so the remainder of a floor division is always left with
// the amount owner. Computation is split into a whole and a remainder part
// so it cannot overflow for any valid amount.
func (r Rate) Apply(a Amount) Amount {
	whole := (int64(a) / RateUnit) * int64(r)
	rest := ((int64(a) % RateUnit) * int64(r)) / RateUnit
	return Amount(whole + rest)
}
