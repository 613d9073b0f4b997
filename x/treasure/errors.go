package treasure

import (
	"github.com/heirloom-one/heirloom/errors"
)

var (
	// ErrInvalidBeneficiary is returned when a deposit names a beneficiary
	// that is not a valid address.
	ErrInvalidBeneficiary = errors.Register(1100, "invalid beneficiary")

	// ErrZeroValue is returned when a deposit carries no value.
	ErrZeroValue = errors.Register(1101, "zero value deposit")

	// ErrUnlockInPast is returned when a deposit declares an unlock time
	// that is not in the future.
	ErrUnlockInPast = errors.Register(1102, "unlock time in the past")

	// ErrNotBeneficiary is returned when someone other than the
	// beneficiary tries to claim a deposit.
	ErrNotBeneficiary = errors.Register(1103, "not the beneficiary")

	// ErrAlreadyClaimed is returned when a deposit was claimed before.
	ErrAlreadyClaimed = errors.Register(1104, "already claimed")

	// ErrNotUnlocked is returned when a deposit is claimed before its
	// unlock time.
	ErrNotUnlocked = errors.Register(1105, "not yet unlocked")

	// ErrNothingToClaim is returned when a deposit holds no claimable
	// value.
	ErrNothingToClaim = errors.Register(1106, "nothing to claim")

	// ErrFeeRate is returned when a fee rate is above 100%.
	ErrFeeRate = errors.Register(1107, "invalid fee rate")
)
