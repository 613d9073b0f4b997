package funds

import (
	"github.com/heirloom-one/heirloom/errors"
)

var (
	// ErrInsufficientFunds is returned when the source wallet does not
	// hold enough value to complete the transfer.
	ErrInsufficientFunds = errors.Register(1150, "insufficient funds")

	// ErrEmptyWallet is returned when the source wallet does not exist.
	ErrEmptyWallet = errors.Register(1151, "empty wallet")
)
