package funds

import (
	"github.com/heirloom-one/heirloom"
	"github.com/heirloom-one/heirloom/coin"
	"github.com/heirloom-one/heirloom/errors"
)

// Ensure we implement the Msg interface
var _ heirloom.Msg = (*SendMsg)(nil)

const (
	sendTxCost int64 = 100

	maxMemoSize int = 128
)

// SendMsg requests a value transfer between two wallets.
type SendMsg struct {
	Metadata    *heirloom.Metadata
	Source      heirloom.Address
	Destination heirloom.Address
	Amount      coin.Amount
	Memo        string
}

// Path returns the routing path for this message
func (SendMsg) Path() string {
	return "funds/send"
}

// Validate makes sure that this is sensible
func (s *SendMsg) Validate() error {
	if err := s.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if !s.Amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive transfer: %s", s.Amount)
	}
	if err := s.Amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if err := s.Source.Validate(); err != nil {
		return errors.Wrap(err, "source")
	}
	if err := s.Destination.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	if len(s.Memo) > maxMemoSize {
		return errors.Wrap(errors.ErrState, "memo too long")
	}
	return nil
}

// Marshal serializes the message.
func (s *SendMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(s)
}

// Unmarshal loads a serialized message.
func (s *SendMsg) Unmarshal(bz []byte) error {
	return cdc.UnmarshalBinaryBare(bz, s)
}
