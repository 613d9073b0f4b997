package treasure

import (
	"github.com/heirloom-one/heirloom"
	"github.com/heirloom-one/heirloom/coin"
	"github.com/heirloom-one/heirloom/errors"
)

// Ensure we implement the Msg interface
var (
	_ heirloom.Msg = (*StoreMsg)(nil)
	_ heirloom.Msg = (*ClaimMsg)(nil)
	_ heirloom.Msg = (*WithdrawFeesMsg)(nil)
	_ heirloom.Msg = (*UpdateConfigurationMsg)(nil)
)

const maxMemoSize int = 128

// StoreMsg locks value for a beneficiary until the unlock time.
type StoreMsg struct {
	Metadata *heirloom.Metadata
	// Depositor is the source of the value. If unset it defaults to the
	// main signer of the transaction.
	Depositor   heirloom.Address
	Beneficiary heirloom.Address
	Amount      coin.Amount
	UnlockTime  heirloom.UnixTime
	Memo        string
}

// Path returns the routing path for this message
func (StoreMsg) Path() string {
	return "treasure/store"
}

// Validate makes sure that this is sensible
func (m *StoreMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if m.Depositor != nil {
		if err := m.Depositor.Validate(); err != nil {
			return errors.Wrap(err, "depositor")
		}
	}
	if err := m.Beneficiary.Validate(); err != nil {
		return errors.Wrap(ErrInvalidBeneficiary, "beneficiary")
	}
	if !m.Amount.IsPositive() {
		return errors.Wrapf(ErrZeroValue, "deposited: %s", m.Amount)
	}
	if err := m.Amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if m.UnlockTime.IsZero() {
		return errors.Wrap(errors.ErrInput, "unlock time is required")
	}
	if err := m.UnlockTime.Validate(); err != nil {
		return errors.Wrap(err, "unlock time")
	}
	if len(m.Memo) > maxMemoSize {
		return errors.Wrap(errors.ErrState, "memo too long")
	}
	return nil
}

// Marshal serializes the message.
func (m *StoreMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

// Unmarshal loads a serialized message.
func (m *StoreMsg) Unmarshal(bz []byte) error {
	return cdc.UnmarshalBinaryBare(bz, m)
}

// ClaimMsg releases an unlocked deposit to its beneficiary.
type ClaimMsg struct {
	Metadata   *heirloom.Metadata
	TreasureID []byte
}

// Path returns the routing path for this message
func (ClaimMsg) Path() string {
	return "treasure/claim"
}

// Validate makes sure that this is sensible
func (m *ClaimMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	return validateTreasureID(m.TreasureID)
}

// Marshal serializes the message.
func (m *ClaimMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

// Unmarshal loads a serialized message.
func (m *ClaimMsg) Unmarshal(bz []byte) error {
	return cdc.UnmarshalBinaryBare(bz, m)
}

// WithdrawFeesMsg drains the fee collector wallet to the recipient.
type WithdrawFeesMsg struct {
	Metadata  *heirloom.Metadata
	Recipient heirloom.Address
}

// Path returns the routing path for this message
func (WithdrawFeesMsg) Path() string {
	return "treasure/withdraw_fees"
}

// Validate makes sure that this is sensible
func (m *WithdrawFeesMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	return errors.Wrap(m.Recipient.Validate(), "recipient")
}

// Marshal serializes the message.
func (m *WithdrawFeesMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

// Unmarshal loads a serialized message.
func (m *WithdrawFeesMsg) Unmarshal(bz []byte) error {
	return cdc.UnmarshalBinaryBare(bz, m)
}

// UpdateConfigurationMsg patches the treasure configuration. Zero
// valued patch fields leave the current configuration untouched.
type UpdateConfigurationMsg struct {
	Metadata *heirloom.Metadata
	Patch    *Configuration
}

// Path returns the routing path for this message
func (UpdateConfigurationMsg) Path() string {
	return "treasure/update_configuration"
}

// Validate makes sure that this is sensible
func (m *UpdateConfigurationMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if m.Patch == nil {
		return errors.Wrap(errors.ErrEmpty, "patch")
	}
	if err := m.Patch.FeeRate.Validate(); err != nil {
		return errors.Wrapf(ErrFeeRate, "%d basis points", m.Patch.FeeRate)
	}
	return nil
}

// Marshal serializes the message.
func (m *UpdateConfigurationMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

// Unmarshal loads a serialized message.
func (m *UpdateConfigurationMsg) Unmarshal(bz []byte) error {
	return cdc.UnmarshalBinaryBare(bz, m)
}

// validateTreasureID ensures that the id is the output of the treasure
// id sequence.
func validateTreasureID(id []byte) error {
	if len(id) != 8 {
		return errors.Wrapf(errors.ErrInput, "treasure id: %X", id)
	}
	return nil
}
