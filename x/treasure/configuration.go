package treasure

import (
	"github.com/heirloom-one/heirloom"
	"github.com/heirloom-one/heirloom/coin"
	"github.com/heirloom-one/heirloom/errors"
	"github.com/heirloom-one/heirloom/gconf"
)

// pkgName is the name under which the configuration singleton is stored.
const pkgName = "treasure"

// Fee policies. The zero value is treated as FeeOnStoreAndClaim so that
// a configuration patch can leave the policy untouched.
const (
	// FeeOnStore charges the fee only when a deposit is created.
	FeeOnStore uint32 = 1
	// FeeOnStoreAndClaim charges the fee both when a deposit is created
	// and when it is claimed.
	FeeOnStoreAndClaim uint32 = 2
)

// Configuration is the treasure extension configuration singleton.
type Configuration struct {
	Metadata *heirloom.Metadata
	// Owner can update this configuration and withdraw collected fees.
	Owner heirloom.Address
	// CollectorAddress is the wallet that accumulates all charged fees.
	CollectorAddress heirloom.Address
	// FeeRate is charged on every deposit and claim, in basis points.
	FeeRate coin.Rate
	// FeePolicy selects which operations the fee applies to.
	FeePolicy uint32
}

var _ gconf.OwnedConfig = (*Configuration)(nil)

// GetOwner returns the address allowed to modify this configuration.
func (c *Configuration) GetOwner() heirloom.Address {
	return c.Owner
}

// ChargeOnClaim returns true when the fee policy applies the fee to
// claim operations as well.
func (c *Configuration) ChargeOnClaim() bool {
	return c.FeePolicy != FeeOnStore
}

// Validate ensures the configuration can be persisted.
func (c *Configuration) Validate() error {
	if err := c.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := c.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	if err := c.CollectorAddress.Validate(); err != nil {
		return errors.Wrap(err, "collector address")
	}
	if err := c.FeeRate.Validate(); err != nil {
		return errors.Wrapf(ErrFeeRate, "%d basis points", c.FeeRate)
	}
	switch c.FeePolicy {
	case 0, FeeOnStore, FeeOnStoreAndClaim:
		return nil
	default:
		return errors.Wrapf(errors.ErrState, "unknown fee policy %d", c.FeePolicy)
	}
}

// Marshal serializes the configuration.
func (c *Configuration) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(c)
}

// Unmarshal loads a serialized configuration.
func (c *Configuration) Unmarshal(bz []byte) error {
	return cdc.UnmarshalBinaryBare(bz, c)
}

func loadConf(db gconf.ReadStore) (*Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, pkgName, &conf); err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}
	return &conf, nil
}
