package funds

import (
	"github.com/heirloom-one/heirloom"
	"github.com/heirloom-one/heirloom/coin"
	"github.com/heirloom-one/heirloom/errors"
)

// Controller is the functionality needed by other extensions to move value
// around without exposing the wallet storage layout.
type Controller interface {
	// MoveFunds transfers the amount between the two wallets.
	MoveFunds(db heirloom.KVStore, src, dest heirloom.Address, amount coin.Amount) error

	// Balance returns the amount held by given address. Missing wallet
	// is reported as zero.
	Balance(db heirloom.ReadOnlyKVStore, addr heirloom.Address) (coin.Amount, error)
}

// WalletController implements the Controller interface on top of the wallet
// bucket.
type WalletController struct {
	bucket Bucket
}

var _ Controller = WalletController{}

// NewController returns a controller using the given bucket.
func NewController(bucket Bucket) WalletController {
	return WalletController{bucket: bucket}
}

// MoveFunds moves the given amount from src to dest.
// If src doesn't exist, or doesn't have sufficient value, it fails.
func (c WalletController) MoveFunds(db heirloom.KVStore, src, dest heirloom.Address, amount coin.Amount) error {
	if !amount.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "non-positive transfer")
	}

	sender, err := c.bucket.Get(db, src)
	if err != nil {
		return err
	}
	if sender == nil {
		return errors.Wrapf(ErrEmptyWallet, "address %s", src)
	}
	if sender.Amount() < amount {
		return errors.Wrapf(ErrInsufficientFunds, "%s has only %s", src, sender.Amount())
	}

	// A transfer to the very same wallet moves nothing. Without this
	// guard the wallet would be loaded twice and the second copy would
	// overwrite the subtraction on save.
	if src.Equals(dest) {
		return nil
	}

	recipient, err := c.bucket.GetOrCreate(db, dest)
	if err != nil {
		return err
	}
	if err := sender.Subtract(amount); err != nil {
		return err
	}
	if err := recipient.Add(amount); err != nil {
		return err
	}

	// save them and return
	if err := c.bucket.Save(db, sender); err != nil {
		return err
	}
	return c.bucket.Save(db, recipient)
}

// Balance returns the amount held by given address.
func (c WalletController) Balance(db heirloom.ReadOnlyKVStore, addr heirloom.Address) (coin.Amount, error) {
	wallet, err := c.bucket.Get(db, addr)
	if err != nil {
		return 0, err
	}
	if wallet == nil {
		return 0, nil
	}
	return wallet.Amount(), nil
}

// IssueFunds adds the given amount of value to the destination address.
// Fails if it overflows the wallet. Used only during the genesis
// initialization, as it creates value out of nothing.
func (c WalletController) IssueFunds(db heirloom.KVStore, dest heirloom.Address, amount coin.Amount) error {
	recipient, err := c.bucket.GetOrCreate(db, dest)
	if err != nil {
		return err
	}
	if err := recipient.Add(amount); err != nil {
		return err
	}
	return c.bucket.Save(db, recipient)
}
