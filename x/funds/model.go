package funds

import (
	"github.com/heirloom-one/heirloom"
	"github.com/heirloom-one/heirloom/coin"
	"github.com/heirloom-one/heirloom/errors"
	"github.com/heirloom-one/heirloom/orm"
)

// BucketName is where we store the balances
const BucketName = "funds"

//---- Balance

// Balance is the persistent value of a wallet.
type Balance struct {
	Metadata *heirloom.Metadata
	Amount   coin.Amount
}

// Validate ensures the balance can be persisted.
func (b *Balance) Validate() error {
	if err := b.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	return b.Amount.Validate()
}

// Copy makes a new balance with the same amount
func (b *Balance) Copy() *Balance {
	return &Balance{
		Metadata: b.Metadata.Copy(),
		Amount:   b.Amount,
	}
}

// Marshal serializes the balance.
func (b *Balance) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(b)
}

// Unmarshal loads a serialized balance.
func (b *Balance) Unmarshal(bz []byte) error {
	return cdc.UnmarshalBinaryBare(bz, b)
}

//--- Wallet (Balance object, balance + key)

// Wallet is the actual object that we want to pass around
// in our code. It contains an amount of value, as well as the
// address. It is connected to the Bucket to easily manipulate
// state.
//
// Wallet is a type-safe wrapper around orm.SimpleObj
type Wallet struct {
	key   []byte
	value *Balance
}

var _ orm.Object = (*Wallet)(nil)

// NewWallet creates an empty wallet with this address
func NewWallet(key heirloom.Address) *Wallet {
	return &Wallet{
		key: key,
		value: &Balance{
			Metadata: &heirloom.Metadata{Schema: 1},
		},
	}
}

// WalletWith creates a wallet holding the given amount.
func WalletWith(key heirloom.Address, amount coin.Amount) (*Wallet, error) {
	w := NewWallet(key)
	if err := w.Add(amount); err != nil {
		return nil, err
	}
	return w, nil
}

// Value gets the value stored in the object
func (w Wallet) Value() heirloom.Persistent {
	return w.value
}

// Key returns the key to store the object under
func (w Wallet) Key() []byte {
	return w.key
}

// Validate makes sure the fields aren't empty.
// And delegates to the value validator if present
func (w Wallet) Validate() error {
	if err := heirloom.Address(w.key).Validate(); err != nil {
		return errors.Wrap(err, "key")
	}
	return w.value.Validate()
}

// SetKey may be used to update a wallet key
func (w *Wallet) SetKey(key []byte) {
	w.key = key
}

// Clone will make a copy of this object
func (w *Wallet) Clone() orm.Object {
	res := &Wallet{
		value: w.value.Copy(),
	}
	// only copy key if non-nil
	if len(w.key) > 0 {
		res.key = append([]byte(nil), w.key...)
	}
	return res
}

// Amount returns the value stored in the wallet
func (w Wallet) Amount() coin.Amount {
	return w.value.Amount
}

// Add modifies the wallet to add given amount
func (w *Wallet) Add(a coin.Amount) error {
	sum, err := w.value.Amount.Add(a)
	if err != nil {
		return err
	}
	w.value.Amount = sum
	return nil
}

// Subtract modifies the wallet to remove given amount
func (w *Wallet) Subtract(a coin.Amount) error {
	diff, err := w.value.Amount.Sub(a)
	if err != nil {
		return err
	}
	w.value.Amount = diff
	return nil
}

//--- funds.Bucket - type-safe bucket

// Bucket is a type-safe wrapper around orm.Bucket
type Bucket struct {
	orm.Bucket
}

// NewBucket initializes a funds.Bucket with default name
func NewBucket() Bucket {
	return Bucket{
		Bucket: orm.NewBucket(BucketName, NewWallet(nil)),
	}
}

func (b Bucket) Get(db heirloom.ReadOnlyKVStore, key heirloom.Address) (*Wallet, error) {
	obj, err := b.Bucket.Get(db, key)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, nil
	}
	return obj.(*Wallet), nil
}

func (b Bucket) Save(db heirloom.KVStore, value *Wallet) error {
	return b.Bucket.Save(db, value)
}

func (b Bucket) GetOrCreate(db heirloom.KVStore, key heirloom.Address) (*Wallet, error) {
	wallet, err := b.Get(db, key)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		wallet = NewWallet(key)
	}
	return wallet, nil
}
