package treasure

import (
	"github.com/heirloom-one/heirloom"
	"github.com/heirloom-one/heirloom/coin"
	"github.com/heirloom-one/heirloom/errors"
	"github.com/heirloom-one/heirloom/orm"
)

// BucketName is where we store the treasures
const BucketName = "trsr"

// Condition is the account that holds the value of one deposit. No key
// can ever sign for it, only the claim handler moves value out.
func Condition(id []byte) heirloom.Condition {
	return heirloom.NewCondition("trsr", "seq", id)
}

// Treasure is a single time-locked deposit.
type Treasure struct {
	Metadata    *heirloom.Metadata
	Depositor   heirloom.Address
	Beneficiary heirloom.Address
	// Amount is the remaining claimable value, after the deposit fee.
	// It is zeroed when the deposit is claimed.
	Amount     coin.Amount
	UnlockTime heirloom.UnixTime
	Claimed    bool
}

var _ orm.CloneableData = (*Treasure)(nil)

// Validate ensures the treasure can be persisted.
func (t *Treasure) Validate() error {
	if err := t.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := t.Depositor.Validate(); err != nil {
		return errors.Wrap(err, "depositor")
	}
	if err := t.Beneficiary.Validate(); err != nil {
		return errors.Wrap(ErrInvalidBeneficiary, "beneficiary")
	}
	if err := t.Amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if t.UnlockTime.IsZero() {
		return errors.Wrap(errors.ErrInput, "unlock time is required")
	}
	return t.UnlockTime.Validate()
}

// Copy makes a new treasure with the same content.
func (t *Treasure) Copy() orm.CloneableData {
	return &Treasure{
		Metadata:    t.Metadata.Copy(),
		Depositor:   append(heirloom.Address(nil), t.Depositor...),
		Beneficiary: append(heirloom.Address(nil), t.Beneficiary...),
		Amount:      t.Amount,
		UnlockTime:  t.UnlockTime,
		Claimed:     t.Claimed,
	}
}

// Marshal serializes the treasure.
func (t *Treasure) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(t)
}

// Unmarshal loads a serialized treasure.
func (t *Treasure) Unmarshal(bz []byte) error {
	return cdc.UnmarshalBinaryBare(bz, t)
}

// NewTreasureObj wraps a treasure with its storage key.
func NewTreasureObj(id []byte, t *Treasure) orm.Object {
	return orm.NewSimpleObj(id, t)
}

// AsTreasure extracts the model from a bucket object, if present.
func AsTreasure(obj orm.Object) *Treasure {
	if obj == nil || obj.Value() == nil {
		return nil
	}
	return obj.Value().(*Treasure)
}

func toTreasure(obj orm.Object) (*Treasure, error) {
	if obj == nil {
		return nil, errors.Wrap(errors.ErrHuman, "cannot take index of nil")
	}
	t, ok := obj.Value().(*Treasure)
	if !ok {
		return nil, errors.Wrap(errors.ErrHuman, "can only take index of Treasure")
	}
	return t, nil
}

func idxDepositor(obj orm.Object) ([]byte, error) {
	t, err := toTreasure(obj)
	if err != nil {
		return nil, err
	}
	return t.Depositor, nil
}

func idxBeneficiary(obj orm.Object) ([]byte, error) {
	t, err := toTreasure(obj)
	if err != nil {
		return nil, err
	}
	return t.Beneficiary, nil
}

// Bucket is a type-safe wrapper around orm.Bucket
type Bucket struct {
	orm.Bucket
	idSeq orm.Sequence
}

// NewBucket initializes a treasure.Bucket with default name and
// depositor and beneficiary indexes.
func NewBucket() Bucket {
	b := orm.NewBucket(BucketName, NewTreasureObj(nil, &Treasure{})).
		WithIndex("depositor", idxDepositor, false).
		WithIndex("beneficiary", idxBeneficiary, false)
	return Bucket{
		Bucket: b,
		idSeq:  b.Sequence(orm.SeqID),
	}
}

// Create assigns the next id to the treasure and saves it. The first
// deposit ever created gets id 0.
func (b Bucket) Create(db heirloom.KVStore, t *Treasure) (orm.Object, error) {
	key, err := b.idSeq.NextVal(db)
	if err != nil {
		return nil, err
	}
	obj := NewTreasureObj(key, t)
	return obj, b.Bucket.Save(db, obj)
}

// Save enforces the proper type
func (b Bucket) Save(db heirloom.KVStore, obj orm.Object) error {
	if _, ok := obj.Value().(*Treasure); !ok {
		return errors.Wrapf(errors.ErrType, "invalid type: %T", obj.Value())
	}
	return b.Bucket.Save(db, obj)
}
