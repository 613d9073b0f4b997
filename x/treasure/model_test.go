package treasure

import (
	"testing"

	"github.com/heirloom-one/heirloom"
	"github.com/heirloom-one/heirloom/coin"
	"github.com/heirloom-one/heirloom/errors"
	"github.com/heirloom-one/heirloom/heirtest"
	"github.com/heirloom-one/heirloom/heirtest/assert"
	"github.com/heirloom-one/heirloom/store"
	"github.com/heirloom-one/heirloom/x"
)

func TestTreasureValidate(t *testing.T) {
	var (
		alice = heirtest.NewCondition().Address()
		bob   = heirtest.NewCondition().Address()
	)

	cases := map[string]struct {
		treasure *Treasure
		wantErr  *errors.Error
	}{
		"valid": {
			treasure: &Treasure{
				Metadata:    &heirloom.Metadata{Schema: 1},
				Depositor:   alice,
				Beneficiary: bob,
				Amount:      100,
				UnlockTime:  12345,
			},
		},
		"claimed with no value left": {
			treasure: &Treasure{
				Metadata:    &heirloom.Metadata{Schema: 1},
				Depositor:   alice,
				Beneficiary: bob,
				Amount:      0,
				UnlockTime:  12345,
				Claimed:     true,
			},
		},
		"missing metadata": {
			treasure: &Treasure{
				Depositor:   alice,
				Beneficiary: bob,
				Amount:      100,
				UnlockTime:  12345,
			},
			wantErr: errors.ErrMsg,
		},
		"missing depositor": {
			treasure: &Treasure{
				Metadata:    &heirloom.Metadata{Schema: 1},
				Beneficiary: bob,
				Amount:      100,
				UnlockTime:  12345,
			},
			wantErr: errors.ErrInput,
		},
		"invalid beneficiary": {
			treasure: &Treasure{
				Metadata:    &heirloom.Metadata{Schema: 1},
				Depositor:   alice,
				Beneficiary: heirloom.Address("too short"),
				Amount:      100,
				UnlockTime:  12345,
			},
			wantErr: ErrInvalidBeneficiary,
		},
		"negative amount": {
			treasure: &Treasure{
				Metadata:    &heirloom.Metadata{Schema: 1},
				Depositor:   alice,
				Beneficiary: bob,
				Amount:      -4,
				UnlockTime:  12345,
			},
			wantErr: errors.ErrAmount,
		},
		"missing unlock time": {
			treasure: &Treasure{
				Metadata:    &heirloom.Metadata{Schema: 1},
				Depositor:   alice,
				Beneficiary: bob,
				Amount:      100,
			},
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.treasure.Validate()
			if tc.wantErr != nil {
				assert.IsErr(t, tc.wantErr, err)
			} else {
				assert.Nil(t, err)
			}
		})
	}
}

func TestTreasureSerialization(t *testing.T) {
	settled := &Treasure{
		Metadata:    &heirloom.Metadata{Schema: 1},
		Depositor:   heirtest.NewCondition().Address(),
		Beneficiary: heirtest.NewCondition().Address(),
		Amount:      0,
		UnlockTime:  12345,
		Claimed:     true,
	}

	// A settled record must keep its claimed state across reloads.
	var loaded Treasure
	x.MustUnmarshal(&loaded, x.MustMarshalValid(settled))
	assert.Equal(t, true, loaded.Claimed)
	assert.Equal(t, coin.Amount(0), loaded.Amount)
	assert.Equal(t, settled.Beneficiary, loaded.Beneficiary)
	assert.Equal(t, settled.UnlockTime, loaded.UnlockTime)
}

func TestBucketCreateAssignsSequentialIDs(t *testing.T) {
	db := store.MemStore()
	bucket := NewBucket()

	for i := uint64(0); i < 3; i++ {
		obj, err := bucket.Create(db, &Treasure{
			Metadata:    &heirloom.Metadata{Schema: 1},
			Depositor:   heirtest.NewCondition().Address(),
			Beneficiary: heirtest.NewCondition().Address(),
			Amount:      10,
			UnlockTime:  12345,
		})
		assert.Nil(t, err)
		assert.Equal(t, heirtest.SequenceID(i), obj.Key())
	}
}

func TestBucketBeneficiaryIndex(t *testing.T) {
	db := store.MemStore()
	bucket := NewBucket()

	var (
		alice = heirtest.NewCondition().Address()
		bob   = heirtest.NewCondition().Address()
		carol = heirtest.NewCondition().Address()
	)

	for _, beneficiary := range []heirloom.Address{bob, carol, bob} {
		_, err := bucket.Create(db, &Treasure{
			Metadata:    &heirloom.Metadata{Schema: 1},
			Depositor:   alice,
			Beneficiary: beneficiary,
			Amount:      10,
			UnlockTime:  12345,
		})
		assert.Nil(t, err)
	}

	objs, err := bucket.GetIndexed(db, "beneficiary", bob)
	assert.Nil(t, err)
	assert.Equal(t, 2, len(objs))
	assert.Equal(t, heirtest.SequenceID(0), objs[0].Key())
	assert.Equal(t, heirtest.SequenceID(2), objs[1].Key())

	objs, err = bucket.GetIndexed(db, "depositor", alice)
	assert.Nil(t, err)
	assert.Equal(t, 3, len(objs))
}
