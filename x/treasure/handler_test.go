package treasure

import (
	"context"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heirloom-one/heirloom"
	"github.com/heirloom-one/heirloom/coin"
	"github.com/heirloom-one/heirloom/errors"
	"github.com/heirloom-one/heirloom/gconf"
	"github.com/heirloom-one/heirloom/heirtest"
	"github.com/heirloom-one/heirloom/store"
	"github.com/heirloom-one/heirloom/x/funds"
)

var blockNow = heirloom.UnixTime(1500000000)

func contextAt(t heirloom.UnixTime) heirloom.Context {
	return heirloom.WithBlockTime(context.Background(), t.Time())
}

func saveConf(t testing.TB, db heirloom.KVStore, conf Configuration) {
	t.Helper()
	if conf.Metadata == nil {
		conf.Metadata = &heirloom.Metadata{Schema: 1}
	}
	require.NoError(t, gconf.Save(db, pkgName, &conf))
}

func TestStoreHandler(t *testing.T) {
	var (
		alice     = heirtest.NewCondition()
		bob       = heirtest.NewCondition()
		owner     = heirtest.NewCondition()
		collector = heirtest.NewCondition().Address()
	)
	meta := &heirloom.Metadata{Schema: 1}

	cases := map[string]struct {
		msg       *StoreMsg
		signer    heirloom.Condition
		funded    coin.Amount
		feeRate   coin.Rate
		wantCheck *errors.Error
		wantErr   *errors.Error
		wantNet   coin.Amount
		wantFee   coin.Amount
	}{
		"no fee": {
			msg: &StoreMsg{
				Metadata:    meta,
				Beneficiary: bob.Address(),
				Amount:      100,
				UnlockTime:  blockNow + 1000,
			},
			signer:  alice,
			funded:  100,
			wantNet: 100,
		},
		"fee charged on deposit": {
			msg: &StoreMsg{
				Metadata:    meta,
				Beneficiary: bob.Address(),
				Amount:      10000,
				UnlockTime:  blockNow + 1000,
			},
			signer:  alice,
			funded:  10000,
			feeRate: 250,
			wantNet: 9750,
			wantFee: 250,
		},
		"the whole deposit taken as fee": {
			msg: &StoreMsg{
				Metadata:    meta,
				Beneficiary: bob.Address(),
				Amount:      100,
				UnlockTime:  blockNow + 1000,
			},
			signer:  alice,
			funded:  100,
			feeRate: coin.MaxRate,
			wantNet: 0,
			wantFee: 100,
		},
		"fee rounds down in favor of the depositor": {
			msg: &StoreMsg{
				Metadata:    meta,
				Beneficiary: bob.Address(),
				Amount:      999,
				UnlockTime:  blockNow + 1000,
			},
			signer:  alice,
			funded:  999,
			feeRate: 100,
			wantNet: 990,
			wantFee: 9,
		},
		"explicit depositor must sign": {
			msg: &StoreMsg{
				Metadata:    meta,
				Depositor:   alice.Address(),
				Beneficiary: bob.Address(),
				Amount:      100,
				UnlockTime:  blockNow + 1000,
			},
			signer:    bob,
			funded:    100,
			wantCheck: errors.ErrUnauthorized,
			wantErr:   errors.ErrUnauthorized,
		},
		"unlock in the past": {
			msg: &StoreMsg{
				Metadata:    meta,
				Beneficiary: bob.Address(),
				Amount:      100,
				UnlockTime:  blockNow - 1,
			},
			signer:    alice,
			funded:    100,
			wantCheck: ErrUnlockInPast,
			wantErr:   ErrUnlockInPast,
		},
		"unlock at the current block time": {
			msg: &StoreMsg{
				Metadata:    meta,
				Beneficiary: bob.Address(),
				Amount:      100,
				UnlockTime:  blockNow,
			},
			signer:    alice,
			funded:    100,
			wantCheck: ErrUnlockInPast,
			wantErr:   ErrUnlockInPast,
		},
		"zero value deposit": {
			msg: &StoreMsg{
				Metadata:    meta,
				Beneficiary: bob.Address(),
				Amount:      0,
				UnlockTime:  blockNow + 1000,
			},
			signer:    alice,
			funded:    100,
			wantCheck: ErrZeroValue,
			wantErr:   ErrZeroValue,
		},
		"insufficient funds": {
			msg: &StoreMsg{
				Metadata:    meta,
				Beneficiary: bob.Address(),
				Amount:      100,
				UnlockTime:  blockNow + 1000,
			},
			signer:  alice,
			funded:  99,
			wantErr: funds.ErrInsufficientFunds,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			control := funds.NewController(funds.NewBucket())
			require.NoError(t, control.IssueFunds(db, alice.Address(), tc.funded))
			saveConf(t, db, Configuration{
				Owner:            owner.Address(),
				CollectorAddress: collector,
				FeeRate:          tc.feeRate,
			})

			auth := &heirtest.Auth{Signer: tc.signer}
			h := StoreHandler{auth, NewBucket(), control}
			tx := &heirtest.Tx{Msg: tc.msg}
			ctx := contextAt(blockNow)

			_, err := h.Check(ctx, db, tx)
			if tc.wantCheck != nil {
				assert.True(t, tc.wantCheck.Is(err), "unexpected check error: %+v", err)
			} else {
				assert.NoError(t, err)
			}

			res, err := h.Deliver(ctx, db, tx)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tc.wantErr.Is(err), "unexpected error: %+v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, heirtest.SequenceID(0), res.Data)

			obj, err := NewBucket().Get(db, res.Data)
			require.NoError(t, err)
			require.NotNil(t, obj)
			treasure := AsTreasure(obj)
			assert.Equal(t, tc.wantNet, treasure.Amount)
			assert.Equal(t, tc.msg.UnlockTime, treasure.UnlockTime)
			assert.False(t, treasure.Claimed)

			locked, err := control.Balance(db, Condition(res.Data).Address())
			require.NoError(t, err)
			assert.Equal(t, tc.wantNet, locked)

			pool, err := control.Balance(db, collector)
			require.NoError(t, err)
			assert.Equal(t, tc.wantFee, pool)

			left, err := control.Balance(db, alice.Address())
			require.NoError(t, err)
			assert.Equal(t, tc.funded-tc.wantNet-tc.wantFee, left)
		})
	}
}

func TestStoreHandlerAssignsZeroBasedIDs(t *testing.T) {
	var (
		alice     = heirtest.NewCondition()
		bob       = heirtest.NewCondition()
		collector = heirtest.NewCondition().Address()
	)

	db := store.MemStore()
	control := funds.NewController(funds.NewBucket())
	require.NoError(t, control.IssueFunds(db, alice.Address(), 1000))
	saveConf(t, db, Configuration{
		Owner:            heirtest.NewCondition().Address(),
		CollectorAddress: collector,
	})

	h := StoreHandler{&heirtest.Auth{Signer: alice}, NewBucket(), control}
	ctx := contextAt(blockNow)

	for i := uint64(0); i < 3; i++ {
		res, err := h.Deliver(ctx, db, &heirtest.Tx{Msg: &StoreMsg{
			Metadata:    &heirloom.Metadata{Schema: 1},
			Beneficiary: bob.Address(),
			Amount:      100,
			UnlockTime:  blockNow + 1000,
		}})
		require.NoError(t, err)
		assert.Equal(t, heirtest.SequenceID(i), res.Data)
	}
}

func TestClaimHandler(t *testing.T) {
	var (
		alice     = heirtest.NewCondition()
		bob       = heirtest.NewCondition()
		owner     = heirtest.NewCondition()
		collector = heirtest.NewCondition().Address()
	)

	var (
		deposited = coin.Amount(10000)
		unlock    = blockNow + 1000
	)

	cases := map[string]struct {
		feeRate    coin.Rate
		feePolicy  uint32
		signer     heirloom.Condition
		claimID    []byte
		claimAt    heirloom.UnixTime
		wantErr    *errors.Error
		wantPayout coin.Amount
		wantPool   coin.Amount
	}{
		"claim after unlock, no fee": {
			signer:     bob,
			claimAt:    unlock + 1,
			wantPayout: 10000,
		},
		"claim at exactly the unlock time": {
			signer:     bob,
			claimAt:    unlock,
			wantPayout: 10000,
		},
		"fee charged on deposit and claim": {
			feeRate:   1000,
			feePolicy: FeeOnStoreAndClaim,
			signer:    bob,
			claimAt:   unlock + 1,
			// 10% of 10000 on deposit, then 10% of the remaining 9000.
			wantPayout: 8100,
			wantPool:   1900,
		},
		"fee charged on deposit only": {
			feeRate:    1000,
			feePolicy:  FeeOnStore,
			signer:     bob,
			claimAt:    unlock + 1,
			wantPayout: 9000,
			wantPool:   1000,
		},
		"not the beneficiary": {
			signer:  alice,
			claimAt: unlock + 1,
			wantErr: ErrNotBeneficiary,
		},
		"before the unlock time": {
			signer:  bob,
			claimAt: unlock - 1,
			wantErr: ErrNotUnlocked,
		},
		"unknown treasure": {
			signer:  bob,
			claimID: heirtest.SequenceID(42),
			claimAt: unlock + 1,
			wantErr: errors.ErrNotFound,
		},
		"deposit fully consumed by the fee": {
			feeRate:   coin.MaxRate,
			feePolicy: FeeOnStore,
			signer:    bob,
			claimAt:   unlock + 1,
			wantErr:   ErrNothingToClaim,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			control := funds.NewController(funds.NewBucket())
			require.NoError(t, control.IssueFunds(db, alice.Address(), deposited))
			saveConf(t, db, Configuration{
				Owner:            owner.Address(),
				CollectorAddress: collector,
				FeeRate:          tc.feeRate,
				FeePolicy:        tc.feePolicy,
			})

			bucket := NewBucket()
			stored, err := StoreHandler{&heirtest.Auth{Signer: alice}, bucket, control}.Deliver(
				contextAt(blockNow), db, &heirtest.Tx{Msg: &StoreMsg{
					Metadata:    &heirloom.Metadata{Schema: 1},
					Beneficiary: bob.Address(),
					Amount:      deposited,
					UnlockTime:  unlock,
				}})
			require.NoError(t, err)

			claimID := tc.claimID
			if claimID == nil {
				claimID = stored.Data
			}

			h := ClaimHandler{&heirtest.Auth{Signer: tc.signer}, bucket, control}
			tx := &heirtest.Tx{Msg: &ClaimMsg{
				Metadata:   &heirloom.Metadata{Schema: 1},
				TreasureID: claimID,
			}}
			res, err := h.Deliver(contextAt(tc.claimAt), db, tx)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tc.wantErr.Is(err), "unexpected error: %+v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, uint64(tc.wantPayout), binary.BigEndian.Uint64(res.Data))

			payout, err := control.Balance(db, bob.Address())
			require.NoError(t, err)
			assert.Equal(t, tc.wantPayout, payout)

			pool, err := control.Balance(db, collector)
			require.NoError(t, err)
			assert.Equal(t, tc.wantPool, pool)

			// Nothing may be created or destroyed, only moved.
			locked, err := control.Balance(db, Condition(claimID).Address())
			require.NoError(t, err)
			assert.Equal(t, coin.Amount(0), locked)
			assert.Equal(t, deposited, payout+pool)

			obj, err := bucket.Get(db, claimID)
			require.NoError(t, err)
			treasure := AsTreasure(obj)
			assert.True(t, treasure.Claimed)
			assert.Equal(t, coin.Amount(0), treasure.Amount)

			// The same treasure cannot be claimed twice.
			_, err = h.Deliver(contextAt(tc.claimAt), db, tx)
			assert.True(t, ErrAlreadyClaimed.Is(err), "unexpected error: %+v", err)
		})
	}
}

func TestWithdrawFeesHandler(t *testing.T) {
	var (
		owner     = heirtest.NewCondition()
		other     = heirtest.NewCondition()
		recipient = heirtest.NewCondition().Address()
		collector = heirtest.NewCondition().Address()
	)

	cases := map[string]struct {
		pool        coin.Amount
		signer      heirloom.Condition
		toCollector bool
		wantErr     *errors.Error
	}{
		"owner drains the pool": {
			pool:   500,
			signer: owner,
		},
		"empty pool is not an error": {
			pool:   0,
			signer: owner,
		},
		"withdrawing to the collector itself must not mint": {
			pool:        500,
			signer:      owner,
			toCollector: true,
		},
		"only the owner may withdraw": {
			pool:    500,
			signer:  other,
			wantErr: errors.ErrUnauthorized,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			control := funds.NewController(funds.NewBucket())
			if tc.pool > 0 {
				require.NoError(t, control.IssueFunds(db, collector, tc.pool))
			}
			saveConf(t, db, Configuration{
				Owner:            owner.Address(),
				CollectorAddress: collector,
			})

			dest := recipient
			if tc.toCollector {
				dest = collector
			}

			h := WithdrawFeesHandler{&heirtest.Auth{Signer: tc.signer}, control}
			tx := &heirtest.Tx{Msg: &WithdrawFeesMsg{
				Metadata:  &heirloom.Metadata{Schema: 1},
				Recipient: dest,
			}}
			_, err := h.Deliver(context.Background(), db, tx)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tc.wantErr.Is(err), "unexpected error: %+v", err)
				return
			}
			require.NoError(t, err)

			got, err := control.Balance(db, dest)
			require.NoError(t, err)
			assert.Equal(t, tc.pool, got)

			pool, err := control.Balance(db, collector)
			require.NoError(t, err)
			wantPool := coin.Amount(0)
			if tc.toCollector {
				wantPool = tc.pool
			}
			assert.Equal(t, wantPool, pool)
		})
	}
}

func TestUpdateConfigurationHandler(t *testing.T) {
	var (
		owner    = heirtest.NewCondition()
		other    = heirtest.NewCondition()
		newOwner = heirtest.NewCondition()
	)

	t.Run("owner can change the fee rate", func(t *testing.T) {
		db := store.MemStore()
		saveConf(t, db, Configuration{
			Owner:            owner.Address(),
			CollectorAddress: heirtest.NewCondition().Address(),
			FeeRate:          100,
		})

		h := NewConfigHandler(&heirtest.Auth{Signer: owner})
		_, err := h.Deliver(context.Background(), db, &heirtest.Tx{Msg: &UpdateConfigurationMsg{
			Metadata: &heirloom.Metadata{Schema: 1},
			Patch:    &Configuration{FeeRate: 250},
		}})
		require.NoError(t, err)

		conf, err := loadConf(db)
		require.NoError(t, err)
		assert.Equal(t, coin.Rate(250), conf.FeeRate)
		// Fields not present in the patch are not modified.
		assert.Equal(t, owner.Address(), conf.Owner)
	})

	t.Run("owner can hand over the configuration", func(t *testing.T) {
		db := store.MemStore()
		saveConf(t, db, Configuration{
			Owner:            owner.Address(),
			CollectorAddress: heirtest.NewCondition().Address(),
		})

		h := NewConfigHandler(&heirtest.Auth{Signer: owner})
		_, err := h.Deliver(context.Background(), db, &heirtest.Tx{Msg: &UpdateConfigurationMsg{
			Metadata: &heirloom.Metadata{Schema: 1},
			Patch:    &Configuration{Owner: newOwner.Address()},
		}})
		require.NoError(t, err)

		conf, err := loadConf(db)
		require.NoError(t, err)
		assert.Equal(t, newOwner.Address(), conf.Owner)
	})

	t.Run("only the owner may update", func(t *testing.T) {
		db := store.MemStore()
		saveConf(t, db, Configuration{
			Owner:            owner.Address(),
			CollectorAddress: heirtest.NewCondition().Address(),
		})

		h := NewConfigHandler(&heirtest.Auth{Signer: other})
		_, err := h.Deliver(context.Background(), db, &heirtest.Tx{Msg: &UpdateConfigurationMsg{
			Metadata: &heirloom.Metadata{Schema: 1},
			Patch:    &Configuration{FeeRate: 250},
		}})
		assert.True(t, errors.ErrUnauthorized.Is(err), "unexpected error: %+v", err)
	})

	t.Run("fee rate of the whole value is allowed", func(t *testing.T) {
		db := store.MemStore()
		saveConf(t, db, Configuration{
			Owner:            owner.Address(),
			CollectorAddress: heirtest.NewCondition().Address(),
		})

		h := NewConfigHandler(&heirtest.Auth{Signer: owner})
		_, err := h.Deliver(context.Background(), db, &heirtest.Tx{Msg: &UpdateConfigurationMsg{
			Metadata: &heirloom.Metadata{Schema: 1},
			Patch:    &Configuration{FeeRate: coin.MaxRate},
		}})
		require.NoError(t, err)

		conf, err := loadConf(db)
		require.NoError(t, err)
		assert.Equal(t, coin.MaxRate, conf.FeeRate)
	})

	t.Run("fee rate above the whole value is rejected", func(t *testing.T) {
		db := store.MemStore()
		saveConf(t, db, Configuration{
			Owner:            owner.Address(),
			CollectorAddress: heirtest.NewCondition().Address(),
		})

		h := NewConfigHandler(&heirtest.Auth{Signer: owner})
		_, err := h.Deliver(context.Background(), db, &heirtest.Tx{Msg: &UpdateConfigurationMsg{
			Metadata: &heirloom.Metadata{Schema: 1},
			Patch:    &Configuration{FeeRate: 10001},
		}})
		assert.True(t, ErrFeeRate.Is(err), "unexpected error: %+v", err)
	})
}
