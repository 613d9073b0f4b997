package treasure

import (
	"encoding/binary"
	"fmt"

	"github.com/heirloom-one/heirloom"
	"github.com/heirloom-one/heirloom/coin"
	"github.com/heirloom-one/heirloom/errors"
	"github.com/heirloom-one/heirloom/gconf"
	"github.com/heirloom-one/heirloom/x"
	"github.com/heirloom-one/heirloom/x/funds"
	common "github.com/tendermint/tendermint/libs/common"
)

const (
	// pay deposit cost up-front
	storeTxCost    int64 = 300
	claimTxCost    int64 = 0
	withdrawTxCost int64 = 0
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r heirloom.Registry, auth x.Authenticator, control funds.Controller) {
	bucket := NewBucket()

	r.Handle("treasure/store", StoreHandler{auth, bucket, control})
	r.Handle("treasure/claim", ClaimHandler{auth, bucket, control})
	r.Handle("treasure/withdraw_fees", WithdrawFeesHandler{auth, control})
	r.Handle("treasure/update_configuration", NewConfigHandler(auth))
}

// RegisterQuery will register this bucket as "/treasures" along with
// its depositor and beneficiary indexes.
func RegisterQuery(qr heirloom.QueryRouter) {
	NewBucket().Register("treasures", qr)
}

// NewConfigHandler returns the handler for configuration patch messages.
func NewConfigHandler(auth x.Authenticator) gconf.UpdateConfigurationHandler {
	var conf Configuration
	return gconf.NewUpdateConfigurationHandler(pkgName, &conf, auth, nil)
}

// StoreHandler creates time-locked deposits.
type StoreHandler struct {
	auth    x.Authenticator
	bucket  Bucket
	control funds.Controller
}

var _ heirloom.Handler = StoreHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it
func (h StoreHandler) Check(ctx heirloom.Context, db heirloom.KVStore, tx heirloom.Tx) (*heirloom.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &heirloom.CheckResult{GasAllocated: storeTxCost}, nil
}

// Deliver charges the deposit fee, persists the new treasure and moves
// the remaining value to the treasure account. The id of the new
// treasure is returned as data.
func (h StoreHandler) Deliver(ctx heirloom.Context, db heirloom.KVStore, tx heirloom.Tx) (*heirloom.DeliverResult, error) {
	msg, conf, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	// apply a default for depositor
	depositor := msg.Depositor
	if depositor == nil {
		depositor = x.MainSigner(ctx, h.auth).Address()
	}

	fee := conf.FeeRate.Apply(msg.Amount)
	net, err := msg.Amount.Sub(fee)
	if err != nil {
		return nil, err
	}

	obj, err := h.bucket.Create(db, &Treasure{
		Metadata:    &heirloom.Metadata{Schema: 1},
		Depositor:   depositor,
		Beneficiary: msg.Beneficiary,
		Amount:      net,
		UnlockTime:  msg.UnlockTime,
	})
	if err != nil {
		return nil, errors.Wrap(err, "cannot store treasure")
	}
	id := obj.Key()

	// Deposit to the treasure account.
	if net.IsPositive() {
		if err := h.control.MoveFunds(db, depositor, Condition(id).Address(), net); err != nil {
			return nil, err
		}
	}
	if fee.IsPositive() {
		if err := h.control.MoveFunds(db, depositor, conf.CollectorAddress, fee); err != nil {
			return nil, err
		}
	}

	res := &heirloom.DeliverResult{
		Data: id,
		Tags: []common.KVPair{
			heirloom.NewTag("action", "treasure/store"),
			heirloom.NewTag("treasure_id", fmt.Sprintf("%X", id)),
			heirloom.NewTag("beneficiary", msg.Beneficiary.String()),
			heirloom.NewTag("amount", net.String()),
		},
	}
	return res, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h StoreHandler) validate(ctx heirloom.Context, db heirloom.KVStore, tx heirloom.Tx) (*StoreMsg, *Configuration, error) {
	var msg StoreMsg
	if err := heirloom.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	if heirloom.IsExpired(ctx, msg.UnlockTime) {
		return nil, nil, errors.Wrapf(ErrUnlockInPast, "unlock at %d", msg.UnlockTime)
	}

	// Depositor must authorize this (if not set, defaults to MainSigner).
	if msg.Depositor != nil {
		if !h.auth.HasAddress(ctx, msg.Depositor) {
			return nil, nil, errors.Wrap(errors.ErrUnauthorized, "depositor signature missing")
		}
	}

	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, err
	}
	return &msg, conf, nil
}

// ClaimHandler releases unlocked deposits to their beneficiary.
type ClaimHandler struct {
	auth    x.Authenticator
	bucket  Bucket
	control funds.Controller
}

var _ heirloom.Handler = ClaimHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it
func (h ClaimHandler) Check(ctx heirloom.Context, db heirloom.KVStore, tx heirloom.Tx) (*heirloom.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &heirloom.CheckResult{GasAllocated: claimTxCost}, nil
}

// Deliver settles the treasure and pays out to the beneficiary. The
// net payout, after the claim fee, is returned as big-endian data.
func (h ClaimHandler) Deliver(ctx heirloom.Context, db heirloom.KVStore, tx heirloom.Tx) (*heirloom.DeliverResult, error) {
	msg, treasure, conf, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	gross := treasure.Amount
	var fee coin.Amount
	if conf.ChargeOnClaim() {
		fee = conf.FeeRate.Apply(gross)
	}
	net, err := gross.Sub(fee)
	if err != nil {
		return nil, err
	}

	// The record is settled before any value moves. When a transfer
	// fails the whole delivery is discarded, including this write.
	treasure.Claimed = true
	treasure.Amount = 0
	if err := h.bucket.Save(db, NewTreasureObj(msg.TreasureID, treasure)); err != nil {
		return nil, errors.Wrap(err, "cannot settle treasure")
	}

	src := Condition(msg.TreasureID).Address()
	if net.IsPositive() {
		if err := h.control.MoveFunds(db, src, treasure.Beneficiary, net); err != nil {
			return nil, err
		}
	}
	if fee.IsPositive() {
		if err := h.control.MoveFunds(db, src, conf.CollectorAddress, fee); err != nil {
			return nil, err
		}
	}

	payout := make([]byte, 8)
	binary.BigEndian.PutUint64(payout, uint64(net.Int64()))
	res := &heirloom.DeliverResult{
		Data: payout,
		Tags: []common.KVPair{
			heirloom.NewTag("action", "treasure/claim"),
			heirloom.NewTag("treasure_id", fmt.Sprintf("%X", msg.TreasureID)),
			heirloom.NewTag("beneficiary", treasure.Beneficiary.String()),
			heirloom.NewTag("amount", net.String()),
		},
	}
	return res, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h ClaimHandler) validate(ctx heirloom.Context, db heirloom.KVStore, tx heirloom.Tx) (*ClaimMsg, *Treasure, *Configuration, error) {
	var msg ClaimMsg
	if err := heirloom.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}

	obj, err := h.bucket.Get(db, msg.TreasureID)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "cannot load treasure from the store")
	}
	if obj == nil {
		return nil, nil, nil, errors.Wrapf(errors.ErrNotFound, "treasure %X", msg.TreasureID)
	}
	treasure := AsTreasure(obj)

	// Beneficiary must authorize this.
	if !h.auth.HasAddress(ctx, treasure.Beneficiary) {
		return nil, nil, nil, errors.Wrap(ErrNotBeneficiary, "beneficiary signature missing")
	}

	if treasure.Claimed {
		return nil, nil, nil, errors.Wrapf(ErrAlreadyClaimed, "treasure %X", msg.TreasureID)
	}

	if !heirloom.IsExpired(ctx, treasure.UnlockTime) {
		return nil, nil, nil, errors.Wrapf(ErrNotUnlocked, "unlocks at %d", treasure.UnlockTime)
	}

	if !treasure.Amount.IsPositive() {
		return nil, nil, nil, errors.Wrapf(ErrNothingToClaim, "treasure %X", msg.TreasureID)
	}

	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, nil, err
	}
	return &msg, treasure, conf, nil
}

// WithdrawFeesHandler drains the fee collector wallet.
type WithdrawFeesHandler struct {
	auth    x.Authenticator
	control funds.Controller
}

var _ heirloom.Handler = WithdrawFeesHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it
func (h WithdrawFeesHandler) Check(ctx heirloom.Context, db heirloom.KVStore, tx heirloom.Tx) (*heirloom.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &heirloom.CheckResult{GasAllocated: withdrawTxCost}, nil
}

// Deliver moves all collected fees to the recipient. An empty fee pool
// is not an error, the withdrawal simply moves nothing.
func (h WithdrawFeesHandler) Deliver(ctx heirloom.Context, db heirloom.KVStore, tx heirloom.Tx) (*heirloom.DeliverResult, error) {
	msg, conf, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	pool, err := h.control.Balance(db, conf.CollectorAddress)
	if err != nil {
		return nil, err
	}
	if pool.IsPositive() {
		if err := h.control.MoveFunds(db, conf.CollectorAddress, msg.Recipient, pool); err != nil {
			return nil, err
		}
	}

	res := &heirloom.DeliverResult{
		Tags: []common.KVPair{
			heirloom.NewTag("action", "treasure/withdraw_fees"),
			heirloom.NewTag("recipient", msg.Recipient.String()),
			heirloom.NewTag("amount", pool.String()),
		},
	}
	return res, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h WithdrawFeesHandler) validate(ctx heirloom.Context, db heirloom.KVStore, tx heirloom.Tx) (*WithdrawFeesMsg, *Configuration, error) {
	var msg WithdrawFeesMsg
	if err := heirloom.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, err
	}

	// Only the configuration owner may collect the fees.
	if !h.auth.HasAddress(ctx, conf.Owner) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "owner signature missing")
	}

	return &msg, conf, nil
}
