package utils

import (
	"sync/atomic"

	"github.com/heirloom-one/heirloom"
	"github.com/heirloom-one/heirloom/errors"
)

// ReentrancyGuard rejects any transaction that enters the stack while
// another one is still being processed. Handlers already persist their
// state before moving any funds, so a reentrant call could never observe
// stale records, but the guard turns such a call into a hard error instead
// of relying on handler discipline alone.
type ReentrancyGuard struct {
	busy *int32
}

var _ heirloom.Decorator = ReentrancyGuard{}

// NewReentrancyGuard creates a ReentrancyGuard decorator
func NewReentrancyGuard() ReentrancyGuard {
	return ReentrancyGuard{
		busy: new(int32),
	}
}

// Check rejects the call when another transaction is in flight
func (g ReentrancyGuard) Check(ctx heirloom.Context, store heirloom.KVStore, tx heirloom.Tx, next heirloom.Checker) (*heirloom.CheckResult, error) {
	if !atomic.CompareAndSwapInt32(g.busy, 0, 1) {
		return nil, errors.Wrap(errors.ErrState, "reentrant call")
	}
	defer atomic.StoreInt32(g.busy, 0)

	return next.Check(ctx, store, tx)
}

// Deliver rejects the call when another transaction is in flight
func (g ReentrancyGuard) Deliver(ctx heirloom.Context, store heirloom.KVStore, tx heirloom.Tx, next heirloom.Deliverer) (*heirloom.DeliverResult, error) {
	if !atomic.CompareAndSwapInt32(g.busy, 0, 1) {
		return nil, errors.Wrap(errors.ErrState, "reentrant call")
	}
	defer atomic.StoreInt32(g.busy, 0)

	return next.Deliver(ctx, store, tx)
}
