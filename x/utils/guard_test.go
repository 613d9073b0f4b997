package utils

import (
	"context"
	"testing"

	"github.com/heirloom-one/heirloom"
	"github.com/heirloom-one/heirloom/errors"
	"github.com/heirloom-one/heirloom/heirtest"
	"github.com/heirloom-one/heirloom/heirtest/assert"
)

// reentrantHandler calls back into the given handler once, simulating a
// transfer hook that tries to process another transaction mid flight.
type reentrantHandler struct {
	stack heirloom.Handler
	tx    heirloom.Tx

	innerErr error
}

func (h *reentrantHandler) Check(ctx heirloom.Context, db heirloom.KVStore, tx heirloom.Tx) (*heirloom.CheckResult, error) {
	_, h.innerErr = h.stack.Check(ctx, db, h.tx)
	return &heirloom.CheckResult{}, nil
}

func (h *reentrantHandler) Deliver(ctx heirloom.Context, db heirloom.KVStore, tx heirloom.Tx) (*heirloom.DeliverResult, error) {
	_, h.innerErr = h.stack.Deliver(ctx, db, h.tx)
	return &heirloom.DeliverResult{}, nil
}

func TestReentrancyGuardAllowsSequentialCalls(t *testing.T) {
	h := &heirtest.Handler{}
	guarded := heirtest.Decorate(h, NewReentrancyGuard())

	tx := &heirtest.Tx{Msg: &heirtest.Msg{RoutePath: "test/good"}}
	for i := 0; i < 3; i++ {
		if _, err := guarded.Deliver(context.Background(), nil, tx); err != nil {
			t.Fatalf("unexpected error: %+v", err)
		}
	}
	assert.Equal(t, 3, h.DeliverCallCount())
}

func TestReentrancyGuardRejectsNestedCall(t *testing.T) {
	guard := NewReentrancyGuard()
	tx := &heirtest.Tx{Msg: &heirtest.Msg{RoutePath: "test/good"}}

	inner := &reentrantHandler{tx: tx}
	guarded := heirtest.Decorate(inner, guard)
	inner.stack = guarded

	if _, err := guarded.Deliver(context.Background(), nil, tx); err != nil {
		t.Fatalf("outer call must pass: %+v", err)
	}
	if !errors.ErrState.Is(inner.innerErr) {
		t.Fatalf("nested call must be rejected, got %+v", inner.innerErr)
	}

	// the guard must reset after the outer call completed
	if _, err := guarded.Deliver(context.Background(), nil, tx); err != nil {
		t.Fatalf("guard must reset: %+v", err)
	}
}
