package funds

import (
	"context"
	"testing"

	"github.com/heirloom-one/heirloom"
	"github.com/heirloom-one/heirloom/coin"
	"github.com/heirloom-one/heirloom/errors"
	"github.com/heirloom-one/heirloom/heirtest"
	"github.com/heirloom-one/heirloom/heirtest/assert"
	"github.com/heirloom-one/heirloom/store"
)

func TestSendHandler(t *testing.T) {
	var (
		alice = heirtest.NewCondition()
		bob   = heirtest.NewCondition()
	)

	meta := &heirloom.Metadata{Schema: 1}

	cases := map[string]struct {
		msg        *SendMsg
		signer     heirloom.Condition
		funded     coin.Amount
		wantCheck  *errors.Error
		wantErr    *errors.Error
	}{
		"happy path": {
			msg: &SendMsg{
				Metadata:    meta,
				Source:      alice.Address(),
				Destination: bob.Address(),
				Amount:      50,
			},
			signer: alice,
			funded: 100,
		},
		"source did not sign": {
			msg: &SendMsg{
				Metadata:    meta,
				Source:      alice.Address(),
				Destination: bob.Address(),
				Amount:      50,
			},
			signer:    bob,
			funded:    100,
			wantCheck: errors.ErrUnauthorized,
			wantErr:   errors.ErrUnauthorized,
		},
		"insufficient funds": {
			msg: &SendMsg{
				Metadata:    meta,
				Source:      alice.Address(),
				Destination: bob.Address(),
				Amount:      500,
			},
			signer:  alice,
			funded:  100,
			wantErr: ErrInsufficientFunds,
		},
		"invalid message": {
			msg: &SendMsg{
				Metadata:    meta,
				Source:      alice.Address(),
				Destination: bob.Address(),
				Amount:      0,
			},
			signer:    alice,
			funded:    100,
			wantCheck: errors.ErrAmount,
			wantErr:   errors.ErrAmount,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			control := NewController(NewBucket())
			assert.Nil(t, control.IssueFunds(db, alice.Address(), tc.funded))

			auth := &heirtest.Auth{Signer: tc.signer}
			h := NewSendHandler(auth, control)
			tx := &heirtest.Tx{Msg: tc.msg}
			ctx := context.Background()

			_, err := h.Check(ctx, db, tx)
			if tc.wantCheck != nil {
				assert.IsErr(t, tc.wantCheck, err)
			} else {
				assert.Nil(t, err)
			}

			_, err = h.Deliver(ctx, db, tx)
			if tc.wantErr != nil {
				assert.IsErr(t, tc.wantErr, err)
				return
			}
			assert.Nil(t, err)

			src, err := control.Balance(db, alice.Address())
			assert.Nil(t, err)
			assert.Equal(t, tc.funded-tc.msg.Amount, src)

			dest, err := control.Balance(db, bob.Address())
			assert.Nil(t, err)
			assert.Equal(t, tc.msg.Amount, dest)
		})
	}
}
