package funds

import (
	"github.com/heirloom-one/heirloom"
	"github.com/heirloom-one/heirloom/errors"
	"github.com/heirloom-one/heirloom/x"
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r heirloom.Registry, auth x.Authenticator, control Controller) {
	r.Handle("funds/send", NewSendHandler(auth, control))
}

// RegisterQuery will register this bucket as "/wallets"
func RegisterQuery(qr heirloom.QueryRouter) {
	NewBucket().Register("wallets", qr)
}

// SendHandler will handle moving value between wallets
type SendHandler struct {
	auth    x.Authenticator
	control Controller
}

var _ heirloom.Handler = SendHandler{}

// NewSendHandler creates a handler for SendMsg
func NewSendHandler(auth x.Authenticator, control Controller) SendHandler {
	return SendHandler{
		auth:    auth,
		control: control,
	}
}

// Check just verifies it is properly formed and returns
// the cost of executing it
func (h SendHandler) Check(ctx heirloom.Context, store heirloom.KVStore, tx heirloom.Tx) (*heirloom.CheckResult, error) {
	var msg SendMsg
	if err := heirloom.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}

	// Make sure we have permission from the source
	if !h.auth.HasAddress(ctx, msg.Source) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "wallet owner signature missing")
	}

	res := heirloom.CheckResult{
		GasAllocated: sendTxCost,
	}
	return &res, nil
}

// Deliver moves the value from source to destination if
// all preconditions are met
func (h SendHandler) Deliver(ctx heirloom.Context, store heirloom.KVStore, tx heirloom.Tx) (*heirloom.DeliverResult, error) {
	var msg SendMsg
	if err := heirloom.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}

	// Make sure we have permission from the source
	if !h.auth.HasAddress(ctx, msg.Source) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "wallet owner signature missing")
	}

	if err := h.control.MoveFunds(store, msg.Source, msg.Destination, msg.Amount); err != nil {
		return nil, err
	}
	return &heirloom.DeliverResult{}, nil
}
