package heirtest

import "github.com/heirloom-one/heirloom"

type Handler struct {
	checkCall   int
	CheckResult heirloom.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult heirloom.DeliverResult
	DeliverErr    error
}

var _ heirloom.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx heirloom.Context, db heirloom.KVStore, tx heirloom.Tx) (*heirloom.CheckResult, error) {
	h.checkCall++
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(ctx heirloom.Context, db heirloom.KVStore, tx heirloom.Tx) (*heirloom.DeliverResult, error) {
	h.deliverCall++
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}
