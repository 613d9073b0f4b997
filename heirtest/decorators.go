package heirtest

import "github.com/heirloom-one/heirloom"

// Decorator is a mock implementation of the heirloom.Decorator interface.
//
// Set CheckErr or DeliverErr to force error response for corresponding
// method. If error attributes are not set then wrapped handler method is
// called and its result returned.
// Each method call is counted. Regardless of the method call result the
// counter is incremented.
type Decorator struct {
	checkCall int
	// CheckErr if set is returned by the Check method before calling
	// the wrapped handler.
	CheckErr error

	deliverCall int
	// DeliverErr if set is returned by the Deliver method before calling
	// the wrapped handler.
	DeliverErr error
}

var _ heirloom.Decorator = (*Decorator)(nil)

func (d *Decorator) Check(ctx heirloom.Context, db heirloom.KVStore, tx heirloom.Tx, next heirloom.Checker) (*heirloom.CheckResult, error) {
	d.checkCall++

	if d.CheckErr != nil {
		return nil, d.CheckErr
	}
	return next.Check(ctx, db, tx)
}

func (d *Decorator) Deliver(ctx heirloom.Context, db heirloom.KVStore, tx heirloom.Tx, next heirloom.Deliverer) (*heirloom.DeliverResult, error) {
	d.deliverCall++

	if d.DeliverErr != nil {
		return nil, d.DeliverErr
	}
	return next.Deliver(ctx, db, tx)
}

func (d *Decorator) CheckCallCount() int {
	return d.checkCall
}

func (d *Decorator) DeliverCallCount() int {
	return d.deliverCall
}

func (d *Decorator) CallCount() int {
	return d.checkCall + d.deliverCall
}

// Decorate wraps the handler with one decorator and returns it
// as a single handler.
func Decorate(h heirloom.Handler, d heirloom.Decorator) heirloom.Handler {
	return &decoratedHandler{hn: h, dc: d}
}

type decoratedHandler struct {
	hn heirloom.Handler
	dc heirloom.Decorator
}

var _ heirloom.Handler = (*decoratedHandler)(nil)

func (d *decoratedHandler) Check(ctx heirloom.Context, db heirloom.KVStore, tx heirloom.Tx) (*heirloom.CheckResult, error) {
	return d.dc.Check(ctx, db, tx, d.hn)
}

func (d *decoratedHandler) Deliver(ctx heirloom.Context, db heirloom.KVStore, tx heirloom.Tx) (*heirloom.DeliverResult, error) {
	return d.dc.Deliver(ctx, db, tx, d.hn)
}
