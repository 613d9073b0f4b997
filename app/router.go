package app

import (
	"fmt"
	"regexp"

	"github.com/heirloom-one/heirloom"
	"github.com/heirloom-one/heirloom/errors"
)

// isPath defines expected format of the registered paths. Each path must
// be in format <extension>/<action>.
var isPath = regexp.MustCompile(`^[a-z]+(/[a-z_]+)?$`).MatchString

// Router allows us to register many handlers with different paths and then
// direct each message to the registered handler.
type Router struct {
	handlers map[string]heirloom.Handler
}

var _ heirloom.Registry = (*Router)(nil)
var _ heirloom.Handler = (*Router)(nil)

// NewRouter initializes a router with no routes.
func NewRouter() *Router {
	return &Router{
		handlers: make(map[string]heirloom.Handler),
	}
}

// Handle implements Registry interface.
func (r *Router) Handle(path string, h heirloom.Handler) {
	if !isPath(path) {
		panic(fmt.Sprintf("invalid path: %q", path))
	}
	if _, ok := r.handlers[path]; ok {
		panic(fmt.Sprintf("re-registering route: %q", path))
	}
	r.handlers[path] = h
}

// handler returns the registered Handler for this path. If no path is found,
// returns a noSuchPathHandler.
func (r *Router) handler(m heirloom.Msg) heirloom.Handler {
	path := m.Path()
	if h, ok := r.handlers[path]; ok {
		return h
	}
	return &noSuchPathHandler{path: path}
}

// Check dispatches to the proper handler based on path
func (r *Router) Check(ctx heirloom.Context, store heirloom.KVStore, tx heirloom.Tx) (*heirloom.CheckResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	h := r.handler(msg)
	return h.Check(ctx, store, tx)
}

// Deliver dispatches to the proper handler based on path
func (r *Router) Deliver(ctx heirloom.Context, store heirloom.KVStore, tx heirloom.Tx) (*heirloom.DeliverResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	h := r.handler(msg)
	return h.Deliver(ctx, store, tx)
}

type noSuchPathHandler struct {
	path string
}

var _ heirloom.Handler = (*noSuchPathHandler)(nil)

func (h *noSuchPathHandler) Check(heirloom.Context, heirloom.KVStore, heirloom.Tx) (*heirloom.CheckResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", h.path)
}

func (h *noSuchPathHandler) Deliver(heirloom.Context, heirloom.KVStore, heirloom.Tx) (*heirloom.DeliverResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", h.path)
}
