package app

import (
	"regexp"

	astroport "github.com/asteroidprotocol/astroport-core"
	"github.com/asteroidprotocol/astroport-core/errors"
)

// isPath matches the "extension/action" message path form.
var isPath = regexp.MustCompile(`^[a-z_]+/[a-z_]+$`).MatchString

// Router dispatches messages of one contract by message path. It
// implements both astroport.Registry for the setup phase and
// astroport.Handler for execution, so a whole contract can be
// registered with the dispatcher as a single handler.
type Router struct {
	routes map[string]astroport.Handler
}

var (
	_ astroport.Registry = (*Router)(nil)
	_ astroport.Handler  = (*Router)(nil)
)

// NewRouter initializes a router with no routes.
func NewRouter() *Router {
	return &Router{
		routes: make(map[string]astroport.Handler, 8),
	}
}

// Handle adds a route. Paths must be unique and well formed, anything
// else is a setup error and panics.
func (r *Router) Handle(path string, h astroport.Handler) {
	if !isPath(path) {
		panic("invalid message path: " + path)
	}
	if _, ok := r.routes[path]; ok {
		panic("re-registering route: " + path)
	}
	r.routes[path] = h
}

func (r *Router) handler(m astroport.Msg) (astroport.Handler, error) {
	h, ok := r.routes[m.Path()]
	if !ok {
		return nil, errors.Wrapf(errors.ErrNotFound, "no handler for %q", m.Path())
	}
	return h, nil
}

// Check dispatches to the handler registered under the message path.
func (r *Router) Check(ctx astroport.Context, db astroport.KVStore, m astroport.Msg) (*astroport.CheckResult, error) {
	h, err := r.handler(m)
	if err != nil {
		return nil, err
	}
	return h.Check(ctx, db, m)
}

// Deliver dispatches to the handler registered under the message path.
func (r *Router) Deliver(ctx astroport.Context, db astroport.KVStore, m astroport.Msg) (*astroport.DeliverResult, error) {
	h, err := r.handler(m)
	if err != nil {
		return nil, err
	}
	return h.Deliver(ctx, db, m)
}
