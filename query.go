package astroport

import (
	"github.com/asteroidprotocol/astroport-core/errors"
)

// QueryHandler handles read-only requests against the state. Raw
// request and response payloads are JSON objects, the same encoding as
// the execution surface.
type QueryHandler interface {
	Query(store ReadOnlyKVStore, path string, data []byte) ([]byte, error)
}

// QueryRouter allows us to register many query handlers to different
// paths and dispatch to the proper one.
type QueryRouter struct {
	routes map[string]QueryHandler
}

// NewQueryRouter initializes a QueryRouter with no routes.
func NewQueryRouter() QueryRouter {
	return QueryRouter{
		routes: make(map[string]QueryHandler, 8),
	}
}

// RegisterQuery adds a handler under the given path. Panic on
// duplicate registration, which is a setup error.
func (r QueryRouter) RegisterQuery(path string, h QueryHandler) {
	if _, ok := r.routes[path]; ok {
		panic("re-registering query route: " + path)
	}
	r.routes[path] = h
}

// Query dispatches to the proper handler.
func (r QueryRouter) Query(store ReadOnlyKVStore, path string, data []byte) ([]byte, error) {
	h, ok := r.routes[path]
	if !ok {
		return nil, errors.Wrapf(errors.ErrNotFound, "no query handler for %q", path)
	}
	return h.Query(store, path, data)
}
