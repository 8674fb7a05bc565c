package astroport

// Msg is a request for a contract to take an action (make a state
// transition). It is just the request and must be validated by the
// handlers. The sender identity travels in the Context, the way a
// contract host reports it.
//
// Messages are encoded as JSON objects on the external surface. Every
// message type must therefore carry the usual json struct tags.
type Msg interface {
	// Path returns the routing path of the message. Multiple message
	// types may share a path and will end up at the same handler.
	// Must be alphanumeric [0-9a-z_\-/]+.
	Path() string

	// Validate performs a stateless sanity check of the message
	// content. Stateful checks belong to the handler.
	Validate() error
}
