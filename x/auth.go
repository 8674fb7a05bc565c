// Package x contains the contract extensions along with shared
// authentication helpers.
package x

import (
	astroport "github.com/asteroidprotocol/astroport-core"
)

// Authenticator answers whether the current invocation was authorized
// by the given address. Handlers never look at the raw context sender
// themselves so that tests and decorators can substitute the policy.
type Authenticator interface {
	HasAddress(ctx astroport.Context, addr astroport.Address) bool
}

// CtxAuth authenticates based on the sender address the host placed in
// the context. This is the production policy of a contract host: the
// host vouches for the sender of every routed message.
type CtxAuth struct{}

var _ Authenticator = CtxAuth{}

// HasAddress returns true if the context sender equals the given
// address.
func (CtxAuth) HasAddress(ctx astroport.Context, addr astroport.Address) bool {
	sender := astroport.Sender(ctx)
	if sender == nil {
		return false
	}
	return sender.Equals(addr)
}

// MainSigner returns the address that authorized this invocation.
func MainSigner(ctx astroport.Context) astroport.Address {
	return astroport.Sender(ctx)
}
