package bank

import (
	astroport "github.com/asteroidprotocol/astroport-core"
	"github.com/asteroidprotocol/astroport-core/errors"
	"github.com/asteroidprotocol/astroport-core/x"
)

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r astroport.Registry, auth x.Authenticator) {
	ctrl := NewController()
	r.Handle(pathSend, SendHandler{auth: auth, ctrl: ctrl})
}

// SendHandler moves a quantity from the sender to the destination.
type SendHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ astroport.Handler = SendHandler{}

func (h SendHandler) Check(ctx astroport.Context, db astroport.KVStore, m astroport.Msg) (*astroport.CheckResult, error) {
	if _, err := h.validate(ctx, m); err != nil {
		return nil, err
	}
	return &astroport.CheckResult{}, nil
}

func (h SendHandler) Deliver(ctx astroport.Context, db astroport.KVStore, m astroport.Msg) (*astroport.DeliverResult, error) {
	msg, err := h.validate(ctx, m)
	if err != nil {
		return nil, err
	}
	src := x.MainSigner(ctx)
	if err := h.ctrl.MoveCoins(db, src, msg.Dest, msg.Amount); err != nil {
		return nil, err
	}
	return &astroport.DeliverResult{}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h SendHandler) validate(ctx astroport.Context, m astroport.Msg) (*SendMsg, error) {
	msg, ok := m.(*SendMsg)
	if !ok {
		return nil, errors.WithType(errors.ErrMsg, m)
	}
	if err := msg.Validate(); err != nil {
		return nil, err
	}
	if x.MainSigner(ctx) == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "missing sender")
	}
	return msg, nil
}
