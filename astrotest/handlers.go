package astrotest

import astroport "github.com/asteroidprotocol/astroport-core"

// Handler is a programmable handler double. It returns the configured
// results and counts the calls.
type Handler struct {
	checkCall   int
	CheckResult astroport.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult astroport.DeliverResult
	DeliverErr    error
}

var _ astroport.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx astroport.Context, db astroport.KVStore, msg astroport.Msg) (*astroport.CheckResult, error) {
	h.checkCall++
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(ctx astroport.Context, db astroport.KVStore, msg astroport.Msg) (*astroport.DeliverResult, error) {
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
