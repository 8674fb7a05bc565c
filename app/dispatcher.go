package app

import (
	astroport "github.com/asteroidprotocol/astroport-core"
	"github.com/asteroidprotocol/astroport-core/errors"
)

// ErrInvalidCommand is returned when an emitted command cannot be
// executed, for example because it targets an unregistered contract.
var ErrInvalidCommand = errors.Register(121, "invalid command")

// maxCommandDepth bounds command chains. A command emitted by the
// initial message runs at depth 1, commands it emits at depth 2 and so
// on. The bound turns an accidental emission loop into an error instead
// of an endless chain.
const maxCommandDepth = 8

// Dispatcher is the execution core of the host. Contracts are
// registered under their addresses; Execute routes a message to the
// target contract and then runs every command it emits, transitively,
// as one atomic unit.
type Dispatcher struct {
	contracts map[string]astroport.Handler
}

// NewDispatcher returns a dispatcher with no contracts registered.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		contracts: make(map[string]astroport.Handler, 8),
	}
}

// RegisterContract makes the handler reachable under the given
// address. Registering the same address twice is a setup error and
// panics.
func (d *Dispatcher) RegisterContract(addr astroport.Address, h astroport.Handler) {
	if err := addr.Validate(); err != nil {
		panic("invalid contract address: " + err.Error())
	}
	if _, ok := d.contracts[addr.String()]; ok {
		panic("re-registering contract: " + addr.String())
	}
	d.contracts[addr.String()] = h
}

func (d *Dispatcher) contract(addr astroport.Address) (astroport.Handler, error) {
	h, ok := d.contracts[addr.String()]
	if !ok {
		return nil, errors.Wrapf(ErrInvalidCommand, "no contract at %s", addr)
	}
	return h, nil
}

// Check validates the message against the target contract without
// persisting anything. Emitted commands are not simulated.
func (d *Dispatcher) Check(ctx astroport.Context, db astroport.CacheableKVStore, target astroport.Address, msg astroport.Msg) (*astroport.CheckResult, error) {
	h, err := d.contract(target)
	if err != nil {
		return nil, err
	}
	cache := db.CacheWrap()
	defer cache.Discard()
	return h.Check(ctx, cache, msg)
}

// queued is a command waiting for execution together with its
// provenance.
type queued struct {
	sender astroport.Address
	target astroport.Address
	msg    astroport.Msg
	depth  int
}

// Execute delivers the message to the target contract and then every
// command the delivery emits, in emission order, commands of earlier
// deliveries before commands of later ones. All state changes happen
// in a cache that is written to the store only when the whole chain
// succeeds. Any failure discards everything, including the initial
// delivery.
//
// The context sender of each command delivery is the emitting
// contract, so contracts can rely on sender authentication for their
// internal messages.
func (d *Dispatcher) Execute(ctx astroport.Context, db astroport.CacheableKVStore, target astroport.Address, msg astroport.Msg) (*astroport.DeliverResult, error) {
	logger := astroport.Logger(ctx)
	cache := db.CacheWrap()

	queue := []queued{{
		sender: astroport.Sender(ctx),
		target: target,
		msg:    msg,
		depth:  0,
	}}

	var first *astroport.DeliverResult
	for len(queue) > 0 {
		cmd := queue[0]
		queue = queue[1:]

		if cmd.depth > maxCommandDepth {
			cache.Discard()
			return nil, errors.Wrapf(ErrInvalidCommand, "command chain deeper than %d", maxCommandDepth)
		}
		h, err := d.contract(cmd.target)
		if err != nil {
			cache.Discard()
			return nil, err
		}

		cmdCtx := astroport.WithSender(ctx, cmd.sender)
		res, err := h.Deliver(cmdCtx, cache, cmd.msg)
		if err != nil {
			logger.Info().
				Str("path", cmd.msg.Path()).
				Str("target", cmd.target.String()).
				Err(err).
				Msg("delivery failed, chain discarded")
			cache.Discard()
			return nil, err
		}
		logger.Debug().
			Str("path", cmd.msg.Path()).
			Str("target", cmd.target.String()).
			Int("commands", len(res.Commands)).
			Msg("delivered")

		if first == nil {
			first = res
		}
		for _, c := range res.Commands {
			queue = append(queue, queued{
				sender: cmd.target,
				target: c.Target,
				msg:    c.Msg,
				depth:  cmd.depth + 1,
			})
		}
	}

	if err := cache.Write(); err != nil {
		return nil, errors.Wrap(err, "commit chain")
	}
	return first, nil
}
