package astroport

// Handler is a core engine that can process a few specific messages.
// This could represent "collect trading fees" or "transfer ownership".
type Handler interface {
	Checker
	Deliverer
}

// Checker is a subset of Handler to verify the validity of a message.
// It is its own interface to allow better type control in decorators.
type Checker interface {
	Check(ctx Context, store KVStore, msg Msg) (*CheckResult, error)
}

// Deliverer is a subset of Handler to execute a message.
type Deliverer interface {
	Deliver(ctx Context, store KVStore, msg Msg) (*DeliverResult, error)
}

// Registry is an interface to register handlers under message paths,
// the setup side of a router.
type Registry interface {
	Handle(path string, h Handler)
}

// CheckResult captures any non-error effects of a Check call.
type CheckResult struct {
	Log string
}

// DeliverResult captures any non-error effects of a Deliver call.
//
// Commands are intents addressed to other contracts. The handler never
// applies them itself; the host executes them strictly after Deliver
// returns, in emission order, within the same atomic unit.
type DeliverResult struct {
	Data     []byte
	Log      string
	Commands []Command
	Tags     []Tag
}

// Command is a single intent emitted by a handler: deliver Msg to the
// contract registered under Target. The host sets the sender of the
// routed message to the emitting contract's address.
type Command struct {
	Target Address
	Msg    Msg
}

// Tag is a key/value attribute attached to a delivery, used for
// reporting what happened during an invocation.
type Tag struct {
	Key   string
	Value string
}

// AddCommand appends an intent preserving emission order.
func (r *DeliverResult) AddCommand(target Address, msg Msg) {
	r.Commands = append(r.Commands, Command{Target: target, Msg: msg})
}

// AddTag attaches a reporting attribute to the result.
func (r *DeliverResult) AddTag(key, value string) {
	r.Tags = append(r.Tags, Tag{Key: key, Value: value})
}
