package astrotest

import (
	"context"
	"encoding/binary"
	"sync/atomic"
	"time"

	astroport "github.com/asteroidprotocol/astroport-core"
)

var addrSeq uint64

// SequenceAddress returns a new unique address with every call. Results
// are deterministic within a process run.
func SequenceAddress() astroport.Address {
	n := atomic.AddUint64(&addrSeq, 1)
	data := make([]byte, 8)
	binary.BigEndian.PutUint64(data, n)
	return astroport.NewCondition("astrotest", "seq", data).Address()
}

// Context returns an execution context carrying the given block time
// and message sender, the two values every handler requires.
func Context(blockTime time.Time, sender astroport.Address) astroport.Context {
	ctx := astroport.WithBlockTime(context.Background(), blockTime)
	return astroport.WithSender(ctx, sender)
}
