package astroport

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/asteroidprotocol/astroport-core/errors"
)

// Context carries invocation scoped information: the block this
// invocation executes in, the sender of the routed message and the
// logger. There should exist two functions for every value of type T
// that we want to support:
//
//	WithXYZ(Context, T) Context
//	XYZ(Context) (val T, err error)
type Context = context.Context

type contextKey int

const (
	contextKeyBlockTime contextKey = iota
	contextKeyHeight
	contextKeySender
	contextKeyLogger
)

// DefaultLogger is used for all contexts that have not set anything
// themselves.
var DefaultLogger = zerolog.Nop()

// WithBlockTime sets the block time for the execution context. Block
// time is the only source of "now" available to handlers.
func WithBlockTime(ctx Context, t time.Time) Context {
	return context.WithValue(ctx, contextKeyBlockTime, t.UTC())
}

// BlockTime returns the timestamp of the block this invocation
// executes in.
func BlockTime(ctx Context) (time.Time, error) {
	t, ok := ctx.Value(contextKeyBlockTime).(time.Time)
	if !ok {
		return time.Time{}, errors.Wrap(errors.ErrHuman, "block time not present in the context")
	}
	return t, nil
}

// WithHeight sets the block height for the execution context.
func WithHeight(ctx Context, height int64) Context {
	return context.WithValue(ctx, contextKeyHeight, height)
}

// Height returns the current block height or false if not set.
func Height(ctx Context) (int64, bool) {
	h, ok := ctx.Value(contextKeyHeight).(int64)
	return h, ok
}

// WithSender declares which address authorized the routed message.
// The host sets this to the transaction signer for external calls and
// to the emitting contract's address for command execution.
func WithSender(ctx Context, a Address) Context {
	return context.WithValue(ctx, contextKeySender, a)
}

// Sender returns the address that authorized the routed message.
func Sender(ctx Context) Address {
	a, _ := ctx.Value(contextKeySender).(Address)
	return a
}

// WithLogger attaches a logger to the execution context.
func WithLogger(ctx Context, logger zerolog.Logger) Context {
	return context.WithValue(ctx, contextKeyLogger, logger)
}

// Logger returns the context logger, or the default nop logger.
func Logger(ctx Context) zerolog.Logger {
	if l, ok := ctx.Value(contextKeyLogger).(zerolog.Logger); ok {
		return l
	}
	return DefaultLogger
}

// IsExpired returns true if the given time is in the past as compared
// to the "now" as declared for the block. Expiration is exclusive,
// meaning that a deadline equal to the current block time has not yet
// expired.
func IsExpired(ctx Context, t UnixTime) (bool, error) {
	now, err := BlockTime(ctx)
	if err != nil {
		return false, err
	}
	return AsUnixTime(now) > t, nil
}
