/*
Package pair declares the message schema of the AMM pair contracts the
maker talks to. The pair contracts themselves are external
collaborators; only their invocation surface is part of this
repository.
*/
package pair

import (
	"github.com/shopspring/decimal"

	astroport "github.com/asteroidprotocol/astroport-core"
	"github.com/asteroidprotocol/astroport-core/asset"
	"github.com/asteroidprotocol/astroport-core/errors"
)

// PathSwap routes swap requests to a pair contract.
const PathSwap = "pair/swap"

var _ astroport.Msg = (*SwapMsg)(nil)

// SwapMsg asks the pair to convert the offered quantity into the other
// asset of the pair. Slippage enforcement is the pair's duty: the
// caller only declares the maximum spread it tolerates.
type SwapMsg struct {
	OfferAsset asset.AssetAmount `json:"offer_asset"`
	MaxSpread  decimal.Decimal   `json:"max_spread"`
	// To optionally redirects the bought quantity. Empty means the
	// message sender.
	To astroport.Address `json:"to,omitempty"`
}

// Path fulfills astroport.Msg to allow routing.
func (SwapMsg) Path() string {
	return PathSwap
}

// Validate makes sure basic rules are enforced upon input data.
func (m *SwapMsg) Validate() error {
	if err := m.OfferAsset.Validate(); err != nil {
		return errors.Wrap(err, "offer asset")
	}
	if m.OfferAsset.Amount.IsZero() {
		return errors.Wrap(errors.ErrAmount, "zero offer")
	}
	if m.MaxSpread.IsNegative() || m.MaxSpread.GreaterThan(decimal.NewFromInt(1)) {
		return errors.Wrapf(errors.ErrInput, "max spread %s out of [0, 1]", m.MaxSpread)
	}
	if m.To != nil {
		if err := m.To.Validate(); err != nil {
			return errors.Wrap(err, "to")
		}
	}
	return nil
}
