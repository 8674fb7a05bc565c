package astrotest

import (
	"github.com/shopspring/decimal"

	astroport "github.com/asteroidprotocol/astroport-core"
	"github.com/asteroidprotocol/astroport-core/asset"
	"github.com/asteroidprotocol/astroport-core/errors"
	"github.com/asteroidprotocol/astroport-core/x"
	"github.com/asteroidprotocol/astroport-core/x/bank"
	"github.com/asteroidprotocol/astroport-core/x/pair"
)

// PairContract is a constant-rate AMM pair double. It settles swaps
// through the ledger, so its inventory must be seeded with IssueCoins
// before it can sell. It implements astroport.Handler and is meant to
// be registered under Addr.
type PairContract struct {
	Addr astroport.Address
	A, B asset.Asset
	// Bought quantity is offer * RateNum / RateDen, rounded down.
	RateNum, RateDen uint64
	// Spread simulates the executed spread of every swap. A swap whose
	// max_spread is below it fails, the way a real pair would reject a
	// trade moving the price too far.
	Spread decimal.Decimal

	ledger bank.Controller
}

var _ astroport.Handler = (*PairContract)(nil)

// NewPair returns a pair trading (a, b) at the fixed rate num/den in
// both directions, with zero spread.
func NewPair(addr astroport.Address, a, b asset.Asset, num, den uint64) *PairContract {
	return &PairContract{
		Addr:    addr,
		A:       a,
		B:       b,
		RateNum: num,
		RateDen: den,
		ledger:  bank.NewController(),
	}
}

func (p *PairContract) Check(ctx astroport.Context, db astroport.KVStore, m astroport.Msg) (*astroport.CheckResult, error) {
	if _, _, err := p.validate(ctx, m); err != nil {
		return nil, err
	}
	return &astroport.CheckResult{}, nil
}

func (p *PairContract) Deliver(ctx astroport.Context, db astroport.KVStore, m astroport.Msg) (*astroport.DeliverResult, error) {
	msg, ask, err := p.validate(ctx, m)
	if err != nil {
		return nil, err
	}
	sender := x.MainSigner(ctx)
	bought, err := msg.OfferAsset.Amount.MulRatio(p.RateNum, p.RateDen)
	if err != nil {
		return nil, err
	}
	if bought.IsZero() {
		return nil, errors.Wrap(errors.ErrAmount, "offer too small")
	}
	if err := p.ledger.MoveCoins(db, sender, p.Addr, msg.OfferAsset); err != nil {
		return nil, err
	}
	recipient := msg.To
	if recipient == nil {
		recipient = sender
	}
	out := asset.AssetAmount{Info: ask, Amount: bought}
	if err := p.ledger.MoveCoins(db, p.Addr, recipient, out); err != nil {
		return nil, err
	}
	res := &astroport.DeliverResult{}
	res.AddTag("action", "swap")
	res.AddTag("return_amount", bought.String())
	return res, nil
}

func (p *PairContract) validate(ctx astroport.Context, m astroport.Msg) (*pair.SwapMsg, asset.Asset, error) {
	msg, ok := m.(*pair.SwapMsg)
	if !ok {
		return nil, asset.Asset{}, errors.WithType(errors.ErrMsg, m)
	}
	if err := msg.Validate(); err != nil {
		return nil, asset.Asset{}, err
	}
	var ask asset.Asset
	switch {
	case msg.OfferAsset.Info.Equals(p.A):
		ask = p.B
	case msg.OfferAsset.Info.Equals(p.B):
		ask = p.A
	default:
		return nil, asset.Asset{}, errors.Wrapf(errors.ErrInput, "pair does not trade %s", msg.OfferAsset.Info)
	}
	if msg.MaxSpread.LessThan(p.Spread) {
		return nil, asset.Asset{}, errors.Wrapf(errors.ErrState, "spread %s above limit %s", p.Spread, msg.MaxSpread)
	}
	return msg, ask, nil
}
