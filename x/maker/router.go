package maker

import (
	"time"

	astroport "github.com/asteroidprotocol/astroport-core"
	"github.com/asteroidprotocol/astroport-core/asset"
	"github.com/asteroidprotocol/astroport-core/errors"
	"github.com/asteroidprotocol/astroport-core/x/pair"
)

// CollectHandler converts held fee assets into the target token. It
// emits one swap command per convertible asset and always a trailing
// distribute command addressed to the contract itself, so that
// distribution observes the post swap balance. Anyone may invoke it.
type CollectHandler struct {
	factory Factory
	bank    Bank
}

var _ astroport.Handler = CollectHandler{}

func (h CollectHandler) Check(ctx astroport.Context, db astroport.KVStore, m astroport.Msg) (*astroport.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, m); err != nil {
		return nil, err
	}
	return &astroport.CheckResult{}, nil
}

func (h CollectHandler) Deliver(ctx astroport.Context, db astroport.KVStore, m astroport.Msg) (*astroport.DeliverResult, error) {
	msg, cfg, err := h.validate(ctx, db, m)
	if err != nil {
		return nil, err
	}

	now, err := astroport.BlockTime(ctx)
	if err != nil {
		return nil, err
	}
	if err := saveLastCollect(db, astroport.AsUnixTime(now)); err != nil {
		return nil, err
	}

	res := &astroport.DeliverResult{}
	res.AddTag("action", "collect")

	if err := h.planSwaps(ctx, db, cfg, msg, res); err != nil {
		return nil, err
	}

	// Distribution runs unconditionally, also when nothing was swapped.
	// The contract may hold target tokens received directly.
	res.AddCommand(ContractAddress, &DistributeMsg{})
	return res, nil
}

func (h CollectHandler) validate(ctx astroport.Context, db astroport.KVStore, m astroport.Msg) (*CollectMsg, *Config, error) {
	msg, ok := m.(*CollectMsg)
	if !ok {
		return nil, nil, errors.WithType(errors.ErrMsg, m)
	}
	if err := msg.Validate(); err != nil {
		return nil, nil, err
	}
	cfg, err := loadConfig(db)
	if err != nil {
		return nil, nil, err
	}
	if cfg.CollectCooldown != nil {
		last, err := loadLastCollect(db)
		if err != nil {
			return nil, nil, err
		}
		now, err := astroport.BlockTime(ctx)
		if err != nil {
			return nil, nil, err
		}
		if next := last.Add(time.Duration(*cfg.CollectCooldown) * time.Second); astroport.AsUnixTime(now) < next {
			return nil, nil, errors.Wrapf(ErrCooldown, "next collect at %s", next)
		}
	}
	return msg, cfg, nil
}

// planSwaps appends one swap command per asset that can be converted
// into the target token. Explicitly listed assets must have a direct
// pair, while assets discovered through pair addresses are converted
// opportunistically and skipped when they cannot be.
func (h CollectHandler) planSwaps(ctx astroport.Context, db astroport.KVStore, cfg *Config, msg *CollectMsg, res *astroport.DeliverResult) error {
	logger := astroport.Logger(ctx)
	seen := make(map[string]struct{}, len(msg.Assets))

	for _, a := range msg.Assets {
		seen[a.Info.ID()] = struct{}{}
		if a.Info.Equals(cfg.TargetToken) {
			// Already the target token, distribution picks it up.
			continue
		}
		amount, err := h.swapAmount(db, a.Info, a.Limit)
		if err != nil {
			return err
		}
		if amount.IsZero() {
			continue
		}
		pairAddr, err := h.factory.PairAddress(db, a.Info, cfg.TargetToken)
		switch {
		case err == nil:
			// All good.
		case errors.ErrNotFound.Is(err):
			return errors.Wrap(ErrPairNotFound, a.Info.String())
		default:
			return errors.Wrap(err, "resolve pair")
		}
		addSwap(res, pairAddr, a.Info, amount, cfg)
	}

	for _, p := range msg.Pairs {
		first, second, err := h.factory.PairAssets(db, p)
		switch {
		case err == nil:
			// All good.
		case errors.ErrNotFound.Is(err):
			logger.Info().Str("pair", p.String()).Msg("unknown pair skipped")
			res.AddTag("skipped", p.String())
			continue
		default:
			return errors.Wrap(err, "resolve pair assets")
		}
		var offer asset.Asset
		switch {
		case first.Equals(cfg.TargetToken):
			offer = second
		case second.Equals(cfg.TargetToken):
			offer = first
		default:
			logger.Info().Str("pair", p.String()).Msg("pair without target token skipped")
			res.AddTag("skipped", p.String())
			continue
		}
		if _, ok := seen[offer.ID()]; ok {
			continue
		}
		seen[offer.ID()] = struct{}{}
		amount, err := h.swapAmount(db, offer, nil)
		if err != nil {
			return err
		}
		if amount.IsZero() {
			continue
		}
		addSwap(res, p, offer, amount, cfg)
	}
	return nil
}

// swapAmount returns the quantity of the asset to swap: the contract's
// full balance, capped by the limit when one is set.
func (h CollectHandler) swapAmount(db astroport.ReadOnlyKVStore, a asset.Asset, limit *asset.Amount) (asset.Amount, error) {
	balance, err := h.bank.Balance(db, ContractAddress, a)
	if err != nil {
		return asset.Amount{}, errors.Wrap(err, "balance")
	}
	if limit != nil && !limit.IsZero() && limit.Cmp(balance) < 0 {
		return *limit, nil
	}
	return balance, nil
}

func addSwap(res *astroport.DeliverResult, pairAddr astroport.Address, offer asset.Asset, amount asset.Amount, cfg *Config) {
	res.AddCommand(pairAddr, &pair.SwapMsg{
		OfferAsset: asset.AssetAmount{Info: offer, Amount: amount},
		MaxSpread:  cfg.MaxSpread,
	})
	res.AddTag("swapped_asset", offer.String())
}
