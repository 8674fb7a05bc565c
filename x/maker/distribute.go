package maker

import (
	astroport "github.com/asteroidprotocol/astroport-core"
	"github.com/asteroidprotocol/astroport-core/asset"
	"github.com/asteroidprotocol/astroport-core/errors"
	"github.com/asteroidprotocol/astroport-core/x"
	"github.com/asteroidprotocol/astroport-core/x/bank"
)

// DistributeHandler splits the contract's target token balance between
// the governance and staking accounts. It runs as the final command of
// every collect chain, therefore only the contract itself is allowed
// to send the message.
type DistributeHandler struct {
	auth x.Authenticator
	bank Bank
}

var _ astroport.Handler = DistributeHandler{}

func (h DistributeHandler) Check(ctx astroport.Context, db astroport.KVStore, m astroport.Msg) (*astroport.CheckResult, error) {
	if err := h.validate(ctx, db, m); err != nil {
		return nil, err
	}
	return &astroport.CheckResult{}, nil
}

func (h DistributeHandler) Deliver(ctx astroport.Context, db astroport.KVStore, m astroport.Msg) (*astroport.DeliverResult, error) {
	if err := h.validate(ctx, db, m); err != nil {
		return nil, err
	}
	cfg, err := loadConfig(db)
	if err != nil {
		return nil, err
	}

	res := &astroport.DeliverResult{}
	res.AddTag("action", "distribute")

	balance, err := h.bank.Balance(db, ContractAddress, cfg.TargetToken)
	if err != nil {
		return nil, errors.Wrap(err, "balance")
	}
	if balance.IsZero() {
		res.AddTag("astro_distribution", "0")
		return res, nil
	}

	governance, staking, err := splitProceeds(balance, cfg)
	if err != nil {
		return nil, err
	}

	if !governance.IsZero() {
		res.AddCommand(bank.ContractAddress, &bank.SendMsg{
			Dest:   cfg.Governance,
			Amount: asset.AssetAmount{Info: cfg.TargetToken, Amount: governance},
		})
		res.AddTag("governance_amount", governance.String())
	}
	if !staking.IsZero() {
		res.AddCommand(bank.ContractAddress, &bank.SendMsg{
			Dest:   cfg.Staking,
			Amount: asset.AssetAmount{Info: cfg.TargetToken, Amount: staking},
		})
		res.AddTag("staking_amount", staking.String())
	}
	res.AddTag("astro_distribution", balance.String())
	return res, nil
}

func (h DistributeHandler) validate(ctx astroport.Context, db astroport.KVStore, m astroport.Msg) error {
	if _, ok := m.(*DistributeMsg); !ok {
		return errors.WithType(errors.ErrMsg, m)
	}
	if !h.auth.HasAddress(ctx, ContractAddress) {
		return errors.Wrap(errors.ErrUnauthorized, "only the contract itself can distribute")
	}
	return nil
}

// splitProceeds computes the governance and staking shares of the
// given balance. The governance share is floor(balance * percent / 100)
// and the remainder goes to staking, so the two always sum up to the
// full balance.
func splitProceeds(balance asset.Amount, cfg *Config) (governance, staking asset.Amount, err error) {
	if cfg.Governance == nil || cfg.GovernancePercent == 0 {
		return asset.Amount{}, balance, nil
	}
	governance, err = balance.MulRatio(uint64(cfg.GovernancePercent), 100)
	if err != nil {
		return asset.Amount{}, asset.Amount{}, errors.Wrap(err, "governance share")
	}
	staking, err = balance.Sub(governance)
	if err != nil {
		return asset.Amount{}, asset.Amount{}, errors.Wrap(err, "staking share")
	}
	return governance, staking, nil
}
