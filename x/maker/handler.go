package maker

import (
	"github.com/shopspring/decimal"

	astroport "github.com/asteroidprotocol/astroport-core"
	"github.com/asteroidprotocol/astroport-core/asset"
	"github.com/asteroidprotocol/astroport-core/errors"
	"github.com/asteroidprotocol/astroport-core/x"
)

// defaultMaxSpread is used when instantiation does not provide one.
var defaultMaxSpread = decimal.New(5, -2) // 5%

// Factory is the pair registry collaborator. It resolves which pair
// contract trades a given unordered pair of assets, and which assets a
// known pair contract trades. Implemented by the external factory
// contract; test doubles live in the astrotest package.
type Factory interface {
	// PairAddress returns the pair trading (a, b), or ErrNotFound when
	// no such pair is registered.
	PairAddress(db astroport.ReadOnlyKVStore, a, b asset.Asset) (astroport.Address, error)
	// PairAssets returns the two assets traded by the given pair
	// contract, or ErrNotFound for an unknown pair.
	PairAssets(db astroport.ReadOnlyKVStore, pair astroport.Address) (asset.Asset, asset.Asset, error)
}

// Bank reads account holdings. It is the only source of truth for the
// quantities to swap. Implemented by the bank extension's Controller.
type Bank interface {
	Balance(db astroport.ReadOnlyKVStore, holder astroport.Address, a asset.Asset) (asset.Amount, error)
}

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r astroport.Registry, auth x.Authenticator, factory Factory, bank Bank) {
	r.Handle(pathInstantiate, InstantiateHandler{})
	r.Handle(pathCollect, CollectHandler{factory: factory, bank: bank})
	r.Handle(pathDistribute, DistributeHandler{auth: auth, bank: bank})
	r.Handle(pathUpdateConfig, UpdateConfigHandler{auth: auth})
	r.Handle(pathProposeNewOwner, ProposeNewOwnerHandler{auth: auth})
	r.Handle(pathDropOwnershipProposal, DropOwnershipProposalHandler{auth: auth})
	r.Handle(pathClaimOwnership, ClaimOwnershipHandler{auth: auth})
}

// InstantiateHandler creates the contract configuration. It can run
// only once.
type InstantiateHandler struct{}

var _ astroport.Handler = InstantiateHandler{}

func (h InstantiateHandler) Check(ctx astroport.Context, db astroport.KVStore, m astroport.Msg) (*astroport.CheckResult, error) {
	if _, err := h.validate(ctx, db, m); err != nil {
		return nil, err
	}
	return &astroport.CheckResult{}, nil
}

func (h InstantiateHandler) Deliver(ctx astroport.Context, db astroport.KVStore, m astroport.Msg) (*astroport.DeliverResult, error) {
	msg, err := h.validate(ctx, db, m)
	if err != nil {
		return nil, err
	}

	maxSpread := defaultMaxSpread
	if msg.MaxSpread != nil {
		maxSpread = *msg.MaxSpread
	}
	cfg := Config{
		Owner:             msg.Owner,
		TargetToken:       msg.TargetToken,
		Factory:           msg.Factory,
		Staking:           msg.Staking,
		Governance:        msg.Governance,
		GovernancePercent: msg.GovernancePercent,
		MaxSpread:         maxSpread,
		CollectCooldown:   msg.CollectCooldown,
	}
	if err := saveConfig(db, &cfg); err != nil {
		return nil, err
	}

	// Seed the cooldown clock so that the first collect cannot bypass
	// a configured cooldown.
	now, err := astroport.BlockTime(ctx)
	if err != nil {
		return nil, err
	}
	if err := saveLastCollect(db, astroport.AsUnixTime(now)); err != nil {
		return nil, err
	}

	res := &astroport.DeliverResult{}
	res.AddTag("action", "instantiate")
	res.AddTag("owner", cfg.Owner.String())
	res.AddTag("target_token", cfg.TargetToken.String())
	res.AddTag("max_spread", cfg.MaxSpread.String())
	return res, nil
}

func (h InstantiateHandler) validate(ctx astroport.Context, db astroport.KVStore, m astroport.Msg) (*InstantiateMsg, error) {
	msg, ok := m.(*InstantiateMsg)
	if !ok {
		return nil, errors.WithType(errors.ErrMsg, m)
	}
	if err := msg.Validate(); err != nil {
		return nil, err
	}
	switch _, err := loadConfig(db); {
	case err == nil:
		return nil, errors.Wrap(errors.ErrState, "already instantiated")
	case errors.ErrNotFound.Is(err):
		// First run, all good.
	default:
		return nil, err
	}
	return msg, nil
}

// UpdateConfigHandler applies a partial configuration update. Only the
// current owner may call it.
type UpdateConfigHandler struct {
	auth x.Authenticator
}

var _ astroport.Handler = UpdateConfigHandler{}

func (h UpdateConfigHandler) Check(ctx astroport.Context, db astroport.KVStore, m astroport.Msg) (*astroport.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, m); err != nil {
		return nil, err
	}
	return &astroport.CheckResult{}, nil
}

func (h UpdateConfigHandler) Deliver(ctx astroport.Context, db astroport.KVStore, m astroport.Msg) (*astroport.DeliverResult, error) {
	msg, cfg, err := h.validate(ctx, db, m)
	if err != nil {
		return nil, err
	}

	res := &astroport.DeliverResult{}
	res.AddTag("action", "update_config")

	if msg.Factory != nil {
		cfg.Factory = msg.Factory
		res.AddTag("factory_contract", msg.Factory.String())
	}
	if msg.Staking != nil {
		cfg.Staking = msg.Staking
		res.AddTag("staking_contract", msg.Staking.String())
	}
	if msg.Governance != nil {
		if msg.Governance.Clear {
			cfg.Governance = nil
			res.AddTag("governance_contract", "unset")
		} else {
			cfg.Governance = msg.Governance.Set
			res.AddTag("governance_contract", msg.Governance.Set.String())
		}
	}
	if msg.GovernancePercent != nil {
		cfg.GovernancePercent = *msg.GovernancePercent
	}
	if msg.MaxSpread != nil {
		cfg.MaxSpread = *msg.MaxSpread
		res.AddTag("max_spread", msg.MaxSpread.String())
	}
	if msg.CollectCooldown != nil {
		cfg.CollectCooldown = msg.CollectCooldown
	}

	// saveConfig validates the merged configuration, so an update that
	// would leave it inconsistent fails here and the stored record
	// stays untouched.
	if err := saveConfig(db, cfg); err != nil {
		return nil, err
	}
	return res, nil
}

func (h UpdateConfigHandler) validate(ctx astroport.Context, db astroport.KVStore, m astroport.Msg) (*UpdateConfigMsg, *Config, error) {
	msg, ok := m.(*UpdateConfigMsg)
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
	if !h.auth.HasAddress(ctx, cfg.Owner) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "owner signature required")
	}
	return msg, cfg, nil
}

// ProposeNewOwnerHandler creates a request to change the contract
// ownership, overwriting any previous proposal.
type ProposeNewOwnerHandler struct {
	auth x.Authenticator
}

var _ astroport.Handler = ProposeNewOwnerHandler{}

func (h ProposeNewOwnerHandler) Check(ctx astroport.Context, db astroport.KVStore, m astroport.Msg) (*astroport.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, m); err != nil {
		return nil, err
	}
	return &astroport.CheckResult{}, nil
}

func (h ProposeNewOwnerHandler) Deliver(ctx astroport.Context, db astroport.KVStore, m astroport.Msg) (*astroport.DeliverResult, error) {
	msg, _, err := h.validate(ctx, db, m)
	if err != nil {
		return nil, err
	}
	now, err := astroport.BlockTime(ctx)
	if err != nil {
		return nil, err
	}
	proposal := OwnershipProposal{
		ProposedOwner: msg.Owner,
		Expiry:        astroport.AsUnixTime(now) + astroport.UnixTime(msg.ExpiresIn),
	}
	if err := saveProposal(db, &proposal); err != nil {
		return nil, err
	}
	res := &astroport.DeliverResult{}
	res.AddTag("action", "propose_new_owner")
	res.AddTag("proposed_owner", msg.Owner.String())
	return res, nil
}

func (h ProposeNewOwnerHandler) validate(ctx astroport.Context, db astroport.KVStore, m astroport.Msg) (*ProposeNewOwnerMsg, *Config, error) {
	msg, ok := m.(*ProposeNewOwnerMsg)
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
	if !h.auth.HasAddress(ctx, cfg.Owner) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "owner signature required")
	}
	return msg, cfg, nil
}

// DropOwnershipProposalHandler removes the active proposal. Dropping
// when no proposal exists is a no-op.
type DropOwnershipProposalHandler struct {
	auth x.Authenticator
}

var _ astroport.Handler = DropOwnershipProposalHandler{}

func (h DropOwnershipProposalHandler) Check(ctx astroport.Context, db astroport.KVStore, m astroport.Msg) (*astroport.CheckResult, error) {
	if err := h.validate(ctx, db, m); err != nil {
		return nil, err
	}
	return &astroport.CheckResult{}, nil
}

func (h DropOwnershipProposalHandler) Deliver(ctx astroport.Context, db astroport.KVStore, m astroport.Msg) (*astroport.DeliverResult, error) {
	if err := h.validate(ctx, db, m); err != nil {
		return nil, err
	}
	if err := deleteProposal(db); err != nil {
		return nil, err
	}
	res := &astroport.DeliverResult{}
	res.AddTag("action", "drop_ownership_proposal")
	return res, nil
}

func (h DropOwnershipProposalHandler) validate(ctx astroport.Context, db astroport.KVStore, m astroport.Msg) error {
	if _, ok := m.(*DropOwnershipProposalMsg); !ok {
		return errors.WithType(errors.ErrMsg, m)
	}
	cfg, err := loadConfig(db)
	if err != nil {
		return err
	}
	if !h.auth.HasAddress(ctx, cfg.Owner) {
		return errors.Wrap(errors.ErrUnauthorized, "owner signature required")
	}
	return nil
}

// ClaimOwnershipHandler transfers ownership to the proposed candidate.
type ClaimOwnershipHandler struct {
	auth x.Authenticator
}

var _ astroport.Handler = ClaimOwnershipHandler{}

func (h ClaimOwnershipHandler) Check(ctx astroport.Context, db astroport.KVStore, m astroport.Msg) (*astroport.CheckResult, error) {
	if _, err := h.validate(ctx, db, m); err != nil {
		return nil, err
	}
	return &astroport.CheckResult{}, nil
}

func (h ClaimOwnershipHandler) Deliver(ctx astroport.Context, db astroport.KVStore, m astroport.Msg) (*astroport.DeliverResult, error) {
	proposal, err := h.validate(ctx, db, m)
	if err != nil {
		return nil, err
	}
	cfg, err := loadConfig(db)
	if err != nil {
		return nil, err
	}
	cfg.Owner = proposal.ProposedOwner
	if err := saveConfig(db, cfg); err != nil {
		return nil, err
	}
	// Each proposal is single use.
	if err := deleteProposal(db); err != nil {
		return nil, err
	}
	res := &astroport.DeliverResult{}
	res.AddTag("action", "claim_ownership")
	res.AddTag("new_owner", cfg.Owner.String())
	return res, nil
}

func (h ClaimOwnershipHandler) validate(ctx astroport.Context, db astroport.KVStore, m astroport.Msg) (*OwnershipProposal, error) {
	if _, ok := m.(*ClaimOwnershipMsg); !ok {
		return nil, errors.WithType(errors.ErrMsg, m)
	}
	proposal, err := loadProposal(db)
	if err != nil {
		return nil, err
	}
	if !h.auth.HasAddress(ctx, proposal.ProposedOwner) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "only the proposed owner can claim")
	}
	expired, err := astroport.IsExpired(ctx, proposal.Expiry)
	if err != nil {
		return nil, err
	}
	if expired {
		return nil, errors.Wrapf(ErrProposalExpired, "expired at %s", proposal.Expiry)
	}
	return proposal, nil
}
