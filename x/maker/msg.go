package maker

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"

	astroport "github.com/asteroidprotocol/astroport-core"
	"github.com/asteroidprotocol/astroport-core/asset"
	"github.com/asteroidprotocol/astroport-core/errors"
)

// Routing paths. Path method fulfills astroport.Msg to allow routing.
const (
	pathInstantiate           = "maker/instantiate"
	pathCollect               = "maker/collect"
	pathUpdateConfig          = "maker/update_config"
	pathProposeNewOwner       = "maker/propose_new_owner"
	pathDropOwnershipProposal = "maker/drop_ownership_proposal"
	pathClaimOwnership        = "maker/claim_ownership"
	pathDistribute            = "maker/distribute"
)

var (
	_ astroport.Msg = (*InstantiateMsg)(nil)
	_ astroport.Msg = (*CollectMsg)(nil)
	_ astroport.Msg = (*UpdateConfigMsg)(nil)
	_ astroport.Msg = (*ProposeNewOwnerMsg)(nil)
	_ astroport.Msg = (*DropOwnershipProposalMsg)(nil)
	_ astroport.Msg = (*ClaimOwnershipMsg)(nil)
	_ astroport.Msg = (*DistributeMsg)(nil)
)

// InstantiateMsg initializes the contract configuration.
type InstantiateMsg struct {
	Owner             astroport.Address `json:"owner"`
	TargetToken       asset.Asset       `json:"target_token"`
	Factory           astroport.Address `json:"factory_contract"`
	Staking           astroport.Address `json:"staking_contract"`
	Governance        astroport.Address `json:"governance_contract,omitempty"`
	GovernancePercent uint8             `json:"governance_percent"`
	// MaxSpread defaults to 5% when not provided.
	MaxSpread       *decimal.Decimal `json:"max_spread,omitempty"`
	CollectCooldown *uint64          `json:"collect_cooldown,omitempty"`
}

func (InstantiateMsg) Path() string {
	return pathInstantiate
}

func (m *InstantiateMsg) Validate() error {
	cfg := Config{
		Owner:             m.Owner,
		TargetToken:       m.TargetToken,
		Factory:           m.Factory,
		Staking:           m.Staking,
		Governance:        m.Governance,
		GovernancePercent: m.GovernancePercent,
		CollectCooldown:   m.CollectCooldown,
	}
	if m.MaxSpread != nil {
		cfg.MaxSpread = *m.MaxSpread
	}
	return cfg.Validate()
}

// AssetWithLimit names a fee asset to collect and optionally caps the
// quantity swapped in this invocation.
type AssetWithLimit struct {
	Info asset.Asset `json:"info"`
	// Limit caps the swapped quantity when the held balance exceeds
	// it. Zero or missing means the full balance.
	Limit *asset.Amount `json:"limit,omitempty"`
}

// CollectMsg swaps the named fee assets into the target token and
// distributes the proceeds. Assets lists assets explicitly; a missing
// pair for any of them is an error. Pairs names pair contracts whose
// assets are discovered opportunistically; assets without a direct
// pair to the target token are skipped.
type CollectMsg struct {
	Assets []AssetWithLimit    `json:"assets,omitempty"`
	Pairs  []astroport.Address `json:"pair_addresses,omitempty"`
}

func (CollectMsg) Path() string {
	return pathCollect
}

func (m *CollectMsg) Validate() error {
	seen := make(map[string]struct{}, len(m.Assets))
	for i, a := range m.Assets {
		if err := a.Info.Validate(); err != nil {
			return errors.Wrapf(err, "asset %d", i)
		}
		if a.Limit != nil {
			if err := a.Limit.Validate(); err != nil {
				return errors.Wrapf(err, "asset %d limit", i)
			}
		}
		if _, ok := seen[a.Info.ID()]; ok {
			return errors.Wrap(ErrDuplicatedAsset, a.Info.String())
		}
		seen[a.Info.ID()] = struct{}{}
	}
	for i, p := range m.Pairs {
		if err := p.Validate(); err != nil {
			return errors.Wrapf(err, "pair %d", i)
		}
	}
	return nil
}

// AddressUpdate is a three-state update descriptor for an optional
// address field: a nil *AddressUpdate leaves the stored value
// unchanged, the "unset" form clears it and the set form replaces it.
// A plain optional address cannot distinguish "no change" from
// "clear", hence this type.
type AddressUpdate struct {
	Set   astroport.Address
	Clear bool
}

var unsetJSON = []byte(`"unset"`)

// MarshalJSON encodes either {"set": addr} or "unset".
func (u AddressUpdate) MarshalJSON() ([]byte, error) {
	if u.Clear {
		return unsetJSON, nil
	}
	return json.Marshal(struct {
		Set astroport.Address `json:"set"`
	}{Set: u.Set})
}

// UnmarshalJSON decodes {"set": addr} or "unset".
func (u *AddressUpdate) UnmarshalJSON(raw []byte) error {
	if bytes.Equal(raw, unsetJSON) {
		*u = AddressUpdate{Clear: true}
		return nil
	}
	var obj struct {
		Set astroport.Address `json:"set"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	if obj.Set == nil {
		return errors.Wrap(errors.ErrInput, `expected {"set": address} or "unset"`)
	}
	*u = AddressUpdate{Set: obj.Set}
	return nil
}

// Validate returns an error unless exactly one variant is declared.
func (u *AddressUpdate) Validate() error {
	switch {
	case u.Clear && u.Set != nil:
		return errors.Wrap(errors.ErrInput, "both set and unset")
	case u.Clear:
		return nil
	default:
		return u.Set.Validate()
	}
}

// UpdateConfigMsg carries a partial configuration. Present fields
// overwrite the corresponding Config field, absent fields are left
// untouched. The target token is deliberately not updatable.
type UpdateConfigMsg struct {
	Factory           astroport.Address `json:"factory_contract,omitempty"`
	Staking           astroport.Address `json:"staking_contract,omitempty"`
	Governance        *AddressUpdate    `json:"governance_contract,omitempty"`
	GovernancePercent *uint8            `json:"governance_percent,omitempty"`
	MaxSpread         *decimal.Decimal  `json:"max_spread,omitempty"`
	CollectCooldown   *uint64           `json:"collect_cooldown,omitempty"`
}

func (UpdateConfigMsg) Path() string {
	return pathUpdateConfig
}

func (m *UpdateConfigMsg) Validate() error {
	if m.Factory != nil {
		if err := m.Factory.Validate(); err != nil {
			return errors.Wrap(err, "factory")
		}
	}
	if m.Staking != nil {
		if err := m.Staking.Validate(); err != nil {
			return errors.Wrap(err, "staking")
		}
	}
	if m.Governance != nil {
		if err := m.Governance.Validate(); err != nil {
			return errors.Wrap(err, "governance")
		}
	}
	// Range checks of percent, spread and cooldown happen against the
	// merged configuration in the handler, so that a partial update
	// cannot bypass cross field rules.
	return nil
}

// ProposeNewOwnerMsg creates a time bounded request to change the
// contract ownership, overwriting any previous proposal.
type ProposeNewOwnerMsg struct {
	Owner astroport.Address `json:"owner"`
	// ExpiresIn is the validity period of the proposal, in seconds.
	ExpiresIn uint64 `json:"expires_in"`
}

func (ProposeNewOwnerMsg) Path() string {
	return pathProposeNewOwner
}

func (m *ProposeNewOwnerMsg) Validate() error {
	if err := m.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	if m.ExpiresIn == 0 {
		return errors.Wrap(errors.ErrInput, "expires_in must be greater than zero")
	}
	return nil
}

// DropOwnershipProposalMsg removes the active ownership proposal, if
// any.
type DropOwnershipProposalMsg struct{}

func (DropOwnershipProposalMsg) Path() string {
	return pathDropOwnershipProposal
}

func (*DropOwnershipProposalMsg) Validate() error {
	return nil
}

// ClaimOwnershipMsg transfers ownership to the proposed candidate.
// Only the candidate itself can claim.
type ClaimOwnershipMsg struct{}

func (ClaimOwnershipMsg) Path() string {
	return pathClaimOwnership
}

func (*ClaimOwnershipMsg) Validate() error {
	return nil
}

// DistributeMsg splits the contract's target token balance between the
// governance and staking accounts. It is emitted by the contract to
// itself at the end of every collect chain so that distribution
// observes the post swap balance. Only the contract itself may send
// it.
type DistributeMsg struct{}

func (DistributeMsg) Path() string {
	return pathDistribute
}

func (*DistributeMsg) Validate() error {
	return nil
}
