package maker

import (
	"encoding/json"
	"strconv"

	"github.com/shopspring/decimal"

	astroport "github.com/asteroidprotocol/astroport-core"
	"github.com/asteroidprotocol/astroport-core/asset"
	"github.com/asteroidprotocol/astroport-core/errors"
)

// ContractAddress is the well known address the maker contract is
// registered under. The contract holds the collected fee assets on
// this account.
var ContractAddress = astroport.NewCondition("maker", "treasury", nil).Address()

// Singleton keys, one record each, gconf style.
var (
	configKey      = []byte("_c:maker")
	proposalKey    = []byte("_p:maker")
	lastCollectKey = []byte("_t:maker")
)

const (
	// cooldownMin and cooldownMax bound the configurable collect
	// cooldown period, in seconds.
	cooldownMin uint64 = 30
	cooldownMax uint64 = 600
)

// decimalOne is the upper bound of the max spread fraction.
var decimalOne = decimal.NewFromInt(1)

// Config stores the main parameters of the maker contract.
type Config struct {
	// Owner is allowed to change contract parameters.
	Owner astroport.Address `json:"owner"`
	// TargetToken is the asset all fees are converted into. Fixed at
	// instantiation, never mutable.
	TargetToken asset.Asset `json:"target_token"`
	// Factory is the pair registry contract.
	Factory astroport.Address `json:"factory_contract"`
	// Staking receives the non-governance share of the proceeds.
	Staking astroport.Address `json:"staking_contract"`
	// Governance optionally receives a percentage of the proceeds.
	Governance astroport.Address `json:"governance_contract,omitempty"`
	// GovernancePercent of the proceeds goes to governance, [0, 100].
	GovernancePercent uint8 `json:"governance_percent"`
	// MaxSpread bounds the slippage of every swap, a fraction in
	// [0, 1].
	MaxSpread decimal.Decimal `json:"max_spread"`
	// CollectCooldown, when set, is the minimum number of seconds
	// between two collect invocations.
	CollectCooldown *uint64 `json:"collect_cooldown,omitempty"`
}

// Validate returns ErrInvalidConfig unless all parameters are within
// range and consistent.
func (c *Config) Validate() error {
	if err := c.Owner.Validate(); err != nil {
		return errors.Wrap(ErrInvalidConfig, "owner")
	}
	if err := c.TargetToken.Validate(); err != nil {
		return errors.Wrap(ErrInvalidConfig, "target token")
	}
	if err := c.Factory.Validate(); err != nil {
		return errors.Wrap(ErrInvalidConfig, "factory")
	}
	if err := c.Staking.Validate(); err != nil {
		return errors.Wrap(ErrInvalidConfig, "staking")
	}
	if c.GovernancePercent > 100 {
		return errors.Wrapf(ErrInvalidConfig, "governance percent %d out of [0, 100]", c.GovernancePercent)
	}
	if c.Governance == nil {
		// Without a destination there is nothing the governance share
		// could be paid to. Fail closed instead of burning it.
		if c.GovernancePercent != 0 {
			return errors.Wrap(ErrInvalidConfig, "governance percent set without governance contract")
		}
	} else if err := c.Governance.Validate(); err != nil {
		return errors.Wrap(ErrInvalidConfig, "governance")
	}
	if c.MaxSpread.IsNegative() || c.MaxSpread.GreaterThan(decimalOne) {
		return errors.Wrapf(ErrInvalidConfig, "max spread %s out of [0, 1]", c.MaxSpread)
	}
	if c.CollectCooldown != nil {
		if cd := *c.CollectCooldown; cd < cooldownMin || cd > cooldownMax {
			return errors.Wrapf(ErrInvalidConfig, "collect cooldown %d out of [%d, %d]",
				cd, cooldownMin, cooldownMax)
		}
	}
	return nil
}

// OwnershipProposal is a time bounded offer to transfer the owner
// role. At most one proposal is active at a time.
type OwnershipProposal struct {
	// ProposedOwner may claim ownership until the proposal expires.
	ProposedOwner astroport.Address `json:"proposed_owner"`
	// Expiry is the last moment the proposal can be claimed at,
	// inclusive.
	Expiry astroport.UnixTime `json:"expiry"`
}

// Validate returns an error unless the proposal is well formed.
func (p *OwnershipProposal) Validate() error {
	if err := p.ProposedOwner.Validate(); err != nil {
		return errors.Wrap(err, "proposed owner")
	}
	if err := p.Expiry.Validate(); err != nil {
		return errors.Wrap(err, "expiry")
	}
	if p.Expiry.IsZero() {
		return errors.Wrap(errors.ErrEmpty, "expiry")
	}
	return nil
}

func saveConfig(db astroport.KVStore, c *Config) error {
	if err := c.Validate(); err != nil {
		return err
	}
	raw, err := json.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "marshal config")
	}
	return db.Set(configKey, raw)
}

func loadConfig(db astroport.ReadOnlyKVStore) (*Config, error) {
	raw, err := db.Get(configKey)
	if err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	if raw == nil {
		return nil, errors.Wrap(errors.ErrNotFound, "no config")
	}
	var c Config
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	return &c, nil
}

func saveProposal(db astroport.KVStore, p *OwnershipProposal) error {
	if err := p.Validate(); err != nil {
		return err
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return errors.Wrap(err, "marshal proposal")
	}
	return db.Set(proposalKey, raw)
}

func loadProposal(db astroport.ReadOnlyKVStore) (*OwnershipProposal, error) {
	raw, err := db.Get(proposalKey)
	if err != nil {
		return nil, errors.Wrap(err, "load proposal")
	}
	if raw == nil {
		return nil, errors.Wrap(ErrNoActiveProposal, "ownership")
	}
	var p OwnershipProposal
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, errors.Wrap(err, "unmarshal proposal")
	}
	return &p, nil
}

func deleteProposal(db astroport.KVStore) error {
	return db.Delete(proposalKey)
}

func saveLastCollect(db astroport.KVStore, t astroport.UnixTime) error {
	return db.Set(lastCollectKey, []byte(strconv.FormatInt(int64(t), 10)))
}

func loadLastCollect(db astroport.ReadOnlyKVStore) (astroport.UnixTime, error) {
	raw, err := db.Get(lastCollectKey)
	if err != nil {
		return 0, errors.Wrap(err, "load last collect")
	}
	if raw == nil {
		return 0, nil
	}
	n, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return 0, errors.Wrap(errors.ErrState, "corrupted last collect timestamp")
	}
	return astroport.UnixTime(n), nil
}
