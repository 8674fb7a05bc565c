package maker

import (
	"testing"

	astroport "github.com/asteroidprotocol/astroport-core"
	"github.com/asteroidprotocol/astroport-core/asset"
	"github.com/asteroidprotocol/astroport-core/astrotest"
	"github.com/asteroidprotocol/astroport-core/astrotest/assert"
	"github.com/asteroidprotocol/astroport-core/errors"
	"github.com/asteroidprotocol/astroport-core/x"
	"github.com/asteroidprotocol/astroport-core/x/bank"
)

func TestSplitProceeds(t *testing.T) {
	governance := astrotest.SequenceAddress()
	cases := map[string]struct {
		balance     uint64
		percent     uint8
		governance  astroport.Address
		wantGov     uint64
		wantStaking uint64
	}{
		"even split": {
			balance: 1000, percent: 20, governance: governance,
			wantGov: 200, wantStaking: 800,
		},
		"rounding favors staking": {
			balance: 100, percent: 33, governance: governance,
			wantGov: 33, wantStaking: 67,
		},
		"no governance contract": {
			balance: 1000, percent: 0, governance: nil,
			wantGov: 0, wantStaking: 1000,
		},
		"full to governance": {
			balance: 1000, percent: 100, governance: governance,
			wantGov: 1000, wantStaking: 0,
		},
		"tiny balance rounds to zero": {
			balance: 1, percent: 20, governance: governance,
			wantGov: 0, wantStaking: 1,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := &Config{
				Governance:        tc.governance,
				GovernancePercent: tc.percent,
			}
			gov, staking, err := splitProceeds(asset.NewAmount(tc.balance), cfg)
			assert.Nil(t, err)
			if !gov.Equals(asset.NewAmount(tc.wantGov)) {
				t.Fatalf("want governance %d, got %s", tc.wantGov, gov)
			}
			if !staking.Equals(asset.NewAmount(tc.wantStaking)) {
				t.Fatalf("want staking %d, got %s", tc.wantStaking, staking)
			}
			// The shares always sum up to the full balance.
			sum, err := gov.Add(staking)
			assert.Nil(t, err)
			if !sum.Equals(asset.NewAmount(tc.balance)) {
				t.Fatalf("shares do not sum up: %s + %s != %d", gov, staking, tc.balance)
			}
		})
	}
}

func TestDistributeOnlySelf(t *testing.T) {
	f := newFixture(t)
	h := DistributeHandler{auth: x.CtxAuth{}, bank: bank.NewController()}

	_, err := h.Deliver(f.asOwner(), f.db, &DistributeMsg{})
	assert.IsErr(t, errors.ErrUnauthorized, err)
}

func TestDistributeEmitsTransfers(t *testing.T) {
	f := newFixture(t)
	ledger := bank.NewController()
	h := DistributeHandler{auth: x.CtxAuth{}, bank: ledger}

	governance := astrotest.SequenceAddress()
	percent := uint8(20)
	update := UpdateConfigHandler{auth: x.CtxAuth{}}
	_, err := update.Deliver(f.asOwner(), f.db, &UpdateConfigMsg{
		Governance:        &AddressUpdate{Set: governance},
		GovernancePercent: &percent,
	})
	assert.Nil(t, err)

	err = ledger.IssueCoins(f.db, ContractAddress, asset.AssetAmount{
		Info:   f.astro,
		Amount: asset.NewAmount(1000),
	})
	assert.Nil(t, err)

	asSelf := astrotest.Context(blockTime, ContractAddress)
	res, err := h.Deliver(asSelf, f.db, &DistributeMsg{})
	assert.Nil(t, err)

	assert.Equal(t, 2, len(res.Commands))
	govSend := res.Commands[0].Msg.(*bank.SendMsg)
	assert.Equal(t, bank.ContractAddress, res.Commands[0].Target)
	assert.Equal(t, governance, govSend.Dest)
	if !govSend.Amount.Amount.Equals(asset.NewAmount(200)) {
		t.Fatalf("want 200 to governance, got %s", govSend.Amount.Amount)
	}
	stakingSend := res.Commands[1].Msg.(*bank.SendMsg)
	assert.Equal(t, f.staking, stakingSend.Dest)
	if !stakingSend.Amount.Amount.Equals(asset.NewAmount(800)) {
		t.Fatalf("want 800 to staking, got %s", stakingSend.Amount.Amount)
	}
}

func TestDistributeStakingOnly(t *testing.T) {
	f := newFixture(t)
	ledger := bank.NewController()
	h := DistributeHandler{auth: x.CtxAuth{}, bank: ledger}

	err := ledger.IssueCoins(f.db, ContractAddress, asset.AssetAmount{
		Info:   f.astro,
		Amount: asset.NewAmount(500),
	})
	assert.Nil(t, err)

	asSelf := astrotest.Context(blockTime, ContractAddress)
	res, err := h.Deliver(asSelf, f.db, &DistributeMsg{})
	assert.Nil(t, err)

	assert.Equal(t, 1, len(res.Commands))
	send := res.Commands[0].Msg.(*bank.SendMsg)
	assert.Equal(t, f.staking, send.Dest)
	if !send.Amount.Amount.Equals(asset.NewAmount(500)) {
		t.Fatalf("want full balance to staking, got %s", send.Amount.Amount)
	}
}

func TestDistributeNothingToDo(t *testing.T) {
	f := newFixture(t)
	h := DistributeHandler{auth: x.CtxAuth{}, bank: bank.NewController()}

	asSelf := astrotest.Context(blockTime, ContractAddress)
	res, err := h.Deliver(asSelf, f.db, &DistributeMsg{})
	assert.Nil(t, err)
	assert.Equal(t, 0, len(res.Commands))
}
