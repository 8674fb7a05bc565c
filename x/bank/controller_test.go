package bank

import (
	"testing"

	astroport "github.com/asteroidprotocol/astroport-core"
	"github.com/asteroidprotocol/astroport-core/asset"
	"github.com/asteroidprotocol/astroport-core/store"
)

func TestBalanceDefaultsToZero(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()
	holder := astroport.NewAddress([]byte("nobody"))

	got, err := ctrl.Balance(db, holder, asset.NativeAsset("uluna"))
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	if !got.IsZero() {
		t.Fatalf("want zero, got %s", got)
	}
}

func TestMoveCoins(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()
	alice := astroport.NewAddress([]byte("alice"))
	bob := astroport.NewAddress([]byte("bob"))
	uluna := asset.NativeAsset("uluna")

	if err := ctrl.IssueCoins(db, alice, asset.AssetAmount{Info: uluna, Amount: asset.NewAmount(100)}); err != nil {
		t.Fatalf("issue: %+v", err)
	}

	if err := ctrl.MoveCoins(db, alice, bob, asset.AssetAmount{Info: uluna, Amount: asset.NewAmount(30)}); err != nil {
		t.Fatalf("move: %+v", err)
	}

	aliceBalance, err := ctrl.Balance(db, alice, uluna)
	if err != nil {
		t.Fatalf("balance: %+v", err)
	}
	if !aliceBalance.Equals(asset.NewAmount(70)) {
		t.Fatalf("want 70, got %s", aliceBalance)
	}
	bobBalance, err := ctrl.Balance(db, bob, uluna)
	if err != nil {
		t.Fatalf("balance: %+v", err)
	}
	if !bobBalance.Equals(asset.NewAmount(30)) {
		t.Fatalf("want 30, got %s", bobBalance)
	}
}

func TestMoveCoinsInsufficientFunds(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()
	alice := astroport.NewAddress([]byte("alice"))
	bob := astroport.NewAddress([]byte("bob"))
	uluna := asset.NativeAsset("uluna")

	if err := ctrl.IssueCoins(db, alice, asset.AssetAmount{Info: uluna, Amount: asset.NewAmount(10)}); err != nil {
		t.Fatalf("issue: %+v", err)
	}
	err := ctrl.MoveCoins(db, alice, bob, asset.AssetAmount{Info: uluna, Amount: asset.NewAmount(11)})
	if !ErrInsufficientFunds.Is(err) {
		t.Fatalf("want insufficient funds, got %+v", err)
	}
}

func TestBalancesAreSeparatePerAsset(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()
	alice := astroport.NewAddress([]byte("alice"))
	roids := asset.TokenAsset(astroport.NewAddress([]byte("roids")))
	uluna := asset.NativeAsset("uluna")

	if err := ctrl.IssueCoins(db, alice, asset.AssetAmount{Info: roids, Amount: asset.NewAmount(5)}); err != nil {
		t.Fatalf("issue: %+v", err)
	}
	got, err := ctrl.Balance(db, alice, uluna)
	if err != nil {
		t.Fatalf("balance: %+v", err)
	}
	if !got.IsZero() {
		t.Fatalf("uluna balance must stay zero, got %s", got)
	}
}
