package bank

import (
	astroport "github.com/asteroidprotocol/astroport-core"
	"github.com/asteroidprotocol/astroport-core/asset"
	"github.com/asteroidprotocol/astroport-core/errors"
)

// ErrInsufficientFunds is returned when a transfer asks for more than
// the source account holds.
var ErrInsufficientFunds = errors.Register(120, "insufficient funds")

// ContractAddress is the well known address the ledger contract is
// registered under.
var ContractAddress = astroport.NewCondition("bank", "ledger", nil).Address()

// Controller manages the balances stored in the ledger without going
// through message processing. Other extensions use it for settlement.
type Controller struct{}

// NewController returns a ledger controller.
func NewController() Controller {
	return Controller{}
}

// balanceKey is "bank:<asset id>:<holder>". Asset IDs and the bech32
// address form contain no colon, so keys cannot collide.
func balanceKey(holder astroport.Address, a asset.Asset) []byte {
	return []byte("bank:" + a.ID() + ":" + holder.String())
}

// Balance returns the held quantity of the given asset. A holder
// without a record holds zero; this is not an error.
func (c Controller) Balance(db astroport.ReadOnlyKVStore, holder astroport.Address, a asset.Asset) (asset.Amount, error) {
	raw, err := db.Get(balanceKey(holder, a))
	if err != nil {
		return asset.Amount{}, errors.Wrap(err, "load balance")
	}
	if raw == nil {
		return asset.Amount{}, nil
	}
	amount, err := asset.ParseAmount(string(raw))
	if err != nil {
		return asset.Amount{}, errors.Wrap(err, "stored balance")
	}
	return amount, nil
}

func (c Controller) setBalance(db astroport.KVStore, holder astroport.Address, a asset.Asset, amount asset.Amount) error {
	key := balanceKey(holder, a)
	if amount.IsZero() {
		return db.Delete(key)
	}
	return db.Set(key, []byte(amount.String()))
}

// MoveCoins transfers the quantity between two accounts. Fails with
// ErrInsufficientFunds when the source does not hold enough.
func (c Controller) MoveCoins(db astroport.KVStore, src, dst astroport.Address, aa asset.AssetAmount) error {
	if aa.Amount.IsZero() {
		return errors.Wrap(errors.ErrAmount, "zero transfer")
	}
	srcBalance, err := c.Balance(db, src, aa.Info)
	if err != nil {
		return err
	}
	newSrc, err := srcBalance.Sub(aa.Amount)
	if err != nil {
		return errors.Wrapf(ErrInsufficientFunds, "%s holds %s, needs %s",
			src, srcBalance, aa.Amount)
	}
	dstBalance, err := c.Balance(db, dst, aa.Info)
	if err != nil {
		return err
	}
	newDst, err := dstBalance.Add(aa.Amount)
	if err != nil {
		return err
	}
	if err := c.setBalance(db, src, aa.Info, newSrc); err != nil {
		return err
	}
	return c.setBalance(db, dst, aa.Info, newDst)
}

// IssueCoins mints the quantity onto the given account. This is how
// trading fees appear in tests and how genesis state is seeded.
func (c Controller) IssueCoins(db astroport.KVStore, dst astroport.Address, aa asset.AssetAmount) error {
	balance, err := c.Balance(db, dst, aa.Info)
	if err != nil {
		return err
	}
	sum, err := balance.Add(aa.Amount)
	if err != nil {
		return err
	}
	return c.setBalance(db, dst, aa.Info, sum)
}
