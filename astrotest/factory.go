package astrotest

import (
	astroport "github.com/asteroidprotocol/astroport-core"
	"github.com/asteroidprotocol/astroport-core/asset"
	"github.com/asteroidprotocol/astroport-core/errors"
)

type pairEntry struct {
	addr astroport.Address
	a, b asset.Asset
}

// Factory is an in-memory pair registry. Pairs are registered directly
// instead of being created through messages.
type Factory struct {
	pairs []pairEntry
}

// Register declares that the pair contract at addr trades (a, b). Order
// of the two assets does not matter for lookups.
func (f *Factory) Register(addr astroport.Address, a, b asset.Asset) {
	f.pairs = append(f.pairs, pairEntry{addr: addr, a: a, b: b})
}

// PairAddress returns the registered pair trading (a, b), or
// ErrNotFound.
func (f *Factory) PairAddress(db astroport.ReadOnlyKVStore, a, b asset.Asset) (astroport.Address, error) {
	for _, p := range f.pairs {
		if (p.a.Equals(a) && p.b.Equals(b)) || (p.a.Equals(b) && p.b.Equals(a)) {
			return p.addr, nil
		}
	}
	return nil, errors.Wrapf(errors.ErrNotFound, "no pair for %s and %s", a, b)
}

// PairAssets returns the two assets traded by the given pair contract,
// or ErrNotFound for an unknown address.
func (f *Factory) PairAssets(db astroport.ReadOnlyKVStore, addr astroport.Address) (asset.Asset, asset.Asset, error) {
	for _, p := range f.pairs {
		if p.addr.Equals(addr) {
			return p.a, p.b, nil
		}
	}
	return asset.Asset{}, asset.Asset{}, errors.Wrapf(errors.ErrNotFound, "no pair at %s", addr)
}
