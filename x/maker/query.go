package maker

import (
	"encoding/json"

	astroport "github.com/asteroidprotocol/astroport-core"
	"github.com/asteroidprotocol/astroport-core/asset"
	"github.com/asteroidprotocol/astroport-core/errors"
)

// Query paths.
const (
	QueryConfig   = "/maker/config"
	QueryBalances = "/maker/balances"
)

// RegisterQuery exposes this module's read-only endpoints.
func RegisterQuery(qr astroport.QueryRouter, bank Bank) {
	qr.RegisterQuery(QueryConfig, configQuery{})
	qr.RegisterQuery(QueryBalances, balancesQuery{bank: bank})
}

type configQuery struct{}

var _ astroport.QueryHandler = configQuery{}

// Query returns the stored configuration as JSON. The request payload
// is ignored.
func (configQuery) Query(db astroport.ReadOnlyKVStore, path string, data []byte) ([]byte, error) {
	cfg, err := loadConfig(db)
	if err != nil {
		return nil, err
	}
	raw, err := json.Marshal(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "marshal config")
	}
	return raw, nil
}

// BalancesRequest names the assets to report holdings for.
type BalancesRequest struct {
	Assets []asset.Asset `json:"assets"`
}

// BalancesResponse reports the contract's holdings of the requested
// assets, in request order.
type BalancesResponse struct {
	Balances []asset.AssetAmount `json:"balances"`
}

type balancesQuery struct {
	bank Bank
}

var _ astroport.QueryHandler = balancesQuery{}

// Query reports the contract's balance of every requested asset,
// including zero balances.
func (q balancesQuery) Query(db astroport.ReadOnlyKVStore, path string, data []byte) ([]byte, error) {
	var req BalancesRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	resp := BalancesResponse{Balances: make([]asset.AssetAmount, 0, len(req.Assets))}
	for _, a := range req.Assets {
		if err := a.Validate(); err != nil {
			return nil, errors.Wrap(err, "asset")
		}
		balance, err := q.bank.Balance(db, ContractAddress, a)
		if err != nil {
			return nil, errors.Wrap(err, "balance")
		}
		resp.Balances = append(resp.Balances, asset.AssetAmount{Info: a, Amount: balance})
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		return nil, errors.Wrap(err, "marshal response")
	}
	return raw, nil
}
