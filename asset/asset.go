package asset

import (
	"encoding/json"
	"regexp"

	astroport "github.com/asteroidprotocol/astroport-core"
	"github.com/asteroidprotocol/astroport-core/errors"
)

// isDenom validates native currency denominations.
var isDenom = regexp.MustCompile(`^[a-z][a-z0-9/]{2,15}$`).MatchString

// Asset identifies something tradable: either a fungible token living
// in its own contract, or a native currency denomination. Exactly one
// of the two fields is set. The identity is comparable and usable as a
// mapping key through ID.
type Asset struct {
	// Token is the token contract address, for contract based assets.
	Token astroport.Address
	// Native is the denomination, for native currency.
	Native string
}

// TokenAsset returns the asset identity of a token contract.
func TokenAsset(contract astroport.Address) Asset {
	return Asset{Token: contract}
}

// NativeAsset returns the asset identity of a native denomination.
func NativeAsset(denom string) Asset {
	return Asset{Native: denom}
}

// IsNative returns true for native currency assets.
func (a Asset) IsNative() bool {
	return len(a.Native) != 0
}

// ID returns a stable string identity, suitable as a map or store key.
func (a Asset) ID() string {
	if a.IsNative() {
		return a.Native
	}
	return a.Token.String()
}

// Equals compares asset identities.
func (a Asset) Equals(b Asset) bool {
	if a.IsNative() != b.IsNative() {
		return false
	}
	if a.IsNative() {
		return a.Native == b.Native
	}
	return a.Token.Equals(b.Token)
}

// Validate returns an error unless exactly one variant is set and well
// formed.
func (a Asset) Validate() error {
	switch {
	case a.IsNative() && len(a.Token) != 0:
		return errors.Wrap(errors.ErrState, "both token and native set")
	case a.IsNative():
		if !isDenom(a.Native) {
			return errors.Wrapf(errors.ErrInput, "invalid denom %q", a.Native)
		}
		return nil
	default:
		return a.Token.Validate()
	}
}

// String returns the asset identity in a human readable form.
func (a Asset) String() string {
	return a.ID()
}

// JSON uses a tagged object so that the variant survives the wire:
//
//	{"token": {"contract_addr": "astro1..."}}
//	{"native_token": {"denom": "uluna"}}
type assetJSON struct {
	Token  *tokenJSON  `json:"token,omitempty"`
	Native *nativeJSON `json:"native_token,omitempty"`
}

type tokenJSON struct {
	ContractAddr astroport.Address `json:"contract_addr"`
}

type nativeJSON struct {
	Denom string `json:"denom"`
}

// MarshalJSON encodes the tagged variant form.
func (a Asset) MarshalJSON() ([]byte, error) {
	var obj assetJSON
	if a.IsNative() {
		obj.Native = &nativeJSON{Denom: a.Native}
	} else {
		obj.Token = &tokenJSON{ContractAddr: a.Token}
	}
	return json.Marshal(obj)
}

// UnmarshalJSON decodes the tagged variant form.
func (a *Asset) UnmarshalJSON(raw []byte) error {
	var obj assetJSON
	if err := json.Unmarshal(raw, &obj); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	switch {
	case obj.Token != nil && obj.Native != nil:
		return errors.Wrap(errors.ErrInput, "both token and native_token set")
	case obj.Token != nil:
		*a = TokenAsset(obj.Token.ContractAddr)
	case obj.Native != nil:
		*a = NativeAsset(obj.Native.Denom)
	default:
		return errors.Wrap(errors.ErrInput, "unknown asset variant")
	}
	return a.Validate()
}

// AssetAmount pairs an asset identity with a held quantity.
type AssetAmount struct {
	Info   Asset  `json:"info"`
	Amount Amount `json:"amount"`
}

// Validate returns an error unless both parts are well formed.
func (aa AssetAmount) Validate() error {
	if err := aa.Info.Validate(); err != nil {
		return errors.Wrap(err, "info")
	}
	if err := aa.Amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	return nil
}

// String renders "123uluna" style output for logs.
func (aa AssetAmount) String() string {
	return aa.Amount.String() + " " + aa.Info.String()
}
