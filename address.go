package astroport

import (
	"bytes"
	"crypto/sha256"
	"encoding/json"
	"fmt"

	"github.com/btcsuite/btcutil/bech32"

	"github.com/asteroidprotocol/astroport-core/errors"
)

// AddressLength is the length of all addresses. It must not change
// during the lifetime of a store as addresses are used as key parts.
const AddressLength = 20

// AddressPrefix is the human readable part of the bech32 text form.
const AddressPrefix = "astro"

// Address identifies an account: an externally owned one or a
// contract. It is a collision free, one way digest of the identity
// behind it.
type Address []byte

// NewAddress hashes and truncates into the proper size.
func NewAddress(data []byte) Address {
	h := sha256.Sum256(data)
	return Address(h[:AddressLength])
}

// ParseAddress decodes the bech32 text form of an address.
func ParseAddress(raw string) (Address, error) {
	hrp, payload, err := bech32.Decode(raw)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	if hrp != AddressPrefix {
		return nil, errors.Wrapf(errors.ErrInput, "unknown address prefix %q", hrp)
	}
	data, err := bech32.ConvertBits(payload, 5, 8, false)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	a := Address(data)
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// Equals checks if two addresses are the same.
func (a Address) Equals(b Address) bool {
	return bytes.Equal(a, b)
}

// Validate returns an error if the address is not the valid size.
func (a Address) Validate() error {
	if len(a) != AddressLength {
		return errors.Wrapf(errors.ErrInput, "invalid address length %d", len(a))
	}
	return nil
}

// Clone returns an independent copy of this address.
func (a Address) Clone() Address {
	if a == nil {
		return nil
	}
	cpy := make(Address, len(a))
	copy(cpy, a)
	return cpy
}

// String returns the bech32 text form of the address.
func (a Address) String() string {
	if len(a) == 0 {
		return "(nil)"
	}
	payload, err := bech32.ConvertBits(a, 8, 5, true)
	if err != nil {
		return fmt.Sprintf("(invalid: %s)", err)
	}
	enc, err := bech32.Encode(AddressPrefix, payload)
	if err != nil {
		return fmt.Sprintf("(invalid: %s)", err)
	}
	return enc
}

// MarshalJSON provides the bech32 text form for JSON to override the
// standard base64 []byte encoding.
func (a Address) MarshalJSON() ([]byte, error) {
	if a == nil {
		return []byte("null"), nil
	}
	return json.Marshal(a.String())
}

// UnmarshalJSON parses JSON in the bech32 text form.
func (a *Address) UnmarshalJSON(src []byte) error {
	if bytes.Equal(src, []byte("null")) {
		*a = nil
		return nil
	}
	var raw string
	if err := json.Unmarshal(src, &raw); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	addr, err := ParseAddress(raw)
	if err != nil {
		return err
	}
	*a = addr
	return nil
}

// Condition is a specification of a well known account derived from an
// extension name, a type and payload data. Conditions are not keys,
// they only declare who could have access to an address.
type Condition []byte

// NewCondition creates a condition for the given extension tuple.
func NewCondition(ext, typ string, data []byte) Condition {
	pre := fmt.Sprintf("%s/%s/", ext, typ)
	return append([]byte(pre), data...)
}

// Address derives the account address controlled by this condition.
func (c Condition) Address() Address {
	return NewAddress(c)
}

func (c Condition) String() string {
	return string(c)
}
