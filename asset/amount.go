package asset

import (
	"encoding/json"
	"math/big"

	"github.com/asteroidprotocol/astroport-core/errors"
)

// maxAmount is the largest quantity we accept: 2^128 - 1. Token
// supplies fit comfortably, and a fixed upper bound gives overflow a
// defined meaning.
var maxAmount = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))

// Amount is a non-negative token quantity with 128 bit range. The
// external representation is a base-10 string, the way token amounts
// travel in JSON. The zero value is a valid zero amount.
//
// Amount is immutable. Every operation returns a new value and never
// modifies the receiver.
type Amount struct {
	i *big.Int
}

// NewAmount returns an amount representing the given value.
func NewAmount(value uint64) Amount {
	return Amount{i: new(big.Int).SetUint64(value)}
}

// ParseAmount parses a base-10 string into an amount.
func ParseAmount(raw string) (Amount, error) {
	i, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return Amount{}, errors.Wrapf(errors.ErrInput, "invalid amount %q", raw)
	}
	if i.Sign() < 0 {
		return Amount{}, errors.Wrapf(errors.ErrAmount, "negative amount %q", raw)
	}
	if i.Cmp(maxAmount) > 0 {
		return Amount{}, errors.Wrapf(errors.ErrOverflow, "amount %q", raw)
	}
	return Amount{i: i}, nil
}

func (a Amount) value() *big.Int {
	if a.i == nil {
		return new(big.Int)
	}
	return a.i
}

// IsZero returns true for a zero quantity.
func (a Amount) IsZero() bool {
	return a.i == nil || a.i.Sign() == 0
}

// Cmp compares two amounts: -1 when a < b, 0 when equal, 1 when a > b.
func (a Amount) Cmp(b Amount) int {
	return a.value().Cmp(b.value())
}

// Equals returns true if both amounts represent the same quantity.
func (a Amount) Equals(b Amount) bool {
	return a.Cmp(b) == 0
}

// Add returns the sum of two amounts. Fails with ErrOverflow when the
// result exceeds the 128 bit range.
func (a Amount) Add(b Amount) (Amount, error) {
	sum := new(big.Int).Add(a.value(), b.value())
	if sum.Cmp(maxAmount) > 0 {
		return Amount{}, errors.Wrap(errors.ErrOverflow, "amount addition")
	}
	return Amount{i: sum}, nil
}

// Sub returns the difference of two amounts. Fails with ErrAmount when
// the result would be negative; quantities are unsigned.
func (a Amount) Sub(b Amount) (Amount, error) {
	if a.Cmp(b) < 0 {
		return Amount{}, errors.Wrap(errors.ErrAmount, "amount underflow")
	}
	return Amount{i: new(big.Int).Sub(a.value(), b.value())}, nil
}

// MulRatio returns floor(a * num / den), computed exactly in big
// integer arithmetic so no intermediate overflow is possible.
func (a Amount) MulRatio(num, den uint64) (Amount, error) {
	if den == 0 {
		return Amount{}, errors.Wrap(errors.ErrInput, "zero denominator")
	}
	r := new(big.Int).Mul(a.value(), new(big.Int).SetUint64(num))
	r.Quo(r, new(big.Int).SetUint64(den))
	if r.Cmp(maxAmount) > 0 {
		return Amount{}, errors.Wrap(errors.ErrOverflow, "amount ratio")
	}
	return Amount{i: r}, nil
}

// String returns the base-10 representation.
func (a Amount) String() string {
	return a.value().String()
}

// MarshalJSON encodes the amount as a base-10 string.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON decodes a base-10 string into the amount.
func (a *Amount) UnmarshalJSON(raw []byte) error {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return errors.Wrap(errors.ErrInput, "amount must be a string")
	}
	parsed, err := ParseAmount(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Validate returns an error if the amount is outside of its range.
func (a Amount) Validate() error {
	if a.i == nil {
		return nil
	}
	if a.i.Sign() < 0 {
		return errors.Wrap(errors.ErrAmount, "negative amount")
	}
	if a.i.Cmp(maxAmount) > 0 {
		return errors.Wrap(errors.ErrOverflow, "amount")
	}
	return nil
}
