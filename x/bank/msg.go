package bank

import (
	astroport "github.com/asteroidprotocol/astroport-core"
	"github.com/asteroidprotocol/astroport-core/asset"
	"github.com/asteroidprotocol/astroport-core/errors"
)

const pathSend = "bank/send"

var _ astroport.Msg = (*SendMsg)(nil)

// SendMsg transfers a quantity from the message sender to Dest.
type SendMsg struct {
	Dest   astroport.Address `json:"dest"`
	Amount asset.AssetAmount `json:"amount"`
}

// Path fulfills astroport.Msg to allow routing.
func (SendMsg) Path() string {
	return pathSend
}

// Validate makes sure basic rules are enforced upon input data.
func (m *SendMsg) Validate() error {
	if err := m.Dest.Validate(); err != nil {
		return errors.Wrap(err, "dest")
	}
	if err := m.Amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if m.Amount.Amount.IsZero() {
		return errors.Wrap(errors.ErrAmount, "zero transfer")
	}
	return nil
}
