package common

import (
	"fmt"
	"math/big"
)

// Mosaic is an amount of a mosaic, both id and amount are unsigned 64 bit values
type Mosaic struct {
	ID     *big.Int `json:"id"`
	Amount *big.Int `json:"amount"`
}

// Mosaics a list of mosaic
type Mosaics []Mosaic

// NewMosaic create a new instance of Mosaic
func NewMosaic(id, amount *big.Int) Mosaic {
	return Mosaic{
		ID:     id,
		Amount: amount,
	}
}

// IDHex returns the mosaic id as 16 hex characters, the form explorers display
func (m Mosaic) IDHex() string {
	if m.ID == nil {
		return ""
	}
	return fmt.Sprintf("%016X", m.ID)
}

// Equals check whether two mosaics have the same id and amount
func (m Mosaic) Equals(m1 Mosaic) bool {
	return bigEquals(m.ID, m1.ID) && bigEquals(m.Amount, m1.Amount)
}

// String implement fmt.Stringer
func (m Mosaic) String() string {
	return fmt.Sprintf("%s %s", m.Amount, m.IDHex())
}

func bigEquals(a, b *big.Int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Cmp(b) == 0
}
