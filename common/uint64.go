package common

import (
	"errors"
	"fmt"
	"math/big"
)

var maxUint64 = new(big.Int).SetUint64(^uint64(0))

// UInt64FromWords joins the two 32 bit words a node uses to transmit a 64 bit unsigned integer
func UInt64FromWords(lower, higher uint32) *big.Int {
	return new(big.Int).SetUint64(uint64(higher)<<32 | uint64(lower))
}

// UInt64ToWords splits v into its lower and higher 32 bit words, v must fit in 64 bits
func UInt64ToWords(v *big.Int) (lower, higher uint32, err error) {
	if v == nil {
		return 0, 0, errors.New("value is nil")
	}
	if v.Sign() < 0 || v.Cmp(maxUint64) > 0 {
		return 0, 0, fmt.Errorf("%s does not fit in 64 bits", v.String())
	}
	u := v.Uint64()
	return uint32(u), uint32(u >> 32), nil
}

// UInt128FromParts joins two 64 bit halves, used for the chain score
func UInt128FromParts(high, low *big.Int) *big.Int {
	out := new(big.Int).Lsh(high, 64)
	return out.Or(out, low)
}
