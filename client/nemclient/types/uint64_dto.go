package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"strconv"

	"gitlab.com/nem2/catapult-sdk/common"
)

// UInt64DTO is a 64 bit unsigned integer as a node sends it, [lower, higher] 32 bit words.
// Words may arrive as signed 32 bit values, they are read as their two's complement bits.
// A plain non negative number is accepted as well.
type UInt64DTO [2]uint32

// NewUInt64DTO create a new UInt64DTO from v
func NewUInt64DTO(v uint64) UInt64DTO {
	return UInt64DTO{uint32(v), uint32(v >> 32)}
}

// UnmarshalJSON implement json.Unmarshaler
func (u *UInt64DTO) UnmarshalJSON(buf []byte) error {
	buf = bytes.TrimSpace(buf)
	if bytes.Equal(buf, []byte("null")) {
		return nil
	}
	if len(buf) == 0 {
		return fmt.Errorf("expect a number or an array of two words")
	}
	if buf[0] != '[' {
		if buf[0] != '-' && (buf[0] < '0' || buf[0] > '9') {
			return fmt.Errorf("expect a number or an array of two words, got %s", buf)
		}
		var n json.Number
		if err := json.Unmarshal(buf, &n); err != nil {
			return fmt.Errorf("expect a number or an array of two words: %w", err)
		}
		v, err := strconv.ParseUint(n.String(), 10, 64)
		if err != nil {
			return fmt.Errorf("%s is not a 64 bit unsigned integer: %w", n, err)
		}
		*u = NewUInt64DTO(v)
		return nil
	}
	var words []json.Number
	if err := json.Unmarshal(buf, &words); err != nil {
		return fmt.Errorf("expect an array of two words: %w", err)
	}
	if len(words) != 2 {
		return fmt.Errorf("expect an array of two words, got %d", len(words))
	}
	var out UInt64DTO
	for i, w := range words {
		v, err := strconv.ParseInt(w.String(), 10, 64)
		if err != nil {
			return fmt.Errorf("word %d (%s) is not an integer: %w", i, w, err)
		}
		if v < math.MinInt32 || v > math.MaxUint32 {
			return fmt.Errorf("word %d (%d) does not fit in 32 bits", i, v)
		}
		out[i] = uint32(v)
	}
	*u = out
	return nil
}

// MarshalJSON writes the two words form
func (u UInt64DTO) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]uint32(u))
}

// Uint64 returns the joined value
func (u UInt64DTO) Uint64() uint64 {
	return uint64(u[1])<<32 | uint64(u[0])
}

// BigInt returns the joined value as a big.Int
func (u UInt64DTO) BigInt() *big.Int {
	return common.UInt64FromWords(u[0], u[1])
}
