package common

import (
	"encoding/base32"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
)

// AddressSize is the length in bytes of a decoded catapult address
const AddressSize = 25

// Address is a catapult address in its plain base32 form
// Sample: SD5DT3CH4BLABL5HIMEKP2TAPUKF4NY3L5HRIR54
type Address string

// NoAddress empty address
var NoAddress = Address("")

// NewAddress create a new Address from its plain or pretty (dash separated) form
func NewAddress(address string) (Address, error) {
	plain := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(address), "-", ""))
	buf, err := base32.StdEncoding.DecodeString(plain)
	if err != nil {
		return NoAddress, fmt.Errorf("fail to decode address %q: %w", address, err)
	}
	return newAddressFromBytes(buf)
}

// NewAddressFromEncoded create a new Address from the hex encoding used on the wire
func NewAddressFromEncoded(encoded string) (Address, error) {
	buf, err := hex.DecodeString(encoded)
	if err != nil {
		return NoAddress, fmt.Errorf("fail to decode encoded address %q: %w", encoded, err)
	}
	return newAddressFromBytes(buf)
}

func newAddressFromBytes(buf []byte) (Address, error) {
	if len(buf) != AddressSize {
		return NoAddress, fmt.Errorf("address must be %d bytes, got %d", AddressSize, len(buf))
	}
	if _, err := NewNetworkTypeFromByte(buf[0]); err != nil {
		return NoAddress, fmt.Errorf("invalid address network: %w", err)
	}
	return Address(base32.StdEncoding.EncodeToString(buf)), nil
}

// NetworkType returns the network encoded in the first byte of the address
func (addr Address) NetworkType() NetworkType {
	buf, err := base32.StdEncoding.DecodeString(addr.String())
	if err != nil || len(buf) == 0 {
		return UnknownNetwork
	}
	return NetworkType(buf[0])
}

// Encoded returns the upper case hex form used on the wire
func (addr Address) Encoded() string {
	buf, err := base32.StdEncoding.DecodeString(addr.String())
	if err != nil {
		return ""
	}
	return strings.ToUpper(hex.EncodeToString(buf))
}

// Pretty returns the address split into groups of six characters
func (addr Address) Pretty() string {
	s := addr.String()
	var parts []string
	for len(s) > 6 {
		parts = append(parts, s[:6])
		s = s[6:]
	}
	return strings.Join(append(parts, s), "-")
}

func (addr Address) Equals(addr2 Address) bool {
	return strings.EqualFold(addr.String(), addr2.String())
}

func (addr Address) IsEmpty() bool {
	return strings.TrimSpace(addr.String()) == ""
}

func (addr Address) String() string {
	return string(addr)
}

// MarshalJSON writes the plain form
func (addr Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(addr.String())
}
