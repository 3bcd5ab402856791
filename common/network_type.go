package common

import (
	"encoding/json"
	"fmt"
	"strings"
)

// NetworkType is to indicate which catapult network environment keys and addresses belong to
type NetworkType uint8

const (
	// UnknownNetwork is the zero value, never sent by a node
	UnknownNetwork NetworkType = 0
	// MainNet public main network
	MainNet NetworkType = 0x68
	// TestNet public test network
	TestNet NetworkType = 0x98
	// Mijin private network
	Mijin NetworkType = 0x60
	// MijinTest private test network
	MijinTest NetworkType = 0x90
)

var networkTypeNames = map[NetworkType]string{
	MainNet:   "public",
	TestNet:   "publicTest",
	Mijin:     "mijin",
	MijinTest: "mijinTest",
}

// NewNetworkTypeFromName maps the name reported by a node's /network endpoint to a NetworkType
func NewNetworkTypeFromName(name string) (NetworkType, error) {
	for nt, n := range networkTypeNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return nt, nil
		}
	}
	return UnknownNetwork, fmt.Errorf("network %q is not supported", name)
}

// NewNetworkTypeFromByte maps the high byte of an entity version to a NetworkType
func NewNetworkTypeFromByte(b uint8) (NetworkType, error) {
	nt := NetworkType(b)
	if err := nt.Validate(); err != nil {
		return UnknownNetwork, err
	}
	return nt, nil
}

// Validate returns an error when the network type is not one of the known networks
func (n NetworkType) Validate() error {
	if _, ok := networkTypeNames[n]; !ok {
		return fmt.Errorf("network type 0x%02x is not supported", uint8(n))
	}
	return nil
}

// IsEmpty is to determinate whether the network type has been resolved
func (n NetworkType) IsEmpty() bool {
	return n == UnknownNetwork
}

// String implement fmt.Stringer
func (n NetworkType) String() string {
	if name, ok := networkTypeNames[n]; ok {
		return name
	}
	return fmt.Sprintf("unknown(0x%02x)", uint8(n))
}

// MarshalJSON writes the network name
func (n NetworkType) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.String())
}
