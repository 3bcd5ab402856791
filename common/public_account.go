package common

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// PublicKeySize is the length in bytes of an ed25519 public key
const PublicKeySize = 32

// PublicAccount is a public key scoped to the network it was observed on
type PublicAccount struct {
	PublicKey   string      `json:"publicKey"`
	NetworkType NetworkType `json:"networkType"`
}

// NewPublicAccount create a new PublicAccount, the key must be a 32 byte hex string
func NewPublicAccount(publicKey string, networkType NetworkType) (PublicAccount, error) {
	buf, err := hex.DecodeString(publicKey)
	if err != nil {
		return PublicAccount{}, fmt.Errorf("fail to decode public key %q: %w", publicKey, err)
	}
	if len(buf) != PublicKeySize {
		return PublicAccount{}, fmt.Errorf("public key must be %d bytes, got %d", PublicKeySize, len(buf))
	}
	return PublicAccount{
		PublicKey:   strings.ToUpper(publicKey),
		NetworkType: networkType,
	}, nil
}

// Equals check whether two public accounts hold the same key on the same network
func (p PublicAccount) Equals(p1 PublicAccount) bool {
	return strings.EqualFold(p.PublicKey, p1.PublicKey) && p.NetworkType == p1.NetworkType
}

// IsEmpty to check whether it is empty
func (p PublicAccount) IsEmpty() bool {
	return len(p.PublicKey) == 0
}

// String stringer implementation
func (p PublicAccount) String() string {
	return p.PublicKey
}
