package model

import (
	"fmt"
)

// TransactionType is the discriminator a node sends in the type field of a transaction
type TransactionType uint16

const (
	AggregateCompleteType     TransactionType = 0x4141
	AggregateBondedType       TransactionType = 0x4241
	MosaicDefinitionType      TransactionType = 0x414D
	MosaicSupplyChangeType    TransactionType = 0x424D
	RegisterNamespaceType     TransactionType = 0x414E
	TransferType              TransactionType = 0x4154
	ModifyMultisigAccountType TransactionType = 0x4155
	LockFundsType             TransactionType = 0x4148
	SecretLockType            TransactionType = 0x4152
	SecretProofType           TransactionType = 0x4252
)

var transactionTypeNames = map[TransactionType]string{
	AggregateCompleteType:     "aggregate_complete",
	AggregateBondedType:       "aggregate_bonded",
	MosaicDefinitionType:      "mosaic_definition",
	MosaicSupplyChangeType:    "mosaic_supply_change",
	RegisterNamespaceType:     "register_namespace",
	TransferType:              "transfer",
	ModifyMultisigAccountType: "modify_multisig_account",
	LockFundsType:             "lock_funds",
	SecretLockType:            "secret_lock",
	SecretProofType:           "secret_proof",
}

// IsKnown whether the type has a dedicated decoder
func (t TransactionType) IsKnown() bool {
	_, ok := transactionTypeNames[t]
	return ok
}

// String implement fmt.Stringer
func (t TransactionType) String() string {
	if name, ok := transactionTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("unknown(0x%04X)", uint16(t))
}

// NamespaceType whether a namespace is registered at the root or under a parent
type NamespaceType uint8

const (
	RootNamespace NamespaceType = 0
	SubNamespace  NamespaceType = 1
)

func (n NamespaceType) String() string {
	switch n {
	case RootNamespace:
		return "root"
	case SubNamespace:
		return "sub"
	}
	return fmt.Sprintf("unknown(%d)", uint8(n))
}

// MosaicSupplyType direction of a supply change
type MosaicSupplyType uint8

const (
	DecreaseSupply MosaicSupplyType = 0
	IncreaseSupply MosaicSupplyType = 1
)

func (m MosaicSupplyType) String() string {
	switch m {
	case DecreaseSupply:
		return "decrease"
	case IncreaseSupply:
		return "increase"
	}
	return fmt.Sprintf("unknown(%d)", uint8(m))
}

// MultisigModificationType adds or removes a cosignatory
type MultisigModificationType uint8

const (
	AddCosignatory    MultisigModificationType = 0
	RemoveCosignatory MultisigModificationType = 1
)

func (m MultisigModificationType) String() string {
	switch m {
	case AddCosignatory:
		return "add"
	case RemoveCosignatory:
		return "remove"
	}
	return fmt.Sprintf("unknown(%d)", uint8(m))
}

// HashType algorithm used to derive the secret of a secret lock
type HashType uint8

const (
	SHA3_512   HashType = 0
	KECCAK_512 HashType = 1
	HASH_160   HashType = 2
	SHA_256    HashType = 3
)

var hashTypeNames = map[HashType]string{
	SHA3_512:   "sha3_512",
	KECCAK_512: "keccak_512",
	HASH_160:   "hash_160",
	SHA_256:    "sha_256",
}

// Validate returns an error for algorithms a node does not support
func (h HashType) Validate() error {
	if _, ok := hashTypeNames[h]; !ok {
		return fmt.Errorf("hash type %d is not supported", uint8(h))
	}
	return nil
}

func (h HashType) String() string {
	if name, ok := hashTypeNames[h]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", uint8(h))
}
