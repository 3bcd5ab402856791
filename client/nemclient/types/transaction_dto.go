package types

import (
	"encoding/json"
)

// TransactionEnvelopeDTO is one element of a transaction list, the transaction body is kept raw
// until its type is known
type TransactionEnvelopeDTO struct {
	Meta        *TransactionMetaDTO `json:"meta"`
	Transaction json.RawMessage     `json:"transaction"`
}

// TransactionMetaDTO where and how a transaction has been included
type TransactionMetaDTO struct {
	Height              *UInt64DTO `json:"height"`
	Hash                string     `json:"hash"`
	MerkleComponentHash string     `json:"merkleComponentHash"`
	Index               uint32     `json:"index"`
	ID                  string     `json:"id"`
	AggregateHash       string     `json:"aggregateHash"`
	AggregateID         string     `json:"aggregateId"`
}

// AbstractTransactionDTO fields every transaction carries, fee deadline and signature are
// absent for transactions embedded in an aggregate
type AbstractTransactionDTO struct {
	Type      *uint16    `json:"type"`
	Version   *uint32    `json:"version"`
	Fee       *UInt64DTO `json:"fee"`
	Deadline  *UInt64DTO `json:"deadline"`
	Signature *string    `json:"signature"`
	Signer    *string    `json:"signer"`
}

type MosaicDTO struct {
	ID     *UInt64DTO `json:"id"`
	Amount *UInt64DTO `json:"amount"`
}

type MessageDTO struct {
	Type    uint8  `json:"type"`
	Payload string `json:"payload"`
}

type TransferTransactionDTO struct {
	AbstractTransactionDTO
	Recipient *string     `json:"recipient"`
	Mosaics   []MosaicDTO `json:"mosaics"`
	Message   *MessageDTO `json:"message"`
}

type RegisterNamespaceTransactionDTO struct {
	AbstractTransactionDTO
	NamespaceType *uint8     `json:"namespaceType"`
	Name          *string    `json:"name"`
	NamespaceID   *UInt64DTO `json:"namespaceId"`
	Duration      *UInt64DTO `json:"duration"`
	ParentID      *UInt64DTO `json:"parentId"`
}

type MosaicDefinitionTransactionDTO struct {
	AbstractTransactionDTO
	ParentID   *UInt64DTO  `json:"parentId"`
	MosaicID   *UInt64DTO  `json:"mosaicId"`
	Name       *string     `json:"name"`
	Properties []UInt64DTO `json:"properties"`
}

type MosaicSupplyChangeTransactionDTO struct {
	AbstractTransactionDTO
	MosaicID  *UInt64DTO `json:"mosaicId"`
	Direction *uint8     `json:"direction"`
	Delta     *UInt64DTO `json:"delta"`
}

type MultisigModificationDTO struct {
	Type                 *uint8  `json:"type"`
	CosignatoryPublicKey *string `json:"cosignatoryPublicKey"`
}

type ModifyMultisigAccountTransactionDTO struct {
	AbstractTransactionDTO
	MinApprovalDelta int8                      `json:"minApprovalDelta"`
	MinRemovalDelta  int8                      `json:"minRemovalDelta"`
	Modifications    []MultisigModificationDTO `json:"modifications"`
}

type CosignatureDTO struct {
	Signature string  `json:"signature"`
	Signer    *string `json:"signer"`
}

type AggregateTransactionDTO struct {
	AbstractTransactionDTO
	Transactions []json.RawMessage `json:"transactions"`
	Cosignatures []CosignatureDTO  `json:"cosignatures"`
}

type LockFundsTransactionDTO struct {
	AbstractTransactionDTO
	MosaicID *UInt64DTO `json:"mosaicId"`
	Amount   *UInt64DTO `json:"amount"`
	Duration *UInt64DTO `json:"duration"`
	Hash     *string    `json:"hash"`
}

type SecretLockTransactionDTO struct {
	AbstractTransactionDTO
	MosaicID      *UInt64DTO `json:"mosaicId"`
	Amount        *UInt64DTO `json:"amount"`
	Duration      *UInt64DTO `json:"duration"`
	HashAlgorithm *uint8     `json:"hashAlgorithm"`
	Secret        *string    `json:"secret"`
	Recipient     *string    `json:"recipient"`
}

type SecretProofTransactionDTO struct {
	AbstractTransactionDTO
	HashAlgorithm *uint8  `json:"hashAlgorithm"`
	Secret        *string `json:"secret"`
	Proof         *string `json:"proof"`
}
