package model

import (
	"encoding/json"
	"fmt"
	"math/big"

	"gitlab.com/nem2/catapult-sdk/common"
)

// Transaction is implemented by every transaction kind a block can contain
type Transaction interface {
	GetAbstractTransaction() *AbstractTransaction
	String() string
}

// TransactionInfo where a transaction was included, aggregate fields are only set on
// transactions embedded in an aggregate
type TransactionInfo struct {
	Height              *big.Int `json:"height"`
	Index               uint32   `json:"index"`
	ID                  string   `json:"id"`
	Hash                string   `json:"hash,omitempty"`
	MerkleComponentHash string   `json:"merkleComponentHash,omitempty"`
	AggregateHash       string   `json:"aggregateHash,omitempty"`
	AggregateID         string   `json:"aggregateId,omitempty"`
}

// IsAggregateInner whether the transaction was embedded in an aggregate
func (t TransactionInfo) IsAggregateInner() bool {
	return len(t.AggregateHash) > 0 || len(t.AggregateID) > 0
}

// AbstractTransaction fields shared by all transaction kinds
type AbstractTransaction struct {
	Type            TransactionType      `json:"type"`
	NetworkType     common.NetworkType   `json:"networkType"`
	Version         uint8                `json:"version"`
	Fee             *big.Int             `json:"fee,omitempty"`
	Deadline        common.Deadline      `json:"deadline,omitempty"`
	Signature       string               `json:"signature,omitempty"`
	Signer          common.PublicAccount `json:"signer"`
	TransactionInfo *TransactionInfo     `json:"transactionInfo,omitempty"`
}

// GetAbstractTransaction implement Transaction
func (t *AbstractTransaction) GetAbstractTransaction() *AbstractTransaction {
	return t
}

func (t *AbstractTransaction) String() string {
	return fmt.Sprintf("%s v%d (%s) signer: %s", t.Type, t.Version, t.NetworkType, t.Signer)
}

// MessageType how the payload of a message is encoded
type MessageType uint8

// PlainMessage the payload is plain text
const PlainMessage MessageType = 0

// Message attached to a transfer
type Message struct {
	Type    MessageType `json:"type"`
	Payload string      `json:"payload"`
}

type TransferTransaction struct {
	AbstractTransaction
	Recipient common.Address `json:"recipient"`
	Mosaics   common.Mosaics `json:"mosaics"`
	Message   Message        `json:"message"`
}

func (t *TransferTransaction) String() string {
	return fmt.Sprintf("%s to: %s, mosaics: %v, message: %q", t.AbstractTransaction.String(), t.Recipient, t.Mosaics, t.Message.Payload)
}

type RegisterNamespaceTransaction struct {
	AbstractTransaction
	NamespaceType NamespaceType `json:"namespaceType"`
	NamespaceName string        `json:"namespaceName"`
	NamespaceID   *big.Int      `json:"namespaceId"`
	// Duration is only set on root namespaces
	Duration *big.Int `json:"duration,omitempty"`
	// ParentID is only set on sub namespaces
	ParentID *big.Int `json:"parentId,omitempty"`
}

func (t *RegisterNamespaceTransaction) String() string {
	return fmt.Sprintf("%s %s namespace: %s", t.AbstractTransaction.String(), t.NamespaceType, t.NamespaceName)
}

// Mosaic property flag bits
const (
	supplyMutableFlag = 1
	transferableFlag  = 2
	levyMutableFlag   = 4
)

type MosaicProperties struct {
	SupplyMutable bool     `json:"supplyMutable"`
	Transferable  bool     `json:"transferable"`
	LevyMutable   bool     `json:"levyMutable"`
	Divisibility  uint8    `json:"divisibility"`
	Duration      *big.Int `json:"duration"`
}

// NewMosaicProperties create a new MosaicProperties from the flags bit set
func NewMosaicProperties(flags uint64, divisibility uint8, duration *big.Int) MosaicProperties {
	return MosaicProperties{
		SupplyMutable: flags&supplyMutableFlag != 0,
		Transferable:  flags&transferableFlag != 0,
		LevyMutable:   flags&levyMutableFlag != 0,
		Divisibility:  divisibility,
		Duration:      duration,
	}
}

type MosaicDefinitionTransaction struct {
	AbstractTransaction
	NamespaceID      *big.Int         `json:"namespaceId"`
	MosaicID         *big.Int         `json:"mosaicId"`
	MosaicName       string           `json:"mosaicName"`
	MosaicProperties MosaicProperties `json:"properties"`
}

func (t *MosaicDefinitionTransaction) String() string {
	return fmt.Sprintf("%s mosaic: %s divisibility: %d", t.AbstractTransaction.String(), t.MosaicName, t.MosaicProperties.Divisibility)
}

type MosaicSupplyChangeTransaction struct {
	AbstractTransaction
	MosaicID   *big.Int         `json:"mosaicId"`
	SupplyType MosaicSupplyType `json:"supplyType"`
	Delta      *big.Int         `json:"delta"`
}

func (t *MosaicSupplyChangeTransaction) String() string {
	return fmt.Sprintf("%s %s %s by %s", t.AbstractTransaction.String(), t.SupplyType, t.MosaicID, t.Delta)
}

type MultisigCosignatoryModification struct {
	Type        MultisigModificationType `json:"type"`
	Cosignatory common.PublicAccount     `json:"cosignatory"`
}

type ModifyMultisigAccountTransaction struct {
	AbstractTransaction
	MinApprovalDelta int8                              `json:"minApprovalDelta"`
	MinRemovalDelta  int8                              `json:"minRemovalDelta"`
	Modifications    []MultisigCosignatoryModification `json:"modifications"`
}

func (t *ModifyMultisigAccountTransaction) String() string {
	return fmt.Sprintf("%s approval: %+d removal: %+d modifications: %d", t.AbstractTransaction.String(), t.MinApprovalDelta, t.MinRemovalDelta, len(t.Modifications))
}

type AggregateTransactionCosignature struct {
	Signature string               `json:"signature"`
	Signer    common.PublicAccount `json:"signer"`
}

// AggregateTransaction either complete or bonded, depending on its type
type AggregateTransaction struct {
	AbstractTransaction
	InnerTransactions []Transaction                     `json:"innerTransactions"`
	Cosignatures      []AggregateTransactionCosignature `json:"cosignatures"`
}

func (t *AggregateTransaction) String() string {
	return fmt.Sprintf("%s inner: %d cosignatures: %d", t.AbstractTransaction.String(), len(t.InnerTransactions), len(t.Cosignatures))
}

type LockFundsTransaction struct {
	AbstractTransaction
	Mosaic   common.Mosaic `json:"mosaic"`
	Duration *big.Int      `json:"duration"`
	Hash     string        `json:"hash"`
}

func (t *LockFundsTransaction) String() string {
	return fmt.Sprintf("%s lock: %s hash: %s", t.AbstractTransaction.String(), t.Mosaic, t.Hash)
}

type SecretLockTransaction struct {
	AbstractTransaction
	Mosaic    common.Mosaic  `json:"mosaic"`
	Duration  *big.Int       `json:"duration"`
	HashType  HashType       `json:"hashType"`
	Secret    string         `json:"secret"`
	Recipient common.Address `json:"recipient"`
}

func (t *SecretLockTransaction) String() string {
	return fmt.Sprintf("%s lock: %s to: %s %s: %s", t.AbstractTransaction.String(), t.Mosaic, t.Recipient, t.HashType, t.Secret)
}

type SecretProofTransaction struct {
	AbstractTransaction
	HashType HashType `json:"hashType"`
	Secret   string   `json:"secret"`
	Proof    string   `json:"proof"`
}

func (t *SecretProofTransaction) String() string {
	return fmt.Sprintf("%s %s: %s proof: %s", t.AbstractTransaction.String(), t.HashType, t.Secret, t.Proof)
}

// UnknownTransaction a transaction of a type without decoder, Raw is the transaction as received
type UnknownTransaction struct {
	AbstractTransaction
	Raw json.RawMessage `json:"raw"`
}

func (t *UnknownTransaction) String() string {
	return fmt.Sprintf("%s raw: %s", t.AbstractTransaction.String(), string(t.Raw))
}
