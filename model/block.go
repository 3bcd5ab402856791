package model

import (
	"fmt"
	"math/big"
	"time"

	"gitlab.com/nem2/catapult-sdk/common"
)

// BlockInfo a block and the metadata the node keeps about it
type BlockInfo struct {
	Hash                  string               `json:"hash"`
	GenerationHash        string               `json:"generationHash"`
	TotalFee              *big.Int             `json:"totalFee"`
	NumTransactions       *big.Int             `json:"numTransactions"`
	Signature             string               `json:"signature"`
	Signer                common.PublicAccount `json:"signer"`
	NetworkType           common.NetworkType   `json:"networkType"`
	Version               uint8                `json:"version"`
	Type                  uint16               `json:"type"`
	Height                *big.Int             `json:"height"`
	Timestamp             *big.Int             `json:"timestamp"`
	Difficulty            *big.Int             `json:"difficulty"`
	PreviousBlockHash     string               `json:"previousBlockHash"`
	BlockTransactionsHash string               `json:"blockTransactionsHash"`
}

// Time returns the block timestamp, which counts milliseconds since the nemesis block
func (b BlockInfo) Time() time.Time {
	if b.Timestamp == nil || !b.Timestamp.IsUint64() {
		return common.NemesisEpoch
	}
	return common.Deadline(b.Timestamp.Uint64()).Time()
}

// String implement fmt.Stringer
func (b BlockInfo) String() string {
	return fmt.Sprintf("block %s (%s) height: %s, txs: %s, signer: %s", b.Hash, b.NetworkType, b.Height, b.NumTransactions, b.Signer)
}

// BlockchainStorageInfo counters reported by /diagnostic/storage
type BlockchainStorageInfo struct {
	NumAccounts uint64 `json:"numAccounts"`
	NumBlocks   uint64 `json:"numBlocks"`
	// NumTransactions holds the block count, the node's own transaction counter is not read
	NumTransactions uint64 `json:"numTransactions"`
}
