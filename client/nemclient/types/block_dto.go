package types

// BlockInfoDTO response of /block/{height}
type BlockInfoDTO struct {
	Meta  *BlockMetaDTO `json:"meta"`
	Block *BlockDTO     `json:"block"`
}

type BlockMetaDTO struct {
	Hash           *string    `json:"hash"`
	GenerationHash *string    `json:"generationHash"`
	TotalFee       *UInt64DTO `json:"totalFee"`
	// NumTransactions is a plain number on recent nodes, older ones send the two words form
	NumTransactions *UInt64DTO `json:"numTransactions"`
}

type BlockDTO struct {
	Signature             *string    `json:"signature"`
	Signer                *string    `json:"signer"`
	Version               *uint32    `json:"version"`
	Type                  *uint16    `json:"type"`
	Height                *UInt64DTO `json:"height"`
	Timestamp             *UInt64DTO `json:"timestamp"`
	Difficulty            *UInt64DTO `json:"difficulty"`
	PreviousBlockHash     *string    `json:"previousBlockHash"`
	BlockTransactionsHash *string    `json:"blockTransactionsHash"`
}
