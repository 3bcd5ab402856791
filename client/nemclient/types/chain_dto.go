package types

import (
	"math/big"

	"gitlab.com/nem2/catapult-sdk/common"
)

// HeightDTO response of /chain/height
type HeightDTO struct {
	Height *UInt64DTO `json:"height"`
}

// BlockchainScoreDTO response of /chain/score, the score is a 128 bit value split in two halves
type BlockchainScoreDTO struct {
	ScoreHigh *UInt64DTO `json:"scoreHigh"`
	ScoreLow  *UInt64DTO `json:"scoreLow"`
}

// Score joins both halves, nil when either half is missing
func (s BlockchainScoreDTO) Score() *big.Int {
	if s.ScoreHigh == nil || s.ScoreLow == nil {
		return nil
	}
	return common.UInt128FromParts(s.ScoreHigh.BigInt(), s.ScoreLow.BigInt())
}

// BlockchainStorageInfoDTO response of /diagnostic/storage
type BlockchainStorageInfoDTO struct {
	NumBlocks       *uint64 `json:"numBlocks"`
	NumTransactions *uint64 `json:"numTransactions"`
	NumAccounts     *uint64 `json:"numAccounts"`
}

// NetworkDTO response of /network
type NetworkDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
