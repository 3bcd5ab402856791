package nemclient

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"

	"github.com/pkg/errors"

	"gitlab.com/nem2/catapult-sdk/client/config"
	"gitlab.com/nem2/catapult-sdk/client/metrics"
	"gitlab.com/nem2/catapult-sdk/client/nemclient/types"
	"gitlab.com/nem2/catapult-sdk/common"
	"gitlab.com/nem2/catapult-sdk/model"
)

// BlockchainClient queries blocks and chain state from a node
type BlockchainClient struct {
	*nodeClient
	network NetworkTypeResolver
}

// NewBlockchainClient create a new instance of BlockchainClient. The network type comes from the
// configuration when it is set, otherwise it is asked to the node the first time it is needed.
func NewBlockchainClient(cfg config.ClientConfiguration, m *metrics.Metrics) (*BlockchainClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid client configuration")
	}
	var resolver NetworkTypeResolver
	if nt := cfg.GetNetworkType(); !nt.IsEmpty() {
		resolver = FixedNetworkType(nt)
	} else {
		nc, err := NewNetworkClient(cfg, m)
		if err != nil {
			return nil, errors.Wrap(err, "fail to create network client")
		}
		resolver = nc
	}
	return NewBlockchainClientWithResolver(cfg, m, resolver)
}

// NewBlockchainClientWithResolver create a new instance of BlockchainClient that uses resolver for the network type
func NewBlockchainClientWithResolver(cfg config.ClientConfiguration, m *metrics.Metrics, resolver NetworkTypeResolver) (*BlockchainClient, error) {
	if resolver == nil {
		return nil, errors.New("network type resolver is nil")
	}
	nc, err := newNodeClient("blockchain_client", cfg, m)
	if err != nil {
		return nil, err
	}
	return &BlockchainClient{
		nodeClient: nc,
		network:    resolver,
	}, nil
}

// GetBlockByHeight returns the block at the given height
func (b *BlockchainClient) GetBlockByHeight(ctx context.Context, height uint64) (*model.BlockInfo, error) {
	networkType, err := b.network.GetNetworkType(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "fail to resolve network type")
	}
	buf, err := b.get(ctx, BlockEndpoint, fmt.Sprintf(BlockEndpoint, height), "")
	if err != nil {
		return nil, errors.Wrapf(err, "fail to get block %d", height)
	}
	block, err := mapBlockInfo(buf, networkType)
	if err != nil {
		b.errCounter.WithLabelValues("fail_unmarshal_block", strconv.FormatUint(height, 10)).Inc()
		return nil, errors.Wrapf(withPayload(buf, err), "fail to decode block %d", height)
	}
	return block, nil
}

// GetBlockTransactions returns the transactions of the block at the given height in the order
// the node lists them, params is optional
func (b *BlockchainClient) GetBlockTransactions(ctx context.Context, height uint64, params *QueryParams) ([]model.Transaction, error) {
	if err := params.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid query params")
	}
	buf, err := b.get(ctx, BlockTransactionsEndpoint, fmt.Sprintf(BlockTransactionsEndpoint, height), params.Encode())
	if err != nil {
		return nil, errors.Wrapf(err, "fail to get transactions of block %d", height)
	}
	txs, err := mapTransactions(buf)
	if err != nil {
		b.errCounter.WithLabelValues("fail_unmarshal_transactions", strconv.FormatUint(height, 10)).Inc()
		return nil, errors.Wrapf(withPayload(buf, err), "fail to decode transactions of block %d", height)
	}
	return txs, nil
}

// GetBlockchainHeight returns the current chain height
func (b *BlockchainClient) GetBlockchainHeight(ctx context.Context) (*big.Int, error) {
	buf, err := b.get(ctx, ChainHeightEndpoint, ChainHeightEndpoint, "")
	if err != nil {
		return nil, errors.Wrap(err, "fail to get chain height")
	}
	var dto types.HeightDTO
	if err := unmarshal(buf, &dto); err != nil {
		b.errCounter.WithLabelValues("fail_unmarshal_height", "").Inc()
		return nil, errors.Wrap(withPayload(buf, err), "fail to decode chain height")
	}
	height, err := requireUInt64("height", dto.Height)
	if err != nil {
		b.errCounter.WithLabelValues("fail_unmarshal_height", "").Inc()
		return nil, errors.Wrap(withPayload(buf, err), "fail to decode chain height")
	}
	return height, nil
}

// GetBlockchainScore returns the current chain score
func (b *BlockchainClient) GetBlockchainScore(ctx context.Context) (*big.Int, error) {
	buf, err := b.get(ctx, ChainScoreEndpoint, ChainScoreEndpoint, "")
	if err != nil {
		return nil, errors.Wrap(err, "fail to get chain score")
	}
	score, err := mapScore(buf)
	if err != nil {
		b.errCounter.WithLabelValues("fail_unmarshal_score", "").Inc()
		return nil, errors.Wrap(withPayload(buf, err), "fail to decode chain score")
	}
	return score, nil
}

// GetBlockchainStorage returns the storage counters of the node
func (b *BlockchainClient) GetBlockchainStorage(ctx context.Context) (*model.BlockchainStorageInfo, error) {
	buf, err := b.get(ctx, StorageEndpoint, StorageEndpoint, "")
	if err != nil {
		return nil, errors.Wrap(err, "fail to get storage info")
	}
	info, err := mapStorageInfo(buf)
	if err != nil {
		b.errCounter.WithLabelValues("fail_unmarshal_storage", "").Inc()
		return nil, errors.Wrap(withPayload(buf, err), "fail to decode storage info")
	}
	return info, nil
}

func mapBlockInfo(buf []byte, networkType common.NetworkType) (*model.BlockInfo, error) {
	var dto types.BlockInfoDTO
	if err := unmarshal(buf, &dto); err != nil {
		return nil, err
	}
	if dto.Meta == nil {
		return nil, newDecodeError("meta", errMissing)
	}
	if dto.Block == nil {
		return nil, newDecodeError("block", errMissing)
	}
	meta, block := dto.Meta, dto.Block
	var err error
	info := &model.BlockInfo{
		NetworkType: networkType,
	}
	if info.Hash, err = requireString("meta.hash", meta.Hash); err != nil {
		return nil, err
	}
	if info.GenerationHash, err = requireString("meta.generationHash", meta.GenerationHash); err != nil {
		return nil, err
	}
	if info.TotalFee, err = requireUInt64("meta.totalFee", meta.TotalFee); err != nil {
		return nil, err
	}
	if info.NumTransactions, err = requireUInt64("meta.numTransactions", meta.NumTransactions); err != nil {
		return nil, err
	}
	if info.Signature, err = requireString("block.signature", block.Signature); err != nil {
		return nil, err
	}
	if info.Signer, err = requirePublicAccount("block.signer", block.Signer, networkType); err != nil {
		return nil, err
	}
	// the network byte of the version is ignored, the resolved network type is authoritative
	if _, info.Version, err = splitVersion("block.version", block.Version); err != nil {
		return nil, err
	}
	if block.Type == nil {
		return nil, newDecodeError("block.type", errMissing)
	}
	info.Type = *block.Type
	if info.Height, err = requireUInt64("block.height", block.Height); err != nil {
		return nil, err
	}
	if info.Timestamp, err = requireUInt64("block.timestamp", block.Timestamp); err != nil {
		return nil, err
	}
	if info.Difficulty, err = requireUInt64("block.difficulty", block.Difficulty); err != nil {
		return nil, err
	}
	if info.PreviousBlockHash, err = requireString("block.previousBlockHash", block.PreviousBlockHash); err != nil {
		return nil, err
	}
	if info.BlockTransactionsHash, err = requireString("block.blockTransactionsHash", block.BlockTransactionsHash); err != nil {
		return nil, err
	}
	return info, nil
}

func mapTransactions(buf []byte) ([]model.Transaction, error) {
	var items []json.RawMessage
	if err := unmarshalArray(buf, &items); err != nil {
		return nil, err
	}
	txs := make([]model.Transaction, 0, len(items))
	for i, item := range items {
		tx, err := mapTransaction(item)
		if err != nil {
			return nil, prefixField(fmt.Sprintf("[%d]", i), err)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

func mapScore(buf []byte) (*big.Int, error) {
	var dto types.BlockchainScoreDTO
	if err := unmarshal(buf, &dto); err != nil {
		return nil, err
	}
	if dto.ScoreHigh == nil {
		return nil, newDecodeError("scoreHigh", errMissing)
	}
	if dto.ScoreLow == nil {
		return nil, newDecodeError("scoreLow", errMissing)
	}
	return dto.Score(), nil
}

func mapStorageInfo(buf []byte) (*model.BlockchainStorageInfo, error) {
	var dto types.BlockchainStorageInfoDTO
	if err := unmarshal(buf, &dto); err != nil {
		return nil, err
	}
	if dto.NumAccounts == nil {
		return nil, newDecodeError("numAccounts", errMissing)
	}
	if dto.NumBlocks == nil {
		return nil, newDecodeError("numBlocks", errMissing)
	}
	// NumTransactions repeats numBlocks, the node's numTransactions is ignored.
	// TODO: map numTransactions to NumTransactions once nemcli storage output can change
	return &model.BlockchainStorageInfo{
		NumAccounts:     *dto.NumAccounts,
		NumBlocks:       *dto.NumBlocks,
		NumTransactions: *dto.NumBlocks,
	}, nil
}
