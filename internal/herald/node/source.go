package node

import (
	"context"
	"fmt"
	"math"

	"github.com/Bitcoin-ABC/bitcoin-abc-sub005/internal/herald/model"
	"github.com/Bitcoin-ABC/bitcoin-abc-sub005/pkg/safe"
	"go.uber.org/zap"
)

const defaultWorkerCount = 8

// Source reads blocks from a node and resolves the outputs their inputs spend.
type Source struct {
	rpc     RPCClient
	workers int
	logger  *zap.Logger
}

// NewSource creates a node-backed block source. workers bounds concurrent
// getrawtransaction calls.
func NewSource(rpc RPCClient, workers int, logger *zap.Logger) *Source {
	if workers < 1 {
		workers = defaultWorkerCount
	}
	return &Source{rpc: rpc, workers: workers, logger: logger.Named("nodeSource")}
}

// LatestHeight returns the latest block height from the node.
func (s *Source) LatestHeight(_ context.Context) (uint64, error) {
	count, err := s.rpc.GetBlockCount()
	if err != nil {
		return 0, err
	}
	height, err := safe.Uint64(count)
	if err != nil {
		return 0, fmt.Errorf("block count overflow: %w", err)
	}
	return height, nil
}

// FetchBlock retrieves the block at height with every resolvable prevout filled in.
func (s *Source) FetchBlock(ctx context.Context, height uint64) (*model.BlockTxs, error) {
	if height > math.MaxInt64 {
		return nil, fmt.Errorf("block height %d exceeds rpc limit", height)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	hash, err := s.rpc.GetBlockHash(int64(height))
	if err != nil {
		return nil, fmt.Errorf("get block hash at height %d: %w", height, err)
	}
	src, err := s.rpc.GetBlockVerboseTx(hash)
	if err != nil {
		return nil, fmt.Errorf("get block %s: %w", hash, err)
	}
	blockHeight, err := safe.Uint64(src.Height)
	if err != nil {
		return nil, fmt.Errorf("block %s height: %w", hash, err)
	}

	out := &model.BlockTxs{
		Block: model.Block{Height: blockHeight, Hash: src.Hash, Timestamp: src.Time},
		Txs:   make([]model.Transaction, 0, len(src.Tx)),
	}
	resolver := newPrevoutResolver(s.rpc, s.workers, s.logger)
	var prevTxIDs []string
	for _, raw := range src.Tx {
		tx, err := ConvertTx(raw, &out.Block)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", blockHeight, err)
		}
		resolver.Seed(tx.TxID, tx.Outputs)
		if !tx.IsCoinbase {
			for _, in := range tx.Inputs {
				prevTxIDs = append(prevTxIDs, in.PrevOut.TxID)
			}
		}
		out.Txs = append(out.Txs, tx)
	}

	if err := resolver.Fetch(ctx, prevTxIDs); err != nil {
		return nil, fmt.Errorf("block %d: %w", blockHeight, err)
	}
	for i := range out.Txs {
		resolver.Resolve(&out.Txs[i])
	}
	s.logger.Debug("block fetched", zap.Uint64("height", blockHeight), zap.Int("txs", len(out.Txs)))
	return out, nil
}
