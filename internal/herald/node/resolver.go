package node

import (
	"context"
	"fmt"

	"github.com/Bitcoin-ABC/bitcoin-abc-sub005/internal/herald/model"
	"github.com/Bitcoin-ABC/bitcoin-abc-sub005/pkg/workerpool"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.uber.org/zap"
)

// prevoutResolver looks up spent outputs, first among outputs seeded from the
// block being processed, then through getrawtransaction.
type prevoutResolver struct {
	rpc     RPCClient
	workers int
	logger  *zap.Logger
	cache   map[string][]model.Output
}

func newPrevoutResolver(rpc RPCClient, workers int, logger *zap.Logger) *prevoutResolver {
	return &prevoutResolver{
		rpc:     rpc,
		workers: workers,
		logger:  logger,
		cache:   make(map[string][]model.Output),
	}
}

// Seed pre-populates the cache with outputs of a transaction.
func (r *prevoutResolver) Seed(txid string, outputs []model.Output) {
	r.cache[txid] = outputs
}

// Local returns cached outputs when available.
func (r *prevoutResolver) Local(txid string) ([]model.Output, bool) {
	outputs, ok := r.cache[txid]
	return outputs, ok
}

// Fetch loads outputs of every txid not yet cached. A transaction the node cannot
// return is cached as empty so its spenders stay unresolved.
func (r *prevoutResolver) Fetch(ctx context.Context, txids []string) error {
	missing := make([]string, 0, len(txids))
	seen := make(map[string]struct{}, len(txids))
	for _, txid := range txids {
		if _, ok := r.cache[txid]; ok {
			continue
		}
		if _, dup := seen[txid]; dup {
			continue
		}
		seen[txid] = struct{}{}
		missing = append(missing, txid)
	}
	if len(missing) == 0 {
		return nil
	}

	fetched, err := workerpool.Map(ctx, r.workers, missing, func(_ context.Context, txid string) ([]model.Output, error) {
		return r.fetch(txid), nil
	})
	if err != nil {
		return fmt.Errorf("fetch %d prevout transactions: %w", len(missing), err)
	}
	for i, txid := range missing {
		r.cache[txid] = fetched[i]
	}
	return nil
}

func (r *prevoutResolver) fetch(txid string) []model.Output {
	hash, err := chainhash.NewHashFromStr(txid)
	if err != nil {
		r.logger.Warn("invalid prevout txid", zap.String("txid", txid), zap.Error(err))
		return nil
	}
	raw, err := r.rpc.GetRawTransactionVerbose(hash)
	if err != nil {
		r.logger.Warn("prevout transaction unavailable", zap.String("txid", txid), zap.Error(err))
		return nil
	}
	outputs, err := ConvertOutputs(*raw)
	if err != nil {
		r.logger.Warn("prevout transaction not convertible", zap.String("txid", txid), zap.Error(err))
		return nil
	}
	return outputs
}

// Resolve sets OutputScript and Value of every input whose spent output is cached.
func (r *prevoutResolver) Resolve(tx *model.Transaction) {
	if tx.IsCoinbase {
		return
	}
	for i := range tx.Inputs {
		in := &tx.Inputs[i]
		outputs, ok := r.Local(in.PrevOut.TxID)
		if !ok || int(in.PrevOut.OutIdx) >= len(outputs) {
			continue
		}
		spent := outputs[in.PrevOut.OutIdx]
		script := spent.OutputScript
		in.OutputScript = &script
		in.Value = spent.Value
	}
}
