// Package classify turns indexer transactions into classification records.
package classify

import (
	"context"
	"fmt"

	"github.com/Bitcoin-ABC/bitcoin-abc-sub005/internal/herald/flow"
	"github.com/Bitcoin-ABC/bitcoin-abc-sub005/internal/herald/model"
	"github.com/Bitcoin-ABC/bitcoin-abc-sub005/internal/herald/protocol"
	"github.com/Bitcoin-ABC/bitcoin-abc-sub005/internal/herald/script"
	"github.com/Bitcoin-ABC/bitcoin-abc-sub005/pkg/workerpool"
)

const defaultWorkers = 4

// Classifier classifies transactions. It holds no per-transaction state and is
// safe for concurrent use.
type Classifier struct {
	decoder *protocol.Decoder
	metrics Metrics
	workers int
}

// NewClassifier builds a classifier. workers bounds the fan-out of ClassifyBlock.
func NewClassifier(decoder *protocol.Decoder, metrics Metrics, workers int) *Classifier {
	if workers < 1 {
		workers = defaultWorkers
	}
	return &Classifier{decoder: decoder, metrics: metrics, workers: workers}
}

// Classify builds the classification record of tx. Every per-transaction failure
// is recorded as a warning on the record.
func (c *Classifier) Classify(tx *model.Transaction) model.TxClassification {
	out := model.TxClassification{
		TxID:                tx.TxID,
		IsCoinbase:          tx.IsCoinbase,
		TokenFailedParsings: append([]model.TokenFailedParsing(nil), tx.TokenFailedParsings...),
	}
	if err := tx.TokenStatusConflict(); err != nil {
		out.Warnings = append(out.Warnings, model.Warning{Kind: model.WarningTokenStatus, Message: err.Error()})
	}

	if idx := tx.DataCarrierIndex(); idx >= 0 {
		res := c.decoder.Decode(script.Decode(tx.Outputs[idx].OutputScript))
		out.Payload = &res.Payload
		out.TokenFailedParsings = append(out.TokenFailedParsings, res.Failures...)
		out.Warnings = append(out.Warnings, res.Warnings...)
	}

	f := flow.Aggregate(tx)
	out.Senders = f.Senders
	out.Receivers = f.Receivers
	out.TotalSatsSent = f.TotalSats
	out.Fee = f.Fee
	out.Warnings = append(out.Warnings, f.Warnings...)

	if tokens, err := flow.ClassifyTokens(tx); err != nil {
		out.Warnings = append(out.Warnings, model.Warning{Kind: model.WarningTokenOverflow, Message: err.Error()})
	} else {
		out.TokenSends = tokens.Sends
		out.TokenBurns = tokens.Burns
	}

	genesis, err := genesisInfo(tx, out.Payload)
	if err != nil {
		out.Warnings = append(out.Warnings, model.Warning{
			Kind:    model.WarningTokenOverflow,
			Message: fmt.Sprintf("initial supply of tx %s: %v", tx.TxID, err),
		})
	}
	out.GenesisInfo = genesis

	c.observe(tx, &out)
	return out
}

// ClassifyBlock validates the block and classifies its transactions concurrently.
// Results are in transaction order. A structurally invalid block is rejected before
// any transaction is classified.
func (c *Classifier) ClassifyBlock(ctx context.Context, block *model.BlockTxs) ([]model.TxClassification, error) {
	if err := block.Validate(); err != nil {
		return nil, err
	}
	txs := make([]*model.Transaction, len(block.Txs))
	for i := range block.Txs {
		txs[i] = &block.Txs[i]
	}
	results, err := workerpool.Map(ctx, c.workers, txs, func(_ context.Context, tx *model.Transaction) (model.TxClassification, error) {
		return c.Classify(tx), nil
	})
	if err != nil {
		return nil, fmt.Errorf("classify block %d: %w", block.Block.Height, err)
	}
	return results, nil
}

// genesisInfo describes the token created by tx, using the decoded payload for its
// metadata when it carries a matching GENESIS action. Both token protocols allow a
// GENESIS only as the first action of a transaction, so at most one entry matches.
// When the supply does not fit 128 bits the info is returned without it.
func genesisInfo(tx *model.Transaction, payload *model.Payload) (*model.GenesisInfo, error) {
	for _, entry := range tx.TokenEntries {
		if entry.TxType != model.TokenTxTypeGenesis {
			continue
		}
		info := &model.GenesisInfo{TokenID: entry.TokenID, TokenType: entry.TokenType}
		if action, ok := genesisAction(payload); ok {
			info.Ticker = action.Genesis.Ticker
			info.Name = action.Genesis.Name
			info.URL = action.Genesis.URL
			info.Decimals = action.Genesis.Decimals
			info.HasMintBaton = action.HasMintBaton()
			supply, err := action.Total()
			if err != nil {
				return info, err
			}
			info.InitialSupply = &supply
		}
		return info, nil
	}
	return nil, nil
}

func genesisAction(payload *model.Payload) (model.TokenAction, bool) {
	if payload == nil {
		return model.TokenAction{}, false
	}
	for _, action := range payload.Tokens {
		if action.TxType == model.TokenTxTypeGenesis && action.Genesis != nil {
			return action, true
		}
	}
	return model.TokenAction{}, false
}

func (c *Classifier) observe(tx *model.Transaction, out *model.TxClassification) {
	if c.metrics == nil {
		return
	}
	c.metrics.ObserveTransaction(out.Protocol(), tx.TokenStatus)
	for _, w := range out.Warnings {
		c.metrics.ObserveWarning(w.Kind)
	}
}
