// Package report folds the classifications of a block into a block report.
package report

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Bitcoin-ABC/bitcoin-abc-sub005/internal/herald/flow"
	"github.com/Bitcoin-ABC/bitcoin-abc-sub005/internal/herald/model"
	"github.com/Bitcoin-ABC/bitcoin-abc-sub005/internal/herald/script"
	"github.com/shopspring/decimal"
)

var ErrMismatch = errors.New("classifications do not match block transactions")

// Options tune the block report. A zero MaxTransfers lists every transfer.
type Options struct {
	// DustThreshold is the smallest transfer, in satoshis, that is listed.
	DustThreshold uint64
	MaxTransfers  int
	Miners        *KnownMiners
	Addresses     *script.AddressEncoder
}

// Build folds classifications, which must be in the transaction order of block.
func Build(block *model.BlockTxs, classifications []model.TxClassification, opts Options) (model.BlockReport, error) {
	if len(classifications) != len(block.Txs) {
		return model.BlockReport{}, fmt.Errorf("%w: %d classifications for %d txs", ErrMismatch, len(classifications), len(block.Txs))
	}

	r := model.BlockReport{
		Height:    block.Block.Height,
		Hash:      block.Block.Hash,
		Timestamp: block.Block.Timestamp,
		NumTxs:    len(block.Txs),
	}
	tokens := newTokenTally()
	var transfers []model.Transfer

	for i := range classifications {
		c := &classifications[i]
		tx := &block.Txs[i]
		if c.TxID != tx.TxID {
			return model.BlockReport{}, fmt.Errorf("%w: position %d has %s, block has %s", ErrMismatch, i, c.TxID, tx.TxID)
		}
		r.Warnings += len(c.Warnings)

		if c.IsCoinbase {
			if r.Coinbase == nil {
				summary, err := summarizeCoinbase(block.Block.Height, tx, opts)
				if err != nil {
					return model.BlockReport{}, fmt.Errorf("coinbase %s: %w", tx.TxID, err)
				}
				r.Coinbase = summary
			}
			continue
		}

		if c.GenesisInfo != nil {
			r.Genesis = append(r.Genesis, genesisEvent(c))
		}
		if err := tokens.add(c); err != nil {
			return model.BlockReport{}, fmt.Errorf("token totals of tx %s: %w", c.TxID, err)
		}

		switch {
		case c.Payload != nil && c.Payload.Tag.IsApp():
			r.AppTxs = append(r.AppTxs, model.AppTx{TxID: c.TxID, Sender: first(c.Senders), Payload: c.Payload})
		case hasTokenActivity(c):
		default:
			t := transfer(c)
			if t.TotalSats < opts.DustThreshold {
				continue
			}
			transfers = append(transfers, t)
		}
	}

	r.Tokens = tokens.entries
	sort.SliceStable(transfers, func(a, b int) bool {
		return transfers[a].TotalSats > transfers[b].TotalSats
	})
	if opts.MaxTransfers > 0 && len(transfers) > opts.MaxTransfers {
		r.MoreTransfers = len(transfers) - opts.MaxTransfers
		transfers = transfers[:opts.MaxTransfers]
	}
	r.Transfers = transfers
	return r, nil
}

func hasTokenActivity(c *model.TxClassification) bool {
	if c.GenesisInfo != nil || len(c.TokenSends) > 0 || len(c.TokenBurns) > 0 {
		return true
	}
	return c.Payload != nil && c.Payload.Tag.IsToken()
}

func genesisEvent(c *model.TxClassification) model.GenesisEvent {
	g := c.GenesisInfo
	ev := model.GenesisEvent{
		TxID:      c.TxID,
		TokenID:   g.TokenID,
		TokenType: g.TokenType,
		Ticker:    g.Ticker,
		Name:      g.Name,
	}
	if g.InitialSupply != nil {
		ev.InitialSupply = Decimalize(*g.InitialSupply, g.Decimals)
	}
	return ev
}

// Decimalize renders a base-unit amount divided by 10^decimals.
func Decimalize(amount model.Amount, decimals uint8) string {
	return decimal.NewFromBigInt(amount.Big(), -int32(decimals)).String()
}

// transfer summarizes a plain value transfer. The amount moved excludes change
// returned to a sending script unless the transaction only pays itself.
func transfer(c *model.TxClassification) model.Transfer {
	t := model.Transfer{TxID: c.TxID, Sender: first(c.Senders)}
	if c.Fee != nil {
		t.Fee = *c.Fee
	}
	senders := make(map[string]struct{}, len(c.Senders))
	for _, s := range c.Senders {
		senders[s] = struct{}{}
	}
	var top uint64
	for _, r := range c.Receivers {
		if _, change := senders[r.Script]; change {
			continue
		}
		t.TotalSats += r.Sats
		if t.Receiver == "" || r.Sats > top {
			t.Receiver, top = r.Script, r.Sats
		}
	}
	if t.Receiver == "" {
		t.TotalSats = c.TotalSatsSent
		if len(c.Receivers) > 0 {
			t.Receiver = c.Receivers[0].Script
		}
	}
	return t
}

func first(s []string) string {
	if len(s) == 0 {
		return ""
	}
	return s[0]
}

// tokenTally accumulates per-token totals in first-appearance order.
type tokenTally struct {
	index   map[string]int
	entries []model.TokenAggregate
}

func newTokenTally() *tokenTally {
	return &tokenTally{index: make(map[string]int)}
}

func (t *tokenTally) get(txid, tokenID string, tokenType model.TokenType) *model.TokenAggregate {
	i, ok := t.index[tokenID]
	if !ok {
		i = len(t.entries)
		t.index[tokenID] = i
		t.entries = append(t.entries, model.TokenAggregate{TokenID: tokenID, TokenType: tokenType})
	}
	agg := &t.entries[i]
	if n := len(agg.TxIDs); n == 0 || agg.TxIDs[n-1] != txid {
		agg.TxIDs = append(agg.TxIDs, txid)
	}
	return agg
}

func (t *tokenTally) add(c *model.TxClassification) error {
	if g := c.GenesisInfo; g != nil {
		t.get(c.TxID, g.TokenID, g.TokenType).Genesis++
	}
	for _, send := range c.TokenSends {
		agg := t.get(c.TxID, send.TokenID, send.TokenType)
		received, err := flow.Sum(send.Receiving)
		if err != nil {
			return err
		}
		switch send.TxType {
		case model.TokenTxTypeMint:
			change, err := flow.Sum(send.Change)
			if err != nil {
				return err
			}
			minted, err := received.Add(change)
			if err != nil {
				return err
			}
			agg.Mints++
			if agg.Minted, err = agg.Minted.Add(minted); err != nil {
				return err
			}
		default:
			agg.Sends++
			if agg.Sent, err = agg.Sent.Add(received); err != nil {
				return err
			}
		}
	}
	for _, burn := range c.TokenBurns {
		agg := t.get(c.TxID, burn.TokenID, burn.TokenType)
		agg.Burns++
		var err error
		if agg.Burned, err = agg.Burned.Add(burn.UndecimalizedBurnAmount); err != nil {
			return err
		}
	}
	return nil
}
