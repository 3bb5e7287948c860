package model

import (
	"errors"
	"fmt"

	"github.com/Bitcoin-ABC/bitcoin-abc-sub005/pkg/safe"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

var (
	ErrInvalidTransaction = errors.New("invalid transaction")
	ErrInvalidBlock       = errors.New("invalid block")
)

func validateHash(s string) error {
	if len(s) != chainhash.MaxHashStringSize {
		return fmt.Errorf("hash %q has length %d", s, len(s))
	}
	if _, err := chainhash.NewHashFromStr(s); err != nil {
		return fmt.Errorf("hash %q: %w", s, err)
	}
	return nil
}

// Validate checks the block header and every transaction.
func (b *BlockTxs) Validate() error {
	if err := validateHash(b.Block.Hash); err != nil {
		return fmt.Errorf("%w: height %d: %v", ErrInvalidBlock, b.Block.Height, err)
	}
	if len(b.Txs) == 0 {
		return fmt.Errorf("%w: height %d has no transactions", ErrInvalidBlock, b.Block.Height)
	}
	for i := range b.Txs {
		if err := b.Txs[i].Validate(); err != nil {
			return fmt.Errorf("block %d tx %d: %w", b.Block.Height, i, err)
		}
	}
	return nil
}

// Validate checks that the transaction has every field classification relies on.
func (tx *Transaction) Validate() error {
	if err := validateHash(tx.TxID); err != nil {
		return fmt.Errorf("%w: txid: %v", ErrInvalidTransaction, err)
	}
	if len(tx.Inputs) == 0 {
		return fmt.Errorf("%w: tx %s has no inputs", ErrInvalidTransaction, tx.TxID)
	}
	if len(tx.Outputs) == 0 {
		return fmt.Errorf("%w: tx %s has no outputs", ErrInvalidTransaction, tx.TxID)
	}
	if tx.Block != nil {
		if err := validateHash(tx.Block.Hash); err != nil {
			return fmt.Errorf("%w: tx %s block: %v", ErrInvalidTransaction, tx.TxID, err)
		}
	}
	if err := tx.validateTokenStatus(); err != nil {
		return err
	}
	for i, entry := range tx.TokenEntries {
		if err := validateHash(entry.TokenID); err != nil {
			return fmt.Errorf("%w: tx %s token entry %d: %v", ErrInvalidTransaction, tx.TxID, i, err)
		}
		if !entry.TxType.valid() {
			return fmt.Errorf("%w: tx %s token entry %d: unknown tx type %q", ErrInvalidTransaction, tx.TxID, i, entry.TxType)
		}
	}
	for i, in := range tx.Inputs {
		if !tx.IsCoinbase {
			if err := validateHash(in.PrevOut.TxID); err != nil {
				return fmt.Errorf("%w: tx %s input %d prevout: %v", ErrInvalidTransaction, tx.TxID, i, err)
			}
		}
		if err := tx.validateToken(in.Token); err != nil {
			return fmt.Errorf("%w: tx %s input %d: %v", ErrInvalidTransaction, tx.TxID, i, err)
		}
	}
	var outputSats uint64
	for i, out := range tx.Outputs {
		if err := tx.validateToken(out.Token); err != nil {
			return fmt.Errorf("%w: tx %s output %d: %v", ErrInvalidTransaction, tx.TxID, i, err)
		}
		sum, err := safe.AddUint64(outputSats, out.Value)
		if err != nil {
			return fmt.Errorf("%w: tx %s output values: %v", ErrInvalidTransaction, tx.TxID, err)
		}
		outputSats = sum
	}
	return nil
}

func (tx *Transaction) validateTokenStatus() error {
	switch tx.TokenStatus {
	case TokenStatusNonToken, TokenStatusNormal, TokenStatusNotNormal:
		return nil
	default:
		return fmt.Errorf("%w: tx %s has token status %q", ErrInvalidTransaction, tx.TxID, tx.TokenStatus)
	}
}

// TokenStatusConflict describes a disagreement between the reported token status
// and the token data. The indexer stays authoritative; callers record the
// conflict and classify the transaction as reported.
func (tx *Transaction) TokenStatusConflict() error {
	switch tx.TokenStatus {
	case TokenStatusNonToken:
		if len(tx.TokenEntries) > 0 {
			return fmt.Errorf("tx %s is %s with %d token entries", tx.TxID, tx.TokenStatus, len(tx.TokenEntries))
		}
	case TokenStatusNormal:
		if DeriveTokenStatus(tx.TokenEntries) != TokenStatusNormal {
			return fmt.Errorf("tx %s is %s but its entries are invalid or unintentionally burning", tx.TxID, tx.TokenStatus)
		}
	case TokenStatusNotNormal:
		if len(tx.TokenEntries) == 0 && len(tx.TokenFailedParsings) == 0 {
			return fmt.Errorf("tx %s is %s without token data", tx.TxID, tx.TokenStatus)
		}
	}
	return nil
}

func (tx *Transaction) validateToken(token *Token) error {
	if token == nil {
		return nil
	}
	if err := validateHash(token.TokenID); err != nil {
		return fmt.Errorf("token: %v", err)
	}
	if token.EntryIdx >= len(tx.TokenEntries) {
		return fmt.Errorf("token entry index %d out of %d entries", token.EntryIdx, len(tx.TokenEntries))
	}
	return nil
}
