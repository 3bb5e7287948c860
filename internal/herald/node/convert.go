// Package node reads blocks from an eCash node over JSON-RPC and shapes them
// like indexer transactions.
package node

import (
	"fmt"

	"github.com/Bitcoin-ABC/bitcoin-abc-sub005/internal/herald/model"
	"github.com/Bitcoin-ABC/bitcoin-abc-sub005/pkg/safe"
	"github.com/btcsuite/btcd/btcjson"
	"github.com/shopspring/decimal"
)

// xecDecimals is the number of satoshi digits behind the XEC decimal point.
const xecDecimals = 2

// XECToSats converts an RPC XEC value to satoshis. Values with more than two
// decimals or below zero are rejected.
func XECToSats(value float64) (uint64, error) {
	sats := decimal.NewFromFloat(value).Shift(xecDecimals)
	if sats.IsNegative() {
		return 0, fmt.Errorf("negative amount: %s", sats)
	}
	if !sats.IsInteger() {
		return 0, fmt.Errorf("amount %v has sub-satoshi precision", value)
	}
	if !sats.BigInt().IsUint64() {
		return 0, fmt.Errorf("amount %v: %w", value, safe.ErrOverflow)
	}
	return sats.BigInt().Uint64(), nil
}

// ConvertOutputs maps RPC outputs to model outputs.
func ConvertOutputs(tx btcjson.TxRawResult) ([]model.Output, error) {
	outputs := make([]model.Output, 0, len(tx.Vout))
	for idx, vout := range tx.Vout {
		value, err := XECToSats(vout.Value)
		if err != nil {
			return nil, fmt.Errorf("tx %s output %d value: %w", tx.Txid, idx, err)
		}
		script, err := model.ParseScript(vout.ScriptPubKey.Hex)
		if err != nil {
			return nil, fmt.Errorf("tx %s output %d script: %w", tx.Txid, idx, err)
		}
		outputs = append(outputs, model.Output{Value: value, OutputScript: script})
	}
	return outputs, nil
}

// ConvertTx maps an RPC transaction to an unresolved model transaction. Token
// data is not available from the node, so the transaction is non-token.
func ConvertTx(tx btcjson.TxRawResult, block *model.Block) (model.Transaction, error) {
	size, err := safe.Uint32(tx.Size)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("tx %s size: %w", tx.Txid, err)
	}
	out := model.Transaction{
		TxID:        tx.Txid,
		Version:     int32(tx.Version),
		LockTime:    tx.LockTime,
		Size:        size,
		TokenStatus: model.TokenStatusNonToken,
		Block:       block,
		Inputs:      make([]model.Input, 0, len(tx.Vin)),
	}

	for idx, vin := range tx.Vin {
		in := model.Input{SequenceNo: vin.Sequence}
		if vin.IsCoinBase() {
			out.IsCoinbase = true
			if in.InputScript, err = model.ParseScript(vin.Coinbase); err != nil {
				return model.Transaction{}, fmt.Errorf("tx %s coinbase script: %w", tx.Txid, err)
			}
			out.Inputs = append(out.Inputs, in)
			continue
		}
		in.PrevOut = model.OutPoint{TxID: vin.Txid, OutIdx: vin.Vout}
		if vin.ScriptSig != nil {
			if in.InputScript, err = model.ParseScript(vin.ScriptSig.Hex); err != nil {
				return model.Transaction{}, fmt.Errorf("tx %s input %d script: %w", tx.Txid, idx, err)
			}
		}
		out.Inputs = append(out.Inputs, in)
	}

	if out.Outputs, err = ConvertOutputs(tx); err != nil {
		return model.Transaction{}, err
	}
	return out, nil
}
