// Package flow aggregates the satoshi and token movements of a single transaction.
package flow

import (
	"errors"
	"fmt"

	"github.com/Bitcoin-ABC/bitcoin-abc-sub005/internal/herald/model"
	"github.com/Bitcoin-ABC/bitcoin-abc-sub005/pkg/safe"
)

// ErrFeeComputation is returned when the fee cannot be known: an input is
// unresolved or the inputs do not cover the outputs.
var ErrFeeComputation = errors.New("fee computation error")

// Flow is the satoshi movement of a transaction.
type Flow struct {
	// Senders are the distinct locking scripts of resolved inputs in input order.
	Senders []string
	// Receivers sums non data-carrier outputs per script in first-seen order.
	Receivers []model.ScriptSats
	TotalSats uint64
	// Fee is nil for coinbase transactions and when the fee cannot be computed.
	Fee      *uint64
	Warnings []model.Warning
}

// Aggregate computes the satoshi flow of tx. Unresolved inputs are skipped and
// reported as warnings, and they leave the fee unknown. A fee that would be
// negative is reported, never clamped.
func Aggregate(tx *model.Transaction) Flow {
	f := Flow{
		Senders:   make([]string, 0, len(tx.Inputs)),
		Receivers: make([]model.ScriptSats, 0, len(tx.Outputs)),
	}

	seen := make(map[string]struct{}, len(tx.Inputs))
	for i, in := range tx.Inputs {
		if !in.Resolved() {
			if !tx.IsCoinbase {
				f.warn(model.WarningUnresolvedInput, "input %d spends unresolved output %s:%d", i, in.PrevOut.TxID, in.PrevOut.OutIdx)
			}
			continue
		}
		key := in.OutputScript.String()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		f.Senders = append(f.Senders, key)
	}

	index := make(map[string]int, len(tx.Outputs))
	for _, out := range tx.Outputs {
		if out.OutputScript.IsDataCarrier() {
			continue
		}
		key := out.OutputScript.String()
		i, ok := index[key]
		if !ok {
			i = len(f.Receivers)
			index[key] = i
			f.Receivers = append(f.Receivers, model.ScriptSats{Script: key})
		}
		// Validate bounds the output total, so these sums cannot wrap.
		f.Receivers[i].Sats += out.Value
		f.TotalSats += out.Value
	}

	if tx.IsCoinbase {
		return f
	}
	fee, err := Fee(tx)
	if err != nil {
		f.warn(model.WarningFeeComputation, "%v", err)
		return f
	}
	f.Fee = &fee
	return f
}

// Fee returns the sum of input values minus the sum of output values. Every
// input must be resolved.
func Fee(tx *model.Transaction) (uint64, error) {
	var in, out uint64
	var err error
	unresolved := 0
	for _, input := range tx.Inputs {
		if !input.Resolved() {
			unresolved++
			continue
		}
		if in, err = safe.AddUint64(in, input.Value); err != nil {
			return 0, fmt.Errorf("%w: tx %s input total: %w", ErrFeeComputation, tx.TxID, err)
		}
	}
	if unresolved > 0 {
		return 0, fmt.Errorf("%w: tx %s has %d unresolved inputs", ErrFeeComputation, tx.TxID, unresolved)
	}
	for _, output := range tx.Outputs {
		if out, err = safe.AddUint64(out, output.Value); err != nil {
			return 0, fmt.Errorf("%w: tx %s output total: %w", ErrFeeComputation, tx.TxID, err)
		}
	}
	if out > in {
		return 0, fmt.Errorf("%w: tx %s outputs %d exceed inputs %d", ErrFeeComputation, tx.TxID, out, in)
	}
	return in - out, nil
}

func (f *Flow) warn(kind model.WarningKind, format string, args ...any) {
	f.Warnings = append(f.Warnings, model.Warning{Kind: kind, Message: fmt.Sprintf(format, args...)})
}
