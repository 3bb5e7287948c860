package flow

import (
	"fmt"

	"github.com/Bitcoin-ABC/bitcoin-abc-sub005/internal/herald/model"
)

// TokenFlow is the per-entry token movement of a transaction.
type TokenFlow struct {
	Sends []model.TokenSendInfo
	Burns []model.TokenBurnInfo
}

// ClassifyTokens splits the token outputs of every SEND and MINT entry into change
// and new recipients, and emits a burn record for every entry with a non-zero
// actual burn. A SEND the indexer flagged as an unintended burn yields only the
// burn record.
func ClassifyTokens(tx *model.Transaction) (TokenFlow, error) {
	var tf TokenFlow
	for _, entry := range tx.TokenEntries {
		if entry.Burns() {
			tf.Burns = append(tf.Burns, model.TokenBurnInfo{
				TokenID:                 entry.TokenID,
				TokenType:               entry.TokenType,
				UndecimalizedBurnAmount: entry.ActualBurnAmount,
			})
		}
		switch entry.TxType {
		case model.TokenTxTypeSend:
			if entry.UnintentionalBurn() {
				continue
			}
		case model.TokenTxTypeMint:
		default:
			continue
		}
		send, err := sendInfo(tx, entry)
		if err != nil {
			return TokenFlow{}, err
		}
		tf.Sends = append(tf.Sends, send)
	}
	return tf, nil
}

func sendInfo(tx *model.Transaction, entry model.TokenEntry) (model.TokenSendInfo, error) {
	info := model.TokenSendInfo{
		TokenID:        entry.TokenID,
		TokenType:      entry.TokenType,
		TxType:         entry.TxType,
		SendingScripts: make([]string, 0),
		Change:         make([]model.ScriptAmount, 0),
		Receiving:      make([]model.ScriptAmount, 0),
	}

	sending := make(map[string]struct{})
	for _, in := range tx.Inputs {
		if in.Token == nil || in.Token.TokenID != entry.TokenID || !in.Resolved() {
			continue
		}
		key := in.OutputScript.String()
		if _, ok := sending[key]; ok {
			continue
		}
		sending[key] = struct{}{}
		info.SendingScripts = append(info.SendingScripts, key)
	}

	change := newAmountMap()
	receiving := newAmountMap()
	for i, out := range tx.Outputs {
		if out.Token == nil || out.Token.TokenID != entry.TokenID || out.Token.IsMintBaton {
			continue
		}
		key := out.OutputScript.String()
		target := receiving
		if _, ok := sending[key]; ok {
			target = change
		}
		if err := target.add(key, out.Token.Amount); err != nil {
			return model.TokenSendInfo{}, fmt.Errorf("tx %s output %d token %s: %w", tx.TxID, i, entry.TokenID, err)
		}
	}
	info.Change = append(info.Change, change.entries...)
	info.Receiving = append(info.Receiving, receiving.entries...)
	return info, nil
}

// amountMap is an insertion-ordered script to amount map.
type amountMap struct {
	index   map[string]int
	entries []model.ScriptAmount
}

func newAmountMap() *amountMap {
	return &amountMap{index: make(map[string]int)}
}

func (m *amountMap) add(script string, amount model.Amount) error {
	i, ok := m.index[script]
	if !ok {
		m.index[script] = len(m.entries)
		m.entries = append(m.entries, model.ScriptAmount{Script: script, Amount: amount})
		return nil
	}
	sum, err := m.entries[i].Amount.Add(amount)
	if err != nil {
		return err
	}
	m.entries[i].Amount = sum
	return nil
}

// Sum totals the amounts of entries.
func Sum(entries []model.ScriptAmount) (model.Amount, error) {
	amounts := make([]model.Amount, 0, len(entries))
	for _, e := range entries {
		amounts = append(amounts, e.Amount)
	}
	return model.SumAmounts(amounts)
}
