package model

// Transaction is an indexer-supplied transaction. It is read-only input to classification.
type Transaction struct {
	TxID                string               `json:"txid"`
	Version             int32                `json:"version"`
	Inputs              []Input              `json:"inputs"`
	Outputs             []Output             `json:"outputs"`
	LockTime            uint32               `json:"lockTime"`
	TimeFirstSeen       int64                `json:"timeFirstSeen"`
	Size                uint32               `json:"size"`
	IsCoinbase          bool                 `json:"isCoinbase"`
	TokenEntries        []TokenEntry         `json:"tokenEntries"`
	TokenFailedParsings []TokenFailedParsing `json:"tokenFailedParsings"`
	TokenStatus         TokenStatus          `json:"tokenStatus"`
	Block               *Block               `json:"block,omitempty"`
}

// OutPoint references an output of a previous transaction.
type OutPoint struct {
	TxID   string `json:"txid"`
	OutIdx uint32 `json:"outIdx"`
}

// Input spends a previous output. OutputScript is nil when the indexer did not
// resolve the spent output; Value is meaningful only when OutputScript is set.
type Input struct {
	PrevOut      OutPoint `json:"prevOut"`
	InputScript  Script   `json:"inputScript"`
	OutputScript *Script  `json:"outputScript,omitempty"`
	Value        uint64   `json:"value"`
	SequenceNo   uint32   `json:"sequenceNo"`
	Token        *Token   `json:"token,omitempty"`
}

// Resolved reports whether the spent output is known.
func (in Input) Resolved() bool {
	return in.OutputScript != nil
}

// SpentBy references the input spending an output.
type SpentBy struct {
	TxID     string `json:"txid"`
	InputIdx uint32 `json:"inputIdx"`
}

// Output is a transaction output.
type Output struct {
	Value        uint64   `json:"value"`
	OutputScript Script   `json:"outputScript"`
	Token        *Token   `json:"token,omitempty"`
	SpentBy      *SpentBy `json:"spentBy,omitempty"`
}

// DataCarrierIndex returns the index of the first OP_RETURN output, or -1.
func (tx *Transaction) DataCarrierIndex() int {
	for i, out := range tx.Outputs {
		if out.OutputScript.IsDataCarrier() {
			return i
		}
	}
	return -1
}

// IsTokenTx reports whether the indexer attached token entries to tx.
func (tx *Transaction) IsTokenTx() bool {
	return tx.TokenStatus != TokenStatusNonToken && len(tx.TokenEntries) > 0
}
