package model

// Block identifies the block containing a transaction.
type Block struct {
	Height    uint64 `json:"height"`
	Hash      string `json:"hash"`
	Timestamp int64  `json:"timestamp"`
}

// BlockTxs is a block together with its transactions in block order.
// The coinbase transaction, when present, is expected first.
type BlockTxs struct {
	Block Block         `json:"block"`
	Txs   []Transaction `json:"txs"`
}
