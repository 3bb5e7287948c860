package model

// StakerReward is the staking reward paid by a coinbase transaction.
type StakerReward struct {
	Script  string `json:"script"`
	Address string `json:"address,omitempty"`
	Reward  uint64 `json:"reward"`
}

// CoinbaseSummary describes the block reward.
type CoinbaseSummary struct {
	TxID      string        `json:"txid"`
	Reward    uint64        `json:"reward"`
	Recipient string        `json:"recipient"`
	Address   string        `json:"address,omitempty"`
	Miner     string        `json:"miner"`
	Staker    *StakerReward `json:"staker,omitempty"`
}

// GenesisEvent is one token created in the block.
type GenesisEvent struct {
	TxID          string    `json:"txid"`
	TokenID       string    `json:"tokenId"`
	TokenType     TokenType `json:"tokenType"`
	Ticker        string    `json:"ticker,omitempty"`
	Name          string    `json:"name,omitempty"`
	InitialSupply string    `json:"initialSupply,omitempty"`
}

// TokenAggregate sums the token activity of one token id across the block.
type TokenAggregate struct {
	TokenID   string    `json:"tokenId"`
	TokenType TokenType `json:"tokenType"`
	Genesis   int       `json:"genesisCount"`
	Sends     int       `json:"sendCount"`
	Mints     int       `json:"mintCount"`
	Burns     int       `json:"burnCount"`
	Sent      Amount    `json:"undecimalizedSent"`
	Minted    Amount    `json:"undecimalizedMinted"`
	Burned    Amount    `json:"undecimalizedBurned"`
	TxIDs     []string  `json:"txids"`
}

// AppTx is a transaction whose payload matched a known application protocol.
type AppTx struct {
	TxID    string   `json:"txid"`
	Sender  string   `json:"sender,omitempty"`
	Payload *Payload `json:"payload"`
}

// Transfer is a plain value transfer.
type Transfer struct {
	TxID      string `json:"txid"`
	Sender    string `json:"sender,omitempty"`
	Receiver  string `json:"receiver,omitempty"`
	TotalSats uint64 `json:"totalSatsSent"`
	Fee       uint64 `json:"fee"`
}

// BlockReport folds the classifications of a block.
type BlockReport struct {
	Height        uint64           `json:"height"`
	Hash          string           `json:"hash"`
	Timestamp     int64            `json:"timestamp"`
	NumTxs        int              `json:"numTxs"`
	Coinbase      *CoinbaseSummary `json:"coinbase,omitempty"`
	Genesis       []GenesisEvent   `json:"genesis,omitempty"`
	Tokens        []TokenAggregate `json:"tokens,omitempty"`
	AppTxs        []AppTx          `json:"appTxs,omitempty"`
	Transfers     []Transfer       `json:"transfers,omitempty"`
	MoreTransfers int              `json:"moreTransfers,omitempty"`
	Warnings      int              `json:"warnings,omitempty"`
}
