package model

type WarningKind string

const (
	WarningMalformedScript    WarningKind = "MalformedScript"
	WarningTokenDecodeFailure WarningKind = "TokenDecodeFailure"
	WarningFeeComputation     WarningKind = "FeeComputationError"
	WarningUnresolvedInput    WarningKind = "UnresolvedInput"
	WarningTokenStatus        WarningKind = "TokenStatusMismatch"
	WarningTokenOverflow      WarningKind = "TokenAmountOverflow"
)

// Warning is a per-transaction failure that did not stop classification.
type Warning struct {
	Kind    WarningKind `json:"kind"`
	Message string      `json:"message"`
}

// ScriptSats is one entry of an ordered script to satoshi mapping.
type ScriptSats struct {
	Script string `json:"script"`
	Sats   uint64 `json:"sats"`
}

// ScriptAmount is one entry of an ordered script to token amount mapping.
type ScriptAmount struct {
	Script string `json:"script"`
	Amount Amount `json:"amount"`
}

// GenesisInfo describes a token created by the transaction.
type GenesisInfo struct {
	TokenID       string    `json:"tokenId"`
	TokenType     TokenType `json:"tokenType"`
	Ticker        string    `json:"ticker,omitempty"`
	Name          string    `json:"name,omitempty"`
	URL           string    `json:"url,omitempty"`
	Decimals      uint8     `json:"decimals"`
	InitialSupply *Amount   `json:"initialSupply,omitempty"`
	HasMintBaton  bool      `json:"hasMintBaton"`
}

// TokenSendInfo splits the token outputs of one entry into change and new recipients.
type TokenSendInfo struct {
	TokenID        string         `json:"tokenId"`
	TokenType      TokenType      `json:"tokenType"`
	TxType         TokenTxType    `json:"txType"`
	SendingScripts []string       `json:"tokenSendingOutputScripts"`
	Change         []ScriptAmount `json:"tokenChangeOutputs"`
	Receiving      []ScriptAmount `json:"tokenReceivingOutputs"`
}

// TokenBurnInfo records tokens destroyed by the transaction, in base units.
type TokenBurnInfo struct {
	TokenID                 string    `json:"tokenId"`
	TokenType               TokenType `json:"tokenType"`
	UndecimalizedBurnAmount Amount    `json:"undecimalizedTokenBurnAmount"`
}

// TxClassification is the per-transaction result of classification.
type TxClassification struct {
	TxID                string               `json:"txid"`
	IsCoinbase          bool                 `json:"isCoinbase"`
	GenesisInfo         *GenesisInfo         `json:"genesisInfo,omitempty"`
	Payload             *Payload             `json:"payload,omitempty"`
	Fee                 *uint64              `json:"fee,omitempty"`
	Senders             []string             `json:"xecSendingOutputScripts"`
	Receivers           []ScriptSats         `json:"xecReceivingOutputs"`
	TotalSatsSent       uint64               `json:"totalSatsSent"`
	TokenSends          []TokenSendInfo      `json:"tokenSendInfo,omitempty"`
	TokenBurns          []TokenBurnInfo      `json:"tokenBurnInfo,omitempty"`
	TokenFailedParsings []TokenFailedParsing `json:"tokenFailedParsings,omitempty"`
	Warnings            []Warning            `json:"warnings,omitempty"`
}

// HasWarning reports whether a warning of kind was recorded.
func (c *TxClassification) HasWarning(kind WarningKind) bool {
	for _, w := range c.Warnings {
		if w.Kind == kind {
			return true
		}
	}
	return false
}

// Protocol returns the payload tag, or an empty tag when there is no data carrier.
func (c *TxClassification) Protocol() ProtocolTag {
	if c.Payload == nil {
		return ""
	}
	return c.Payload.Tag
}
