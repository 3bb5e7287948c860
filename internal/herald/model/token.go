package model

import "strconv"

type TokenStatus string

const (
	TokenStatusNonToken  TokenStatus = "TOKEN_STATUS_NON_TOKEN"
	TokenStatusNormal    TokenStatus = "TOKEN_STATUS_NORMAL"
	TokenStatusNotNormal TokenStatus = "TOKEN_STATUS_NOT_NORMAL"
)

type TokenProtocol string

const (
	TokenProtocolSLP TokenProtocol = "SLP"
	TokenProtocolALP TokenProtocol = "ALP"
)

type TokenTxType string

const (
	TokenTxTypeNone    TokenTxType = "NONE"
	TokenTxTypeUnknown TokenTxType = "UNKNOWN"
	TokenTxTypeGenesis TokenTxType = "GENESIS"
	TokenTxTypeMint    TokenTxType = "MINT"
	TokenTxTypeSend    TokenTxType = "SEND"
	TokenTxTypeBurn    TokenTxType = "BURN"
)

func (t TokenTxType) valid() bool {
	switch t {
	case TokenTxTypeNone, TokenTxTypeUnknown, TokenTxTypeGenesis, TokenTxTypeMint, TokenTxTypeSend, TokenTxTypeBurn:
		return true
	}
	return false
}

// SLP token type numbers as carried in TokenType.Number.
const (
	SLPNumberFungible  = 1
	SLPNumberMintVault = 2
	SLPNumberNFT1Child = 65
	SLPNumberNFT1Group = 129
	ALPNumberStandard  = 0
)

// TokenType identifies a token protocol and its variant.
type TokenType struct {
	Protocol TokenProtocol `json:"protocol"`
	Type     string        `json:"type"`
	Number   int           `json:"number"`
}

// Label is a short display name for the token type.
func (t TokenType) Label() string {
	switch t.Protocol {
	case TokenProtocolALP:
		return "ALP"
	case TokenProtocolSLP:
		switch t.Number {
		case SLPNumberFungible:
			return "SLP"
		case SLPNumberNFT1Group:
			return "NFT Collection"
		case SLPNumberNFT1Child:
			return "NFT"
		case SLPNumberMintVault:
			return "SLP Mint Vault"
		}
	}
	return string(t.Protocol) + " " + strconv.Itoa(t.Number)
}

// Token annotates an input or output with the tokens it carries.
type Token struct {
	TokenID     string    `json:"tokenId"`
	TokenType   TokenType `json:"tokenType"`
	Amount      Amount    `json:"amount"`
	IsMintBaton bool      `json:"isMintBaton"`
	EntryIdx    int       `json:"entryIdx"`
}

// FailedColoring is an indexer note about a token section that could not color outputs.
type FailedColoring struct {
	PushIdx int    `json:"pushIdx"`
	Error   string `json:"error"`
}

// TokenFailedParsing records a token payload that claimed a protocol but did not parse.
type TokenFailedParsing struct {
	PushIdx int    `json:"pushIdx"`
	Bytes   Script `json:"bytes"`
	Error   string `json:"error"`
}

// TokenEntry is the indexer's validated summary of one token action in a transaction.
type TokenEntry struct {
	TokenID          string           `json:"tokenId"`
	TokenType        TokenType        `json:"tokenType"`
	TxType           TokenTxType      `json:"txType"`
	IsInvalid        bool             `json:"isInvalid"`
	BurnSummary      string           `json:"burnSummary"`
	FailedColorings  []FailedColoring `json:"failedColorings"`
	ActualBurnAmount Amount           `json:"actualBurnAmount"`
	IntentionalBurn  Amount           `json:"intentionalBurn"`
	BurnsMintBatons  bool             `json:"burnsMintBatons"`
}

// Burns reports whether the entry destroyed a non-zero token amount.
func (e TokenEntry) Burns() bool {
	return !e.ActualBurnAmount.IsZero()
}

// UnintentionalBurn reports whether the indexer flagged a burn that the payload did not declare.
func (e TokenEntry) UnintentionalBurn() bool {
	return e.BurnSummary != "" && e.Burns()
}

// DeriveTokenStatus computes the status implied by entries. Intentional burns
// keep a transaction normal.
func DeriveTokenStatus(entries []TokenEntry) TokenStatus {
	if len(entries) == 0 {
		return TokenStatusNonToken
	}
	for _, e := range entries {
		if e.IsInvalid || e.BurnSummary != "" || len(e.FailedColorings) > 0 {
			return TokenStatusNotNormal
		}
	}
	return TokenStatusNormal
}
