package model

// ProtocolTag names the application protocol found in a data-carrier output.
type ProtocolTag string

const (
	TagCashFusion       ProtocolTag = "CashFusion"
	TagSwap             ProtocolTag = "SWaP"
	TagAlias            ProtocolTag = "Alias"
	TagMemo             ProtocolTag = "memo"
	TagCashtabMsg       ProtocolTag = "Cashtab Msg"
	TagCashtabEncrypted ProtocolTag = "Encrypted Cashtab Msg"
	TagAirdrop          ProtocolTag = "Airdrop"
	TagSLP              ProtocolTag = "SLP"
	TagALP              ProtocolTag = "ALP"
	TagEMPP             ProtocolTag = "EMPP"
	TagPayButton        ProtocolTag = "PayButton"
	TagPaywall          ProtocolTag = "Paywall"
	TagAuthentication   ProtocolTag = "eCashChat Auth"
	TagUnknown          ProtocolTag = "unknown"
)

// IsToken reports whether the tag belongs to a token protocol.
func (t ProtocolTag) IsToken() bool {
	return t == TagSLP || t == TagALP
}

// IsApp reports whether a payload with this tag is listed as an app transaction.
func (t ProtocolTag) IsApp() bool {
	return t != "" && t != TagUnknown && !t.IsToken()
}

// Field is one named value decoded from a payload.
type Field struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Payload is the decoded content of a data-carrier output.
type Payload struct {
	Tag     ProtocolTag   `json:"tag"`
	Message string        `json:"message,omitempty"`
	TokenID string        `json:"tokenId,omitempty"`
	Fields  []Field       `json:"fields,omitempty"`
	Chunks  []string      `json:"chunks"`
	Tokens  []TokenAction `json:"tokens,omitempty"`
}

// Field returns the value stored under key.
func (p *Payload) Field(key string) (string, bool) {
	for _, f := range p.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

// GenesisData holds the metadata of a token genesis payload.
type GenesisData struct {
	Ticker     string `json:"ticker"`
	Name       string `json:"name"`
	URL        string `json:"url"`
	Hash       string `json:"hash,omitempty"`
	Data       string `json:"data,omitempty"`
	AuthPubkey string `json:"authPubkey,omitempty"`
	Decimals   uint8  `json:"decimals"`
}

// TokenAction is a token payload decoded from script bytes. It is supplementary to
// the indexer's TokenEntry and carries no validity claim.
type TokenAction struct {
	Protocol  TokenProtocol `json:"protocol"`
	TokenType uint8         `json:"tokenType"`
	TxType    TokenTxType   `json:"txType"`
	TokenID   string        `json:"tokenId,omitempty"`
	Amounts   []Amount      `json:"amounts,omitempty"`
	// MintBatonOutIdx is the SLP baton output, zero when absent.
	MintBatonOutIdx uint8 `json:"mintBatonOutIdx,omitempty"`
	// NumBatons is the ALP baton count.
	NumBatons int          `json:"numBatons,omitempty"`
	Genesis   *GenesisData `json:"genesis,omitempty"`
}

// HasMintBaton reports whether the action creates or moves a mint baton.
func (a TokenAction) HasMintBaton() bool {
	return a.MintBatonOutIdx > 0 || a.NumBatons > 0
}

// Total sums the action's amounts.
func (a TokenAction) Total() (Amount, error) {
	return SumAmounts(a.Amounts)
}
