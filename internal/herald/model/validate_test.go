package model

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

const (
	testTxID    = "010114b9bbe776def1a512ad1e96a4a06ec4c34fc79bcb5d908845f5102f6b0f"
	testTokenID = "fb4233e8a568993976ed38a81c2671587c5ad09552dedefa78760deed6ff87aa"
)

func validTx() Transaction {
	script := MustScript("76a9144bb6f659b8dafd99527e0c0a3289f121b0a0209f88ac")
	return Transaction{
		TxID: testTxID,
		Inputs: []Input{{
			PrevOut:      OutPoint{TxID: testTokenID, OutIdx: 1},
			OutputScript: &script,
			Value:        5000,
		}},
		Outputs:     []Output{{Value: 4500, OutputScript: script}},
		TokenStatus: TokenStatusNonToken,
	}
}

func TestTransaction_Validate(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(tx *Transaction)
		wantErrSubstr string
	}{
		{name: "valid", mutate: func(*Transaction) {}},
		{
			name:          "short txid",
			mutate:        func(tx *Transaction) { tx.TxID = "abcd" },
			wantErrSubstr: "txid",
		},
		{
			name:          "non hex txid",
			mutate:        func(tx *Transaction) { tx.TxID = strings.Repeat("zz", 32) },
			wantErrSubstr: "txid",
		},
		{
			name:          "no outputs",
			mutate:        func(tx *Transaction) { tx.Outputs = nil },
			wantErrSubstr: "no outputs",
		},
		{
			name:          "no inputs",
			mutate:        func(tx *Transaction) { tx.Inputs = nil },
			wantErrSubstr: "no inputs",
		},
		{
			name: "non token status with entries is not structural",
			mutate: func(tx *Transaction) {
				tx.TokenEntries = []TokenEntry{{TokenID: testTokenID, TxType: TokenTxTypeSend}}
			},
		},
		{
			name: "normal status with burning entry is not structural",
			mutate: func(tx *Transaction) {
				tx.TokenStatus = TokenStatusNormal
				tx.TokenEntries = []TokenEntry{{TokenID: testTokenID, TxType: TokenTxTypeSend, ActualBurnAmount: NewAmount(1), BurnSummary: "Unexpected burn"}}
			},
		},
		{
			name:          "unknown status",
			mutate:        func(tx *Transaction) { tx.TokenStatus = "" },
			wantErrSubstr: "token status",
		},
		{
			name: "unknown tx type",
			mutate: func(tx *Transaction) {
				tx.TokenStatus = TokenStatusNotNormal
				tx.TokenEntries = []TokenEntry{{TokenID: testTokenID, TxType: "SWAP"}}
			},
			wantErrSubstr: "unknown tx type",
		},
		{
			name: "output token entry out of range",
			mutate: func(tx *Transaction) {
				tx.Outputs[0].Token = &Token{TokenID: testTokenID, EntryIdx: 0}
			},
			wantErrSubstr: "entry index",
		},
		{
			name: "coinbase prevout is not checked",
			mutate: func(tx *Transaction) {
				tx.IsCoinbase = true
				tx.Inputs[0].PrevOut = OutPoint{TxID: "", OutIdx: 0xffffffff}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := validTx()
			tt.mutate(&tx)
			err := tx.Validate()
			if tt.wantErrSubstr == "" {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() expected error containing %q", tt.wantErrSubstr)
			}
			if !errors.Is(err, ErrInvalidTransaction) {
				t.Errorf("Validate() error = %v, want ErrInvalidTransaction", err)
			}
			if !strings.Contains(err.Error(), tt.wantErrSubstr) {
				t.Errorf("Validate() error = %v, want substring %q", err, tt.wantErrSubstr)
			}
		})
	}
}

func TestTransaction_TokenStatusConflict(t *testing.T) {
	tests := []struct {
		name         string
		status       TokenStatus
		entries      []TokenEntry
		wantConflict bool
	}{
		{name: "non token", status: TokenStatusNonToken},
		{
			name:   "intentional burn is normal",
			status: TokenStatusNormal,
			entries: []TokenEntry{{
				TokenID: testTokenID, TxType: TokenTxTypeBurn,
				ActualBurnAmount: NewAmount(100), IntentionalBurn: NewAmount(100),
			}},
		},
		{
			name:   "unintentional burn reported normal",
			status: TokenStatusNormal,
			entries: []TokenEntry{{
				TokenID: testTokenID, TxType: TokenTxTypeSend,
				ActualBurnAmount: NewAmount(100), BurnSummary: "Unexpected burn: Burns 100 base tokens",
			}},
			wantConflict: true,
		},
		{
			name:         "entries reported non token",
			status:       TokenStatusNonToken,
			entries:      []TokenEntry{{TokenID: testTokenID, TxType: TokenTxTypeSend}},
			wantConflict: true,
		},
		{name: "not normal without token data", status: TokenStatusNotNormal, wantConflict: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := validTx()
			tx.TokenStatus = tt.status
			tx.TokenEntries = tt.entries
			if err := tx.Validate(); err != nil {
				t.Fatalf("Validate() unexpected error: %v", err)
			}
			if got := tx.TokenStatusConflict() != nil; got != tt.wantConflict {
				t.Errorf("TokenStatusConflict() got = %v, want %v", got, tt.wantConflict)
			}
		})
	}
}

func TestBlockTxs_Validate(t *testing.T) {
	block := BlockTxs{
		Block: Block{Height: 1, Hash: testTokenID},
		Txs:   []Transaction{validTx()},
	}
	if err := block.Validate(); err != nil {
		t.Fatalf("Validate() unexpected error: %v", err)
	}

	block.Block.Hash = ""
	if err := block.Validate(); !errors.Is(err, ErrInvalidBlock) {
		t.Errorf("Validate() error = %v, want ErrInvalidBlock", err)
	}

	block.Block.Hash = testTokenID
	block.Txs[0].TxID = ""
	if err := block.Validate(); !errors.Is(err, ErrInvalidTransaction) {
		t.Errorf("Validate() error = %v, want ErrInvalidTransaction", err)
	}
}

func TestTransaction_UnmarshalIndexerShape(t *testing.T) {
	doc := `{
		"txid": "` + testTxID + `",
		"version": 2,
		"inputs": [
			{"prevOut": {"txid": "` + testTokenID + `", "outIdx": 1}, "inputScript": "00", "value": 546,
			 "sequenceNo": 4294967295, "outputScript": "76a9144bb6f659b8dafd99527e0c0a3289f121b0a0209f88ac",
			 "token": {"tokenId": "` + testTokenID + `", "tokenType": {"protocol": "SLP", "type": "SLP_TOKEN_TYPE_FUNGIBLE", "number": 1},
			           "amount": "205000000", "isMintBaton": false, "entryIdx": 0}},
			{"prevOut": {"txid": "` + testTokenID + `", "outIdx": 2}, "inputScript": "00", "value": 100, "sequenceNo": 0}
		],
		"outputs": [{"value": 0, "outputScript": "6a"}],
		"lockTime": 0, "timeFirstSeen": 0, "size": 100, "isCoinbase": false,
		"tokenEntries": [{"tokenId": "` + testTokenID + `", "tokenType": {"protocol": "SLP", "type": "SLP_TOKEN_TYPE_FUNGIBLE", "number": 1},
			"txType": "SEND", "isInvalid": false, "burnSummary": "Unexpected burn: Burns 100 base tokens", "failedColorings": [],
			"actualBurnAmount": "100", "intentionalBurn": "0", "burnsMintBatons": false}],
		"tokenFailedParsings": [],
		"tokenStatus": "TOKEN_STATUS_NOT_NORMAL"
	}`

	var tx Transaction
	if err := json.Unmarshal([]byte(doc), &tx); err != nil {
		t.Fatalf("Unmarshal() unexpected error: %v", err)
	}
	if err := tx.Validate(); err != nil {
		t.Fatalf("Validate() unexpected error: %v", err)
	}
	if !tx.Inputs[0].Resolved() || tx.Inputs[1].Resolved() {
		t.Errorf("Resolved() = %v/%v, want true/false", tx.Inputs[0].Resolved(), tx.Inputs[1].Resolved())
	}
	if tx.Block != nil {
		t.Errorf("Block = %+v, want nil for unconfirmed tx", tx.Block)
	}
	if !tx.TokenEntries[0].UnintentionalBurn() {
		t.Errorf("UnintentionalBurn() = false, want true")
	}
	if tx.DataCarrierIndex() != 0 {
		t.Errorf("DataCarrierIndex() = %d, want 0", tx.DataCarrierIndex())
	}
}
