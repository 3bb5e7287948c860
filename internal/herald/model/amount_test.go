package model

import (
	"encoding/json"
	"errors"
	"math/big"
	"testing"

	"github.com/Bitcoin-ABC/bitcoin-abc-sub005/pkg/safe"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "zero", in: "0", want: "0"},
		{name: "beyond 2^53", in: "99900000000000000", want: "99900000000000000"},
		{name: "beyond 2^64", in: "18446744073709551616", want: "18446744073709551616"},
		{name: "uint128 max", in: "340282366920938463463374607431768211455", want: "340282366920938463463374607431768211455"},
		{name: "beyond uint128", in: "340282366920938463463374607431768211456", wantErr: true},
		{name: "negative", in: "-1", wantErr: true},
		{name: "empty", in: "", wantErr: true},
		{name: "not a number", in: "1e5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAmount() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got.String() != tt.want {
				t.Errorf("ParseAmount() got = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestAmount_AddMatchesBigInt(t *testing.T) {
	a := MustAmount("5235120638765433")
	b := MustAmount("18446744073709551615")

	got, err := a.Add(b)
	if err != nil {
		t.Fatalf("Add() unexpected error: %v", err)
	}

	want := new(big.Int).Add(big.NewInt(5235120638765433), new(big.Int).SetUint64(18446744073709551615))
	if got.String() != want.String() {
		t.Errorf("Add() got = %s, want %s", got, want)
	}
}

func TestAmount_AddOverflow(t *testing.T) {
	max := MustAmount("340282366920938463463374607431768211455")
	if _, err := max.Add(NewAmount(1)); !errors.Is(err, safe.ErrOverflow) {
		t.Errorf("Add() error = %v, want ErrOverflow", err)
	}
}

func TestAmount_JSON(t *testing.T) {
	var token Token
	if err := json.Unmarshal([]byte(`{"tokenId":"x","amount":"99900000000000000","isMintBaton":false}`), &token); err != nil {
		t.Fatalf("Unmarshal() unexpected error: %v", err)
	}
	if token.Amount.String() != "99900000000000000" {
		t.Errorf("Amount = %s, want 99900000000000000", token.Amount)
	}

	out, err := json.Marshal(TokenBurnInfo{TokenID: "x", UndecimalizedBurnAmount: NewAmount(100)})
	if err != nil {
		t.Fatalf("Marshal() unexpected error: %v", err)
	}
	want := `{"tokenId":"x","tokenType":{"protocol":"","type":"","number":0},"undecimalizedTokenBurnAmount":"100"}`
	if string(out) != want {
		t.Errorf("Marshal() got = %s, want %s", out, want)
	}
}

func TestSumAmounts(t *testing.T) {
	got, err := SumAmounts([]Amount{NewAmount(1000), NewAmount(298900), NewAmount(100)})
	if err != nil {
		t.Fatalf("SumAmounts() unexpected error: %v", err)
	}
	if got.String() != "300000" {
		t.Errorf("SumAmounts() got = %s, want 300000", got)
	}
}
