package model

import (
	"fmt"
	"math/big"

	"github.com/Bitcoin-ABC/bitcoin-abc-sub005/pkg/safe"
	"github.com/gaze-network/uint128"
)

// Amount is an undecimalized token quantity. Arithmetic happens on a 128-bit
// unsigned integer; the decimal string form is only produced for JSON.
type Amount struct {
	v uint128.Uint128
}

// NewAmount returns an Amount holding v.
func NewAmount(v uint64) Amount {
	return Amount{v: uint128.From64(v)}
}

// AmountFromUint128 wraps a 128-bit value.
func AmountFromUint128(v uint128.Uint128) Amount {
	return Amount{v: v}
}

// ParseAmount parses a base-10 amount string.
func ParseAmount(s string) (Amount, error) {
	if s == "" {
		return Amount{}, fmt.Errorf("parse amount: empty string")
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return Amount{}, fmt.Errorf("parse amount %q: invalid digit %q", s, c)
		}
	}
	i, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Amount{}, fmt.Errorf("parse amount %q: not a base-10 integer", s)
	}
	if i.BitLen() > 128 {
		return Amount{}, fmt.Errorf("parse amount %q: %w", s, safe.ErrOverflow)
	}
	u, err := uint128.FromBig(i)
	if err != nil {
		return Amount{}, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return Amount{v: u}, nil
}

// MustAmount is ParseAmount for literals known to be valid.
func MustAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Amount) Uint128() uint128.Uint128 {
	return a.v
}

func (a Amount) IsZero() bool {
	return a.v.IsZero()
}

func (a Amount) Cmp(b Amount) int {
	return a.v.Cmp(b.v)
}

// Add returns a+b or an error wrapping safe.ErrOverflow.
func (a Amount) Add(b Amount) (Amount, error) {
	sum, err := safe.AddUint128(a.v, b.v)
	if err != nil {
		return Amount{}, err
	}
	return Amount{v: sum}, nil
}

// Sub returns a-b or an error wrapping safe.ErrOverflow when b > a.
func (a Amount) Sub(b Amount) (Amount, error) {
	diff, err := safe.SubUint128(a.v, b.v)
	if err != nil {
		return Amount{}, err
	}
	return Amount{v: diff}, nil
}

func (a Amount) String() string {
	return a.v.String()
}

func (a Amount) MarshalText() ([]byte, error) {
	return []byte(a.v.String()), nil
}

func (a *Amount) UnmarshalText(b []byte) error {
	parsed, err := ParseAmount(string(b))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// SumAmounts adds all amounts, failing on overflow.
func SumAmounts(amounts []Amount) (Amount, error) {
	var total Amount
	for i, amount := range amounts {
		next, err := total.Add(amount)
		if err != nil {
			return Amount{}, fmt.Errorf("sum amount %d: %w", i, err)
		}
		total = next
	}
	return total, nil
}

// Big returns the amount as a new big.Int.
func (a Amount) Big() *big.Int {
	return a.v.Big()
}
