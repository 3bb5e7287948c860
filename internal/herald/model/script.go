package model

import (
	"encoding/hex"
	"fmt"
)

const opReturn = 0x6a

// Script is a raw locking or unlocking script. It is hex encoded in JSON.
type Script []byte

// ParseScript decodes a hex encoded script.
func ParseScript(s string) (Script, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decode script hex: %w", err)
	}
	return Script(b), nil
}

// MustScript is ParseScript for literals known to be valid.
func MustScript(s string) Script {
	script, err := ParseScript(s)
	if err != nil {
		panic(err)
	}
	return script
}

func (s Script) String() string {
	return hex.EncodeToString(s)
}

// IsDataCarrier reports whether the script starts with OP_RETURN.
func (s Script) IsDataCarrier() bool {
	return len(s) > 0 && s[0] == opReturn
}

func (s Script) MarshalText() ([]byte, error) {
	return []byte(hex.EncodeToString(s)), nil
}

func (s *Script) UnmarshalText(b []byte) error {
	decoded := make([]byte, hex.DecodedLen(len(b)))
	n, err := hex.Decode(decoded, b)
	if err != nil {
		return fmt.Errorf("decode script hex: %w", err)
	}
	*s = decoded[:n]
	return nil
}
