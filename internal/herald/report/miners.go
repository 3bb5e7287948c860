package report

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Bitcoin-ABC/bitcoin-abc-sub005/internal/herald/model"
	"github.com/Bitcoin-ABC/bitcoin-abc-sub005/internal/herald/script"
)

// KnownMiner maps a payout script and a coinbase tag to a pool name.
type KnownMiner struct {
	Miner               string `json:"miner"`
	OutputScript        string `json:"outputScript"`
	CoinbaseHexFragment string `json:"coinbaseHexFragment"`
}

// KnownMiners is a lookup table of mining pools.
type KnownMiners struct {
	list     []KnownMiner
	byScript map[string]int
}

// NewKnownMiners indexes miners. When two entries share a script the first wins.
func NewKnownMiners(miners []KnownMiner) *KnownMiners {
	km := &KnownMiners{
		list:     make([]KnownMiner, 0, len(miners)),
		byScript: make(map[string]int, len(miners)),
	}
	for _, m := range miners {
		m.OutputScript = strings.ToLower(m.OutputScript)
		m.CoinbaseHexFragment = strings.ToLower(m.CoinbaseHexFragment)
		if _, ok := km.byScript[m.OutputScript]; !ok && m.OutputScript != "" {
			km.byScript[m.OutputScript] = len(km.list)
		}
		km.list = append(km.list, m)
	}
	return km
}

// ReadKnownMiners decodes a JSON array of KnownMiner.
func ReadKnownMiners(r io.Reader) (*KnownMiners, error) {
	var miners []KnownMiner
	if err := json.NewDecoder(r).Decode(&miners); err != nil {
		return nil, fmt.Errorf("decode known miners: %w", err)
	}
	return NewKnownMiners(miners), nil
}

// LoadKnownMiners reads the known-miner table at path.
func LoadKnownMiners(path string) (*KnownMiners, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open known miners: %w", err)
	}
	defer f.Close()
	return ReadKnownMiners(f)
}

func (km *KnownMiners) byOutputs(outputs []model.Output) (KnownMiner, bool) {
	if km == nil {
		return KnownMiner{}, false
	}
	for _, out := range outputs {
		if i, ok := km.byScript[out.OutputScript.String()]; ok {
			return km.list[i], true
		}
	}
	return KnownMiner{}, false
}

func (km *KnownMiners) byFragment(coinbaseHex string) (KnownMiner, bool) {
	if km == nil {
		return KnownMiner{}, false
	}
	for _, m := range km.list {
		if m.CoinbaseHexFragment != "" && strings.Contains(coinbaseHex, m.CoinbaseHexFragment) {
			return m, true
		}
	}
	return KnownMiner{}, false
}

// IdentifyMiner names the pool that mined a block from its coinbase input script and outputs.
func IdentifyMiner(coinbase model.Script, outputs []model.Output, miners *KnownMiners, addresses *script.AddressEncoder) string {
	m, ok := miners.byOutputs(outputs)
	if !ok {
		m, ok = miners.byFragment(coinbase.String())
	}
	if !ok {
		return unknownMiner(outputs, addresses)
	}

	switch m.Miner {
	case "ViaBTC", "CK Pool":
		info := poolTag(coinbase, m.CoinbaseHexFragment)
		switch info {
		case "":
			return m.Miner
		case "mined by IceBerg":
			return "IceBerg"
		case "mined by iceberg":
			return "iceberg"
		}
		return m.Miner + ", " + info
	default:
		return m.Miner
	}
}

// poolTag returns the '/'-delimited segment that follows the segment holding fragment.
func poolTag(coinbase model.Script, fragment string) string {
	tag, err := hex.DecodeString(fragment)
	if err != nil || len(tag) == 0 {
		return ""
	}
	parts := bytes.Split(coinbase, []byte{'/'})
	for i, part := range parts {
		if !bytes.Contains(part, tag) {
			continue
		}
		if i+1 < len(parts) {
			return string(parts[i+1])
		}
		return ""
	}
	return ""
}

func unknownMiner(outputs []model.Output, addresses *script.AddressEncoder) string {
	if len(outputs) == 0 || addresses == nil {
		return "unknown"
	}
	addr := addresses.Encode(outputs[0].OutputScript)
	if len(addr) < 4 {
		return "unknown"
	}
	return "unknown, ..." + addr[len(addr)-4:]
}
