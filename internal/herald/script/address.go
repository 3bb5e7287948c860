package script

import (
	"fmt"
	"strings"

	"github.com/Bitcoin-ABC/bitcoin-abc-sub005/internal/herald/model"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
)

// AddressEncoder renders standard scripts as legacy base58 addresses.
type AddressEncoder struct {
	params *chaincfg.Params
}

// NewAddressEncoder builds an encoder using the params of network.
func NewAddressEncoder(network model.Network) (*AddressEncoder, error) {
	params, err := ParamsForNetwork(network)
	if err != nil {
		return nil, err
	}
	return &AddressEncoder{params: params}, nil
}

// Encode returns the address of a P2PKH or P2SH script, or "" for any other script.
func (e *AddressEncoder) Encode(script []byte) string {
	_, addrs, _, err := txscript.ExtractPkScriptAddrs(script, e.params)
	if err != nil || len(addrs) != 1 {
		return ""
	}
	switch addrs[0].(type) {
	case *btcutil.AddressPubKeyHash, *btcutil.AddressScriptHash:
		return addrs[0].EncodeAddress()
	default:
		return ""
	}
}

// EncodeHex is Encode for a hex encoded script.
func (e *AddressEncoder) EncodeHex(scriptHex string) string {
	s, err := model.ParseScript(scriptHex)
	if err != nil {
		return ""
	}
	return e.Encode(s)
}

// EncodePubKeyHash renders a bare hash160 as a P2PKH address.
func (e *AddressEncoder) EncodePubKeyHash(hash []byte) (string, error) {
	addr, err := btcutil.NewAddressPubKeyHash(hash, e.params)
	if err != nil {
		return "", fmt.Errorf("pubkey hash address: %w", err)
	}
	return addr.EncodeAddress(), nil
}

// ParamsForNetwork maps a network name to chain params. eCash shares the
// legacy address version bytes of these networks.
func ParamsForNetwork(network model.Network) (*chaincfg.Params, error) {
	switch strings.ToLower(string(network)) {
	case "main", "mainnet", "ecash":
		return &chaincfg.MainNetParams, nil
	case "testnet", "testnet3":
		return &chaincfg.TestNet3Params, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	default:
		return nil, fmt.Errorf("unsupported network %q", network)
	}
}

// EncodeScriptHash renders a bare hash160 as a P2SH address.
func (e *AddressEncoder) EncodeScriptHash(hash []byte) (string, error) {
	addr, err := btcutil.NewAddressScriptHashFromHash(hash, e.params)
	if err != nil {
		return "", fmt.Errorf("script hash address: %w", err)
	}
	return addr.EncodeAddress(), nil
}
