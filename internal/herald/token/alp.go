package token

import (
	"bytes"
	"encoding/hex"

	"github.com/Bitcoin-ABC/bitcoin-abc-sub005/internal/herald/model"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

const (
	alpStandard     = 0x00
	alpAmountWidth  = 6
	alpMaxListCount = 127
)

// alpReader consumes an ALP section. Every read reports truncation instead of panicking.
type alpReader struct {
	buf *bytes.Reader
}

func (r *alpReader) bytes(n int, field string) ([]byte, error) {
	if r.buf.Len() < n {
		return nil, decodeErr(ErrTruncated, "%s needs %d bytes, %d left", field, n, r.buf.Len())
	}
	out := make([]byte, n)
	_, _ = r.buf.Read(out)
	return out, nil
}

func (r *alpReader) u8(field string) (uint8, error) {
	b, err := r.bytes(1, field)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *alpReader) varBytes(field string) ([]byte, error) {
	n, err := r.u8(field + " length")
	if err != nil {
		return nil, err
	}
	return r.bytes(int(n), field)
}

func (r *alpReader) count(field string) (int, error) {
	n, err := r.u8(field)
	if err != nil {
		return 0, err
	}
	if n > alpMaxListCount {
		return 0, decodeErr(ErrInvalidField, "%s %d exceeds %d", field, n, alpMaxListCount)
	}
	return int(n), nil
}

// amount reads a 6-byte little-endian amount.
func (r *alpReader) amount(field string) (model.Amount, error) {
	b, err := r.bytes(alpAmountWidth, field)
	if err != nil {
		return model.Amount{}, err
	}
	var v uint64
	for i := alpAmountWidth - 1; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}
	return model.NewAmount(v), nil
}

func (r *alpReader) amounts(field string) ([]model.Amount, error) {
	n, err := r.count(field + " count")
	if err != nil {
		return nil, err
	}
	out := make([]model.Amount, 0, n)
	for i := 0; i < n; i++ {
		a, err := r.amount(field)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

// tokenID reads a 32-byte id and renders it in display (reversed) order.
func (r *alpReader) tokenID() (string, error) {
	b, err := r.bytes(chainhash.HashSize, "token id")
	if err != nil {
		return "", err
	}
	var h chainhash.Hash
	copy(h[:], b)
	return h.String(), nil
}

// DecodeALP decodes one ALP section. push must start with the ALP lokad.
func DecodeALP(push []byte) (model.TokenAction, error) {
	if !IsALP(push) {
		return model.TokenAction{}, decodeErr(ErrInvalidField, "missing ALP lokad")
	}
	r := &alpReader{buf: bytes.NewReader(push[len(ALPLokad):])}
	action := model.TokenAction{Protocol: model.TokenProtocolALP}

	tokenType, err := r.u8("token type")
	if err != nil {
		return model.TokenAction{}, err
	}
	action.TokenType = tokenType
	if tokenType != alpStandard {
		action.TxType = model.TokenTxTypeUnknown
		return action, nil
	}

	section, err := r.varBytes("tx type")
	if err != nil {
		return model.TokenAction{}, err
	}
	switch txType := string(section); txType {
	case string(model.TokenTxTypeGenesis):
		action.TxType = model.TokenTxTypeGenesis
		err = decodeALPGenesis(r, &action)
	case string(model.TokenTxTypeMint):
		action.TxType = model.TokenTxTypeMint
		err = decodeALPMint(r, &action)
	case string(model.TokenTxTypeSend):
		action.TxType = model.TokenTxTypeSend
		err = decodeALPSend(r, &action)
	case string(model.TokenTxTypeBurn):
		action.TxType = model.TokenTxTypeBurn
		err = decodeALPBurn(r, &action)
	default:
		return model.TokenAction{}, decodeErr(ErrUnknownTxType, "%q", txType)
	}
	if err != nil {
		return model.TokenAction{}, err
	}
	if r.buf.Len() > 0 {
		return model.TokenAction{}, decodeErr(ErrSuperfluousBytes, "%d bytes after %s", r.buf.Len(), action.TxType)
	}
	return action, nil
}

func decodeALPGenesis(r *alpReader, action *model.TokenAction) error {
	genesis := &model.GenesisData{}
	fields := []struct {
		name string
		set  func([]byte)
	}{
		{"ticker", func(b []byte) { genesis.Ticker = string(b) }},
		{"name", func(b []byte) { genesis.Name = string(b) }},
		{"url", func(b []byte) { genesis.URL = string(b) }},
		{"data", func(b []byte) { genesis.Data = hex.EncodeToString(b) }},
		{"auth pubkey", func(b []byte) { genesis.AuthPubkey = hex.EncodeToString(b) }},
	}
	for _, f := range fields {
		b, err := r.varBytes(f.name)
		if err != nil {
			return err
		}
		f.set(b)
	}
	decimals, err := r.u8("decimals")
	if err != nil {
		return err
	}
	if decimals > maxDecimals {
		return decodeErr(ErrDecimals, "%d", decimals)
	}
	genesis.Decimals = decimals
	action.Genesis = genesis
	return decodeALPMintData(r, action)
}

func decodeALPMintData(r *alpReader, action *model.TokenAction) error {
	amounts, err := r.amounts("mint amount")
	if err != nil {
		return err
	}
	batons, err := r.count("num batons")
	if err != nil {
		return err
	}
	action.Amounts = amounts
	action.NumBatons = batons
	return nil
}

func decodeALPMint(r *alpReader, action *model.TokenAction) error {
	tokenID, err := r.tokenID()
	if err != nil {
		return err
	}
	action.TokenID = tokenID
	return decodeALPMintData(r, action)
}

func decodeALPSend(r *alpReader, action *model.TokenAction) error {
	tokenID, err := r.tokenID()
	if err != nil {
		return err
	}
	amounts, err := r.amounts("send amount")
	if err != nil {
		return err
	}
	action.TokenID = tokenID
	action.Amounts = amounts
	return nil
}

func decodeALPBurn(r *alpReader, action *model.TokenAction) error {
	tokenID, err := r.tokenID()
	if err != nil {
		return err
	}
	amount, err := r.amount("burn amount")
	if err != nil {
		return err
	}
	action.TokenID = tokenID
	action.Amounts = []model.Amount{amount}
	return nil
}
