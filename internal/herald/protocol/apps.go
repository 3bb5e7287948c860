package protocol

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/Bitcoin-ABC/bitcoin-abc-sub005/internal/herald/model"
)

const (
	txidSize = 32

	aliasAddressP2PKH = 0x00
	aliasAddressP2SH  = 0x08
)

// decodeAlias reads <lokad> <version 00> <name> <address type + hash>.
func decodeAlias(d *Decoder, m message) Result {
	if len(m.stack) != 4 {
		return malformed("Invalid alias registration")
	}
	if !bytes.Equal(m.stack[1], []byte{0x00}) {
		return payload(model.TagAlias, "Invalid alias registration")
	}
	name := utf8Text(m.stack[2])
	fields := []model.Field{field("version", "00"), field("alias", name)}
	if addr := d.aliasAddress(m.stack[3]); addr != "" {
		fields = append(fields, field("address", addr))
	}
	return payload(model.TagAlias, name, fields...)
}

func (d *Decoder) aliasAddress(b []byte) string {
	if len(b) != 21 || d.addresses == nil {
		return hex.EncodeToString(b)
	}
	var (
		addr string
		err  error
	)
	switch b[0] {
	case aliasAddressP2PKH:
		addr, err = d.addresses.EncodePubKeyHash(b[1:])
	case aliasAddressP2SH:
		addr, err = d.addresses.EncodeScriptHash(b[1:])
	default:
		return hex.EncodeToString(b)
	}
	if err != nil {
		return hex.EncodeToString(b)
	}
	return addr
}

// decodeAirdrop reads <lokad> <token id> and an optional <cashtab lokad> <msg>.
func decodeAirdrop(_ *Decoder, m message) Result {
	tokenID, ok := m.at(1)
	if !ok || len(tokenID) != txidSize {
		return malformed("Invalid Airdrop")
	}
	res := payload(model.TagAirdrop, "")
	res.Payload.TokenID = hex.EncodeToString(tokenID)
	if len(m.stack) > 3 && bytes.Equal(m.stack[2], lokadCashtab) {
		res.Payload.Message = utf8Text(m.stack[3])
	}
	return res
}

func decodeCashtab(_ *Decoder, m message) Result {
	text, ok := m.at(1)
	if !ok {
		return malformed("Invalid Cashtab Msg")
	}
	return payload(model.TagCashtabMsg, utf8Text(text))
}

// decodeEncrypted keeps the ciphertext out of the message.
func decodeEncrypted(_ *Decoder, _ message) Result {
	return payload(model.TagCashtabEncrypted, "")
}

func decodeFusion(_ *Decoder, m message) Result {
	if session, ok := m.at(1); ok {
		return payload(model.TagCashFusion, "", field("sessionHash", hex.EncodeToString(session)))
	}
	return payload(model.TagCashFusion, "")
}

// decodePayButton reads <lokad> <version> <data> <nonce>.
func decodePayButton(_ *Decoder, m message) Result {
	if len(m.stack) < 3 {
		return malformed("[off spec]")
	}
	version := hex.EncodeToString(m.stack[1])
	if version != "00" {
		return payload(model.TagPayButton, fmt.Sprintf("Unsupported version: 0x%s", version), field("version", version))
	}
	fields := []model.Field{field("version", version)}
	msg := "no data"
	if data := m.stack[2]; !bytes.Equal(data, []byte{0x00}) {
		msg = utf8Text(data)
		fields = append(fields, field("data", msg))
	}
	if nonce, ok := m.at(3); ok {
		fields = append(fields, field("nonce", hex.EncodeToString(nonce)))
	}
	return payload(model.TagPayButton, msg, fields...)
}

// decodePaywall reads <lokad> <article txid>.
func decodePaywall(_ *Decoder, m message) Result {
	if len(m.stack) != 2 {
		return malformed("[off spec paywall payment]")
	}
	if len(m.stack[1]) != txidSize {
		return payload(model.TagPaywall, "Invalid paywall article txid")
	}
	return payload(model.TagPaywall, "Article paywall payment", field("articleTxid", hex.EncodeToString(m.stack[1])))
}

// decodeAuth reads <lokad> <authentication identifier>.
func decodeAuth(_ *Decoder, m message) Result {
	if len(m.stack) != 2 {
		return malformed("[off spec eCashChat authentication]")
	}
	if bytes.Equal(m.stack[1], []byte{0x00}) {
		return payload(model.TagAuthentication, "Invalid eCashChat authentication identifier")
	}
	return payload(model.TagAuthentication, "eCashChat authentication via dust tx",
		field("identifier", hex.EncodeToString(m.stack[1])))
}
