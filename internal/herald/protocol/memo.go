package protocol

import (
	"encoding/hex"
	"strings"

	"github.com/Bitcoin-ABC/bitcoin-abc-sub005/internal/herald/model"
)

type memoLayout int

const (
	memoText          memoLayout = iota // <text>
	memoTxAndText                       // <txid> <text>
	memoTx                              // <txid>
	memoAddress                         // <hash160>
	memoPicture                         // <url>
	memoTopicMessage                    // <topic> <text>
	memoPoll                            // <type> <count> <question>
	memoPollReply                       // <poll txid> <text>, only the text is shown
	memoAddressAndText                  // <hash160> <text>
	memoActionOnly
)

type memoAction struct {
	description string
	layout      memoLayout
}

var memoActions = map[byte]memoAction{
	0x01: {"Set name", memoText},
	0x02: {"Post memo", memoText},
	0x03: {"Reply to memo", memoTxAndText},
	0x04: {"Like / tip memo", memoTx},
	0x05: {"Set profile text", memoText},
	0x06: {"Follow user", memoAddress},
	0x07: {"Unfollow user", memoAddress},
	0x0a: {"Set profile picture", memoPicture},
	0x0b: {"Repost memo", memoTxAndText},
	0x0c: {"Post topic message", memoTopicMessage},
	0x0d: {"Topic follow", memoText},
	0x0e: {"Topic unfollow", memoText},
	0x10: {"Create poll", memoPoll},
	0x13: {"Add poll option", memoPollReply},
	0x14: {"Poll vote", memoPollReply},
	0x16: {"Mute user", memoAddress},
	0x17: {"Unmute user", memoAddress},
	0x20: {"Link request", memoAddressAndText},
	0x21: {"Link accept", memoActionOnly},
	0x22: {"Link revoke", memoActionOnly},
	0x24: {"Send money", memoAddressAndText},
	0x26: {"Set address alias", memoAddressAndText},
	0x30: {"Sell tokens", memoActionOnly},
	0x31: {"Token buy offer", memoActionOnly},
	0x32: {"Attach token sale signature", memoActionOnly},
	0x35: {"Pin token post", memoActionOnly},
}

const memoRedacted = "[check memo.cash for msg]"

func decodeMemo(d *Decoder, m message) Result {
	code := m.stack[0][1]
	codeHex := hex.EncodeToString([]byte{code})
	action, ok := memoActions[code]
	if !ok {
		return payload(model.TagMemo, "Unknown memo action", field("action", codeHex))
	}

	fields := []model.Field{field("action", codeHex)}
	parts := []string{action.description}
	need := func(idx ...int) bool {
		for _, i := range idx {
			if _, ok := m.at(i); !ok {
				return false
			}
		}
		return true
	}

	switch action.layout {
	case memoText, memoPicture:
		if !need(1) {
			return decodeUnknown(d, m)
		}
		text := utf8Text(m.stack[1])
		parts = append(parts, text)
		key := "text"
		if action.layout == memoPicture {
			key = "url"
		}
		fields = append(fields, field(key, text))
	case memoTx:
		if !need(1) {
			return decodeUnknown(d, m)
		}
		txid := hex.EncodeToString(m.stack[1])
		parts = append(parts, txid)
		fields = append(fields, field("txid", txid))
	case memoTxAndText:
		if !need(1, 2) {
			return decodeUnknown(d, m)
		}
		txid, text := hex.EncodeToString(m.stack[1]), utf8Text(m.stack[2])
		parts = append(parts, txid, text)
		fields = append(fields, field("txid", txid), field("text", text))
	case memoAddress:
		if !need(1) {
			return decodeUnknown(d, m)
		}
		addr := d.pubKeyHashAddress(m.stack[1])
		parts = append(parts, addr)
		fields = append(fields, field("address", addr))
	case memoTopicMessage:
		if !need(1, 2) {
			return decodeUnknown(d, m)
		}
		topic, text := utf8Text(m.stack[1]), utf8Text(m.stack[2])
		parts = append(parts, topic, text)
		fields = append(fields, field("topic", topic), field("text", text))
	case memoPoll:
		if !need(3) {
			return decodeUnknown(d, m)
		}
		question := utf8Text(m.stack[3])
		parts = append(parts, question)
		fields = append(fields, field("question", question))
	case memoPollReply:
		if !need(2) {
			return decodeUnknown(d, m)
		}
		text := utf8Text(m.stack[2])
		parts = append(parts, text)
		fields = append(fields, field("pollTxid", hex.EncodeToString(m.stack[1])), field("text", text))
	case memoAddressAndText:
		if !need(1, 2) {
			return decodeUnknown(d, m)
		}
		addr, text := d.pubKeyHashAddress(m.stack[1]), utf8Text(m.stack[2])
		parts = append(parts, addr, text)
		fields = append(fields, field("address", addr), field("text", text))
	case memoActionOnly:
	}

	msg := strings.Join(parts, "|")
	if strings.Contains(msg, "BCH") {
		msg = memoRedacted
	}
	return payload(model.TagMemo, msg, fields...)
}

// pubKeyHashAddress renders a memo address push. Memo addresses are always P2PKH.
func (d *Decoder) pubKeyHashAddress(hash []byte) string {
	if d.addresses == nil {
		return hex.EncodeToString(hash)
	}
	addr, err := d.addresses.EncodePubKeyHash(hash)
	if err != nil {
		return hex.EncodeToString(hash)
	}
	return addr
}
