// Package protocol identifies the application protocol of a data-carrier output and
// decodes its pushes into a model.Payload.
package protocol

import (
	"encoding/hex"

	"github.com/Bitcoin-ABC/bitcoin-abc-sub005/internal/herald/model"
	"github.com/Bitcoin-ABC/bitcoin-abc-sub005/internal/herald/script"
	"github.com/Bitcoin-ABC/bitcoin-abc-sub005/internal/herald/token"
	"github.com/btcsuite/btcd/txscript"
)

// LOKAD prefixes of the four-byte protocols.
var (
	lokadFusion    = []byte("FUZ\x00")
	lokadSwap      = []byte("SWP\x00")
	lokadAlias     = []byte(".xec")
	lokadCashtab   = []byte("\x00tab")
	lokadEncrypted = []byte("etab")
	lokadAirdrop   = []byte("drop")
	lokadPayButton = []byte("PAY\x00")
	lokadPaywall   = []byte("PWP\x00")
	lokadAuth      = []byte("AUT\x00")
)

const memoPrefix = 0x6d

type decodeFunc func(d *Decoder, m message) Result

type entry struct {
	tag    model.ProtocolTag
	decode decodeFunc
}

// registry maps the exact bytes of the first push to its protocol.
var registry = map[string]entry{
	string(lokadFusion):    {model.TagCashFusion, decodeFusion},
	string(lokadSwap):      {model.TagSwap, decodeSwap},
	string(lokadAlias):     {model.TagAlias, decodeAlias},
	string(lokadCashtab):   {model.TagCashtabMsg, decodeCashtab},
	string(lokadEncrypted): {model.TagCashtabEncrypted, decodeEncrypted},
	string(lokadAirdrop):   {model.TagAirdrop, decodeAirdrop},
	string(lokadPayButton): {model.TagPayButton, decodePayButton},
	string(lokadPaywall):   {model.TagPaywall, decodePaywall},
	string(lokadAuth):      {model.TagAuthentication, decodeAuth},
	string(token.SLPLokad): {model.TagSLP, decodeSLP},
}

// message is a data carrier prepared for the protocol decoders.
type message struct {
	chunks []script.Chunk
	// stack is script.Stack(chunks): the pushes as decoders index them.
	stack [][]byte
	raw   []byte
}

// at returns push i of the stack.
func (m message) at(i int) ([]byte, bool) {
	if i < 0 || i >= len(m.stack) {
		return nil, false
	}
	return m.stack[i], true
}

// Result is a decoded payload plus any soft failures met while decoding it.
type Result struct {
	Payload  model.Payload
	Failures []model.TokenFailedParsing
	Warnings []model.Warning
}

// Decoder decodes data-carrier scripts. Addresses embedded in payloads are rendered
// with the encoder; a nil encoder leaves them as hex.
type Decoder struct {
	addresses *script.AddressEncoder
}

func NewDecoder(addresses *script.AddressEncoder) *Decoder {
	return &Decoder{addresses: addresses}
}

// Identify returns the protocol tag of a data carrier's chunks. It never fails:
// anything unmatched is model.TagUnknown.
func Identify(chunks []script.Chunk) model.ProtocolTag {
	return lookup(chunks).tag
}

func lookup(chunks []script.Chunk) entry {
	lead, ok := leadChunk(chunks)
	if !ok {
		return entry{model.TagUnknown, decodeUnknown}
	}
	if lead.Opcode == txscript.OP_RESERVED {
		return entry{emppTag(chunks), decodeEMPP}
	}
	if !lead.IsPush() {
		return entry{model.TagUnknown, decodeUnknown}
	}
	if len(lead.Data) == 2 && lead.Data[0] == memoPrefix {
		return entry{model.TagMemo, decodeMemo}
	}
	if e, ok := registry[string(lead.Data)]; ok {
		return e
	}
	return entry{model.TagUnknown, decodeUnknown}
}

// leadChunk is the first chunk that contributes to the stack.
func leadChunk(chunks []script.Chunk) (script.Chunk, bool) {
	for _, c := range chunks {
		if c.IsPush() && c.Opcode != txscript.OP_0 && len(c.Data) == 0 {
			continue
		}
		return c, true
	}
	return script.Chunk{}, false
}

// Decode decodes the payload of shape. A data carrier that failed to parse
// resolves to an unknown payload with no chunks and a MalformedScript warning.
func (d *Decoder) Decode(shape script.Shape) Result {
	if shape.Kind != script.KindDataCarrier {
		res := Result{Payload: model.Payload{Tag: model.TagUnknown, Chunks: []string{}}}
		if shape.Err != nil {
			res.Warnings = append(res.Warnings, model.Warning{
				Kind:    model.WarningMalformedScript,
				Message: shape.Err.Error(),
			})
		}
		return res
	}

	m := message{chunks: shape.Chunks, stack: script.Stack(shape.Chunks), raw: shape.Raw}
	res := lookup(shape.Chunks).decode(d, m)
	res.Payload.Chunks = hexStack(m.stack)
	return res
}

func hexStack(stack [][]byte) []string {
	out := make([]string, 0, len(stack))
	for _, push := range stack {
		out = append(out, hex.EncodeToString(push))
	}
	return out
}

func payload(tag model.ProtocolTag, msg string, fields ...model.Field) Result {
	return Result{Payload: model.Payload{Tag: tag, Message: msg, Fields: fields}}
}

// malformed is the payload of a known prefix whose pushes do not fit the protocol.
func malformed(msg string) Result {
	return payload(model.TagUnknown, msg)
}

func field(key, value string) model.Field {
	return model.Field{Key: key, Value: value}
}
