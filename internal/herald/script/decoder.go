// Package script decodes locking scripts into the shapes the classifier works with.
package script

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/txscript"
)

// ErrMalformedScript is returned when a push declares more bytes than remain in the script.
var ErrMalformedScript = errors.New("malformed script")

type Kind string

const (
	KindEmpty       Kind = "empty"
	KindP2PKH       Kind = "p2pkh"
	KindP2SH        Kind = "p2sh"
	KindDataCarrier Kind = "data_carrier"
	KindOther       Kind = "other"
)

// Chunk is one operation following OP_RETURN. Data is set for push opcodes only.
type Chunk struct {
	Opcode byte
	Data   []byte
}

// IsPush reports whether the chunk pushes data (including OP_0).
func (c Chunk) IsPush() bool {
	return c.Opcode <= txscript.OP_PUSHDATA4
}

// Shape is a decoded locking script.
type Shape struct {
	Kind Kind
	// Hash is the 20-byte hash of P2PKH and P2SH scripts.
	Hash []byte
	// Chunks holds the operations after OP_RETURN of a data carrier.
	Chunks []Chunk
	// Raw is the script as given.
	Raw []byte
	// Err is set when a data carrier failed to decode and the script fell back to KindOther.
	Err error
}

// Decode classifies script. It never fails; a data carrier with a broken push
// decodes as KindOther with Err wrapping ErrMalformedScript.
func Decode(script []byte) Shape {
	shape := Shape{Raw: script}
	switch {
	case len(script) == 0:
		shape.Kind = KindEmpty
	case script[0] == txscript.OP_RETURN:
		chunks, err := ParseChunks(script[1:])
		if err != nil {
			shape.Kind = KindOther
			shape.Err = err
			return shape
		}
		shape.Kind = KindDataCarrier
		shape.Chunks = chunks
	default:
		switch txscript.GetScriptClass(script) {
		case txscript.PubKeyHashTy:
			shape.Kind = KindP2PKH
			shape.Hash = script[3:23]
		case txscript.ScriptHashTy:
			shape.Kind = KindP2SH
			shape.Hash = script[2:22]
		default:
			shape.Kind = KindOther
		}
	}
	return shape
}

// ParseChunks tokenizes the operations of b.
func ParseChunks(b []byte) ([]Chunk, error) {
	chunks := make([]Chunk, 0)
	tokenizer := txscript.MakeScriptTokenizer(0, b)
	for tokenizer.Next() {
		chunks = append(chunks, Chunk{Opcode: tokenizer.Opcode(), Data: tokenizer.Data()})
	}
	if err := tokenizer.Err(); err != nil {
		return nil, fmt.Errorf("%w: offset %d: %v", ErrMalformedScript, tokenizer.ByteIndex(), err)
	}
	return chunks, nil
}

// Encode serializes chunks with the exact push encoding they were decoded with.
func Encode(chunks []Chunk) []byte {
	out := make([]byte, 0)
	for _, c := range chunks {
		out = append(out, c.Opcode)
		switch {
		case c.Opcode == txscript.OP_PUSHDATA1:
			out = append(out, byte(len(c.Data)))
		case c.Opcode == txscript.OP_PUSHDATA2:
			out = binary.LittleEndian.AppendUint16(out, uint16(len(c.Data)))
		case c.Opcode == txscript.OP_PUSHDATA4:
			out = binary.LittleEndian.AppendUint32(out, uint32(len(c.Data)))
		}
		out = append(out, c.Data...)
	}
	return out
}

// Encode re-serializes the shape.
func (s Shape) Encode() []byte {
	if s.Kind != KindDataCarrier {
		return s.Raw
	}
	return append([]byte{txscript.OP_RETURN}, Encode(s.Chunks)...)
}

// Stack returns the pushes of chunks the way payload decoders index them:
// OP_0 becomes 0x00, other non-push opcodes become their opcode byte, and
// empty pushes such as 4c00 are skipped.
func Stack(chunks []Chunk) [][]byte {
	stack := make([][]byte, 0, len(chunks))
	for _, c := range chunks {
		switch {
		case c.Opcode == txscript.OP_0:
			stack = append(stack, []byte{txscript.OP_0})
		case !c.IsPush():
			stack = append(stack, []byte{c.Opcode})
		case len(c.Data) == 0:
			continue
		default:
			stack = append(stack, c.Data)
		}
	}
	return stack
}
