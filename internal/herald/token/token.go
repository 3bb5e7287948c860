// Package token decodes the two token payload families carried in data-carrier outputs:
// the legacy SLP encoding (one push per field) and ALP (a single EMPP push).
package token

import (
	"bytes"
	"fmt"

	"github.com/Bitcoin-ABC/bitcoin-abc-sub005/internal/herald/model"
	"github.com/Bitcoin-ABC/bitcoin-abc-sub005/internal/herald/script"
)

var (
	// SLPLokad is the first push of an SLP payload.
	SLPLokad = []byte("SLP\x00")
	// ALPLokad prefixes an ALP section inside an EMPP push.
	ALPLokad = []byte("SLP2")
)

const (
	tokenIDSize = 32
	maxDecimals = 9
)

// IsSLP reports whether chunks open with the SLP lokad.
func IsSLP(chunks []script.Chunk) bool {
	return len(chunks) > 0 && bytes.Equal(chunks[0].Data, SLPLokad)
}

// IsALP reports whether an EMPP push carries an ALP section.
func IsALP(push []byte) bool {
	return bytes.HasPrefix(push, ALPLokad)
}

// Decode dispatches on family. SLP expects every chunk after OP_RETURN; ALP
// expects exactly one chunk holding the EMPP push.
func Decode(chunks []script.Chunk, family model.TokenProtocol) (model.TokenAction, error) {
	switch family {
	case model.TokenProtocolSLP:
		return DecodeSLP(chunks)
	case model.TokenProtocolALP:
		if len(chunks) != 1 {
			return model.TokenAction{}, decodeErr(ErrInvalidField, "alp expects one push, got %d", len(chunks))
		}
		return DecodeALP(chunks[0].Data)
	default:
		return model.TokenAction{}, fmt.Errorf("%w: unsupported token protocol %q", ErrTokenDecode, family)
	}
}
