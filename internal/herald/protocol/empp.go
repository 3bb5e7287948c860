package protocol

import (
	"strconv"
	"strings"

	"github.com/Bitcoin-ABC/bitcoin-abc-sub005/internal/herald/model"
	"github.com/Bitcoin-ABC/bitcoin-abc-sub005/internal/herald/script"
	"github.com/Bitcoin-ABC/bitcoin-abc-sub005/internal/herald/token"
	"github.com/btcsuite/btcd/txscript"
)

// slpPushIdx is the push index recorded for SLP failures, which span the whole script.
const slpPushIdx = -1

func decodeSLP(_ *Decoder, m message) Result {
	res := payload(model.TagSLP, "")
	action, err := token.DecodeSLP(m.chunks)
	if err != nil {
		res.tokenFailure(slpPushIdx, m.raw, err)
		return res
	}
	res.Payload.TokenID = action.TokenID
	res.Payload.Message = string(action.TxType)
	res.Payload.Tokens = []model.TokenAction{action}
	return res
}

// emppPushes returns the pushes following the OP_RESERVED marker.
func emppPushes(chunks []script.Chunk) [][]byte {
	for i, c := range chunks {
		if c.Opcode == txscript.OP_RESERVED {
			return script.Stack(chunks[i+1:])
		}
	}
	return nil
}

// emppTag is ALP when every EMPP push is an ALP section, EMPP otherwise.
func emppTag(chunks []script.Chunk) model.ProtocolTag {
	pushes := emppPushes(chunks)
	if len(pushes) == 0 {
		return model.TagEMPP
	}
	for _, p := range pushes {
		if !token.IsALP(p) {
			return model.TagEMPP
		}
	}
	return model.TagALP
}

// decodeEMPP decodes every push of an eMPP payload. ALP sections become token
// actions; other pushes are summarised as unknown apps.
func decodeEMPP(_ *Decoder, m message) Result {
	res := payload(emppTag(m.chunks), "")
	pushes := emppPushes(m.chunks)
	summaries := make([]string, 0, len(pushes))
	for i, push := range pushes {
		if !token.IsALP(push) {
			summaries = append(summaries, "Unknown App:"+renderPushes([][]byte{push}))
			continue
		}
		action, err := token.DecodeALP(push)
		if err != nil {
			res.tokenFailure(i, push, err)
			summaries = append(summaries, string(model.TagALP)+":invalid")
			continue
		}
		res.Payload.Tokens = append(res.Payload.Tokens, action)
		summaries = append(summaries, string(model.TagALP)+":"+string(action.TxType))
	}
	if len(res.Payload.Tokens) > 0 {
		res.Payload.TokenID = res.Payload.Tokens[0].TokenID
	}
	res.Payload.Message = strings.Join(summaries, "|")
	if res.Payload.Tag == model.TagEMPP {
		res.Payload.Fields = append(res.Payload.Fields, field("pushes", strconv.Itoa(len(pushes))))
	}
	return res
}

func (r *Result) tokenFailure(pushIdx int, b []byte, err error) {
	r.Failures = append(r.Failures, model.TokenFailedParsing{
		PushIdx: pushIdx,
		Bytes:   model.Script(b),
		Error:   err.Error(),
	})
	r.Warnings = append(r.Warnings, model.Warning{
		Kind:    model.WarningTokenDecodeFailure,
		Message: err.Error(),
	})
}
