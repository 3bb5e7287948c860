package protocol

import (
	"encoding/hex"
	"math/big"
	"strconv"
	"strings"

	"github.com/Bitcoin-ABC/bitcoin-abc-sub005/internal/herald/model"
	"github.com/shopspring/decimal"
)

var (
	swapClasses = map[byte]string{0x01: "Signal", 0x02: "Payment"}
	swapTypes   = map[byte]string{
		0x01: "SLP Atomic Swap",
		0x02: "Multi-Party Escrow",
		0x03: "Threshold Crowdfunding",
	}
)

const (
	swapSignal         = 0x01
	swapSLPAtomic      = 0x01
	swapTokenIdx       = 3
	swapSideIdx        = 4
	swapRateIdx        = 5
	swapMinTradeIdx    = 9
	swapMaxHexIntWidth = 2
)

// decodeSwap reads <lokad> <msg class> <msg type> and, for an SLP atomic swap
// signal, <token id> <BUY|SELL> <rate> <proof of reserve> <utxo hash> <utxo index> <min sats>.
func decodeSwap(_ *Decoder, m message) Result {
	if len(m.stack) < 3 {
		return malformed("Invalid SWaP")
	}
	class, typ := m.stack[1], m.stack[2]
	if len(class) != 1 || len(typ) != 1 {
		return payload(model.TagSwap, "Invalid SWaP")
	}
	className, ok := swapClasses[class[0]]
	if !ok {
		return payload(model.TagSwap, "Invalid SWaP")
	}
	typeName, ok := swapTypes[typ[0]]
	if !ok {
		return payload(model.TagSwap, className+"|Invalid SWaP")
	}

	parts := []string{className, typeName}
	fields := []model.Field{field("class", className), field("type", typeName)}
	res := payload(model.TagSwap, "")
	if class[0] == swapSignal && typ[0] == swapSLPAtomic {
		if id, ok := m.at(swapTokenIdx); ok && len(id) == txidSize {
			res.Payload.TokenID = hex.EncodeToString(id)
			parts = append(parts, res.Payload.TokenID)
		} else {
			parts = append(parts, "Invalid tokenId")
		}
		if side, ok := m.at(swapSideIdx); ok {
			offer := renderPushes([][]byte{side})
			fields = append(fields, field("side", offer))
			if rate, ok := swapInt(m, swapRateIdx); ok {
				offer += " for " + satsToXEC(rate) + " XEC"
				fields = append(fields, field("rateSats", strconv.FormatUint(rate, 10)))
			}
			parts = append(parts, offer)
		}
		if minTrade, ok := swapInt(m, swapMinTradeIdx); ok {
			parts = append(parts, "Min trade: "+satsToXEC(minTrade)+" XEC")
			fields = append(fields, field("minTradeSats", strconv.FormatUint(minTrade, 10)))
		}
	}
	res.Payload.Message = strings.Join(parts, "|")
	res.Payload.Fields = fields
	return res
}

// swapInt reads an integer push. Pushes wider than two bytes are ascii digits,
// shorter ones are a big-endian number.
func swapInt(m message, idx int) (uint64, bool) {
	b, ok := m.at(idx)
	if !ok {
		return 0, false
	}
	if len(b) > swapMaxHexIntWidth {
		v, err := strconv.ParseUint(strings.TrimSpace(string(b)), 10, 64)
		return v, err == nil
	}
	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}
	return v, true
}

func satsToXEC(sats uint64) string {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(sats), -2).String()
}
