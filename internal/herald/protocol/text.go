package protocol

import (
	"encoding/hex"
	"strings"

	"github.com/Bitcoin-ABC/bitcoin-abc-sub005/internal/herald/model"
	"golang.org/x/text/encoding/unicode"
)

const (
	minPrintable    = 0x20
	maxPrintable    = 0x7e
	unknownMaxChars = 20
)

// utf8Text decodes sender-controlled bytes, replacing invalid sequences with U+FFFD.
func utf8Text(b []byte) string {
	out, err := unicode.UTF8.NewDecoder().Bytes(b)
	if err != nil {
		return strings.ToValidUTF8(string(b), "�")
	}
	return string(out)
}

func isPrintableASCII(b []byte) bool {
	for _, c := range b {
		if c < minPrintable || c > maxPrintable {
			return false
		}
	}
	return true
}

// renderPushes shows the pushes as ascii when every byte is printable and as
// space separated hex numbers otherwise, cut to unknownMaxChars.
func renderPushes(stack [][]byte) string {
	joined := make([]byte, 0)
	for _, push := range stack {
		joined = append(joined, push...)
	}
	if isPrintableASCII(joined) {
		return string(joined)
	}

	parts := make([]string, 0, len(stack))
	for _, push := range stack {
		parts = append(parts, "0x"+hex.EncodeToString(push))
	}
	msg := strings.Join(parts, " ")
	if len(msg) > unknownMaxChars {
		msg = msg[:unknownMaxChars] + "..."
	}
	return msg
}

func decodeUnknown(_ *Decoder, m message) Result {
	return payload(model.TagUnknown, renderPushes(m.stack))
}
