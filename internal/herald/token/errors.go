package token

import (
	"errors"
	"fmt"
)

// ErrTokenDecode wraps every failure to decode a payload that claims a token protocol.
var ErrTokenDecode = errors.New("token decode failure")

var (
	ErrTruncated        = errors.New("truncated payload")
	ErrSuperfluousBytes = errors.New("superfluous bytes")
	ErrUnknownTxType    = errors.New("unknown tx type")
	ErrDecimals         = errors.New("decimals out of range")
	ErrInvalidField     = errors.New("invalid field")
	ErrDisallowedPush   = errors.New("disallowed push")
)

func decodeErr(cause error, format string, args ...any) error {
	return fmt.Errorf("%w: %w: %s", ErrTokenDecode, cause, fmt.Sprintf(format, args...))
}
