package safe

import (
	"fmt"

	"github.com/gaze-network/uint128"
)

// AddUint128 returns a+b, failing instead of wrapping.
func AddUint128(a, b uint128.Uint128) (uint128.Uint128, error) {
	sum := a.AddWrap(b)
	if sum.Cmp(a) < 0 {
		return uint128.Zero, fmt.Errorf("%s + %s exceeds uint128: %w", a, b, ErrOverflow)
	}
	return sum, nil
}

// SubUint128 returns a-b, failing when b > a.
func SubUint128(a, b uint128.Uint128) (uint128.Uint128, error) {
	if a.Cmp(b) < 0 {
		return uint128.Zero, fmt.Errorf("%s - %s underflows uint128: %w", a, b, ErrOverflow)
	}
	return a.SubWrap(b), nil
}
