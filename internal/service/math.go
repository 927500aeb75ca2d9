package service

import (
	"errors"
	"math/bits"

	"github.com/miner1qaz-ops/Mochi/internal/core/domain"
	"github.com/miner1qaz-ops/Mochi/pkg/apperror"
)

var (
	errNoValidBump = errors.New("no valid bump for seeds")
	errInvalidBump = errors.New("bump does not yield a valid address")
)

// applyBps returns floor(amount * bps / 10000) using 128-bit intermediate
// math. A zero result is valid.
func applyBps(amount uint64, bps uint16) (uint64, error) {
	hi, lo := bits.Mul64(amount, uint64(bps))
	if hi >= domain.BpsDenominator {
		return 0, apperror.ErrOverflow()
	}
	quo, _ := bits.Div64(hi, lo, domain.BpsDenominator)
	return quo, nil
}

// sumChecked adds the values, failing on overflow.
func sumChecked(values []uint64) (uint64, error) {
	var total uint64
	for _, v := range values {
		next, carry := bits.Add64(total, v, 0)
		if carry != 0 {
			return 0, apperror.ErrOverflow()
		}
		total = next
	}
	return total, nil
}

// subChecked subtracts b from a, failing on underflow.
func subChecked(a, b uint64) (uint64, error) {
	diff, borrow := bits.Sub64(a, b, 0)
	if borrow != 0 {
		return 0, apperror.ErrOverflow()
	}
	return diff, nil
}
