package types

import (
	"strconv"

	"golang.org/x/exp/constraints"
)

// floorDivMod divides a by b rounding toward negative infinity, so that the
// remainder always has the sign of b. b must be positive.
func floorDivMod[T constraints.Signed](a, b T) (T, T) {
	q, r := a/b, a%b
	if r < 0 {
		q--
		r += b
	}
	return q, r
}

// abs returns the absolute value of v.
func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// appendPadded appends the decimal form of the non-negative v to b, left
// padded with zeros to at least width digits.
func appendPadded[T constraints.Integer](b []byte, v T, width int) []byte {
	var buf [20]byte
	digits := strconv.AppendUint(buf[:0], uint64(v), 10)
	for i := len(digits); i < width; i++ {
		b = append(b, '0')
	}
	return append(b, digits...)
}
