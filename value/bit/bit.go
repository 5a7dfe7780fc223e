// Package bit provides the DuckDB BIT (bit string) type.
//
// DuckDB stores a bit string as a header byte holding the number of padding
// bits, followed by the padding bits (all 1) and then the data bits, most
// significant bit first. The padding aligns the end of the data to a byte
// boundary.
package bit

import (
	"errors"
	"fmt"
)

// ErrBit wraps errors returned by the bit package.
var ErrBit = errors.New("bit")

// maxPadding is the largest valid padding bit count.
const maxPadding = 7

// Vector represents a DuckDB bit string. It is immutable.
type Vector struct {
	data []byte
}

// New encodes a bit string of length bits, where pred reports the value of
// each bit. Returns an error if length is negative.
func New(length int, pred func(i int) bool) (*Vector, error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrBit, length)
	}

	padding := (8 - length%8) % 8
	data := make([]byte, (length+7)/8+1)
	data[0] = byte(padding)

	// Padding bits are ones at the most significant end of the first data
	// byte; data bits follow.
	var cur byte
	pos := 0
	for ; pos < padding; pos++ {
		cur = cur<<1 | 1
	}
	idx := 1
	for i := range length {
		cur <<= 1
		if pred(i) {
			cur |= 1
		}
		if pos++; pos == 8 {
			data[idx] = cur
			idx++
			cur, pos = 0, 0
		}
	}

	return &Vector{data: data}, nil
}

// FromBools encodes bools as a bit string.
func FromBools(bools []bool) *Vector {
	v, _ := New(len(bools), func(i int) bool { return bools[i] })
	return v
}

// FromBits encodes bits as a bit string, setting each bit equal to on.
func FromBits(bits []int, on int) *Vector {
	v, _ := New(len(bits), func(i int) bool { return bits[i] == on })
	return v
}

// FromString encodes the bytes of str as a bit string, setting each bit
// equal to on.
func FromString(str string, on byte) *Vector {
	v, _ := New(len(str), func(i int) bool { return str[i] == on })
	return v
}

// FromBytes returns a Vector over a copy of data, the DuckDB encoding of a
// bit string. Returns an error if data is empty, the padding exceeds seven
// bits, or the padding is longer than the data.
func FromBytes(data []byte) (*Vector, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: missing padding header", ErrBit)
	}
	if data[0] > maxPadding {
		return nil, fmt.Errorf("%w: invalid padding %d", ErrBit, data[0])
	}
	if (len(data)-1)*8 < int(data[0]) {
		return nil, fmt.Errorf("%w: padding %d exceeds %d data bytes", ErrBit, data[0], len(data)-1)
	}
	return &Vector{data: append([]byte(nil), data...)}, nil
}

// Padding returns the number of padding bits preceding the data bits.
func (v *Vector) Padding() int { return int(v.data[0]) }

// Len returns the number of bits in v.
func (v *Vector) Len() int { return (len(v.data)-1)*8 - v.Padding() }

// Bool returns the value of bit i. Returns an error if i is out of range.
func (v *Vector) Bool(i int) (bool, error) {
	if i < 0 || i >= v.Len() {
		return false, fmt.Errorf("%w: index %d out of range [0:%d]", ErrBit, i, v.Len())
	}
	return v.at(i), nil
}

// Bit returns the value of bit i as 0 or 1. Returns an error if i is out of
// range.
func (v *Vector) Bit(i int) (int, error) {
	b, err := v.Bool(i)
	if err != nil {
		return 0, err
	}
	return toBit(b), nil
}

// at returns bit i without bounds checking.
func (v *Vector) at(i int) bool {
	off := i + v.Padding()
	return v.data[off/8+1]>>(7-off%8)&1 != 0
}

// Bools returns the bits of v as booleans.
func (v *Vector) Bools() []bool {
	bools := make([]bool, v.Len())
	for i := range bools {
		bools[i] = v.at(i)
	}
	return bools
}

// Bits returns the bits of v as 0s and 1s.
func (v *Vector) Bits() []int {
	bits := make([]int, v.Len())
	for i := range bits {
		bits[i] = toBit(v.at(i))
	}
	return bits
}

// Bytes returns a copy of the DuckDB encoding of v.
func (v *Vector) Bytes() []byte {
	return append([]byte(nil), v.data...)
}

// String returns the DuckDB representation of v: a '0' or '1' for each bit.
func (v *Vector) String() string {
	b := make([]byte, v.Len())
	for i := range b {
		if v.at(i) {
			b[i] = '1'
		} else {
			b[i] = '0'
		}
	}
	return string(b)
}

// SQL returns v as a BITSTRING literal.
func (v *Vector) SQL() string {
	return "'" + v.String() + "'::BITSTRING"
}

// MarshalJSON implements the json.Marshaler interface. The bit string is a
// quoted string of '0' and '1' characters.
func (v *Vector) MarshalJSON() ([]byte, error) {
	str := v.String()
	b := make([]byte, 0, len(str)+len(`""`))
	b = append(b, '"')
	b = append(b, str...)
	b = append(b, '"')
	return b, nil
}

func toBit(b bool) int {
	if b {
		return 1
	}
	return 0
}
