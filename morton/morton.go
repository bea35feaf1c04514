// Package morton provides a 64-bit Morton (Z-order) code. Each level of an octree consumes one
// 3-bit octant digit, most significant digit first, so a code addresses a cell 21 levels deep.
package morton

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	// Levels is the number of octant digits encoded by a Code.
	Levels = 21
	// Bits is the number of low bits of a Code that carry digits.
	Bits = Levels * digitBits

	digitBits = 3
	digitMask = 1<<digitBits - 1
	usedMask  = 1<<Bits - 1
)

// Null is the sentinel code that never addresses a point. It is the only code the octree accepts
// with the spare top bit set.
const Null = ^Code(0)

// Code is an interleaved spatial code.
type Code uint64

// FromDigits builds a code from octant digits ordered root first. Missing trailing digits are
// zero.
func FromDigits(digits ...uint8) (Code, error) {
	if len(digits) > Levels {
		return Null, errors.Errorf("too many digits (%d) for a code of %d levels", len(digits), Levels)
	}
	var c Code
	for level, d := range digits {
		if d > digitMask {
			return Null, errors.Errorf("digit %d at level %d is not an octant", d, level)
		}
		c = c.WithDigit(level, d)
	}
	return c, nil
}

// MustFromDigits is like FromDigits but panics on error.
func MustFromDigits(digits ...uint8) Code {
	c, err := FromDigits(digits...)
	if err != nil {
		panic(err)
	}
	return c
}

func shift(level int) uint {
	return uint(Levels-1-level) * digitBits
}

// Null returns the null sentinel.
func (c Code) Null() Code {
	return Null
}

// IsNull reports whether c is the null sentinel.
func (c Code) IsNull() bool {
	return c == Null
}

// Valid reports whether c is a non-null code with no bits outside the digit range. Only valid
// codes can be inserted into an octree.
func (c Code) Valid() bool {
	return c&^usedMask == 0
}

// Levels returns the number of octant digits in a code.
func (c Code) Levels() int {
	return Levels
}

// Bits returns the number of bits carrying digits.
func (c Code) Bits() int {
	return Bits
}

// Digit returns the octant (0-7) at the given level, the root being level 0.
func (c Code) Digit(level int) uint8 {
	return uint8((uint64(c) >> shift(level)) & digitMask)
}

// WithDigit returns c with the octant at the given level replaced by d.
func (c Code) WithDigit(level int, d uint8) Code {
	s := shift(level)
	cleared := uint64(c) &^ (digitMask << s)
	return Code(cleared | uint64(d&digitMask)<<s)
}

// Digits returns all octant digits of c, root first.
func (c Code) Digits() []uint8 {
	digits := make([]uint8, Levels)
	for level := range digits {
		digits[level] = c.Digit(level)
	}
	return digits
}

// String renders the code as its octal digit string, "null", or the raw bits of an invalid code.
func (c Code) String() string {
	if c.IsNull() {
		return "null"
	}
	if !c.Valid() {
		return "invalid(0x" + strconv.FormatUint(uint64(c), 16) + ")"
	}
	var sb strings.Builder
	for _, d := range c.Digits() {
		sb.WriteString(strconv.Itoa(int(d)))
	}
	return sb.String()
}
