package octree

// Code is the capability set the octree requires from a spatial code type. Codes are values; the
// methods never mutate their receiver. A code is determined by its digits: writing them into the
// zero code with WithDigit must give the code back. Null is the one exception and must not be
// reproducible that way.
type Code[C any] interface {
	comparable

	// Null returns the sentinel that never addresses a point.
	Null() C
	// IsNull reports whether the receiver is the null sentinel.
	IsNull() bool
	// Levels is the number of octant digits in a code, i.e. the depth of the tree.
	Levels() int
	// Bits is the number of bits available to digits. It must be at least 3*Levels().
	Bits() int
	// Digit returns the octant (0-7) at the given level, the root being level 0.
	Digit(level int) uint8
	// WithDigit returns a copy with the octant at the given level replaced.
	WithDigit(level int, digit uint8) C
}
