package octree

import (
	"strconv"
	"strings"
)

// Region addresses a node of the conceptual octree by the octant digits leading to it from the
// root. Regions are comparable and are used as map keys.
type Region[C Code[C]] struct {
	// prefix holds the path in its first level digits. Deeper digits are whatever the zero code
	// holds, which is the same for every region, so struct equality is path equality.
	prefix C
	level  int
}

// RootRegion returns the region covering the whole tree.
func RootRegion[C Code[C]]() Region[C] {
	return Region[C]{}
}

// RegionOf returns the ancestor region of code at the given depth.
func RegionOf[C Code[C]](code C, level int) Region[C] {
	r := RootRegion[C]()
	for r.level < level {
		r = r.Enter(code.Digit(r.level))
	}
	return r
}

// Enter returns the child region reached through the given octant.
func (r Region[C]) Enter(digit uint8) Region[C] {
	return Region[C]{
		prefix: r.prefix.WithDigit(r.level, digit),
		level:  r.level + 1,
	}
}

// Level returns the number of digits in the region's path.
func (r Region[C]) Level() int {
	return r.level
}

// Path returns the octant digits from the root to the region.
func (r Region[C]) Path() []uint8 {
	path := make([]uint8, r.level)
	for i := range path {
		path[i] = r.prefix.Digit(i)
	}
	return path
}

// Contains reports whether code lies inside the region.
func (r Region[C]) Contains(code C) bool {
	for i := 0; i < r.level; i++ {
		if r.prefix.Digit(i) != code.Digit(i) {
			return false
		}
	}
	return true
}

func (r Region[C]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, d := range r.Path() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(int(d)))
	}
	sb.WriteByte(']')
	return sb.String()
}
