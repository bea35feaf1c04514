// Package octree implements a linear hashed octree: a sparse spatial index from fixed-width
// interleaved codes to arbitrary payloads. The tree is stored as two flat maps, one from full
// codes to leaf payloads and one from regions to interior state, so empty interior nodes are
// never materialized.
package octree

import "fmt"

// Each region of the octree is either an internal node which must be searched through its eight
// children, an empty node with no points beneath it, or a filled node whose whole subtree is a
// single point.
const (
	InternalNode = NodeType(iota)
	LeafNodeEmpty
	LeafNodeFilled
)

// NodeType represents the possible states of a region in an octree.
type NodeType uint8

func (nt NodeType) String() string {
	switch nt {
	case InternalNode:
		return "internal"
	case LeafNodeEmpty:
		return "empty"
	case LeafNodeFilled:
		return "filled"
	default:
		return fmt.Sprintf("NodeType(%d)", uint8(nt))
	}
}

// State is the interior state of a region. Code is only meaningful when Type is LeafNodeFilled,
// in which case it is the full code of the single leaf under the region.
type State[C Code[C]] struct {
	Type NodeType
	Code C
}

func (s State[C]) String() string {
	if s.Type == LeafNodeFilled {
		return fmt.Sprintf("%v(%v)", s.Type, s.Code)
	}
	return s.Type.String()
}
