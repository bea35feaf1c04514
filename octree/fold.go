package octree

import (
	"iter"
)

// Gatherer turns the leaves under a filled region into a summary. The traversal always hands it
// exactly one leaf.
type Gatherer[C Code[C], T, S any] interface {
	Gather(leaves iter.Seq2[C, T]) S
}

// Folder combines the summaries of the children of an internal region, in ascending octant
// order, skipping children that produced none. It returns false when the inputs do not warrant a
// summary, e.g. when there are none.
type Folder[S any] interface {
	Fold(sums []S) (S, bool)
}

// GathererFunc adapts a function to a Gatherer.
type GathererFunc[C Code[C], T, S any] func(leaves iter.Seq2[C, T]) S

// Gather calls f.
func (f GathererFunc[C, T, S]) Gather(leaves iter.Seq2[C, T]) S {
	return f(leaves)
}

// FolderFunc adapts a function to a Folder.
type FolderFunc[S any] func(sums []S) (S, bool)

// Fold calls f.
func (f FolderFunc[S]) Fold(sums []S) (S, bool) {
	return f(sums)
}

// GatherFold summarizes the whole tree. See GatherFoldFrom.
func GatherFold[C Code[C], T, S any](
	tree *Linear[C, T],
	gatherer Gatherer[C, T, S],
	folder Folder[S],
) map[Region[C]]S {
	return GatherFoldFrom(tree, tree.Root(), gatherer, folder)
}

// GatherFoldFrom summarizes the subtree under region bottom up. Filled regions are summarized by
// the gatherer, internal regions by folding their children's summaries and empty regions produce
// nothing. The result holds a summary for every region that produced one.
func GatherFoldFrom[C Code[C], T, S any](
	tree *Linear[C, T],
	region Region[C],
	gatherer Gatherer[C, T, S],
	folder Folder[S],
) map[Region[C]]S {
	sums := make(map[Region[C]]S)
	GatherFoldInto(tree, region, gatherer, folder, sums)
	return sums
}

// GatherFoldInto is like GatherFoldFrom but records summaries into sums and returns the
// summary of region itself, if it produced one. A region inside an empty or filled ancestor is
// resolved against that ancestor without descending.
func GatherFoldInto[C Code[C], T, S any](
	tree *Linear[C, T],
	region Region[C],
	gatherer Gatherer[C, T, S],
	folder Folder[S],
	sums map[Region[C]]S,
) (S, bool) {
	var none S
	ancestor := tree.Root()
	for ancestor.level < region.level {
		state := tree.State(ancestor)
		switch state.Type {
		case LeafNodeFilled:
			if !region.Contains(state.Code) {
				return none, false
			}
			return gatherLeaf(tree, region, state.Code, gatherer, sums), true
		case LeafNodeEmpty:
			return none, false
		case InternalNode:
		}
		ancestor = ancestor.Enter(region.prefix.Digit(ancestor.level))
	}
	return gatherFold(tree, region, gatherer, folder, sums)
}

func gatherFold[C Code[C], T, S any](
	tree *Linear[C, T],
	region Region[C],
	gatherer Gatherer[C, T, S],
	folder Folder[S],
	sums map[Region[C]]S,
) (S, bool) {
	var none S
	state := tree.State(region)
	switch state.Type {
	case LeafNodeFilled:
		return gatherLeaf(tree, region, state.Code, gatherer, sums), true
	case InternalNode:
		if region.level >= tree.levels {
			tree.fail(newConsistencyError("region %v has no state at full depth", region))
		}
		children := make([]S, 0, 8)
		for d := uint8(0); d < 8; d++ {
			if sum, ok := gatherFold(tree, region.Enter(d), gatherer, folder, sums); ok {
				children = append(children, sum)
			}
		}
		sum, ok := folder.Fold(children)
		if !ok {
			return none, false
		}
		sums[region] = sum
		return sum, true
	case LeafNodeEmpty:
	}
	return none, false
}

func gatherLeaf[C Code[C], T, S any](
	tree *Linear[C, T],
	region Region[C],
	code C,
	gatherer Gatherer[C, T, S],
	sums map[Region[C]]S,
) S {
	item, ok := tree.leaves[code]
	if !ok {
		tree.fail(newConsistencyError("region %v points at missing leaf %v", region, code))
	}
	sum := gatherer.Gather(single(code, item))
	sums[region] = sum
	return sum
}

func single[C Code[C], T any](code C, item T) iter.Seq2[C, T] {
	return func(yield func(C, T) bool) {
		yield(code, item)
	}
}
