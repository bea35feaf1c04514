// Package aggregate provides common Gatherer and Folder strategies for summarizing the regions
// of an octree.
package aggregate

import (
	"iter"

	"go.viam.com/linearoctree/octree"
)

// Count returns strategies that count the leaves under each region.
func Count[C octree.Code[C], T any]() (octree.Gatherer[C, T, int], octree.Folder[int]) {
	gather := octree.GathererFunc[C, T, int](func(leaves iter.Seq2[C, T]) int {
		n := 0
		for range leaves {
			n++
		}
		return n
	})
	fold := octree.FolderFunc[int](func(sums []int) (int, bool) {
		if len(sums) == 0 {
			return 0, false
		}
		total := 0
		for _, s := range sums {
			total += s
		}
		return total, true
	})
	return gather, fold
}

// Collect returns strategies that list the payloads under each region, ordered by octant.
func Collect[C octree.Code[C], T any]() (octree.Gatherer[C, T, []T], octree.Folder[[]T]) {
	gather := octree.GathererFunc[C, T, []T](func(leaves iter.Seq2[C, T]) []T {
		var items []T
		for _, item := range leaves {
			items = append(items, item)
		}
		return items
	})
	fold := octree.FolderFunc[[]T](func(sums [][]T) ([]T, bool) {
		if len(sums) == 0 {
			return nil, false
		}
		n := 0
		for _, s := range sums {
			n += len(s)
		}
		items := make([]T, 0, n)
		for _, s := range sums {
			items = append(items, s...)
		}
		return items, true
	})
	return gather, fold
}
