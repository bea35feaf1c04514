package octree_test

import (
	"fmt"
	"iter"
	"sync"

	"go.viam.com/linearoctree/morton"
	"go.viam.com/linearoctree/octree"
)

func ExampleGatherFold() {
	tree, err := octree.New[morton.Code, string](nil, nil)
	if err != nil {
		panic(err)
	}
	tree.Insert(morton.MustFromDigits(3, 5), "a")
	tree.Insert(morton.MustFromDigits(3, 2), "b")
	tree.Insert(morton.MustFromDigits(6), "c")

	var count octree.Gatherer[morton.Code, string, int] = octree.GathererFunc[morton.Code, string, int](func(leaves iter.Seq2[morton.Code, string]) int {
		n := 0
		for range leaves {
			n++
		}
		return n
	})
	var sum octree.Folder[int] = octree.FolderFunc[int](func(sums []int) (int, bool) {
		total := 0
		for _, s := range sums {
			total += s
		}
		return total, len(sums) > 0
	})

	sums := octree.GatherFold(tree, count, sum)
	fmt.Println(sums[tree.Root()])
	fmt.Println(sums[tree.Root().Enter(3)])
	fmt.Println(tree.State(tree.Root().Enter(6)).Type)
	// Output:
	// 3
	// 2
	// filled
}

// lockedTree guards a tree with a single read/write lock. Inserts may rewrite many interior
// regions, so readers must never observe a tree in the middle of one.
type lockedTree struct {
	mu   sync.RWMutex
	tree *octree.Linear[morton.Code, int]
}

func (lt *lockedTree) Insert(code morton.Code, item int) {
	lt.mu.Lock()
	defer lt.mu.Unlock()
	lt.tree.Insert(code, item)
}

func (lt *lockedTree) Leaf(code morton.Code) (int, bool) {
	lt.mu.RLock()
	defer lt.mu.RUnlock()
	return lt.tree.Leaf(code)
}

func (lt *lockedTree) Len() int {
	lt.mu.RLock()
	defer lt.mu.RUnlock()
	return lt.tree.Len()
}

func Example_concurrentInsert() {
	tree, err := octree.New[morton.Code, int](nil, nil)
	if err != nil {
		panic(err)
	}
	lt := &lockedTree{tree: tree}

	// Each writer reads back what it just inserted while the others keep splitting regions.
	lost := make([]int, 4)
	var wg sync.WaitGroup
	for g := range lost {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				code := morton.Code(g*100 + i)
				lt.Insert(code, i)
				if item, ok := lt.Leaf(code); !ok || item != i {
					lost[g]++
				}
			}
		}(g)
	}
	wg.Wait()
	fmt.Println(lt.Len(), lost)
	// Output:
	// 400 [0 0 0 0]
}
