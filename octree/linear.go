package octree

import (
	"iter"
	"maps"

	"github.com/pkg/errors"

	"go.viam.com/linearoctree/logging"
)

// Linear is a linear hashed octree. Leaves are kept in a map keyed by their full code. Interior
// state is kept in a second map keyed by region, where a missing region must be searched through
// its children, a null code marks an empty region and any other code marks a region holding
// exactly that one leaf however deep it lies.
//
// A Linear is not safe for concurrent use. Readers may run concurrently with each other but not
// with Insert or Extend.
type Linear[C Code[C], T any] struct {
	logger    logging.Logger
	leaves    map[C]T
	internals map[Region[C]]C
	null      C
	levels    int
}

// New creates an empty octree over the code type C. A nil config uses defaults and a nil logger
// discards output.
func New[C Code[C], T any](cfg *Config, logger logging.Logger) (*Linear[C, T], error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate("octree"); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.NewBlankLogger("octree")
	}

	var zero C
	levels := zero.Levels()
	if levels < 1 {
		return nil, errors.Errorf("code type must have at least one level, has %d", levels)
	}
	if 3*levels > zero.Bits() {
		return nil, NewCodeDepthError(levels, zero.Bits())
	}
	if cfg.Levels != 0 && cfg.Levels != levels {
		return nil, NewLevelMismatchError(cfg.Levels, levels)
	}
	null := zero.Null()
	if !null.IsNull() {
		return nil, errors.New("code type's null sentinel does not report itself as null")
	}
	if spelled(null, levels) {
		return nil, errors.New("code type's null sentinel is also an addressable code")
	}

	l := &Linear[C, T]{
		logger:    logger,
		leaves:    make(map[C]T, cfg.Prealloc),
		internals: make(map[Region[C]]C, cfg.Prealloc),
		null:      null,
		levels:    levels,
	}
	l.internals[RootRegion[C]()] = null
	return l, nil
}

// Len returns the number of leaves.
func (l *Linear[C, T]) Len() int {
	return len(l.leaves)
}

// Levels returns the depth of the tree.
func (l *Linear[C, T]) Levels() int {
	return l.levels
}

// Root returns the region covering the whole tree.
func (l *Linear[C, T]) Root() Region[C] {
	return RootRegion[C]()
}

// Leaf returns the payload stored at code, if any.
func (l *Linear[C, T]) Leaf(code C) (T, bool) {
	item, ok := l.leaves[code]
	return item, ok
}

// State returns the interior state of a region.
func (l *Linear[C, T]) State(region Region[C]) State[C] {
	code, ok := l.internals[region]
	switch {
	case !ok:
		return State[C]{Type: InternalNode}
	case code.IsNull():
		return State[C]{Type: LeafNodeEmpty}
	default:
		return State[C]{Type: LeafNodeFilled, Code: code}
	}
}

// All iterates over every leaf in no particular order.
func (l *Linear[C, T]) All() iter.Seq2[C, T] {
	return func(yield func(C, T) bool) {
		for code, item := range l.leaves {
			if !yield(code, item) {
				return
			}
		}
	}
}

// Interior iterates over every region with explicit state, i.e. all regions that are not
// InternalNode, in no particular order.
func (l *Linear[C, T]) Interior() iter.Seq2[Region[C], State[C]] {
	return func(yield func(Region[C], State[C]) bool) {
		for region := range l.internals {
			if !yield(region, l.State(region)) {
				return
			}
		}
	}
}

// Clone returns a copy of the tree. Payloads are copied by assignment.
func (l *Linear[C, T]) Clone() *Linear[C, T] {
	return &Linear[C, T]{
		logger:    l.logger,
		leaves:    maps.Clone(l.leaves),
		internals: maps.Clone(l.internals),
		null:      l.null,
		levels:    l.levels,
	}
}

// Extend inserts every pair in order. Later pairs for the same code replace earlier ones.
func (l *Linear[C, T]) Extend(items iter.Seq2[C, T]) {
	for code, item := range items {
		l.Insert(code, item)
	}
}

// Insert places item at code. If another item occupied the exact same code it is replaced and
// the tree's shape is untouched. Otherwise the first explicit ancestor of code is found: an empty
// one is claimed, and a filled one is split until the old and new leaves sit in different
// octants. Codes that cannot be stored panic before the tree is modified.
func (l *Linear[C, T]) Insert(code C, item T) {
	if code.IsNull() {
		l.fail(newConsistencyError("cannot insert the null code"))
	}
	if _, ok := l.leaves[code]; ok {
		l.leaves[code] = item
		return
	}
	if !spelled(code, l.levels) {
		l.fail(newConsistencyError("code %v is not spelled out by its %d digits", code, l.levels))
	}

	region, existing := l.ancestor(code)
	if existing.IsNull() {
		l.leaves[code] = item
		l.internals[region] = code
		return
	}
	diverge := l.divergence(region, existing, code)
	l.leaves[code] = item
	delete(l.internals, region)
	l.split(region, existing, code, diverge)
}

// spelled reports whether code equals the zero code with code's digits written in. Distinct
// spelled codes always differ in some digit.
func spelled[C Code[C]](code C, levels int) bool {
	var rebuilt C
	for level := 0; level < levels; level++ {
		rebuilt = rebuilt.WithDigit(level, code.Digit(level))
	}
	return rebuilt == code
}

// ancestor returns the shallowest region on code's path with explicit state and that state.
func (l *Linear[C, T]) ancestor(code C) (Region[C], C) {
	region := RootRegion[C]()
	for {
		if existing, ok := l.internals[region]; ok {
			return region, existing
		}
		if region.level == l.levels {
			break
		}
		region = region.Enter(code.Digit(region.level))
	}
	l.fail(newConsistencyError("no explicit ancestor found for %v", code))
	return region, l.null
}

// divergence returns the first level at or below region where existing and code take different
// octants.
func (l *Linear[C, T]) divergence(region Region[C], existing, code C) int {
	for level := region.level; level < l.levels; level++ {
		if existing.Digit(level) != code.Digit(level) {
			return level
		}
	}
	l.fail(newConsistencyError("codes %v and %v share all %d levels", existing, code, l.levels))
	return l.levels
}

// split pushes the leaf at existing down from region to the diverge level, marking every sibling
// passed on the way as empty.
func (l *Linear[C, T]) split(region Region[C], existing, code C, diverge int) {
	l.logger.Debugw("splitting region", "region", region, "existing", existing, "code", code)
	for ; region.level < diverge; region = region.Enter(code.Digit(region.level)) {
		shared := code.Digit(region.level)
		for d := uint8(0); d < 8; d++ {
			if d != shared {
				l.internals[region.Enter(d)] = l.null
			}
		}
	}
	e := existing.Digit(diverge)
	i := code.Digit(diverge)
	for d := uint8(0); d < 8; d++ {
		switch d {
		case e:
			l.internals[region.Enter(d)] = existing
		case i:
			l.internals[region.Enter(d)] = code
		default:
			l.internals[region.Enter(d)] = l.null
		}
	}
}

func (l *Linear[C, T]) fail(err error) {
	l.logger.Errorw("consistency violation", "error", err)
	panic(err)
}
