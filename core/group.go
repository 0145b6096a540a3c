package core

// GroupNode wraps a sub-graph as a capturing group. Its own findOne
// delegates the full quantified Finder run to the entry-point subgraph,
// so the group's span is whatever that subgraph consumed.
type GroupNode[T any] struct {
	nodeHeader[T]
	EntryPoint Node[T]
}

// NewGroup wraps entry as a capturing group.
func NewGroup[T any](entry Node[T]) *GroupNode[T] {
	return &GroupNode[T]{nodeHeader: newNodeHeader[T](), EntryPoint: entry}
}

func (g *GroupNode[T]) findOne(items []T, pos int) Match {
	if g.EntryPoint == nil {
		return Fail
	}
	return findQuantified(g.EntryPoint, items, pos)
}

func (g *GroupNode[T]) capturesEnabled() bool { return true }

// MustBeFirst reports the OR of the group's own anchor flag and its
// entry point's.
func (g *GroupNode[T]) MustBeFirst() bool {
	if g.nodeHeader.MustBeFirst() {
		return true
	}
	return g.EntryPoint != nil && g.EntryPoint.MustBeFirst()
}

// MustBeLast reports the OR of the group's own anchor flag and the
// anchor flag of the last node of its entry-point chain.
func (g *GroupNode[T]) MustBeLast() bool {
	if g.nodeHeader.MustBeLast() {
		return true
	}
	last := lastInChain(g.EntryPoint)
	return last != nil && last.MustBeLast()
}
