package core

// AppendChild attaches next to the chain whose current tail is tail,
// wiring back-pointers and, if tail is a Group (or an Alternative whose
// last branch is a Group), filling in the inner chain's dangling
// upstream with next.
func AppendChild[T any](tail Node[T], next Node[T]) {
	tail.SetNext(next)
	next.SetPrevious(tail)
	wireUpstreamOnAppend(tail, next)
}

func wireUpstreamOnAppend[T any](tail, next Node[T]) {
	switch g := tail.(type) {
	case *GroupNode[T]:
		wireGroupUpstream(g, next)
	case *AlternativeNode[T]:
		if len(g.Alternatives) == 0 {
			return
		}
		if grp, ok := g.Alternatives[len(g.Alternatives)-1].(*GroupNode[T]); ok {
			wireGroupUpstream(grp, next)
		}
	}
}

func wireGroupUpstream[T any](g *GroupNode[T], next Node[T]) {
	last := lastInChain(g.EntryPoint)
	if last == nil || last.Upstream() != nil {
		return
	}
	last.SetUpstream(next)
	next.SetDownstream(last)
}

// ReplaceWithAlternative implements the `.or(x)` builder operation: if
// tail is already an Alternative, x is appended to it; otherwise tail is
// replaced in place by a new Alternative(tail, x), carrying over tail's
// own must_be_first/must_be_last so an anchored token doesn't silently
// lose its anchor by being wrapped. previous/downstream links are
// preserved so any node whose upstream targets tail is redirected to the
// new Alternative.
func ReplaceWithAlternative[T any](tail Node[T], x Node[T]) Node[T] {
	if alt, ok := tail.(*AlternativeNode[T]); ok {
		alt.Alternatives = append(alt.Alternatives, x)
		return alt
	}

	alt := NewAlternative[T](tail, x)
	alt.SetMustBeFirst(tail.MustBeFirst())
	alt.SetMustBeLast(tail.MustBeLast())

	if prev := tail.Previous(); prev != nil {
		prev.SetNext(alt)
		alt.SetPrevious(prev)
	}
	if down := tail.Downstream(); down != nil {
		down.SetUpstream(alt)
		alt.SetDownstream(down)
	}
	return alt
}

// NewOuterGroup wraps the whole built chain (head) as the outermost
// Group, so the full match is always capture index 0.
func NewOuterGroup[T any](head Node[T]) *GroupNode[T] {
	return NewGroup[T](head)
}
