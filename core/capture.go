package core

import "sort"

// captureSet collects capture spans during one findQuantified call and
// enforces the "last iteration wins" rule for a node's own span.
// Accumulators attached to non-capturing nodes (plain
// Atomic/Alternative-without-Group) are disabled no-ops.
type captureSet struct {
	enabled bool
	spans   []Span

	hasPrev            bool
	prevStart, prevEnd int
}

func newCaptureSet[T any](n Node[T]) *captureSet {
	return &captureSet{enabled: n.capturesEnabled()}
}

// add records this node's own span for one greedy-loop iteration, plus
// any nested captures propagated from the inner match. On iteration > 0
// the previous iteration's own span is removed before the new one is
// inserted, so only the last iteration's own capture survives; nested
// captures are simply appended every time.
func (c *captureSet) add(iteration int, own Span, nested []Span) {
	if !c.enabled {
		return
	}
	if iteration > 0 && c.hasPrev {
		c.removeSpan(Span{c.prevStart, c.prevEnd})
	}
	c.spans = append(c.spans, own)
	c.prevStart, c.prevEnd = own.Start, own.End
	c.hasPrev = true
	c.spans = append(c.spans, nested...)
}

func (c *captureSet) removeSpan(s Span) {
	for i, sp := range c.spans {
		if sp == s {
			c.spans = append(c.spans[:i], c.spans[i+1:]...)
			return
		}
	}
}

// finalize merges this accumulator's captures with any further nested
// captures already present on the outgoing match (e.g. from a sibling or
// upstream continuation) and sorts the result by ascending start.
func (c *captureSet) finalize(extra []Span) []Span {
	if !c.enabled {
		return extra
	}
	all := make([]Span, 0, len(c.spans)+len(extra))
	all = append(all, c.spans...)
	all = append(all, extra...)
	sort.SliceStable(all, func(i, j int) bool { return all[i].Start < all[j].Start })
	return all
}
