package core

// findQuantified runs the Finder algorithm for node n starting at pos:
// the quantifier-aware greedy search that honors n's own min/max bounds,
// its sibling chain and its upstream reentry point, with capture
// bookkeeping for Group/capturing-Alternative nodes. This single
// function implements every node kind's repetition semantics; findOne is
// the only kind-specific hook it calls.
func findQuantified[T any](n Node[T], items []T, pos int) Match {
	min, max := n.Bounds()
	cursor := pos
	count := 0
	current := n.findOne(items, cursor)
	cs := newCaptureSet(n)

	// Zero-match shortcut (step 2).
	if !current.Success && min == 0 {
		if m := upstreamMatchOf(n, items, cursor); m.Success {
			return incomplete(cursor)
		}
		if n.Next() != nil {
			if m := siblingMatchOf(n, items, cursor, Fail); m.Success {
				return m
			}
			return incomplete(cursor)
		}
		return incomplete(cursor)
	}

	// Hard fail (step 3).
	if !current.Success {
		return Fail
	}

	// Greedy consumption loop (step 4).
	for current.Success {
		cs.add(count, Span{Start: cursor, End: cursor + current.Size()}, current.Groups)
		count++
		cursor = current.End

		if count == max {
			rest := siblingMatchOf(n, items, cursor, succeed(cursor, cursor))
			terminal := and(pos, succeed(pos, cursor), rest)
			if !terminal.Success {
				return Fail
			}
			terminal.Groups = cs.finalize(terminal.Groups)
			return terminal
		}

		if count >= min {
			if m, ok := earlyExit(n, items, pos, cursor, cs); ok {
				return m
			}
		}

		current = n.findOne(items, cursor)
	}

	// Step 5: the loop stopped because current failed.
	if min == max || count < min {
		return Fail
	}
	rest := siblingMatchOf(n, items, cursor, succeed(cursor, cursor))
	result := and(pos, succeed(pos, cursor), rest)
	if !result.Success {
		return Fail
	}
	result.Groups = cs.finalize(result.Groups)
	return result
}

// siblingMatchOf runs n's sibling continuation at p, or returns def if n
// has no sibling.
func siblingMatchOf[T any](n Node[T], items []T, p int, def Match) Match {
	next := n.Next()
	if next == nil {
		return def
	}
	return findQuantified(next, items, p)
}

// upstreamMatchOf runs n's upstream reentry point at p: only meaningful
// when n has no sibling, i.e. n is the last node of a group.
func upstreamMatchOf[T any](n Node[T], items []T, p int) Match {
	if n.Next() != nil || n.Upstream() == nil {
		return Fail
	}
	return findQuantified(n.Upstream(), items, p)
}

// earlyExit implements the greedy-with-lookahead test: once the
// quantifier's minimum is satisfied and it is still open, test whether
// consuming one more element would strand the sibling or upstream
// continuation, and if so stop now rather than over-consume.
func earlyExit[T any](n Node[T], items []T, pos, cursor int, cs *captureSet) (Match, bool) {
	c := cursor
	curN := n.findOne(items, c)
	sib := siblingMatchOf(n, items, c, Fail)
	sibNext := siblingMatchOf(n, items, c+1, succeed(c+1, c+1))
	up := upstreamMatchOf(n, items, c)
	upNext := upstreamMatchOf(n, items, c+1)

	switch {
	case !curN.Success && sib.Success:
		m := and(pos, succeed(pos, c), sib)
		m.Groups = cs.finalize(m.Groups)
		return m, true
	case curN.Success && up.Success && !upNext.Success:
		m := succeed(pos, c)
		m.Groups = cs.finalize(m.Groups)
		return m, true
	case !curN.Success && up.Success:
		m := succeed(pos, c)
		m.Groups = cs.finalize(m.Groups)
		return m, true
	case curN.Success && sib.Success && !sibNext.Success:
		m := and(pos, succeed(pos, c), sib)
		m.Groups = cs.finalize(m.Groups)
		return m, true
	}
	return Match{}, false
}

// FindQuantified is the exported entry point the matcher and builder
// packages use to run the Finder algorithm against a compiled pattern's
// root node.
func FindQuantified[T any](n Node[T], items []T, pos int) Match {
	return findQuantified(n, items, pos)
}
