// Package matcher is the small stateful driver that sits on top of core's
// Finder: it owns a cursor into one input sequence and turns repeated
// findQuantified calls into find/reset/replace/split operations. It is
// grounded on the teacher's engine.PatternExecutor
// (engine/pattern_execution.go): a thin wrapper holding state and
// delegating the actual matching work to core.
package matcher

import "github.com/client9/seqpattern/core"

// Matcher holds one compiled pattern, one input sequence, and the cursor
// of the most recent find(). A Matcher is not safe for concurrent use by
// more than one goroutine.
type Matcher[T any] struct {
	root  *core.GroupNode[T]
	items []T

	current core.Match
}

// New returns a Matcher scanning items against the compiled pattern root.
func New[T any](root *core.GroupNode[T], items []T) *Matcher[T] {
	return &Matcher[T]{root: root, items: items, current: core.Fail}
}

// Reset clears the cursor so the next Find starts over at position 0.
func (m *Matcher[T]) Reset() {
	m.current = core.Fail
}

// Find advances the cursor and reports whether the pattern matched
// somewhere at or after the previous match's end: it scans start
// positions left to right, returns immediately on the first complete
// match, but remembers the earliest incomplete ("challenger") match and
// returns that if the scan never finds a complete one.
func (m *Matcher[T]) Find() bool {
	start := m.current.End
	if start < 0 {
		start = 0
	}

	var challenger *core.Match
	for i := start; i < len(m.items); i++ {
		if i > 0 && m.root.MustBeFirst() {
			break
		}
		mm := core.FindQuantified[T](m.root, m.items, i)
		if !mm.Success || mm.Size() == 0 {
			continue
		}
		if m.root.MustBeLast() && i+mm.Size() != len(m.items) {
			continue
		}
		if mm.Complete {
			m.current = mm
			return true
		}
		if challenger == nil {
			c := mm
			challenger = &c
		}
	}

	if challenger != nil {
		m.current = *challenger
		return true
	}
	m.current = core.Fail
	return false
}

// Start reports the start of the current match, or -1 if there is none.
func (m *Matcher[T]) Start() int {
	if !m.current.Success {
		return -1
	}
	return m.current.Start
}

// End reports the end of the current match, or -1 if there is none.
func (m *Matcher[T]) End() int {
	if !m.current.Success {
		return -1
	}
	return m.current.End
}

// Size reports the length of the current match, or 0 if there is none.
func (m *Matcher[T]) Size() int {
	return m.current.Size()
}

// Groups reports the current match's capture spans, index 0 being the
// whole-match span (build() always wraps the compiled chain in an outer
// Group, so the root's own capture is always present).
func (m *Matcher[T]) Groups() []core.Span {
	if !m.current.Success {
		return nil
	}
	return m.current.Groups
}

// ReplaceWithList runs Find to exhaustion starting from position 0,
// collecting every match, then splices in fn's replacement for each match
// right to left so earlier indices stay valid, and returns a new
// sequence. The matcher's own cursor is left untouched.
func (m *Matcher[T]) ReplaceWithList(fn func(core.Match) []T) []T {
	saved := m.current
	m.Reset()

	var matches []core.Match
	for m.Find() {
		matches = append(matches, m.current)
	}
	m.current = saved

	out := make([]T, len(m.items))
	copy(out, m.items)
	for i := len(matches) - 1; i >= 0; i-- {
		mm := matches[i]
		out = spliceSlice(out, mm.Start, mm.End, fn(mm))
	}
	return out
}

// ReplaceWith is ReplaceWithList for a replacement function that produces
// one element per match instead of a list.
func (m *Matcher[T]) ReplaceWith(fn func(core.Match) T) []T {
	return m.ReplaceWithList(func(mm core.Match) []T { return []T{fn(mm)} })
}

func spliceSlice[T any](s []T, start, end int, repl []T) []T {
	out := make([]T, 0, len(s)-(end-start)+len(repl))
	out = append(out, s[:start]...)
	out = append(out, repl...)
	out = append(out, s[end:]...)
	return out
}

// Split resets the matcher and returns a pull-style iterator yielding the
// sub-slices between successive non-overlapping matches: every gap
// between two matches is yielded even if empty, but the final tail after
// the last match is yielded only when non-empty. Go has no native
// generator, so this returns a closure instead of a channel to avoid
// leaking a goroutine when the caller stops pulling early.
func (m *Matcher[T]) Split() func() ([]T, bool) {
	m.Reset()
	lastEnd := 0
	done := false

	return func() ([]T, bool) {
		if done {
			return nil, false
		}
		if m.Find() {
			piece := m.items[lastEnd:m.current.Start]
			lastEnd = m.current.End
			return piece, true
		}
		done = true
		tail := m.items[lastEnd:]
		if len(tail) == 0 {
			return nil, false
		}
		return tail, true
	}
}
