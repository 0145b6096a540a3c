// Package seqpattern is the fluent builder façade over core and matcher:
// a small root package that wires the lower layers behind a friendlier
// surface, the way the teacher's own root-level api.go wires core and
// engine behind NewEvaluator and friends.
package seqpattern

import (
	"reflect"

	"github.com/client9/seqpattern/core"
	"github.com/client9/seqpattern/matcher"
)

// Pattern is a compiled, read-only, reusable pattern over element type T.
type Pattern[T any] struct {
	root *core.GroupNode[T]
}

// Matcher returns a fresh Matcher scanning items against p. A Pattern may
// back any number of Matchers, each with its own cursor; a single Matcher
// is not safe for concurrent use.
func (p *Pattern[T]) Matcher(items []T) *matcher.Matcher[T] {
	return matcher.New[T](p.root, items)
}

// chain tracks the head/tail of one sub-graph under construction; Builder
// keeps a stack of these so SubPattern/OrGroup can nest.
type chain[T any] struct {
	head core.Node[T]
	tail core.Node[T]
}

// Builder accumulates a pattern graph one token at a time via its fluent
// methods: beginning/any/token/ending/build, plus per-token
// zero_or_one/zero_or_more/one_or_more/count/or/tag. Once any method
// reports misuse, every later call is a no-op and Build returns the
// recorded error, mirroring the teacher's "accumulate then report at the
// end" style (core.BuildError).
type Builder[T any] struct {
	stack        []*chain[T]
	pendingFirst bool
	err          error
}

// New starts a fresh, empty Builder for element type T.
func New[T any]() *Builder[T] {
	return &Builder[T]{stack: []*chain[T]{{}}}
}

func (b *Builder[T]) top() *chain[T] {
	return b.stack[len(b.stack)-1]
}

func (b *Builder[T]) fail(msg string) *Builder[T] {
	if b.err == nil {
		b.err = core.ErrInvalidBuilderOp(msg)
	}
	return b
}

// appendNode links n onto the current chain's tail (or makes it the head
// of an empty chain), applying any pending Beginning() anchor.
func (b *Builder[T]) appendNode(n core.Node[T]) *Builder[T] {
	if b.err != nil {
		return b
	}
	c := b.top()
	if c.head == nil {
		c.head = n
	} else {
		core.AppendChild[T](c.tail, n)
	}
	c.tail = n
	if b.pendingFirst {
		n.SetMustBeFirst(true)
		b.pendingFirst = false
	}
	return b
}

// Beginning anchors the next appended token to the start of the sequence.
func (b *Builder[T]) Beginning() *Builder[T] {
	if b.err != nil {
		return b
	}
	b.pendingFirst = true
	return b
}

// Ending anchors the most recently appended token to the end of the
// sequence.
func (b *Builder[T]) Ending() *Builder[T] {
	if b.err != nil {
		return b
	}
	c := b.top()
	if c.tail == nil {
		return b.fail("ending(): no token to anchor")
	}
	c.tail.SetMustBeLast(true)
	return b
}

// Any appends a wildcard token matching any single non-null element.
func (b *Builder[T]) Any() *Builder[T] {
	return b.appendNode(core.NewAtomic[T](func(T) bool { return true }))
}

// Token appends a token matching elements deeply equal to sample.
func (b *Builder[T]) Token(sample T) *Builder[T] {
	return b.appendNode(core.NewAtomic[T](func(v T) bool {
		return reflect.DeepEqual(v, sample)
	}))
}

// TokenFunc appends a token matching elements for which predicate
// returns true.
func (b *Builder[T]) TokenFunc(predicate func(T) bool) *Builder[T] {
	if b.err != nil {
		return b
	}
	if predicate == nil {
		return b.fail("token(predicate): predicate is nil")
	}
	return b.appendNode(core.NewAtomic[T](predicate))
}

// SubPattern appends a capturing group whose contents are built by fn
// against a fresh nesting level of this same Builder.
func (b *Builder[T]) SubPattern(fn func(*Builder[T])) *Builder[T] {
	if b.err != nil {
		return b
	}
	if fn == nil {
		return b.fail("sub-pattern(): builder func is nil")
	}
	b.stack = append(b.stack, &chain[T]{})
	fn(b)
	inner := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	if b.err != nil {
		return b
	}
	if inner.head == nil {
		return b.fail("sub-pattern(): empty sub-pattern")
	}
	return b.appendNode(core.NewGroup[T](inner.head))
}

// ZeroOrOne sets the most recently appended token's quantifier to {0,1}.
func (b *Builder[T]) ZeroOrOne() *Builder[T] { return b.setBounds(0, 1) }

// ZeroOrMore sets the most recently appended token's quantifier to
// {0,max}.
func (b *Builder[T]) ZeroOrMore() *Builder[T] { return b.setBounds(0, core.MaxQuantifier) }

// OneOrMore sets the most recently appended token's quantifier to
// {1,max}.
func (b *Builder[T]) OneOrMore() *Builder[T] { return b.setBounds(1, core.MaxQuantifier) }

// Count sets the most recently appended token's quantifier to exactly n
// repetitions.
func (b *Builder[T]) Count(n int) *Builder[T] { return b.setBounds(n, n) }

// CountRange sets the most recently appended token's quantifier to
// {min,max} repetitions.
func (b *Builder[T]) CountRange(min, max int) *Builder[T] { return b.setBounds(min, max) }

func (b *Builder[T]) setBounds(min, max int) *Builder[T] {
	if b.err != nil {
		return b
	}
	c := b.top()
	if c.tail == nil {
		return b.fail("quantifier: no token to apply it to")
	}
	if min < 0 || max < min {
		return b.fail("quantifier: invalid bounds")
	}
	c.tail.SetBounds(min, max)
	return b
}

// Tag attaches a debug label to the most recently appended token.
func (b *Builder[T]) Tag(name string) *Builder[T] {
	if b.err != nil {
		return b
	}
	c := b.top()
	if c.tail == nil {
		return b.fail("tag(): no token to label")
	}
	c.tail.SetTag(name)
	return b
}

// Or adds predicate as an alternative to the most recently appended
// token, so either the original token or predicate may match at that
// position.
func (b *Builder[T]) Or(predicate func(T) bool) *Builder[T] {
	if b.err != nil {
		return b
	}
	if predicate == nil {
		return b.fail("or(): predicate is nil")
	}
	c := b.top()
	if c.tail == nil {
		return b.fail("or(): no token to branch from")
	}
	alt := core.ReplaceWithAlternative[T](c.tail, core.NewAtomic[T](predicate))
	if c.tail == c.head {
		c.head = alt
	}
	c.tail = alt
	return b
}

// OrGroup adds a sub-pattern, built by fn, as an alternative to the most
// recently appended token.
func (b *Builder[T]) OrGroup(fn func(*Builder[T])) *Builder[T] {
	if b.err != nil {
		return b
	}
	if fn == nil {
		return b.fail("or(): builder func is nil")
	}
	c := b.top()
	if c.tail == nil {
		return b.fail("or(): no token to branch from")
	}
	b.stack = append(b.stack, &chain[T]{})
	fn(b)
	inner := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	if b.err != nil {
		return b
	}
	if inner.head == nil {
		return b.fail("or(): empty alternative sub-pattern")
	}
	alt := core.ReplaceWithAlternative[T](c.tail, core.NewGroup[T](inner.head))
	if c.tail == c.head {
		c.head = alt
	}
	c.tail = alt
	return b
}

// Build finalizes the pattern, wrapping the whole chain as the outermost
// capturing group: the full match is always capture index 0.
func (b *Builder[T]) Build() (*Pattern[T], error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.stack) != 1 {
		return nil, core.ErrInvalidBuilderOp("build(): unclosed sub-pattern")
	}
	c := b.top()
	if c.head == nil {
		return nil, core.ErrInvalidBuilderOp("build(): empty pattern")
	}
	return &Pattern[T]{root: core.NewOuterGroup[T](c.head)}, nil
}
