package core

import "testing"

func TestAppendChild_WiresGroupUpstream(t *testing.T) {
	g := NewGroup[rune](lit('a'))
	next := lit('b')
	AppendChild[rune](g, next)

	if g.Next() != Node[rune](next) {
		t.Fatalf("expected g.Next() == next")
	}
	if g.EntryPoint.Upstream() != Node[rune](next) {
		t.Fatalf("expected entry point's upstream to be wired to next")
	}
	if next.Downstream() != g.EntryPoint {
		t.Fatalf("expected next's downstream to point back at the entry point")
	}
}

func TestReplaceWithAlternative_WrapsTail(t *testing.T) {
	prev := lit('x')
	a := lit('a')
	AppendChild[rune](prev, a)
	down := lit('y')
	a.SetDownstream(down)

	alt := ReplaceWithAlternative[rune](a, lit('b'))
	altNode, ok := alt.(*AlternativeNode[rune])
	if !ok {
		t.Fatalf("expected an AlternativeNode, got %T", alt)
	}
	if len(altNode.Alternatives) != 2 {
		t.Fatalf("expected 2 alternatives, got %d", len(altNode.Alternatives))
	}
	if prev.Next() != alt {
		t.Fatalf("expected prev's next to be redirected to the new alternative")
	}
	if down.Upstream() != alt {
		t.Fatalf("expected down's upstream to be redirected to the new alternative")
	}
}

func TestReplaceWithAlternative_AppendsToExisting(t *testing.T) {
	alt := NewAlternative[rune](lit('a'), lit('b'))
	got := ReplaceWithAlternative[rune](alt, lit('c'))
	if got != Node[rune](alt) {
		t.Fatalf("expected the same alternative node back")
	}
	if len(alt.Alternatives) != 3 {
		t.Fatalf("expected 3 alternatives, got %d", len(alt.Alternatives))
	}
}

func TestNewOuterGroup_WrapsHead(t *testing.T) {
	head := lit('a')
	outer := NewOuterGroup[rune](head)
	if outer.EntryPoint != Node[rune](head) {
		t.Fatalf("expected outer group's entry point to be head")
	}
	if !outer.capturesEnabled() {
		t.Fatalf("expected outer group to always capture")
	}
}

func TestGroupNode_AnchorsOrWithEntryPoint(t *testing.T) {
	entry := lit('a')
	entry.SetMustBeFirst(true)
	g := NewGroup[rune](entry)
	if !g.MustBeFirst() {
		t.Fatalf("expected group to inherit must_be_first from its entry point")
	}
	if g.MustBeLast() {
		t.Fatalf("expected must_be_last to stay false")
	}

	g2 := NewGroup[rune](lit('a'))
	g2.SetMustBeLast(true)
	if !g2.MustBeLast() {
		t.Fatalf("expected group's own must_be_last flag to be honored")
	}
}

func TestIsNil(t *testing.T) {
	var p *int
	if !isNil(p) {
		t.Fatalf("expected nil pointer to report nil")
	}
	if isNil(0) {
		t.Fatalf("expected int zero value to not be nil")
	}
	if isNil("") {
		t.Fatalf("expected empty string to not be nil")
	}
}
