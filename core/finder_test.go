package core

import (
	"reflect"
	"testing"
)

// chars turns a string into its rune slice, the element sequence used
// throughout these tests.
func chars(s string) []rune {
	return []rune(s)
}

// lit builds an AtomicNode matching exactly one rune.
func lit(r rune) *AtomicNode[rune] {
	return NewAtomic[rune](func(v rune) bool { return v == r })
}

// chain links nodes n[0]..n[k] into next/previous and returns (head, tail).
func chainNodes(nodes ...Node[rune]) (Node[rune], Node[rune]) {
	for i := 0; i < len(nodes)-1; i++ {
		AppendChild[rune](nodes[i], nodes[i+1])
	}
	return nodes[0], nodes[len(nodes)-1]
}

func TestFindQuantified_SingleAtomic(t *testing.T) {
	n := lit('a')
	m := findQuantified[rune](n, chars("abc"), 0)
	if !m.Success || m.Start != 0 || m.End != 1 {
		t.Fatalf("got %+v", m)
	}
	if m2 := findQuantified[rune](n, chars("abc"), 1); m2.Success {
		t.Fatalf("expected failure at pos 1, got %+v", m2)
	}
}

func TestFindQuantified_OneOrMoreGreedy(t *testing.T) {
	n := lit('a')
	n.SetBounds(1, MaxQuantifier)
	m := findQuantified[rune](n, chars("aaab"), 0)
	if !m.Success || m.Start != 0 || m.End != 3 {
		t.Fatalf("expected greedy match [0,3), got %+v", m)
	}
}

func TestFindQuantified_ZeroOrMoreEarlyExit(t *testing.T) {
	// "a*a" over "aaa" must not let the greedy 'a*' consume every 'a' and
	// strand the required trailing 'a': it must back off to consuming
	// exactly two, leaving the third for the mandatory sibling.
	star := lit('a')
	star.SetBounds(0, MaxQuantifier)
	req := lit('a')
	AppendChild[rune](star, req)

	m := findQuantified[rune](star, chars("aaa"), 0)
	if !m.Success || m.Start != 0 || m.End != 3 {
		t.Fatalf("expected full [0,3) match, got %+v", m)
	}
}

func TestFindQuantified_GroupCapture(t *testing.T) {
	// (abc)+ over "abcabcd" — greedy repetition of a capturing group,
	// last iteration wins for the group's own span.
	a, b, c := lit('a'), lit('b'), lit('c')
	head, _ := chainNodes(a, b, c)
	grp := NewGroup[rune](head)
	grp.SetBounds(1, MaxQuantifier)

	m := findQuantified[rune](grp, chars("abcabcd"), 0)
	if !m.Success || m.Start != 0 || m.End != 6 {
		t.Fatalf("expected whole match [0,6), got %+v", m)
	}
	if len(m.Groups) != 1 || m.Groups[0] != (Span{3, 6}) {
		t.Fatalf("expected last-iteration-wins group [3,6), got %+v", m.Groups)
	}
}

func TestFindQuantified_NestedGroupLastIterationWins(t *testing.T) {
	// ((abc)+)d over "abcabcde" — outer group's span is the whole run of
	// abc's, inner group's capture is only the last "abc".
	a, b, c := lit('a'), lit('b'), lit('c')
	head, _ := chainNodes(a, b, c)
	inner := NewGroup[rune](head)
	inner.SetBounds(1, MaxQuantifier)
	outer := NewGroup[rune](inner)
	d := lit('d')
	AppendChild[rune](outer, d)

	m := findQuantified[rune](outer, chars("abcabcde"), 0)
	if !m.Success || m.Start != 0 || m.End != 7 {
		t.Fatalf("expected [0,7), got %+v", m)
	}
	want := []Span{{0, 6}, {3, 6}}
	if !reflect.DeepEqual(m.Groups, want) {
		t.Fatalf("expected groups %+v, got %+v", want, m.Groups)
	}
}

func TestFindQuantified_Alternative(t *testing.T) {
	alt := NewAlternative[rune](lit('a'), lit('b'))
	for _, r := range []rune{'a', 'b'} {
		if m := findQuantified[rune](alt, []rune{r}, 0); !m.Success {
			t.Fatalf("expected %q to match, got %+v", r, m)
		}
	}
	if m := findQuantified[rune](alt, []rune{'c'}, 0); m.Success {
		t.Fatalf("expected 'c' to fail, got %+v", m)
	}
}

func TestFindQuantified_AlternativeOfGroupsCapture(t *testing.T) {
	// (ab)|(cd): capturesEnabled is true since an alternative is a Group.
	ab, _ := chainNodes(lit('a'), lit('b'))
	cd, _ := chainNodes(lit('c'), lit('d'))
	alt := NewAlternative[rune](NewGroup[rune](ab), NewGroup[rune](cd))

	m := findQuantified[rune](alt, chars("cd"), 0)
	if !m.Success || len(m.Groups) != 1 || m.Groups[0] != (Span{0, 2}) {
		t.Fatalf("expected one capture [0,2), got %+v", m)
	}
}

func TestFindQuantified_MustFailWhenBelowMin(t *testing.T) {
	n := lit('a')
	n.SetBounds(2, MaxQuantifier)
	if m := findQuantified[rune](n, chars("a"), 0); m.Success {
		t.Fatalf("expected failure, only one 'a' available for min=2, got %+v", m)
	}
}

func TestFindQuantified_ZeroMatchIncomplete(t *testing.T) {
	// A purely optional node with nothing to consume and no continuation
	// reports an incomplete zero-length match, not a hard failure.
	n := lit('a')
	n.SetBounds(0, 1)
	m := findQuantified[rune](n, chars("bbb"), 0)
	if !m.Success || m.Complete || m.Start != 0 || m.End != 0 {
		t.Fatalf("expected incomplete zero-length match, got %+v", m)
	}
}
