package core

// MaxQuantifier is the open upper bound used by zero_or_more()/one_or_more()
// quantifiers; any finite input terminates the Finder loop well before this
// is reached.
const MaxQuantifier = int(^uint(0) >> 1)

// Span is a half-open [Start, End) range over an input sequence.
type Span struct {
	Start int
	End   int
}

// Size reports the number of elements the span covers.
func (s Span) Size() int {
	return s.End - s.Start
}

// Match is the value type produced by every match attempt in the graph.
// A failed attempt is represented by the Fail sentinel, never by a panic
// or error return.
type Match struct {
	Success  bool
	Start    int
	End      int
	Complete bool
	Groups   []Span
}

// Fail is the sentinel returned by every unsuccessful match attempt.
var Fail = Match{Success: false, Start: -1, End: -1}

// Size reports End - Start; zero for a failed match.
func (m Match) Size() int {
	if !m.Success {
		return 0
	}
	return m.End - m.Start
}

// succeed builds a successful, complete match spanning [start, end) with
// no group captures attached yet.
func succeed(start, end int) Match {
	return Match{Success: true, Start: start, End: end, Complete: true}
}

// incomplete builds a successful match of zero length at pos, marked
// incomplete: a terminal optional subpattern consumed nothing, and a
// stronger candidate may yet exist.
func incomplete(pos int) Match {
	return Match{Success: true, Start: pos, End: pos, Complete: false}
}

// and combines a leading match with a following match, concatenating
// group captures and propagating completeness and the "real" span.
// It is used to glue find_one's own span to a sibling or upstream
// continuation's outcome.
func and(start int, lead Match, rest Match) Match {
	if !lead.Success || !rest.Success {
		return Fail
	}
	m := Match{
		Success:  true,
		Start:    start,
		End:      rest.End,
		Complete: lead.Complete && rest.Complete,
	}
	m.Groups = append(m.Groups, lead.Groups...)
	m.Groups = append(m.Groups, rest.Groups...)
	return m
}
