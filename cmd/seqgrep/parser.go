package main

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/client9/seqpattern"
)

// compilePattern turns a tiny whitespace-separated pattern language into
// a compiled seqpattern.Pattern[string]. This mini-language is a
// demo/test harness over the Builder, not part of the matching core:
// `word`/`digit`/`any` name built-in classes, any other bare lexeme is a
// literal, `a|b` alternates, `(...)` groups, and a trailing
// `+`/`*`/`?`/`{m,n}`/`{n}` quantifies the lexeme or group it follows.
func compilePattern(src string) (*seqpattern.Pattern[string], error) {
	toks := strings.Fields(src)
	p := &patternParser{toks: toks, b: seqpattern.New[string]()}
	if err := p.parseSequence(); err != nil {
		return nil, err
	}
	if p.pos != len(p.toks) {
		return nil, fmt.Errorf("unexpected token %q", p.toks[p.pos])
	}
	return p.b.Build()
}

type patternParser struct {
	toks []string
	pos  int
	b    *seqpattern.Builder[string]
}

func (p *patternParser) parseSequence() error {
	for p.pos < len(p.toks) && !isCloseParen(p.toks[p.pos]) {
		if err := p.parseAtom(); err != nil {
			return err
		}
	}
	return nil
}

// isCloseParen reports whether tok closes a group, possibly with a
// quantifier suffix glued directly onto it (")+", "){2,3}", ...).
func isCloseParen(tok string) bool {
	return strings.HasPrefix(tok, ")")
}

func (p *patternParser) parseAtom() error {
	tok := p.toks[p.pos]

	if tok == "(" {
		p.pos++
		var innerErr error
		p.b.SubPattern(func(inner *seqpattern.Builder[string]) {
			saved := p.b
			p.b = inner
			innerErr = p.parseSequence()
			p.b = saved
		})
		if innerErr != nil {
			return innerErr
		}
		if p.pos >= len(p.toks) || !isCloseParen(p.toks[p.pos]) {
			return fmt.Errorf("unclosed group")
		}
		quant := p.toks[p.pos][1:]
		p.pos++
		return applyQuantifier(p.b, quant)
	}

	parts := strings.Split(tok, "|")
	last := parts[len(parts)-1]
	base, quant := splitQuantifier(last)
	parts[len(parts)-1] = base

	p.b.TokenFunc(classify(parts[0]))
	for _, alt := range parts[1:] {
		p.b.Or(classify(alt))
	}
	p.pos++
	return applyQuantifier(p.b, quant)
}

// classify maps one alternation lexeme to a predicate.
func classify(s string) func(string) bool {
	switch s {
	case "word":
		return wordRE.MatchString
	case "digit":
		return digitRE.MatchString
	case "any":
		return func(string) bool { return true }
	}
	if lit, ok := strings.CutPrefix(s, "lit:"); ok {
		return func(v string) bool { return v == lit }
	}
	return func(v string) bool { return v == s }
}

var (
	wordRE  = regexp.MustCompile(`^[A-Za-z]+$`)
	digitRE = regexp.MustCompile(`^[0-9]+$`)
	rangeRE = regexp.MustCompile(`^\{(\d+)(,(\d+))?\}$`)
)

// splitQuantifier strips a trailing +, *, ?, {n} or {m,n} suffix from s,
// returning the base lexeme and the bare suffix (empty if none).
func splitQuantifier(s string) (base, quant string) {
	if s == "" {
		return s, ""
	}
	switch s[len(s)-1] {
	case '+', '*', '?':
		return s[:len(s)-1], s[len(s)-1:]
	}
	if i := strings.LastIndexByte(s, '{'); i >= 0 && rangeRE.MatchString(s[i:]) {
		return s[:i], s[i:]
	}
	return s, ""
}

func applyQuantifier(b *seqpattern.Builder[string], quant string) error {
	switch {
	case quant == "":
		return nil
	case quant == "+":
		b.OneOrMore()
	case quant == "*":
		b.ZeroOrMore()
	case quant == "?":
		b.ZeroOrOne()
	case rangeRE.MatchString(quant):
		m := rangeRE.FindStringSubmatch(quant)
		min, _ := strconv.Atoi(m[1])
		if m[3] == "" {
			b.Count(min)
		} else {
			max, _ := strconv.Atoi(m[3])
			b.CountRange(min, max)
		}
	default:
		return fmt.Errorf("unrecognized quantifier %q", quant)
	}
	return nil
}
