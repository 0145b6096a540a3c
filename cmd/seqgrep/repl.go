package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lmorg/readline/v4"
	"golang.org/x/term"

	"github.com/client9/seqpattern"
)

// REPL drives seqgrep's find-and-highlight loop over lines of input,
// grounded on cardinal's own REPL shape (cmd/cardinal/repl.go): TTY
// detection on stdin picks an interactive readline session over a plain
// line scan.
type REPL struct {
	pattern *seqpattern.Pattern[string]
	input   io.Reader
	output  io.Writer
}

// NewREPL builds a REPL that matches pattern against whitespace-split
// words of each line read from input.
func NewREPL(pattern *seqpattern.Pattern[string], input io.Reader, output io.Writer) *REPL {
	return &REPL{pattern: pattern, input: input, output: output}
}

func (r *REPL) isInteractive() bool {
	if r.input != os.Stdin {
		return false
	}
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Run dispatches to the interactive or batch loop depending on whether
// stdin is a terminal (cmd/cardinal/repl.go's Run does the same split).
func (r *REPL) Run() error {
	if r.isInteractive() {
		return r.runInteractive()
	}
	return r.runBatch()
}

func (r *REPL) runInteractive() error {
	rl := readline.NewInstance()
	rl.SetPrompt("seqgrep> ")
	for {
		line, err := rl.Readline()
		if err != nil {
			return nil
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		r.processLine(line)
	}
}

func (r *REPL) runBatch() error {
	scanner := bufio.NewScanner(r.input)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		r.processLine(line)
	}
	return scanner.Err()
}

func (r *REPL) processLine(line string) {
	words := strings.Fields(line)
	m := r.pattern.Matcher(words)
	any := false
	for m.Find() {
		any = true
		fmt.Fprintln(r.output, highlightMatch(words, m.Start(), m.End()))
	}
	if !any {
		fmt.Fprintln(r.output, "(no match)")
	}
}
