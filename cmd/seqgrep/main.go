// Command seqgrep is an interactive/pipeable demo harness over the
// seqpattern builder: it compiles a tiny whitespace-separated pattern
// language and reports, for every line of input (split on whitespace
// into a word sequence), every place the pattern matches. Grounded on
// cmd/cardinal/repl.go (readline/TTY wiring) and cmd/lex/main.go
// (os.Args dispatch, no flag package).
package main

import (
	"log"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatalf("usage: %s <pattern> [file]", os.Args[0])
	}

	pattern, err := compilePattern(os.Args[1])
	if err != nil {
		log.Fatalf("invalid pattern %q: %v", os.Args[1], err)
	}

	input := os.Stdin
	if len(os.Args) > 2 {
		f, err := os.Open(os.Args[2])
		if err != nil {
			log.Fatalf("open %s: %v", os.Args[2], err)
		}
		defer f.Close()
		input = f
	}

	r := NewREPL(pattern, input, os.Stdout)
	if err := r.Run(); err != nil {
		log.Fatal(err)
	}
}
