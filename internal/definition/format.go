package definition

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"unicode"

	"dfatool/internal/automaton"
)

var keywords = map[string]bool{
	"states":   true,
	"alphabet": true,
	"initial":  true,
	"final":    true,
}

// quote returns s as it must be written for Parse to read it back.
func quote(s string) string {
	if s == "" || keywords[s] || strings.HasPrefix(s, "->") ||
		strings.ContainsAny(s, `;"#`) || strings.ContainsFunc(s, unicode.IsSpace) {
		return strconv.Quote(s)
	}
	return s
}

// Format writes d in the form Parse reads. The alphabet statement is always
// written so symbols without transitions are kept.
func Format(w io.Writer, d *automaton.DFA) error {
	bw := bufio.NewWriter(w)

	line := func(kw string, labels []string) {
		bw.WriteString(kw)
		for _, l := range labels {
			bw.WriteByte(' ')
			bw.WriteString(quote(l))
		}
		bw.WriteString(";\n")
	}

	line("states", stateStrings(d.States()))
	syms := make([]string, 0, len(d.Alphabet()))
	for _, s := range d.Alphabet() {
		syms = append(syms, string(s))
	}
	line("alphabet", syms)
	line("initial", []string{string(d.Initial())})
	line("final", stateStrings(d.Finals()))

	for _, t := range d.Transitions() {
		bw.WriteString(quote(string(t.From)))
		bw.WriteByte(' ')
		bw.WriteString(quote(string(t.Symbol)))
		bw.WriteString(" -> ")
		bw.WriteString(quote(string(t.To)))
		bw.WriteString(";\n")
	}
	return bw.Flush()
}

func stateStrings(states []automaton.State) []string {
	out := make([]string, len(states))
	for i, s := range states {
		out[i] = string(s)
	}
	return out
}
