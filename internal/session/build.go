package session

import (
	"fmt"
	"io"
	"strings"

	u "github.com/araddon/gou"

	"dfatool/internal/automaton"
)

// undefinedAnswer leaves a transition undefined in Build.
const undefinedAnswer = "."

// Build asks for the states, alphabet, initial and final states, then for
// the destination of every state and symbol. An invalid destination is
// reported and asked again.
func Build(p Prompter, out io.Writer) (*automaton.DFA, error) {
	var answers [4]string
	labels := [4]string{
		"states (q0 q1 ...): ",
		"alphabet (a b ...): ",
		"initial state: ",
		"final states (q0 q1 ...): ",
	}
	for i, label := range labels {
		ans, err := p.Ask(label)
		if err != nil {
			return nil, err
		}
		answers[i] = ans
	}

	var states, finals []automaton.State
	for _, f := range strings.Fields(answers[0]) {
		states = append(states, automaton.State(f))
	}
	for _, f := range strings.Fields(answers[3]) {
		finals = append(finals, automaton.State(f))
	}
	var alphabet []automaton.Symbol
	for _, f := range strings.Fields(answers[1]) {
		alphabet = append(alphabet, automaton.Symbol(f))
	}
	d, err := automaton.New(states, alphabet, automaton.State(strings.TrimSpace(answers[2])), finals)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(out, "transitions (%q for undefined):\n", undefinedAnswer)
	for _, s := range d.States() {
		for _, sym := range d.Alphabet() {
			for {
				ans, err := p.Ask(fmt.Sprintf("%s --%s--> ", s, sym))
				if err != nil {
					return nil, err
				}
				ans = strings.TrimSpace(ans)
				if ans == undefinedAnswer {
					break
				}
				if err := d.SetTransition(s, sym, automaton.State(ans)); err != nil {
					u.Debugf("rejected answer %q: %v", ans, err)
					fmt.Fprintf(out, "%q is not a state, try again\n", ans)
					continue
				}
				break
			}
		}
	}
	return d, nil
}
