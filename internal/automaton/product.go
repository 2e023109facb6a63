package automaton

import (
	"strings"

	u "github.com/araddon/gou"
)

var pairEscaper = strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`, `,`, `\,`)

// Pair is the label of the product state (a, b). Parentheses, commas and
// backslashes inside a or b are escaped so distinct pairs never share a label.
func Pair(a, b State) State {
	return State("(" + pairEscaper.Replace(string(a)) + "," + pairEscaper.Replace(string(b)) + ")")
}

// Union accepts the words accepted by a or b. Operands with undefined
// transitions are completed with a sink first, otherwise a word one side
// accepts would be lost wherever the other side is undefined.
func Union(a, b *DFA) (*DFA, error) {
	if !sameAlphabet(a, b) {
		return nil, incompatible(a, b)
	}
	return product(Completed(a), Completed(b), func(x, y bool) bool { return x || y })
}

// Intersection accepts the words accepted by both a and b.
func Intersection(a, b *DFA) (*DFA, error) {
	return product(a, b, func(x, y bool) bool { return x && y })
}

// product builds the full cross product of the two state sets. A product
// transition exists only where both operands define one; op decides which
// pairs are final.
func product(a, b *DFA, op func(bool, bool) bool) (*DFA, error) {
	if !sameAlphabet(a, b) {
		return nil, incompatible(a, b)
	}

	states := make([]State, 0, len(a.states)*len(b.states))
	var finals []State
	delta := make(Table)
	for _, s1 := range a.states {
		for _, s2 := range b.states {
			p := Pair(s1, s2)
			states = append(states, p)
			if op(a.IsFinal(s1), b.IsFinal(s2)) {
				finals = append(finals, p)
			}
			for _, sym := range a.alphabet {
				d1, ok1 := a.delta.lookup(s1, sym)
				d2, ok2 := b.delta.lookup(s2, sym)
				if ok1 && ok2 {
					delta.set(p, sym, Pair(d1, d2))
				}
			}
		}
	}

	u.Debugf("automaton: product of %dx%d states, %d final", len(a.states), len(b.states), len(finals))
	return newDFA(states, a.alphabet, Pair(a.initial, b.initial), finals, delta), nil
}
