package automaton

import (
	"math/rand/v2"
	"strings"
	"testing"

	u "github.com/araddon/gou"
	"github.com/stretchr/testify/require"
)

func init() {
	u.SetupLogging("warn")
}

// build parses transitions written as "from sym to".
func build(t *testing.T, states, alphabet, initial, finals string, transitions ...string) *DFA {
	t.Helper()
	d, err := New(labels(states), symbols(alphabet), State(initial), labels(finals))
	require.NoError(t, err)
	for _, tr := range transitions {
		f := strings.Fields(tr)
		require.Len(t, f, 3, "transition %q", tr)
		require.NoError(t, d.SetTransition(State(f[0]), Symbol(f[1]), State(f[2])))
	}
	return d
}

func labels(s string) []State {
	var out []State
	for _, f := range strings.Fields(s) {
		out = append(out, State(f))
	}
	return out
}

func symbols(s string) []Symbol {
	var out []Symbol
	for _, f := range strings.Fields(s) {
		out = append(out, Symbol(f))
	}
	return out
}

// evenA accepts words over {a,b} with an even number of a.
func evenA(t *testing.T) *DFA {
	return build(t, "q0 q1", "a b", "q0", "q0",
		"q0 a q1", "q0 b q0", "q1 a q0", "q1 b q1")
}

// aStarBPlus accepts a*b+ and is partial: nothing leaves s1 on a.
func aStarBPlus(t *testing.T) *DFA {
	return build(t, "s0 s1", "a b", "s0", "s1",
		"s0 a s0", "s0 b s1", "s1 b s1")
}

// endsInA accepts words over {a,b} ending in a, with a redundant copy of
// the accepting state.
func endsInA(t *testing.T) *DFA {
	return build(t, "p0 p1 p2", "a b", "p0", "p1 p2",
		"p0 a p1", "p0 b p0", "p1 a p2", "p1 b p0", "p2 a p1", "p2 b p0")
}

// words lists every word over alphabet of length at most n.
func words(alphabet []Symbol, n int) []string {
	out := []string{""}
	frontier := []string{""}
	for i := 0; i < n; i++ {
		var next []string
		for _, w := range frontier {
			for _, s := range alphabet {
				next = append(next, w+string(s))
			}
		}
		out = append(out, next...)
		frontier = next
	}
	return out
}

// randomDFA builds a partial automaton over {a,b} where roughly one
// transition in five is left undefined.
func randomDFA(t *testing.T, r *rand.Rand, n int) *DFA {
	t.Helper()
	states := make([]State, n)
	for i := range states {
		states[i] = State(string(rune('A' + i)))
	}
	var finals []State
	for _, s := range states {
		if r.IntN(3) == 0 {
			finals = append(finals, s)
		}
	}
	d, err := New(states, []Symbol{"a", "b"}, states[0], finals)
	require.NoError(t, err)
	for _, s := range states {
		for _, sym := range []Symbol{"a", "b"} {
			if r.IntN(5) == 0 {
				continue
			}
			require.NoError(t, d.SetTransition(s, sym, states[r.IntN(n)]))
		}
	}
	return d
}

func randomPairs(t *testing.T, count int) [][2]*DFA {
	r := rand.New(rand.NewPCG(7, 11))
	out := make([][2]*DFA, count)
	for i := range out {
		out[i] = [2]*DFA{randomDFA(t, r, 2+r.IntN(5)), randomDFA(t, r, 2+r.IntN(5))}
	}
	return out
}
