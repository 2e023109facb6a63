package automaton

import (
	"slices"

	u "github.com/araddon/gou"
)

// DefaultSink is the label given to the sink state added by completion.
const DefaultSink State = "sink"

type sinkConfig struct {
	sink State
}

// SinkOption configures the sink state added by Complement and Completed.
type SinkOption func(*sinkConfig)

// WithSink sets the preferred sink label. If the automaton already has a
// state with that label, primes are appended until it is unused.
func WithSink(label State) SinkOption {
	return func(c *sinkConfig) { c.sink = label }
}

// freshLabel returns preferred, primed until d has no state by that name.
func freshLabel(d *DFA, preferred State) State {
	for d.HasState(preferred) {
		preferred += "'"
	}
	return preferred
}

// complete sends every missing transition of d to a closed sink state. The
// sink is only added to the returned state list when something was missing.
func complete(d *DFA, sink State) ([]State, Table, int) {
	states := slices.Clone(d.states)
	delta := d.delta.clone()
	missing := 0
	for _, s := range d.states {
		for _, sym := range d.alphabet {
			if _, ok := delta.lookup(s, sym); !ok {
				delta.set(s, sym, sink)
				missing++
			}
		}
	}
	if missing > 0 {
		states = append(states, sink)
		for _, sym := range d.alphabet {
			delta.set(sink, sym, sink)
		}
	}
	return states, delta, missing
}

// Completed returns a copy of d whose transition function is total over its
// alphabet. The language is unchanged.
func Completed(d *DFA, opts ...SinkOption) *DFA {
	cfg := sinkConfig{sink: DefaultSink}
	for _, o := range opts {
		o(&cfg)
	}
	states, delta, _ := complete(d, freshLabel(d, cfg.sink))
	return newDFA(states, d.alphabet, d.initial, d.Finals(), delta)
}

// Complement accepts exactly the words over d's alphabet that d rejects.
// Missing transitions are first sent to a closed sink state; then every
// state that was not final, the sink included, becomes final.
func Complement(d *DFA, opts ...SinkOption) *DFA {
	cfg := sinkConfig{sink: DefaultSink}
	for _, o := range opts {
		o(&cfg)
	}
	sink := freshLabel(d, cfg.sink)
	states, delta, missing := complete(d, sink)

	finals := make([]State, 0, len(states))
	for _, s := range states {
		if !d.IsFinal(s) {
			finals = append(finals, s)
		}
	}

	u.Debugf("automaton: complement routed %d missing transitions to %q", missing, sink)
	return newDFA(states, d.alphabet, d.initial, finals, delta)
}

// Difference accepts the words accepted by a and rejected by b.
func Difference(a, b *DFA) (*DFA, error) {
	if !sameAlphabet(a, b) {
		return nil, incompatible(a, b)
	}
	return Intersection(a, Complement(b))
}
