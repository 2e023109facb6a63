// Package automaton implements deterministic finite automata with string
// labelled states and symbols: construction, simulation, pruning,
// minimization and the union/intersection/difference/complement operations.
//
// A DFA is a plain value. Prune and Minimize rewrite their receiver; every
// other operation returns a fresh automaton and leaves its operands alone.
package automaton

import (
	"fmt"
	"slices"
	"strings"
)

// State is the label of an automaton state.
type State string

// Symbol is one token of an alphabet. The empty symbol is valid.
type Symbol string

// Table is a partial transition function. A missing entry is an undefined
// transition, which is not the same thing as a self-loop or a sink.
type Table map[State]map[Symbol]State

func (t Table) lookup(from State, sym Symbol) (State, bool) {
	to, ok := t[from][sym]
	return to, ok
}

func (t Table) set(from State, sym Symbol, to State) {
	row, ok := t[from]
	if !ok {
		row = make(map[Symbol]State)
		t[from] = row
	}
	row[sym] = to
}

func (t Table) clone() Table {
	out := make(Table, len(t))
	for from, row := range t {
		cp := make(map[Symbol]State, len(row))
		for sym, to := range row {
			cp[sym] = to
		}
		out[from] = cp
	}
	return out
}

// Transition is one defined entry of a transition table.
type Transition struct {
	From   State
	Symbol Symbol
	To     State
}

// DFA is a deterministic finite automaton.
type DFA struct {
	states   []State
	index    map[State]int
	alphabet []Symbol
	symbols  map[Symbol]struct{}
	initial  State
	finals   map[State]struct{}
	delta    Table
}

// New builds a DFA without transitions. Duplicate states and symbols are
// collapsed, keeping first-seen order.
func New(states []State, alphabet []Symbol, initial State, finals []State) (*DFA, error) {
	d := newDFA(states, alphabet, initial, finals, make(Table))
	if !d.HasState(initial) {
		return nil, fmt.Errorf("%w: initial state %q is not a state", ErrInvalidAutomaton, initial)
	}
	for _, f := range finals {
		if !d.HasState(f) {
			return nil, fmt.Errorf("%w: final state %q is not a state", ErrInvalidAutomaton, f)
		}
	}
	return d, nil
}

// newDFA assembles a DFA from parts that are already known to be consistent.
func newDFA(states []State, alphabet []Symbol, initial State, finals []State, delta Table) *DFA {
	d := &DFA{
		initial: initial,
		delta:   delta,
		symbols: make(map[Symbol]struct{}, len(alphabet)),
	}
	for _, sym := range alphabet {
		if _, dup := d.symbols[sym]; dup {
			continue
		}
		d.symbols[sym] = struct{}{}
		d.alphabet = append(d.alphabet, sym)
	}
	d.reset(states, finals, delta)
	return d
}

// reset swaps in a new state set, final set and table. The index map is
// always reallocated so earlier Reachability values stay valid.
func (d *DFA) reset(states []State, finals []State, delta Table) {
	d.index = make(map[State]int, len(states))
	d.states = make([]State, 0, len(states))
	for _, s := range states {
		if _, dup := d.index[s]; dup {
			continue
		}
		d.index[s] = len(d.states)
		d.states = append(d.states, s)
	}
	d.finals = make(map[State]struct{}, len(finals))
	for _, f := range finals {
		d.finals[f] = struct{}{}
	}
	d.delta = delta
}

// SetTransition defines from --sym--> to. Setting the same destination twice
// is a no-op; a different destination for an existing key is rejected.
func (d *DFA) SetTransition(from State, sym Symbol, to State) error {
	if !d.HasState(from) {
		return fmt.Errorf("%w: transition from unknown state %q", ErrInvalidAutomaton, from)
	}
	if !d.HasState(to) {
		return fmt.Errorf("%w: transition to unknown state %q", ErrInvalidAutomaton, to)
	}
	if _, ok := d.symbols[sym]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSymbol, sym)
	}
	if prev, ok := d.delta.lookup(from, sym); ok && prev != to {
		return fmt.Errorf("%w: %s --%s--> %s and %s", ErrNondeterministic, from, sym, prev, to)
	}
	d.delta.set(from, sym, to)
	return nil
}

// Step looks up the destination of from on sym. The bool is false when the
// transition is undefined.
func (d *DFA) Step(from State, sym Symbol) (State, bool) {
	return d.delta.lookup(from, sym)
}

// States returns the states in enumeration order.
func (d *DFA) States() []State { return slices.Clone(d.states) }

// Alphabet returns the symbols in enumeration order.
func (d *DFA) Alphabet() []Symbol { return slices.Clone(d.alphabet) }

func (d *DFA) Initial() State { return d.initial }

// Finals returns the final states in enumeration order.
func (d *DFA) Finals() []State {
	out := make([]State, 0, len(d.finals))
	for _, s := range d.states {
		if d.IsFinal(s) {
			out = append(out, s)
		}
	}
	return out
}

func (d *DFA) IsFinal(s State) bool {
	_, ok := d.finals[s]
	return ok
}

func (d *DFA) HasState(s State) bool {
	_, ok := d.index[s]
	return ok
}

func (d *DFA) HasSymbol(sym Symbol) bool {
	_, ok := d.symbols[sym]
	return ok
}

func (d *DFA) NumStates() int { return len(d.states) }

// Transitions lists every defined transition, ordered by origin state and
// then by alphabet position.
func (d *DFA) Transitions() []Transition {
	var out []Transition
	for _, from := range d.states {
		for _, sym := range d.alphabet {
			if to, ok := d.delta.lookup(from, sym); ok {
				out = append(out, Transition{From: from, Symbol: sym, To: to})
			}
		}
	}
	return out
}

func (d *DFA) NumTransitions() int {
	n := 0
	for _, row := range d.delta {
		n += len(row)
	}
	return n
}

// Clone returns a deep copy.
func (d *DFA) Clone() *DFA {
	return newDFA(d.states, d.alphabet, d.initial, d.Finals(), d.delta.clone())
}

func (d *DFA) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "states:   %v\n", d.states)
	fmt.Fprintf(&b, "alphabet: %v\n", d.alphabet)
	fmt.Fprintf(&b, "initial:  %s\n", d.initial)
	fmt.Fprintf(&b, "finals:   %v\n", d.Finals())
	for _, t := range d.Transitions() {
		fmt.Fprintf(&b, "%s --%s--> %s\n", t.From, t.Symbol, t.To)
	}
	return b.String()
}

// sameAlphabet compares the alphabets as sets.
func sameAlphabet(a, b *DFA) bool {
	if len(a.symbols) != len(b.symbols) {
		return false
	}
	for sym := range a.symbols {
		if _, ok := b.symbols[sym]; !ok {
			return false
		}
	}
	return true
}

func incompatible(a, b *DFA) error {
	return fmt.Errorf("%w: %v vs %v", ErrIncompatibleAlphabets, a.alphabet, b.alphabet)
}
