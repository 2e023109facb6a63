package automaton

import (
	u "github.com/araddon/gou"
	"github.com/bits-and-blooms/bitset"
)

// Reachability marks which states of an automaton can be reached from its
// initial state.
type Reachability struct {
	index map[State]int
	seen  *bitset.BitSet
}

// Contains reports whether s was reached. States unknown to the automaton
// are never reached.
func (r Reachability) Contains(s State) bool {
	i, ok := r.index[s]
	return ok && r.seen.Test(uint(i))
}

// Count is the number of reached states.
func (r Reachability) Count() int { return int(r.seen.Count()) }

// Reachable walks every defined transition from the initial state using an
// explicit stack.
func Reachable(d *DFA) Reachability {
	seen := bitset.New(uint(len(d.states)))
	r := Reachability{index: d.index, seen: seen}

	start, ok := d.index[d.initial]
	if !ok {
		return r
	}
	seen.Set(uint(start))
	stack := []int{start}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		from := d.states[i]
		for _, sym := range d.alphabet {
			to, ok := d.delta.lookup(from, sym)
			if !ok {
				continue
			}
			j := d.index[to]
			if seen.Test(uint(j)) {
				continue
			}
			seen.Set(uint(j))
			stack = append(stack, j)
		}
	}
	return r
}

// Prune drops unreachable states, the transitions touching them, and
// unreachable final states. It rewrites d in place.
func (d *DFA) Prune() {
	r := Reachable(d)
	if r.Count() == len(d.states) {
		return
	}

	states := make([]State, 0, r.Count())
	for _, s := range d.states {
		if r.Contains(s) {
			states = append(states, s)
		}
	}
	finals := make([]State, 0, len(d.finals))
	for _, s := range d.Finals() {
		if r.Contains(s) {
			finals = append(finals, s)
		}
	}
	delta := make(Table, len(states))
	for from, row := range d.delta {
		if !r.Contains(from) {
			continue
		}
		for sym, to := range row {
			if r.Contains(to) {
				delta.set(from, sym, to)
			}
		}
	}

	u.Debugf("automaton: pruned %d unreachable states", len(d.states)-len(states))
	d.reset(states, finals, delta)
}
