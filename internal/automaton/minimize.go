package automaton

import (
	"cmp"
	"slices"

	u "github.com/araddon/gou"
	"github.com/bits-and-blooms/bitset"
)

// pairTable is the distinguishability table, one bit per unordered pair of
// state indexes.
type pairTable struct {
	n     uint
	marks *bitset.BitSet
}

func newPairTable(n int) pairTable {
	return pairTable{n: uint(n), marks: bitset.New(uint(n * n))}
}

func (p pairTable) key(i, j int) uint {
	if i < j {
		i, j = j, i
	}
	return uint(i)*p.n + uint(j)
}

func (p pairTable) marked(i, j int) bool { return p.marks.Test(p.key(i, j)) }

func (p pairTable) mark(i, j int) { p.marks.Set(p.key(i, j)) }

// distinguish fills the table to its fixed point. Pairs left unmarked are
// equivalent.
func distinguish(d *DFA) pairTable {
	n := len(d.states)
	t := newPairTable(n)
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			if d.IsFinal(d.states[i]) != d.IsFinal(d.states[j]) {
				t.mark(i, j)
			}
		}
	}

	passes := 0
	for changed := true; changed; passes++ {
		changed = false
		for i := 1; i < n; i++ {
			for j := 0; j < i; j++ {
				if t.marked(i, j) || !d.separates(t, d.states[i], d.states[j]) {
					continue
				}
				t.mark(i, j)
				changed = true
			}
		}
	}
	u.Debugf("automaton: distinguishability table stable after %d passes", passes)
	return t
}

// separates reports whether some symbol tells e1 and e2 apart given the
// current table. A transition defined on only one side counts.
func (d *DFA) separates(t pairTable, e1, e2 State) bool {
	for _, sym := range d.alphabet {
		d1, ok1 := d.delta.lookup(e1, sym)
		d2, ok2 := d.delta.lookup(e2, sym)
		switch {
		case ok1 != ok2:
			return true
		case !ok1 || d1 == d2:
			continue
		case t.marked(d.index[d1], d.index[d2]):
			return true
		}
	}
	return false
}

// EquivalentPairs returns every pair of states the table-filling algorithm
// cannot distinguish, each pair ordered by label and the list sorted. d is
// neither pruned nor modified.
func EquivalentPairs(d *DFA) [][2]State {
	t := distinguish(d)
	var pairs [][2]State
	for i := 1; i < len(d.states); i++ {
		for j := 0; j < i; j++ {
			if t.marked(i, j) {
				continue
			}
			a, b := d.states[i], d.states[j]
			if b < a {
				a, b = b, a
			}
			pairs = append(pairs, [2]State{a, b})
		}
	}
	slices.SortFunc(pairs, func(x, y [2]State) int {
		if c := cmp.Compare(x[0], y[0]); c != 0 {
			return c
		}
		return cmp.Compare(x[1], y[1])
	})
	return pairs
}

// Minimize prunes d and merges every class of equivalent states into its
// smallest label. It rewrites d in place and returns it.
func (d *DFA) Minimize() *DFA {
	before := len(d.states)
	d.Prune()
	t := distinguish(d)

	rep := make(map[State]State, len(d.states))
	for i, s := range d.states {
		r := s
		for j, o := range d.states {
			if i != j && !t.marked(i, j) && o < r {
				r = o
			}
		}
		rep[s] = r
	}

	states := make([]State, 0, len(d.states))
	for _, s := range d.states {
		if rep[s] == s {
			states = append(states, s)
		}
	}
	finals := make([]State, 0, len(d.finals))
	for _, f := range d.Finals() {
		finals = append(finals, rep[f])
	}
	delta := make(Table, len(states))
	for from, row := range d.delta {
		for sym, to := range row {
			delta.set(rep[from], sym, rep[to])
		}
	}

	d.initial = rep[d.initial]
	d.reset(states, finals, delta)
	u.Debugf("automaton: minimized %d -> %d states", before, len(d.states))
	return d
}
