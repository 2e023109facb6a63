package automaton

// ShortestAccepted searches breadth-first for a shortest word d accepts.
// The bool is false when d accepts nothing.
func ShortestAccepted(d *DFA) ([]Symbol, bool) {
	type node struct {
		state State
		path  []Symbol
	}
	if !d.HasState(d.initial) {
		return nil, false
	}

	visited := map[State]bool{d.initial: true}
	q := []node{{state: d.initial, path: []Symbol{}}}
	for len(q) > 0 {
		cur := q[0]
		q = q[1:]
		if d.IsFinal(cur.state) {
			return cur.path, true
		}
		for _, sym := range d.alphabet {
			next, ok := d.Step(cur.state, sym)
			if !ok || visited[next] {
				continue
			}
			visited[next] = true
			np := append(append([]Symbol{}, cur.path...), sym)
			q = append(q, node{next, np})
		}
	}
	return nil, false
}
