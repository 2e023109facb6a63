package automaton

// Equivalent compares a and b structurally: same alphabet, same initial
// label, same final set and, for every state of a and every symbol, the same
// destination or the same absence of one.
//
// This is not language equivalence. Two automata accepting the same language
// under different state labels or a different (even equivalent) structure
// compare as not equivalent.
func Equivalent(a, b *DFA) (bool, error) {
	if !sameAlphabet(a, b) {
		return false, incompatible(a, b)
	}
	if a.initial != b.initial || len(a.finals) != len(b.finals) {
		return false, nil
	}
	for f := range a.finals {
		if !b.IsFinal(f) {
			return false, nil
		}
	}
	for _, s := range a.states {
		for _, sym := range a.alphabet {
			d1, ok1 := a.delta.lookup(s, sym)
			d2, ok2 := b.delta.lookup(s, sym)
			if ok1 != ok2 || d1 != d2 {
				return false, nil
			}
		}
	}
	return true, nil
}
