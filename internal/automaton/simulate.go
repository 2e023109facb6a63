package automaton

import "fmt"

// Step is one move of a run: the state it started in, the symbol read and
// where it went. Defined is false when the automaton had no transition.
type Step struct {
	From    State
	Symbol  Symbol
	To      State
	Defined bool
}

func (s Step) String() string {
	if !s.Defined {
		return fmt.Sprintf("%s --%s--> (undefined)", s.From, s.Symbol)
	}
	return fmt.Sprintf("%s --%s--> %s", s.From, s.Symbol, s.To)
}

// Result is the outcome of a run. Rejection is a normal result: either the
// run got stuck on an undefined transition or it ended in a non-final state.
type Result struct {
	Accepted bool
	// Final is the state the run stopped in.
	Final State
	// Stuck is set when an undefined transition ended the run early.
	Stuck bool
	Steps []Step
}

// Word splits input into one symbol per rune.
func Word(input string) []Symbol {
	word := make([]Symbol, 0, len(input))
	for _, r := range input {
		word = append(word, Symbol(r))
	}
	return word
}

// Run feeds word to d from its initial state and records every step.
func Run(d *DFA, word []Symbol) Result {
	res := Result{Steps: make([]Step, 0, len(word))}
	cur := d.initial
	for _, sym := range word {
		next, ok := d.Step(cur, sym)
		res.Steps = append(res.Steps, Step{From: cur, Symbol: sym, To: next, Defined: ok})
		if !ok {
			res.Final = cur
			res.Stuck = true
			return res
		}
		cur = next
	}
	res.Final = cur
	res.Accepted = d.IsFinal(cur)
	return res
}

// Accepts reports whether d accepts input, reading one symbol per rune.
func Accepts(d *DFA, input string) bool {
	return Run(d, Word(input)).Accepted
}
