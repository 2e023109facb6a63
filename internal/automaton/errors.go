package automaton

import "errors"

var (
	// ErrInvalidAutomaton is returned when an initial, final or transition
	// state is not a member of the state set.
	ErrInvalidAutomaton = errors.New("automaton: invalid automaton")

	// ErrIncompatibleAlphabets is returned by the binary operations when the
	// operands do not share the same alphabet.
	ErrIncompatibleAlphabets = errors.New("automaton: incompatible alphabets")

	// ErrUnknownSymbol is returned when a transition reads a symbol outside
	// the alphabet.
	ErrUnknownSymbol = errors.New("automaton: symbol not in alphabet")

	// ErrNondeterministic is returned when a second destination is given for
	// an already defined (state, symbol) pair.
	ErrNondeterministic = errors.New("automaton: nondeterministic transition")
)
