package session

import (
	"fmt"
	"strings"

	"dfatool/internal/automaton"
)

// Default slot names. a and b are the usual operands and aux receives
// results.
const (
	SlotA   = "a"
	SlotB   = "b"
	SlotAux = "aux"
)

// Workspace holds the automata of a session by slot name.
type Workspace struct {
	slots map[string]*automaton.DFA
	order []string
}

func NewWorkspace() *Workspace {
	w := &Workspace{slots: make(map[string]*automaton.DFA)}
	for _, name := range []string{SlotA, SlotB, SlotAux} {
		w.declare(name)
	}
	return w
}

func (w *Workspace) declare(name string) {
	if _, ok := w.slots[name]; !ok {
		w.slots[name] = nil
		w.order = append(w.order, name)
	}
}

// Get returns the automaton in slot name, or ErrEmptySlot.
func (w *Workspace) Get(name string) (*automaton.DFA, error) {
	d := w.slots[name]
	if d == nil {
		return nil, fmt.Errorf("%w: %s", ErrEmptySlot, name)
	}
	return d, nil
}

// Set stores d in slot name, declaring it if needed.
func (w *Workspace) Set(name string, d *automaton.DFA) {
	w.declare(name)
	w.slots[name] = d
}

// Names lists slots in declaration order.
func (w *Workspace) Names() []string {
	return append([]string(nil), w.order...)
}

func (w *Workspace) String() string {
	var b strings.Builder
	for _, name := range w.order {
		d := w.slots[name]
		if d == nil {
			fmt.Fprintf(&b, "%-6s (empty)\n", name)
			continue
		}
		fmt.Fprintf(&b, "%-6s %d states, %d symbols, %d transitions\n",
			name, d.NumStates(), len(d.Alphabet()), d.NumTransitions())
	}
	return b.String()
}
