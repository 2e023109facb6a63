// Package render draws automata for people: transition tables for the
// terminal and Graphviz graphs for files.
package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"dfatool/internal/automaton"
)

const (
	undefinedCell = "-"
	epsilon       = "ε"
)

func symbolLabel(sym automaton.Symbol) string {
	if sym == "" {
		return epsilon
	}
	return string(sym)
}

// stateLabel marks the initial state with -> and final states with *.
func stateLabel(d *automaton.DFA, s automaton.State) string {
	label := string(s)
	if d.IsFinal(s) {
		label = "*" + label
	}
	if s == d.Initial() {
		label = "->" + label
	}
	return label
}

// Table writes the transition table of d, one row per state and one column
// per symbol. Undefined transitions show as "-".
func Table(w io.Writer, d *automaton.DFA) error {
	alphabet := d.Alphabet()
	header := make([]string, 0, len(alphabet)+1)
	header = append(header, "state")
	for _, sym := range alphabet {
		header = append(header, symbolLabel(sym))
	}

	table := tablewriter.NewWriter(w)
	table.Header(header)
	for _, s := range d.States() {
		row := make([]string, 0, len(header))
		row = append(row, stateLabel(d, s))
		for _, sym := range alphabet {
			cell := undefinedCell
			if to, ok := d.Step(s, sym); ok {
				cell = string(to)
			}
			row = append(row, cell)
		}
		if err := table.Append(row); err != nil {
			return fmt.Errorf("render: %w", err)
		}
	}
	return table.Render()
}

// Trace writes the steps of a run, followed by the verdict.
func Trace(w io.Writer, res automaton.Result) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"#", "from", "symbol", "to"})
	for i, st := range res.Steps {
		to := undefinedCell
		if st.Defined {
			to = string(st.To)
		}
		if err := table.Append([]string{strconv.Itoa(i + 1), string(st.From), symbolLabel(st.Symbol), to}); err != nil {
			return fmt.Errorf("render: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, Verdict(res))
	return err
}

// Verdict is a one-line summary of a run.
func Verdict(res automaton.Result) string {
	switch {
	case res.Accepted:
		return fmt.Sprintf("accepted (stopped in %s)", res.Final)
	case res.Stuck:
		return fmt.Sprintf("rejected (no transition out of %s)", res.Final)
	default:
		return fmt.Sprintf("rejected (stopped in non-final %s)", res.Final)
	}
}
