package render

import (
	"io"
	"os"
	"strings"

	u "github.com/araddon/gou"
	"github.com/emicklei/dot"

	"dfatool/internal/automaton"
)

// Dot builds a left-to-right Graphviz graph of d. Final states are double
// circles, an invisible point marks the initial state, and parallel
// transitions share one edge labelled with every symbol they read.
func Dot(d *automaton.DFA) *dot.Graph {
	g := dot.NewGraph(dot.Directed)
	g.Attr("rankdir", "LR")

	nodes := make(map[automaton.State]dot.Node, d.NumStates())
	for _, s := range d.States() {
		n := g.Node("s:" + string(s)).Label(string(s)).Attr("shape", "circle")
		if d.IsFinal(s) {
			n.Attr("shape", "doublecircle")
		}
		nodes[s] = n
	}

	// "s:" prefixes keep state ids away from this one.
	start := g.Node("start").Label("").Attr("shape", "point")
	g.Edge(start, nodes[d.Initial()])

	type arc struct{ from, to automaton.State }
	var order []arc
	labels := make(map[arc][]string)
	for _, t := range d.Transitions() {
		k := arc{t.From, t.To}
		if _, ok := labels[k]; !ok {
			order = append(order, k)
		}
		labels[k] = append(labels[k], symbolLabel(t.Symbol))
	}
	for _, k := range order {
		g.Edge(nodes[k.from], nodes[k.to], strings.Join(labels[k], ","))
	}
	return g
}

// WriteDot writes the Graphviz source of d to w.
func WriteDot(w io.Writer, d *automaton.DFA) error {
	_, err := io.WriteString(w, Dot(d).String())
	return err
}

// SaveDot writes the Graphviz source of d to path.
func SaveDot(path string, d *automaton.DFA) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteDot(f, d); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	u.Infof("wrote graph of %d states to %s", d.NumStates(), path)
	return nil
}
