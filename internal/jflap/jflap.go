// Package jflap reads and writes automata in the JFLAP .jff XML format.
//
// Only finite automata ("fa") are supported. State ids are assigned by
// enumeration order on save and discarded on load; the alphabet of a loaded
// automaton is the set of symbols its transitions read, so a symbol with no
// transition does not survive a save/load round trip.
package jflap

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"

	u "github.com/araddon/gou"

	"dfatool/internal/automaton"
)

// ErrMalformedInput is returned when a document cannot describe a DFA.
var ErrMalformedInput = errors.New("jflap: malformed input")

const (
	faType = "fa"
	// every state is drawn at the same spot
	fixedPos = "100"
)

type document struct {
	XMLName   xml.Name       `xml:"structure"`
	Type      string         `xml:"type"`
	Automaton *automatonElem `xml:"automaton"`
}

type automatonElem struct {
	States      []stateElem      `xml:"state"`
	Transitions []transitionElem `xml:"transition"`
}

type stateElem struct {
	ID      string    `xml:"id,attr"`
	Name    string    `xml:"name,attr"`
	X       string    `xml:"x"`
	Y       string    `xml:"y"`
	Initial *struct{} `xml:"initial"`
	Final   *struct{} `xml:"final"`
}

type transitionElem struct {
	From string  `xml:"from"`
	To   string  `xml:"to"`
	Read *string `xml:"read"`
}

// Encode writes d as an indented JFLAP document.
func Encode(w io.Writer, d *automaton.DFA) error {
	ids := make(map[automaton.State]string, d.NumStates())
	elem := &automatonElem{}
	for i, s := range d.States() {
		id := strconv.Itoa(i)
		ids[s] = id
		st := stateElem{ID: id, Name: string(s), X: fixedPos, Y: fixedPos}
		if s == d.Initial() {
			st.Initial = &struct{}{}
		}
		if d.IsFinal(s) {
			st.Final = &struct{}{}
		}
		elem.States = append(elem.States, st)
	}
	for _, t := range d.Transitions() {
		read := string(t.Symbol)
		elem.Transitions = append(elem.Transitions, transitionElem{
			From: ids[t.From],
			To:   ids[t.To],
			Read: &read,
		})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(document{Type: faType, Automaton: elem}); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// Decode reads a JFLAP document.
func Decode(r io.Reader) (*automaton.DFA, error) {
	var doc document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	if doc.Type != faType {
		return nil, fmt.Errorf("%w: type %q, want %q", ErrMalformedInput, doc.Type, faType)
	}
	if doc.Automaton == nil {
		return nil, fmt.Errorf("%w: no automaton element", ErrMalformedInput)
	}

	names := make(map[string]automaton.State, len(doc.Automaton.States))
	var (
		states  []automaton.State
		finals  []automaton.State
		initial automaton.State
	)
	for _, st := range doc.Automaton.States {
		if _, dup := names[st.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate state id %q", ErrMalformedInput, st.ID)
		}
		name := automaton.State(st.Name)
		names[st.ID] = name
		states = append(states, name)
		if st.Initial != nil {
			initial = name
		}
		if st.Final != nil {
			finals = append(finals, name)
		}
	}

	type edge struct {
		from, to automaton.State
		sym      automaton.Symbol
	}
	edges := make([]edge, 0, len(doc.Automaton.Transitions))
	seen := make(map[automaton.Symbol]struct{})
	var alphabet []automaton.Symbol
	for _, t := range doc.Automaton.Transitions {
		from, ok := names[t.From]
		if !ok {
			return nil, fmt.Errorf("%w: transition from unknown state id %q", ErrMalformedInput, t.From)
		}
		to, ok := names[t.To]
		if !ok {
			return nil, fmt.Errorf("%w: transition to unknown state id %q", ErrMalformedInput, t.To)
		}
		var sym automaton.Symbol
		if t.Read != nil {
			sym = automaton.Symbol(*t.Read)
		}
		if _, ok := seen[sym]; !ok {
			seen[sym] = struct{}{}
			alphabet = append(alphabet, sym)
		}
		edges = append(edges, edge{from, to, sym})
	}
	slices.Sort(alphabet)

	d, err := automaton.New(states, alphabet, initial, finals)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	for _, e := range edges {
		if err := d.SetTransition(e.from, e.sym, e.to); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
		}
	}
	return d, nil
}

// Load reads the JFLAP file at path.
func Load(path string) (*automaton.DFA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	u.Infof("loaded %s: %d states, %d transitions", path, d.NumStates(), d.NumTransitions())
	return d, nil
}

// Save writes d to path, replacing any existing file.
func Save(path string, d *automaton.DFA) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, d); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	u.Infof("saved %s: %d states, %d transitions", path, d.NumStates(), d.NumTransitions())
	return nil
}
