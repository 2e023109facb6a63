// Package definition reads and writes the plain-text automaton format:
//
//	# even number of a
//	states q0 q1;
//	alphabet a b;
//	initial q0;
//	final q0;
//	q0 a -> q1;
//	q0 b -> q0;
//	q1 a -> q0;
//	q1 b -> q1;
//
// Labels are bare words or double-quoted strings; "" is the empty symbol.
// The words states, alphabet, initial and final are reserved at the start of
// a statement and must be quoted when used as labels there. Without an
// alphabet statement the alphabet is every symbol a transition reads.
package definition

import (
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"dfatool/internal/automaton"
)

type File struct {
	Statements []*Statement `parser:"@@*"`
}

type Statement struct {
	Decl       *Decl       `parser:"  @@"`
	Transition *Transition `parser:"| @@"`
}

// Decl is a keyword statement. An empty label list is allowed.
type Decl struct {
	Pos     lexer.Position
	Keyword string   `parser:"@('states':Ident | 'alphabet':Ident | 'initial':Ident | 'final':Ident)"`
	Labels  []*Label `parser:"@@* ';':Punct"`
}

type Label struct {
	Pos    lexer.Position
	Word   *string `parser:"  @Ident"`
	Quoted *string `parser:"| @String"`
}

type Transition struct {
	Pos  lexer.Position
	From *Label `parser:"@@"`
	Read *Label `parser:"@@"`
	To   *Label `parser:"'->':Arrow @@ ';':Punct"`
}

var defLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
	{Name: "Arrow", Pattern: `->`},
	{Name: "Punct", Pattern: `;`},
	{Name: "Ident", Pattern: `[^\s;"#]+`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parser = participle.MustBuild[File](
	participle.Lexer(defLexer),
	participle.Elide("Comment", "Whitespace"),
	participle.Unquote("String"),
)

// Parse reads a definition. name is only used in error positions.
func Parse(name, src string) (*automaton.DFA, error) {
	f, err := parser.ParseString(name, src)
	if err != nil {
		return nil, err
	}
	return f.Build()
}

// LoadFile reads the definition file at path.
func LoadFile(path string) (*automaton.DFA, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(path, string(data))
}

func (l *Label) String() string {
	switch {
	case l.Word != nil:
		return *l.Word
	case l.Quoted != nil:
		return *l.Quoted
	}
	return ""
}

func states(labels []*Label) []automaton.State {
	out := make([]automaton.State, 0, len(labels))
	for _, l := range labels {
		out = append(out, automaton.State(l.String()))
	}
	return out
}

func symbols(labels []*Label) []automaton.Symbol {
	out := make([]automaton.Symbol, 0, len(labels))
	for _, l := range labels {
		out = append(out, automaton.Symbol(l.String()))
	}
	return out
}

// Build turns the parsed statements into a DFA. Statements of the same kind
// accumulate, except initial which takes one label and may appear once.
func (f *File) Build() (*automaton.DFA, error) {
	var (
		all         []automaton.State
		alphabet    []automaton.Symbol
		finals      []automaton.State
		initial     *Decl
		transitions []*Transition
		sawAlphabet bool
	)
	for _, st := range f.Statements {
		if st.Transition != nil {
			transitions = append(transitions, st.Transition)
			continue
		}
		decl := st.Decl
		switch decl.Keyword {
		case "states":
			all = append(all, states(decl.Labels)...)
		case "alphabet":
			sawAlphabet = true
			alphabet = append(alphabet, symbols(decl.Labels)...)
		case "initial":
			if initial != nil {
				return nil, fmt.Errorf("%s: initial state already declared at %s", decl.Pos, initial.Pos)
			}
			if len(decl.Labels) != 1 {
				return nil, fmt.Errorf("%s: initial takes one state, got %d", decl.Pos, len(decl.Labels))
			}
			initial = decl
		case "final":
			finals = append(finals, states(decl.Labels)...)
		}
	}
	if !sawAlphabet {
		for _, t := range transitions {
			alphabet = append(alphabet, automaton.Symbol(t.Read.String()))
		}
	}

	var start automaton.State
	if initial != nil {
		start = automaton.State(initial.Labels[0].String())
	}
	d, err := automaton.New(all, alphabet, start, finals)
	if err != nil {
		return nil, err
	}
	for _, t := range transitions {
		from, to := automaton.State(t.From.String()), automaton.State(t.To.String())
		if err := d.SetTransition(from, automaton.Symbol(t.Read.String()), to); err != nil {
			return nil, fmt.Errorf("%s: %w", t.Pos, err)
		}
	}
	return d, nil
}
