package definition

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dfatool/internal/automaton"
)

func TestLoadFile(t *testing.T) {
	d, err := LoadFile(filepath.Join("testdata", "even_a.dfa"))
	require.NoError(t, err)

	assert.Equal(t, []automaton.State{"q0", "q1"}, d.States())
	assert.Equal(t, []automaton.Symbol{"a", "b"}, d.Alphabet())
	assert.Equal(t, automaton.State("q0"), d.Initial())
	assert.Equal(t, []automaton.State{"q0"}, d.Finals())
	assert.Equal(t, 4, d.NumTransitions())
	assert.True(t, automaton.Accepts(d, "aab"))
}

func TestParseQuotedLabels(t *testing.T) {
	src := `
		states "start here" "final" q;
		alphabet "" x;
		initial "start here";
		final "final";
		"start here" "" -> "final";
		"final" x -> q;
	`
	d, err := Parse("quoted", src)
	require.NoError(t, err)

	assert.Equal(t, []automaton.Symbol{"", "x"}, d.Alphabet())
	to, ok := d.Step("start here", "")
	require.True(t, ok)
	assert.Equal(t, automaton.State("final"), to)
	assert.True(t, d.IsFinal("final"))
}

func TestParseInfersAlphabet(t *testing.T) {
	d, err := Parse("infer", "states p; initial p; final; p b -> p; p a -> p;")
	require.NoError(t, err)
	assert.Equal(t, []automaton.Symbol{"b", "a"}, d.Alphabet())
	assert.Empty(t, d.Finals())
}

func TestParseAccumulates(t *testing.T) {
	d, err := Parse("acc", "states p; states q; alphabet a; initial p; final p; final q;")
	require.NoError(t, err)
	assert.Equal(t, []automaton.State{"p", "q"}, d.States())
	assert.Equal(t, []automaton.State{"p", "q"}, d.Finals())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		is   error
	}{
		{name: "missing semicolon", src: "states p initial p"},
		{name: "unterminated transition", src: "states p; initial p; p a ->"},
		{name: "two initials", src: "states p q; initial p; initial q;"},
		{name: "initial takes one", src: "states p q; initial p q;"},
		{name: "no initial", src: "states p; alphabet a;", is: automaton.ErrInvalidAutomaton},
		{name: "unknown state", src: "states p; initial p; p a -> q;", is: automaton.ErrInvalidAutomaton},
		{name: "unknown symbol", src: "states p; alphabet a; initial p; p b -> p;", is: automaton.ErrUnknownSymbol},
		{name: "nondeterministic", src: "states p q; initial p; p a -> p; p a -> q;", is: automaton.ErrNondeterministic},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.name, tc.src)
			require.Error(t, err)
			if tc.is != nil {
				assert.ErrorIs(t, err, tc.is)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	d, err := LoadFile(filepath.Join("testdata", "even_a.dfa"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Format(&buf, d))
	want := `states q0 q1;
alphabet a b;
initial q0;
final q0;
q0 a -> q1;
q0 b -> q0;
q1 a -> q0;
q1 b -> q1;
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("Format mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	d, err := automaton.New(
		[]automaton.State{"a b", "final", "x;y", "->z", `q"`},
		[]automaton.Symbol{"", "#", "c"},
		"a b", []automaton.State{"final"})
	require.NoError(t, err)
	require.NoError(t, d.SetTransition("a b", "", "final"))
	require.NoError(t, d.SetTransition("final", "#", "x;y"))
	require.NoError(t, d.SetTransition("x;y", "c", "->z"))
	require.NoError(t, d.SetTransition("->z", "c", `q"`))

	var buf bytes.Buffer
	require.NoError(t, Format(&buf, d))
	back, err := Parse("roundtrip", buf.String())
	require.NoError(t, err, buf.String())

	assert.Equal(t, d.String(), back.String())
	assert.Equal(t, []automaton.Symbol{"", "#", "c"}, back.Alphabet(), "unused symbols survive")
}
