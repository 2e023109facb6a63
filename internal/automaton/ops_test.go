package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductIdentities(t *testing.T) {
	pairs := append(randomPairs(t, 25), [2]*DFA{evenA(t), aStarBPlus(t)}, [2]*DFA{aStarBPlus(t), endsInA(t)})
	for i, p := range pairs {
		a, b := p[0], p[1]
		union, err := Union(a, b)
		require.NoError(t, err)
		inter, err := Intersection(a, b)
		require.NoError(t, err)
		diff, err := Difference(a, b)
		require.NoError(t, err)

		for _, w := range words(a.Alphabet(), 6) {
			inA, inB := Accepts(a, w), Accepts(b, w)
			if got := Accepts(union, w); got != (inA || inB) {
				t.Fatalf("case %d: union on %q = %v, want %v", i, w, got, inA || inB)
			}
			if got := Accepts(inter, w); got != (inA && inB) {
				t.Fatalf("case %d: intersection on %q = %v, want %v", i, w, got, inA && inB)
			}
			if got := Accepts(diff, w); got != (inA && !inB) {
				t.Fatalf("case %d: difference on %q = %v, want %v", i, w, got, inA && !inB)
			}
		}
	}
}

func TestProductShape(t *testing.T) {
	a, b := evenA(t), aStarBPlus(t)
	inter, err := Intersection(a, b)
	require.NoError(t, err)

	assert.Equal(t, a.NumStates()*b.NumStates(), inter.NumStates())
	assert.Equal(t, Pair("q0", "s0"), inter.Initial())
	assert.Equal(t, []State{Pair("q0", "s1")}, inter.Finals())

	// s1 has no a-transition, so neither does any pair containing it.
	_, ok := inter.Step(Pair("q1", "s1"), "a")
	assert.False(t, ok)
	to, ok := inter.Step(Pair("q1", "s1"), "b")
	assert.True(t, ok)
	assert.Equal(t, Pair("q1", "s1"), to)
}

func TestProductLeavesOperandsAlone(t *testing.T) {
	a, b := evenA(t), aStarBPlus(t)
	beforeA, beforeB := a.String(), b.String()

	_, err := Union(a, b)
	require.NoError(t, err)
	_, err = Difference(a, b)
	require.NoError(t, err)

	assert.Equal(t, beforeA, a.String())
	assert.Equal(t, beforeB, b.String())
}

func TestIncompatibleAlphabets(t *testing.T) {
	a := evenA(t)
	b := build(t, "r", "a c", "r", "r", "r a r", "r c r")

	ops := map[string]func(a, b *DFA) (*DFA, error){
		"union":        Union,
		"intersection": Intersection,
		"difference":   Difference,
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			got, err := op(a, b)
			require.ErrorIs(t, err, ErrIncompatibleAlphabets)
			assert.Nil(t, got)
		})
	}

	_, err := Equivalent(a, b)
	require.ErrorIs(t, err, ErrIncompatibleAlphabets)
}

func TestAlphabetOrderDoesNotMatter(t *testing.T) {
	a := evenA(t)
	b := build(t, "r", "b a", "r", "r", "r a r", "r b r")

	_, err := Intersection(a, b)
	assert.NoError(t, err)
}

func TestPairIsInjective(t *testing.T) {
	assert.NotEqual(t, Pair("x,y", "z"), Pair("x", "y,z"))
	assert.NotEqual(t, Pair("(a", "b)"), Pair("(a,b", ")"))
	assert.Equal(t, State("(q0,s1)"), Pair("q0", "s1"))
}

func TestComplementOfEvenA(t *testing.T) {
	d := evenA(t)
	c := Complement(d)

	assert.Equal(t, d.States(), c.States(), "complete automaton needs no sink")
	assert.Equal(t, []State{"q1"}, c.Finals())
	for _, w := range words(d.Alphabet(), 6) {
		odd := 0
		for _, r := range w {
			if r == 'a' {
				odd ^= 1
			}
		}
		assert.Equal(t, odd == 1, Accepts(c, w), "word %q", w)
	}
}

func TestComplementAddsClosedSink(t *testing.T) {
	d := aStarBPlus(t)
	c := Complement(d)

	require.True(t, c.HasState(DefaultSink))
	assert.True(t, c.IsFinal(DefaultSink))
	assert.False(t, c.IsFinal("s1"))
	for _, sym := range c.Alphabet() {
		to, ok := c.Step(DefaultSink, sym)
		assert.True(t, ok)
		assert.Equal(t, DefaultSink, to)
	}
	to, _ := c.Step("s1", "a")
	assert.Equal(t, DefaultSink, to)
	assert.Equal(t, c.NumStates()*len(c.Alphabet()), c.NumTransitions())

	_, ok := d.Step("s1", "a")
	assert.False(t, ok, "operand must stay partial")
}

func TestComplementSinkLabelIsFresh(t *testing.T) {
	d := build(t, "sink dead", "a", "sink", "sink", "sink a sink")

	c := Complement(d, WithSink("dead"))
	assert.True(t, c.HasState("dead'"))
	to, _ := c.Step("dead", "a")
	assert.Equal(t, State("dead'"), to)
}

func TestComplementFlipsEveryWord(t *testing.T) {
	for i, p := range randomPairs(t, 25) {
		d := p[0]
		c := Complement(d)
		for _, w := range words(d.Alphabet(), 6) {
			if Accepts(d, w) == Accepts(c, w) {
				t.Fatalf("case %d: %q accepted by both or neither", i, w)
			}
		}
	}
}

func TestEquivalentIsStructural(t *testing.T) {
	same, err := Equivalent(evenA(t), evenA(t))
	require.NoError(t, err)
	assert.True(t, same)

	// Same language, different labels.
	renamed := build(t, "r0 r1", "a b", "r0", "r0", "r0 a r1", "r0 b r0", "r1 a r0", "r1 b r1")
	same, err = Equivalent(evenA(t), renamed)
	require.NoError(t, err)
	assert.False(t, same)

	// Same language, redundant structure.
	min := endsInA(t).Clone().Minimize()
	same, err = Equivalent(endsInA(t), min)
	require.NoError(t, err)
	assert.False(t, same)

	partial := build(t, "q0 q1", "a b", "q0", "q0", "q0 a q1", "q0 b q0", "q1 a q0")
	same, err = Equivalent(evenA(t), partial)
	require.NoError(t, err)
	assert.False(t, same)
}

func TestSimulateEvenA(t *testing.T) {
	d := evenA(t)
	assert.True(t, Accepts(d, "aab"))
	assert.False(t, Accepts(d, "ab"))
	assert.True(t, Accepts(d, ""))
	assert.False(t, Accepts(d, "abc"), "c is outside the alphabet")
}

func TestRunTrace(t *testing.T) {
	d := aStarBPlus(t)

	res := Run(d, Word("abab"))
	assert.False(t, res.Accepted)
	assert.True(t, res.Stuck)
	assert.Equal(t, State("s1"), res.Final)
	require.Len(t, res.Steps, 3)
	assert.Equal(t, Step{From: "s0", Symbol: "b", To: "s1", Defined: true}, res.Steps[1])
	assert.Equal(t, "s1 --a--> (undefined)", res.Steps[2].String())

	res = Run(d, Word("aabb"))
	assert.True(t, res.Accepted)
	assert.False(t, res.Stuck)
	assert.Len(t, res.Steps, 4)
}

func TestShortestAccepted(t *testing.T) {
	w, ok := ShortestAccepted(aStarBPlus(t))
	require.True(t, ok)
	assert.Equal(t, []Symbol{"b"}, w)

	w, ok = ShortestAccepted(evenA(t))
	require.True(t, ok)
	assert.Empty(t, w)

	diff, err := Difference(evenA(t), evenA(t))
	require.NoError(t, err)
	_, ok = ShortestAccepted(diff)
	assert.False(t, ok, "A \\ A is empty")
}
