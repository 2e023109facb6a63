package session

import (
	"fmt"
	"slices"
	"strings"

	u "github.com/araddon/gou"

	"dfatool/internal/automaton"
	"dfatool/internal/definition"
	"dfatool/internal/render"
)

// Command is one parsed command line. Dest is set when the line ends in
// "-> SLOT".
type Command struct {
	Name string
	Args []string
	Dest string
}

func parseCommand(line string) (*Command, error) {
	toks, err := tokenize(line)
	if err != nil {
		return nil, err
	}
	if len(toks) == 0 {
		return nil, nil
	}
	if toks[0].Type != tokWord {
		return nil, fmt.Errorf("%w: a command starts with its name, got %s", ErrSyntax, toks[0].Type)
	}
	cmd := &Command{Name: strings.ToLower(toks[0].Literal)}
	rest := toks[1:]
	for i, t := range rest {
		if t.Type != tokArrow {
			cmd.Args = append(cmd.Args, t.Literal)
			continue
		}
		if i != len(rest)-2 || rest[i+1].Type == tokArrow || rest[i+1].Literal == "" {
			return nil, fmt.Errorf("%w: -> must be followed by exactly one slot at the end", ErrSyntax)
		}
		cmd.Dest = rest[i+1].Literal
		break
	}
	return cmd, nil
}

type handler struct {
	args []string
	dest bool
	help string
	run  func(s *Session, c *Command) error
}

func (h handler) usage(name string) string {
	parts := append([]string{name}, h.args...)
	if h.dest {
		parts = append(parts, "[-> DST]")
	}
	return strings.Join(parts, " ")
}

var commands map[string]handler

func init() {
	commands = map[string]handler{
		"build":      {args: []string{"SLOT"}, help: "answer prompts to define an automaton", run: (*Session).cmdBuild},
		"define":     {args: []string{"SLOT", `"TEXT"`}, help: "parse an inline definition", run: (*Session).cmdDefine},
		"load":       {args: []string{"SLOT", "PATH"}, help: "read a .jff/.xml or definition file", run: (*Session).cmdLoad},
		"save":       {args: []string{"SLOT", "PATH"}, help: "write a .jff/.xml or definition file", run: (*Session).cmdSave},
		"show":       {args: []string{"SLOT"}, help: "print the transition table", run: (*Session).cmdShow},
		"slots":      {help: "list slots", run: (*Session).cmdSlots},
		"prune":      {args: []string{"SLOT"}, help: "remove unreachable states", run: (*Session).cmdPrune},
		"pairs":      {args: []string{"SLOT"}, help: "list indistinguishable state pairs", run: (*Session).cmdPairs},
		"minimize":   {args: []string{"SLOT"}, dest: true, help: "merge indistinguishable states (in place without ->)", run: (*Session).cmdMinimize},
		"equiv":      {args: []string{"SLOT", "SLOT"}, help: "compare two automata structurally", run: (*Session).cmdEquiv},
		"complement": {args: []string{"SLOT"}, dest: true, help: "accept exactly the rejected words (default -> aux)", run: (*Session).cmdComplement},
		"union":      {args: []string{"SLOT", "SLOT"}, dest: true, help: "product automaton for A or B (default -> aux)", run: binary(automaton.Union)},
		"intersect":  {args: []string{"SLOT", "SLOT"}, dest: true, help: "product automaton for A and B (default -> aux)", run: binary(automaton.Intersection)},
		"diff":       {args: []string{"SLOT", "SLOT"}, dest: true, help: "product automaton for A and not B (default -> aux)", run: binary(automaton.Difference)},
		"run":        {args: []string{"SLOT", `"INPUT"`}, help: "simulate the automaton on a word", run: (*Session).cmdRun},
		"witness":    {args: []string{"SLOT"}, help: "print a shortest accepted word", run: (*Session).cmdWitness},
		"dot":        {args: []string{"SLOT", "PATH"}, help: "write a Graphviz graph", run: (*Session).cmdDot},
		"help":       {help: "list commands", run: (*Session).cmdHelp},
		"quit":       {help: "end the session", run: func(*Session, *Command) error { return ErrQuit }},
	}
	commands["exit"] = commands["quit"]
}

// store puts d into dest and reports its size.
func (s *Session) store(dest string, d *automaton.DFA) {
	s.ws.Set(dest, d)
	fmt.Fprintf(s.out, "%s: %d states, %d transitions\n", dest, d.NumStates(), d.NumTransitions())
}

func destOr(c *Command, fallback string) string {
	if c.Dest != "" {
		return c.Dest
	}
	return fallback
}

func (s *Session) cmdBuild(c *Command) error {
	d, err := Build(s.prompter, s.out)
	if err != nil {
		return err
	}
	s.store(c.Args[0], d)
	return nil
}

func (s *Session) cmdDefine(c *Command) error {
	d, err := definition.Parse(c.Args[0], c.Args[1])
	if err != nil {
		return err
	}
	s.store(c.Args[0], d)
	return nil
}

func (s *Session) cmdLoad(c *Command) error {
	d, err := LoadFile(c.Args[1])
	if err != nil {
		return err
	}
	s.store(c.Args[0], d)
	return nil
}

func (s *Session) cmdSave(c *Command) error {
	d, err := s.ws.Get(c.Args[0])
	if err != nil {
		return err
	}
	path, err := s.saveFile(c.Args[1], d)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "saved %s to %s\n", c.Args[0], path)
	return nil
}

func (s *Session) cmdShow(c *Command) error {
	d, err := s.ws.Get(c.Args[0])
	if err != nil {
		return err
	}
	return render.Table(s.out, d)
}

func (s *Session) cmdSlots(*Command) error {
	fmt.Fprint(s.out, s.ws.String())
	return nil
}

func (s *Session) cmdPrune(c *Command) error {
	d, err := s.ws.Get(c.Args[0])
	if err != nil {
		return err
	}
	before := d.NumStates()
	d.Prune()
	fmt.Fprintf(s.out, "removed %d unreachable states\n", before-d.NumStates())
	return nil
}

func (s *Session) cmdPairs(c *Command) error {
	d, err := s.ws.Get(c.Args[0])
	if err != nil {
		return err
	}
	pairs := automaton.EquivalentPairs(d)
	if len(pairs) == 0 {
		fmt.Fprintln(s.out, "no equivalent pairs")
		return nil
	}
	for _, p := range pairs {
		fmt.Fprintf(s.out, "%s ≡ %s\n", p[0], p[1])
	}
	return nil
}

func (s *Session) cmdMinimize(c *Command) error {
	d, err := s.ws.Get(c.Args[0])
	if err != nil {
		return err
	}
	if c.Dest != "" {
		d = d.Clone()
	}
	before := d.NumStates()
	d.Minimize()
	u.Debugf("minimize %s: %d -> %d states", c.Args[0], before, d.NumStates())
	s.store(destOr(c, c.Args[0]), d)
	return nil
}

func (s *Session) cmdEquiv(c *Command) error {
	a, err := s.ws.Get(c.Args[0])
	if err != nil {
		return err
	}
	b, err := s.ws.Get(c.Args[1])
	if err != nil {
		return err
	}
	same, err := automaton.Equivalent(a, b)
	if err != nil {
		return err
	}
	if same {
		fmt.Fprintln(s.out, "equivalent")
	} else {
		fmt.Fprintln(s.out, "not equivalent")
	}
	return nil
}

func (s *Session) cmdComplement(c *Command) error {
	d, err := s.ws.Get(c.Args[0])
	if err != nil {
		return err
	}
	s.store(destOr(c, SlotAux), automaton.Complement(d, s.sinkOption()))
	return nil
}

func binary(op func(a, b *automaton.DFA) (*automaton.DFA, error)) func(*Session, *Command) error {
	return func(s *Session, c *Command) error {
		a, err := s.ws.Get(c.Args[0])
		if err != nil {
			return err
		}
		b, err := s.ws.Get(c.Args[1])
		if err != nil {
			return err
		}
		d, err := op(a, b)
		if err != nil {
			return err
		}
		s.store(destOr(c, SlotAux), d)
		return nil
	}
}

func (s *Session) cmdRun(c *Command) error {
	d, err := s.ws.Get(c.Args[0])
	if err != nil {
		return err
	}
	res := automaton.Run(d, automaton.Word(c.Args[1]))
	if s.cfg.Trace {
		return render.Trace(s.out, res)
	}
	fmt.Fprintln(s.out, render.Verdict(res))
	return nil
}

func (s *Session) cmdWitness(c *Command) error {
	d, err := s.ws.Get(c.Args[0])
	if err != nil {
		return err
	}
	word, ok := automaton.ShortestAccepted(d)
	if !ok {
		fmt.Fprintln(s.out, "accepts nothing")
		return nil
	}
	var b strings.Builder
	for _, sym := range word {
		b.WriteString(string(sym))
	}
	fmt.Fprintf(s.out, "shortest accepted word: %q\n", b.String())
	return nil
}

func (s *Session) cmdDot(c *Command) error {
	d, err := s.ws.Get(c.Args[0])
	if err != nil {
		return err
	}
	path, err := s.outputPath(c.Args[1])
	if err != nil {
		return err
	}
	if err := render.SaveDot(path, d); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "wrote %s\n", path)
	return nil
}

func (s *Session) cmdHelp(*Command) error {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		h := commands[name]
		fmt.Fprintf(s.out, "  %-32s %s\n", h.usage(name), h.help)
	}
	return nil
}
