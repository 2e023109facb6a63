// Package session is the command interpreter around the automaton engine.
// A Session owns a Workspace of named slots and runs one command per line:
//
//	load a data/even.jff
//	complement a -> b
//	union a b
//	run aux "abba"
package session

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	u "github.com/araddon/gou"

	"dfatool/internal/automaton"
	"dfatool/internal/config"
	"dfatool/internal/definition"
	"dfatool/internal/jflap"
)

// Session runs commands against a workspace.
type Session struct {
	ws       *Workspace
	cfg      *config.Config
	out      io.Writer
	prompter Prompter
}

// New creates a session writing to out. p answers the build command's
// questions and, in Run, supplies command lines.
func New(cfg *config.Config, out io.Writer, p Prompter) *Session {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Session{ws: NewWorkspace(), cfg: cfg, out: out, prompter: p}
}

func (s *Session) Workspace() *Workspace { return s.ws }

// Exec runs one command line. Blank lines and comments do nothing. It
// returns ErrQuit for quit.
func (s *Session) Exec(line string) error {
	cmd, err := parseCommand(line)
	if err != nil || cmd == nil {
		return err
	}
	h, ok := commands[cmd.Name]
	if !ok {
		return fmt.Errorf("%w: %q (try help)", ErrUnknownCommand, cmd.Name)
	}
	if len(cmd.Args) != len(h.args) || (cmd.Dest != "" && !h.dest) {
		return fmt.Errorf("%w: usage: %s", ErrSyntax, h.usage(cmd.Name))
	}
	u.Debugf("exec %s %q dest=%q", cmd.Name, cmd.Args, cmd.Dest)
	return h.run(s, cmd)
}

// Run reads command lines from the prompter until quit or end of input.
// Command errors are reported and the loop goes on.
func (s *Session) Run() error { return s.loop(false) }

// RunStrict is Run for scripts: the first failing command ends the session
// and its error is returned.
func (s *Session) RunStrict() error { return s.loop(true) }

func (s *Session) loop(strict bool) error {
	for {
		line, err := s.prompter.Ask(s.cfg.Prompt)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		err = s.Exec(line)
		switch {
		case errors.Is(err, ErrQuit):
			return nil
		case err != nil && strict:
			return fmt.Errorf("%q: %w", strings.TrimSpace(line), err)
		case err != nil:
			u.Warnf("%s: %v", strings.TrimSpace(line), err)
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
	}
}

func isJFLAP(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jff", ".xml":
		return true
	}
	return false
}

// LoadFile reads a JFLAP (.jff, .xml) or definition file, chosen by
// extension.
func LoadFile(path string) (*automaton.DFA, error) {
	if isJFLAP(path) {
		return jflap.Load(path)
	}
	return definition.LoadFile(path)
}

// outputPath resolves a relative path under the data directory and makes
// sure its directory exists.
func (s *Session) outputPath(path string) (string, error) {
	if !filepath.IsAbs(path) && s.cfg.DataDir != "" {
		path = filepath.Join(s.cfg.DataDir, path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	return path, nil
}

func (s *Session) saveFile(path string, d *automaton.DFA) (string, error) {
	path, err := s.outputPath(path)
	if err != nil {
		return "", err
	}
	if isJFLAP(path) {
		return path, jflap.Save(path, d)
	}
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := definition.Format(f, d); err != nil {
		f.Close()
		return "", err
	}
	return path, f.Close()
}

func (s *Session) sinkOption() automaton.SinkOption {
	if s.cfg.SinkLabel == "" {
		return automaton.WithSink(automaton.DefaultSink)
	}
	return automaton.WithSink(automaton.State(s.cfg.SinkLabel))
}
