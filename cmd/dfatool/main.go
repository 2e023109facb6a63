package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	u "github.com/araddon/gou"

	"dfatool/internal/config"
	"dfatool/internal/session"
)

type commandList []string

func (c *commandList) String() string { return fmt.Sprint(*c) }

func (c *commandList) Set(v string) error {
	*c = append(*c, v)
	return nil
}

func main() {
	var (
		configFile string
		logLevel   string
		commands   commandList
	)
	flag.StringVar(&configFile, "config", "", "confl config file (default ./"+config.DefaultFile+" if present)")
	flag.StringVar(&logLevel, "loglevel", "", "log level [debug,info,warn,error], overrides the config")
	flag.Var(&commands, "e", "run one command and exit (repeatable)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-config FILE] [-loglevel LEVEL] [-e CMD]... [SCRIPT]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	u.SetupLogging(cfg.LogLevel)
	u.SetColorIfTerminal()

	if err := run(cfg, commands, flag.Args()); err != nil {
		u.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, commands []string, args []string) error {
	var prompter session.Prompter = session.NewLinePrompter(os.Stdin, os.Stdout)
	if cfg.Interactive {
		prompter = session.TerminalPrompter{}
	}

	switch {
	case len(args) > 1:
		flag.Usage()
		return errors.New("at most one script file")
	case len(args) == 1:
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		// build questions are answered by the script's following lines
		return runScript(session.New(cfg, os.Stdout, session.NewLinePrompter(f, nil)), f.Name())
	case len(commands) > 0:
		s := session.New(cfg, os.Stdout, prompter)
		for _, line := range commands {
			if err := s.Exec(line); err != nil && !errors.Is(err, session.ErrQuit) {
				return fmt.Errorf("%s: %w", line, err)
			}
		}
		return nil
	}

	fmt.Println("DFA workbench. Type help for commands, quit to leave.")
	return session.New(cfg, os.Stdout, prompter).Run()
}

// runScript executes the script line by line and stops at the first error.
func runScript(s *session.Session, name string) error {
	u.Infof("running %s", name)
	return s.RunStrict()
}
