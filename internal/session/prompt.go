package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/manifoldco/promptui"
)

// Prompter asks for one line of input. It returns io.EOF when input ends.
type Prompter interface {
	Ask(label string) (string, error)
}

// TerminalPrompter prompts with promptui.
type TerminalPrompter struct{}

var bareTemplates = &promptui.PromptTemplates{
	Prompt:  "{{ . }}",
	Valid:   "{{ . }}",
	Invalid: "{{ . }}",
	Success: "{{ . }}",
}

func (TerminalPrompter) Ask(label string) (string, error) {
	p := promptui.Prompt{Label: label, Templates: bareTemplates}
	line, err := p.Run()
	if errors.Is(err, promptui.ErrEOF) || errors.Is(err, promptui.ErrInterrupt) {
		return "", io.EOF
	}
	return line, err
}

// LinePrompter reads answers line by line from a reader, echoing labels to
// out when it is not nil.
type LinePrompter struct {
	sc  *bufio.Scanner
	out io.Writer
}

func NewLinePrompter(r io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{sc: bufio.NewScanner(r), out: out}
}

func (p *LinePrompter) Ask(label string) (string, error) {
	if p.out != nil {
		fmt.Fprint(p.out, label)
	}
	if !p.sc.Scan() {
		if err := p.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return p.sc.Text(), nil
}
