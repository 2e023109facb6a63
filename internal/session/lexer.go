package session

import (
	"fmt"
	"strconv"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

type tokenType int

const (
	tokWord tokenType = iota
	tokString
	tokArrow
)

func (t tokenType) String() string {
	switch t {
	case tokWord:
		return "word"
	case tokString:
		return "string"
	case tokArrow:
		return "->"
	}
	return "unknown"
}

// Token is one lexeme of a command line. Literal is unquoted for strings.
type Token struct {
	Type    tokenType
	Literal string
	Column  int
}

var cmdLexer = mustLexer()

func mustLexer() *lexmachine.Lexer {
	lx := lexmachine.NewLexer()
	lx.Add([]byte(`[ \t\r\n]+`), skip)
	lx.Add([]byte(`#[^\n]*`), skip)
	lx.Add([]byte(`->`), tokAction(tokArrow))
	lx.Add([]byte(`"([^"\\\n]|\\.)*"`), stringAction)
	lx.Add([]byte(`[^ \t\r\n"#]+`), tokAction(tokWord))
	if err := lx.Compile(); err != nil {
		panic(err)
	}
	return lx
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func tokAction(typ tokenType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return Token{Type: typ, Literal: string(m.Bytes), Column: m.StartColumn}, nil
	}
}

func stringAction(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	lit, err := strconv.Unquote(string(m.Bytes))
	if err != nil {
		return nil, fmt.Errorf("column %d: bad string %s: %w", m.StartColumn, m.Bytes, err)
	}
	return Token{Type: tokString, Literal: lit, Column: m.StartColumn}, nil
}

// tokenize splits one command line into tokens.
func tokenize(line string) ([]Token, error) {
	scanner, err := cmdLexer.Scanner([]byte(line))
	if err != nil {
		return nil, err
	}
	var toks []Token
	for tok, err, eof := scanner.Next(); !eof; tok, err, eof = scanner.Next() {
		if ui, is := err.(*machines.UnconsumedInput); is {
			return nil, fmt.Errorf("%w: unexpected input at column %d", ErrSyntax, ui.FailColumn)
		} else if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
		}
		toks = append(toks, tok.(Token))
	}
	return toks, nil
}
