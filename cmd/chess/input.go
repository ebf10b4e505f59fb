package main

import (
	"bufio"
	"io"
	"os"

	"github.com/chzyer/readline"
	"golang.org/x/term"
)

// lineReader yields one line of user input at a time. Readline returns
// io.EOF when input is exhausted.
type lineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
	Close() error
}

// newLineReader uses an editing line reader with history on a terminal and a
// plain scanner when input is piped.
func newLineReader(in *os.File, out io.Writer) (lineReader, error) {
	if !term.IsTerminal(int(in.Fd())) {
		return &scannerReader{scanner: bufio.NewScanner(in)}, nil
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "chess> ",
		HistoryFile:     ".chess_history",
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
		Stdout:          out,
	})
	if err != nil {
		return nil, err
	}
	return rl, nil
}

// scannerReader reads piped input without prompting.
type scannerReader struct {
	scanner *bufio.Scanner
}

func (s *scannerReader) Readline() (string, error) {
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.scanner.Text(), nil
}

func (s *scannerReader) SetPrompt(string) {}

func (s *scannerReader) Close() error { return nil }
