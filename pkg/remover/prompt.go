package remover

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Prompter asks the user whether path may be removed.
type Prompter interface {
	Confirm(path string) (bool, error)
}

type flusher interface {
	Flush() error
}

// Prompt is a line-based Y/n prompt over an arbitrary reader and writer.
type Prompt struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompt(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Confirm accepts exactly "y\n" or "Y\n". Any other line, including one
// ending in "\r\n", declines.
func (p *Prompt) Confirm(path string) (bool, error) {
	if _, err := fmt.Fprintf(p.out, "remove directory: '%s'? (Y/n): ", path); err != nil {
		return false, fmt.Errorf("failed to write prompt: %w", err)
	}
	if f, ok := p.out.(flusher); ok {
		if err := f.Flush(); err != nil {
			return false, fmt.Errorf("failed to flush prompt: %w", err)
		}
	}

	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}

	return line == "y\n" || line == "Y\n", nil
}
