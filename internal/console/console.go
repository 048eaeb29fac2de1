// Package console implements the line-oriented channel the menu talks through.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rotisserie/eris"
)

// ErrInputClosed is returned once the input has no more lines.
var ErrInputClosed = eris.New("input closed")

// Console reads answers line by line and writes prompts and messages.
type Console struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// New creates a console reading from in and writing to out
func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// ReadLine returns the next line without its line terminator.
func (c *Console) ReadLine() (string, error) {
	if c.scanner.Scan() {
		return strings.TrimSuffix(c.scanner.Text(), "\r"), nil
	}
	if err := c.scanner.Err(); err != nil {
		return "", eris.Wrap(err, "failed to read input")
	}
	return "", ErrInputClosed
}

// Prompt writes the label without a trailing newline and reads the answer.
func (c *Console) Prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)
	return c.ReadLine()
}

// Println writes the operands followed by a newline
func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

// Printf writes a formatted message
func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

// Writer exposes the output side for components that render whole blocks.
func (c *Console) Writer() io.Writer {
	return c.out
}
