package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter reads validated console input and writes prompts. All menus
// share a single Prompter so buffered input is never split between
// readers.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
	eof bool
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// Done reports whether the input stream is exhausted. Menu loops bail
// out instead of reprompting forever.
func (p *Prompter) Done() bool {
	return p.eof
}

// Line prints label and returns the next input line, or "" at EOF.
func (p *Prompter) Line(label string) string {
	fmt.Fprint(p.out, label)
	if !p.in.Scan() {
		p.eof = true
		return ""
	}
	return p.in.Text()
}

// Int reprompts until the user enters a whole number.
func (p *Prompter) Int(label string) int {
	for {
		raw := strings.TrimSpace(p.Line(label))
		if p.eof {
			return 0
		}
		value, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Fprintln(p.out, "Please enter a valid number.")
			continue
		}
		return value
	}
}

// IntInRange reprompts until the user enters a number in [min, max].
func (p *Prompter) IntInRange(label string, min, max int) int {
	for {
		value := p.Int(label)
		if p.eof {
			return 0
		}
		if value < min || value > max {
			fmt.Fprintf(p.out, "Enter a number between %d and %d\n", min, max)
			continue
		}
		return value
	}
}

// Bool reprompts until the user enters true or false.
func (p *Prompter) Bool(label string) bool {
	for {
		raw := strings.TrimSpace(p.Line(label))
		if p.eof {
			return false
		}
		value, err := strconv.ParseBool(strings.ToLower(raw))
		if err != nil {
			fmt.Fprintln(p.out, "Please enter true or false.")
			continue
		}
		return value
	}
}
