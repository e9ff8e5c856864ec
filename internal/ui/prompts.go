package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// Prompter reads interactive input. Every prompt blocks until the user
// answers, matching the modal prompts of the original interface.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer

	// passwordFD is the file descriptor used for hidden password entry; it is
	// negative when stdin is not a terminal and passwords fall back to plain
	// line input.
	passwordFD int
}

// NewPrompter constructs a prompter over the given reader and writer.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	p := &Prompter{in: bufio.NewReader(in), out: out, passwordFD: -1}
	if file, ok := in.(*os.File); ok {
		fd := int(file.Fd())
		if term.IsTerminal(fd) {
			p.passwordFD = fd
		}
	}
	return p
}

// Line asks for one line of input and returns it trimmed.
func (p *Prompter) Line(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// LineDefault asks for one line of input, returning fallback when the answer
// is empty.
func (p *Prompter) LineDefault(label, fallback string) (string, error) {
	display := label
	if fallback != "" {
		display = fmt.Sprintf("%s [%s]", label, fallback)
	}
	value, err := p.Line(display)
	if err != nil {
		return "", err
	}
	if value == "" {
		return fallback, nil
	}
	return value, nil
}

// Password asks for a password without echoing when stdin is a terminal.
func (p *Prompter) Password(label string) (string, error) {
	if p.passwordFD >= 0 {
		fmt.Fprintf(p.out, "%s: ", label)
		raw, err := term.ReadPassword(p.passwordFD)
		fmt.Fprintln(p.out)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(raw)), nil
	}
	return p.Line(label)
}

// PositiveInt asks for a positive integer, re-prompting on bad input up to
// three attempts.
func (p *Prompter) PositiveInt(label string) (int, error) {
	for attempt := 0; attempt < 3; attempt++ {
		value, err := p.Line(label)
		if err != nil {
			return 0, err
		}
		parsed, err := strconv.Atoi(value)
		if err == nil && parsed > 0 {
			return parsed, nil
		}
		fmt.Fprintln(p.out, "Enter a positive whole number.")
	}
	return 0, fmt.Errorf("no valid number entered")
}

// Confirm asks a yes/no question and returns true only for an explicit yes.
func (p *Prompter) Confirm(label string) (bool, error) {
	value, err := p.Line(label + " (y/N)")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(value) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
