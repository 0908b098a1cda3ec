package broadcast

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// InputSource supplies operator answers to the runner's prompts, so the same
// flow can be driven interactively or from a script.
type InputSource interface {
	// Line prints the prompt and reads a single trimmed line.
	Line(prompt string) (string, error)

	// Confirm asks a yes/no question. Only "y" (any case) counts as yes.
	Confirm(prompt string) (bool, error)

	// Multiline prints the prompt and reads lines until one equal to the
	// terminator, returning the joined body without the terminator.
	Multiline(prompt, terminator string) (string, error)
}

// TerminalInput reads operator answers from an interactive stream.
type TerminalInput struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewTerminalInput creates an InputSource over the given streams,
// typically os.Stdin and os.Stdout.
func NewTerminalInput(in io.Reader, out io.Writer) *TerminalInput {
	return &TerminalInput{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Line implements InputSource.
func (t *TerminalInput) Line(prompt string) (string, error) {
	fmt.Fprint(t.out, prompt)
	line, err := t.scan()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Confirm implements InputSource.
func (t *TerminalInput) Confirm(prompt string) (bool, error) {
	answer, err := t.Line(prompt)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "y"), nil
}

// Multiline implements InputSource.
func (t *TerminalInput) Multiline(prompt, terminator string) (string, error) {
	fmt.Fprintln(t.out, prompt)

	var lines []string
	for {
		line, err := t.scan()
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(line) == terminator {
			break
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}

func (t *TerminalInput) scan() (string, error) {
	if !t.scanner.Scan() {
		if err := t.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return t.scanner.Text(), nil
}

// ScriptedInput replays a fixed list of answers. It backs scripted runs and
// tests; Multiline consumes answers until the terminator like a terminal
// would.
type ScriptedInput struct {
	answers []string
	pos     int
}

// NewScriptedInput creates an InputSource replaying answers in order.
func NewScriptedInput(answers ...string) *ScriptedInput {
	return &ScriptedInput{answers: answers}
}

// Line implements InputSource.
func (s *ScriptedInput) Line(string) (string, error) {
	line, err := s.next()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Confirm implements InputSource.
func (s *ScriptedInput) Confirm(string) (bool, error) {
	answer, err := s.Line("")
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "y"), nil
}

// Multiline implements InputSource.
func (s *ScriptedInput) Multiline(_, terminator string) (string, error) {
	var lines []string
	for {
		line, err := s.next()
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(line) == terminator {
			break
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}

func (s *ScriptedInput) next() (string, error) {
	if s.pos >= len(s.answers) {
		return "", io.EOF
	}
	line := s.answers[s.pos]
	s.pos++
	return line, nil
}
