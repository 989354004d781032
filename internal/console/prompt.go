package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/Shayan-Shome/Bus-Fleet-Maintenance-Tracker/core/model"
)

// Prompter reads validated values from the operator, re-prompting until
// the input parses. Only I/O errors (a closed stdin) are returned to the
// caller; validation failures never escape the loop.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter wraps the given streams.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Line prints the prompt and reads one line without its trailing newline.
func (p *Prompter) Line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Int prompts until a whole number within [min, max] is entered.
func (p *Prompter) Int(prompt string, min, max int) (int, error) {
	for {
		line, err := p.Line(prompt)
		if err != nil {
			return 0, err
		}
		v, verr := ParseInt(line, min, max)
		if verr != nil {
			fmt.Fprintln(p.out, Bad(verr.Error()))
			continue
		}
		return v, nil
	}
}

// Float prompts until a number within [min, max] is entered.
func (p *Prompter) Float(prompt string, min, max float64) (float64, error) {
	for {
		line, err := p.Line(prompt)
		if err != nil {
			return 0, err
		}
		v, verr := ParseFloat(line, min, max)
		if verr != nil {
			fmt.Fprintln(p.out, Bad(verr.Error()))
			continue
		}
		return v, nil
	}
}

// Date prompts until a valid dd/mm/yyyy date is entered.
func (p *Prompter) Date(prompt string) (model.Date, error) {
	for {
		line, err := p.Line(prompt)
		if err != nil {
			return model.Date{}, err
		}
		d, verr := ParseDate(line)
		if verr != nil {
			fmt.Fprintln(p.out, Bad(verr.Error()))
			continue
		}
		return d, nil
	}
}

// Name prompts until an acceptable driver name is entered.
func (p *Prompter) Name(prompt string) (string, error) {
	for {
		line, err := p.Line(prompt)
		if err != nil {
			return "", err
		}
		name, verr := ValidateName(line)
		if verr != nil {
			fmt.Fprintln(p.out, Bad(verr.Error()))
			continue
		}
		return name, nil
	}
}
