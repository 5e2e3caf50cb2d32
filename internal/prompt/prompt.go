// Package prompt asks the operator to pick from numbered options.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/edgeswarm/swarmprov/internal/messages"
)

// ErrNoAnswer reports that input ended before a valid choice was made.
var ErrNoAnswer = errors.New("no answer given")

// Chooser picks one of options and returns its zero-based index.
type Chooser interface {
	Choose(title string, options []string) (int, error)
}

// LinePrompter prints a numbered menu and reads the choice from a line of
// input, re-prompting until the answer is a listed number.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter returns a LinePrompter over in and out. Successive
// prompts share one buffered reader so piped answers are not lost.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

// Choose implements Chooser.
func (p *LinePrompter) Choose(title string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, fmt.Errorf(messages.PromptNoOptionsFmt, title)
	}
	if _, err := fmt.Fprintln(p.out, title); err != nil {
		return 0, err
	}
	for i, option := range options {
		if _, err := fmt.Fprintf(p.out, messages.PromptOptionFmt, i+1, option); err != nil {
			return 0, err
		}
	}
	for {
		if _, err := fmt.Fprintf(p.out, messages.PromptSelectFmt, len(options)); err != nil {
			return 0, err
		}
		line, err := p.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return 0, err
		}
		response := strings.TrimSpace(line)
		if index, ok := parseChoice(response, len(options)); ok {
			return index, nil
		}
		if errors.Is(err, io.EOF) {
			return 0, fmt.Errorf(messages.PromptUnansweredFmt, ErrNoAnswer, title)
		}
		if _, err := fmt.Fprintf(p.out, messages.PromptInvalidChoiceFmt+"\n", response, len(options)); err != nil {
			return 0, err
		}
	}
}

func parseChoice(response string, n int) (int, bool) {
	choice, err := strconv.Atoi(response)
	if err != nil || choice < 1 || choice > n {
		return 0, false
	}
	return choice - 1, true
}
