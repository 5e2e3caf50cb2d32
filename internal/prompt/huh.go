package prompt

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/edgeswarm/swarmprov/internal/messages"
	"github.com/edgeswarm/swarmprov/internal/terminal"
)

// HuhPrompter renders choices as huh select forms.
type HuhPrompter struct {
	isTerminal  func() bool
	programOpts []tea.ProgramOption
}

var runFormFunc = func(form *huh.Form) error { return form.Run() }

// NewHuhPrompter returns a HuhPrompter gated on terminal.IsInteractive.
func NewHuhPrompter() *HuhPrompter {
	return &HuhPrompter{isTerminal: terminal.IsInteractive}
}

func (p *HuhPrompter) ensureInteractive() error {
	checker := p.isTerminal
	if checker == nil {
		checker = terminal.IsInteractive
	}
	if checker() {
		return nil
	}
	return errors.New(messages.PromptRequiresTerminal)
}

// keyMap makes Esc and Ctrl+C abort the form. Filtering is off because the
// option lists are short.
func keyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "abort"))
	km.Select.Filter.SetEnabled(false)
	km.Select.SetFilter.SetEnabled(false)
	km.Select.ClearFilter.SetEnabled(false)
	return km
}

// interruptFilter turns the InterruptMsg huh sends on abort into a QuitMsg so
// bubbletea restores the terminal before returning.
func interruptFilter(_ tea.Model, msg tea.Msg) tea.Msg {
	if _, ok := msg.(tea.InterruptMsg); ok {
		return tea.QuitMsg{}
	}
	return msg
}

// Choose implements Chooser.
func (p *HuhPrompter) Choose(title string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, fmt.Errorf(messages.PromptNoOptionsFmt, title)
	}
	if err := p.ensureInteractive(); err != nil {
		return 0, err
	}
	opts := make([]huh.Option[int], len(options))
	for i, o := range options {
		opts[i] = huh.NewOption(o, i)
	}
	var choice int
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title(title).
				Options(opts...).
				Value(&choice),
		),
	)
	form.WithKeyMap(keyMap())
	programOpts := append([]tea.ProgramOption{
		tea.WithOutput(os.Stderr),
		tea.WithFilter(interruptFilter),
	}, p.programOpts...)
	form.WithProgramOptions(programOpts...)

	err := runFormFunc(form)
	if errors.Is(err, huh.ErrUserAborted) {
		return 0, fmt.Errorf(messages.PromptUnansweredFmt, ErrNoAnswer, title)
	}
	if err != nil {
		return 0, err
	}
	return choice, nil
}
