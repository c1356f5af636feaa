// Package prompt gathers operator input, through huh forms on a terminal and
// through plain line reads otherwise.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/conn-castle/ext-installer/internal/messages"
)

// ErrAborted is returned when the operator cancels a prompt.
var ErrAborted = errors.New(messages.PromptAborted)

// UI defines the interaction methods.
type UI interface {
	Input(title string, description string, value *string) error
	Confirm(title string, value *bool) error
}

// New returns a HuhUI when in and out are an interactive terminal, and a
// LineUI reading from in otherwise.
func New(in io.Reader, out io.Writer) UI {
	if isTerminal(in, out) {
		return NewHuhUI(in, out)
	}
	return NewLineUI(in, out)
}

// HuhUI implements UI using charmbracelet/huh.
type HuhUI struct {
	in  io.Reader
	out io.Writer
}

var runFormFunc = func(form *huh.Form) error { return form.Run() }

// NewHuhUI creates a HuhUI that reads keys from in (the program's default
// input when nil) and renders forms to out (stderr when nil).
func NewHuhUI(in io.Reader, out io.Writer) *HuhUI {
	return &HuhUI{in: in, out: out}
}

// keyMap makes Esc abort forms alongside Ctrl+C.
func keyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "cancel"))
	return km
}

// interruptFilter converts InterruptMsg into QuitMsg so the renderer clears
// the form before the program exits.
func interruptFilter(_ tea.Model, msg tea.Msg) tea.Msg {
	if _, ok := msg.(tea.InterruptMsg); ok {
		return tea.QuitMsg{}
	}
	return msg
}

func (ui *HuhUI) runForm(form *huh.Form) error {
	out := ui.out
	if out == nil {
		out = os.Stderr
	}
	opts := []tea.ProgramOption{
		tea.WithOutput(out),
		tea.WithFilter(interruptFilter),
	}
	if ui.in != nil {
		opts = append(opts, tea.WithInput(ui.in))
	}
	form.WithKeyMap(keyMap())
	form.WithProgramOptions(opts...)
	err := runFormFunc(form)
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrAborted
	}
	return err
}

// Input renders a plain text input prompt.
func (ui *HuhUI) Input(title string, description string, value *string) error {
	return ui.runForm(huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Description(description).
				Value(value),
		),
	))
}

// Confirm renders a yes/no prompt.
func (ui *HuhUI) Confirm(title string, value *bool) error {
	return ui.runForm(huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Value(value),
		),
	))
}

func promptf(out io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(out, format, args...)
	return err
}
