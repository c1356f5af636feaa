//go:build !windows

package prompt

import (
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
)

// runInputWithKeys runs an input form with the installer key map and filter,
// feeding keyBytes through Bubble Tea's input parser.
func runInputWithKeys(t *testing.T, keyBytes []byte) error {
	t.Helper()

	inputR, inputW := io.Pipe()
	t.Cleanup(func() { _ = inputR.Close() })
	t.Cleanup(func() { _ = inputW.Close() })

	var val string
	form := huh.NewForm(huh.NewGroup(huh.NewInput().Title("Version").Value(&val)))
	form.WithAccessible(false)
	form.WithKeyMap(keyMap())
	form.WithProgramOptions(
		tea.WithInput(inputR),
		tea.WithOutput(io.Discard),
		tea.WithFilter(interruptFilter),
	)

	go func() {
		// Let the program start before the first byte arrives.
		time.Sleep(50 * time.Millisecond)
		_, _ = inputW.Write(keyBytes)
		// A lone Esc needs the stream to stay open to be read as a keypress.
		time.Sleep(350 * time.Millisecond)
		_ = inputW.Close()
	}()

	ch := make(chan error, 1)
	go func() { ch <- form.Run() }()

	select {
	case err := <-ch:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("form did not exit within timeout")
		return nil
	}
}

func TestPTY_EscAborts(t *testing.T) {
	assert.ErrorIs(t, runInputWithKeys(t, []byte{0x1b}), huh.ErrUserAborted)
}

func TestPTY_CtrlCAborts(t *testing.T) {
	assert.ErrorIs(t, runInputWithKeys(t, []byte{0x03}), huh.ErrUserAborted)
}

// feedKeys returns a reader that delivers keyBytes once the program has
// started and closes shortly after.
func feedKeys(t *testing.T, keyBytes []byte) io.Reader {
	t.Helper()
	inputR, inputW := io.Pipe()
	t.Cleanup(func() { _ = inputR.Close() })
	go func() {
		time.Sleep(50 * time.Millisecond)
		_, _ = inputW.Write(keyBytes)
		time.Sleep(350 * time.Millisecond)
		_ = inputW.Close()
	}()
	return inputR
}

func inputWithTimeout(t *testing.T, ui *HuhUI, value *string) error {
	t.Helper()
	ch := make(chan error, 1)
	go func() { ch <- ui.Input("Version", "", value) }()
	select {
	case err := <-ch:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("form did not exit within timeout")
		return nil
	}
}

func TestHuhUIReadsFromGivenInput(t *testing.T) {
	ui := NewHuhUI(feedKeys(t, []byte("1.2.3\r")), io.Discard)

	var version string
	assert.NoError(t, inputWithTimeout(t, ui, &version))
	assert.Equal(t, "1.2.3", version)
}

func TestHuhUIEscFromGivenInputAborts(t *testing.T) {
	ui := NewHuhUI(feedKeys(t, []byte{0x1b}), io.Discard)

	var version string
	assert.ErrorIs(t, inputWithTimeout(t, ui, &version), ErrAborted)
}
