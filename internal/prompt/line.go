package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/conn-castle/ext-installer/internal/messages"
)

// LineUI reads answers one line at a time, for piped or scripted input.
type LineUI struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewLineUI returns a LineUI reading from in and writing prompts to out.
func NewLineUI(in io.Reader, out io.Writer) *LineUI {
	return &LineUI{reader: bufio.NewReader(in), out: out}
}

// Input prints title and stores the trimmed line in value. Hitting EOF with
// no text leaves value empty rather than failing.
func (ui *LineUI) Input(title string, _ string, value *string) error {
	if err := promptf(ui.out, messages.PromptLineFmt, title); err != nil {
		return err
	}
	line, err := ui.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	*value = strings.TrimSpace(line)
	return nil
}

// Confirm asks a yes/no question. value supplies the default for an empty
// answer and receives the result.
func (ui *LineUI) Confirm(title string, value *bool) error {
	defaultYes := *value
	for {
		format := messages.PromptNoDefaultFmt
		if defaultYes {
			format = messages.PromptYesDefaultFmt
		}
		if err := promptf(ui.out, format, title); err != nil {
			return err
		}
		line, err := ui.reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		response := strings.TrimSpace(line)
		if response == "" {
			if errors.Is(err, io.EOF) {
				*value = false
				return nil
			}
			*value = defaultYes
			return nil
		}
		switch strings.ToLower(response) {
		case "y", "yes":
			*value = true
			return nil
		case "n", "no":
			*value = false
			return nil
		}
		if errors.Is(err, io.EOF) {
			return fmt.Errorf(messages.PromptInvalidResponse, response)
		}
		if _, err := fmt.Fprintln(ui.out, messages.PromptRetryYesNo); err != nil {
			return err
		}
	}
}
