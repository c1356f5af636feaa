package install

import (
	"fmt"

	"github.com/conn-castle/ext-installer/internal/messages"
)

// Prompter gathers the operator's answers for one run.
type Prompter interface {
	Version() (string, error)
	BinaryPath() (string, error)
	ConfirmChmod(path string) (bool, error)
}

// PromptVersionFunc returns the version string entered by the operator.
type PromptVersionFunc func() (string, error)

// PromptBinaryPathFunc returns the binary path entered by the operator.
type PromptBinaryPathFunc func() (string, error)

// PromptConfirmChmodFunc asks whether to make path executable.
type PromptConfirmChmodFunc func(path string) (bool, error)

// PromptFuncs adapts optional prompt callbacks into a Prompter.
type PromptFuncs struct {
	VersionFunc      PromptVersionFunc
	BinaryPathFunc   PromptBinaryPathFunc
	ConfirmChmodFunc PromptConfirmChmodFunc
}

// Version asks for the extension version.
// Returns an error if no VersionFunc is configured.
func (p PromptFuncs) Version() (string, error) {
	if p.VersionFunc == nil {
		return "", fmt.Errorf(messages.InstallPrompterRequired)
	}
	return p.VersionFunc()
}

// BinaryPath asks for the native binary location.
// Returns an error if no BinaryPathFunc is configured.
func (p PromptFuncs) BinaryPath() (string, error) {
	if p.BinaryPathFunc == nil {
		return "", fmt.Errorf(messages.InstallPrompterRequired)
	}
	return p.BinaryPathFunc()
}

// ConfirmChmod asks whether to run chmod +x on path.
// Declines when no ConfirmChmodFunc is configured.
func (p PromptFuncs) ConfirmChmod(path string) (bool, error) {
	if p.ConfirmChmodFunc == nil {
		return false, nil
	}
	return p.ConfirmChmodFunc(path)
}
