// Package toolchain detects the external programs the installer delegates to
// and runs them.
package toolchain

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/conn-castle/ext-installer/internal/config"
	"github.com/conn-castle/ext-installer/internal/messages"
)

// ErrIDENotFound is matched by errors.Is when the required IDE CLI is not on PATH.
var ErrIDENotFound = errors.New("ide cli not found")

// IDENotFoundError names the missing IDE CLI and carries the remediation hint.
type IDENotFoundError struct {
	Name string
}

func (e *IDENotFoundError) Error() string {
	return fmt.Sprintf(messages.ToolIDENotFoundFmt, e.Name)
}

// Is reports whether target is ErrIDENotFound.
func (e *IDENotFoundError) Is(target error) bool {
	return target == ErrIDENotFound
}

// LookPathFunc resolves a program name to an executable path.
type LookPathFunc func(file string) (string, error)

// EditStrategy selects how the manifest version is rewritten.
type EditStrategy int

const (
	// EditStructured rewrites the manifest through the JSON tool.
	EditStructured EditStrategy = iota
	// EditTextual replaces the "version" substring in place.
	EditTextual
)

func (s EditStrategy) String() string {
	if s == EditStructured {
		return "structured"
	}
	return "textual"
}

// InstallStrategy selects how the extension reaches the IDE.
type InstallStrategy int

const (
	// InstallPackage packages a .vsix and installs it with the IDE CLI.
	InstallPackage InstallStrategy = iota
	// InstallSymlink links the checkout into the IDE extensions directory.
	InstallSymlink
)

func (s InstallStrategy) String() string {
	if s == InstallPackage {
		return "package"
	}
	return "symlink"
}

// Tool is one external program and where it was found.
type Tool struct {
	Name string
	// Path is empty when the program was not found.
	Path string
}

// Available reports whether the program was found.
func (t Tool) Available() bool {
	return t.Path != ""
}

// Capabilities is the result of a single startup probe of the external tools.
type Capabilities struct {
	IDE      Tool
	Packager Tool
	JSON     Tool
}

// Detect looks up every configured tool once.
func Detect(lookPath LookPathFunc, tools config.Tools) Capabilities {
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	return Capabilities{
		IDE:      find(lookPath, tools.IDE),
		Packager: find(lookPath, tools.Packager),
		JSON:     find(lookPath, tools.JSON),
	}
}

func find(lookPath LookPathFunc, name string) Tool {
	name = strings.TrimSpace(name)
	tool := Tool{Name: name}
	if name == "" {
		return tool
	}
	if path, err := lookPath(name); err == nil {
		tool.Path = path
	}
	return tool
}

// RequireIDE returns an *IDENotFoundError when the IDE CLI is missing.
func (c Capabilities) RequireIDE() error {
	if c.IDE.Available() {
		return nil
	}
	return &IDENotFoundError{Name: c.IDE.Name}
}

// EditStrategy returns EditStructured when the JSON tool is available.
func (c Capabilities) EditStrategy() EditStrategy {
	if c.JSON.Available() {
		return EditStructured
	}
	return EditTextual
}

// InstallStrategy returns InstallPackage when the packager is available.
func (c Capabilities) InstallStrategy() InstallStrategy {
	if c.Packager.Available() {
		return InstallPackage
	}
	return InstallSymlink
}
