package prompt

import (
	"io"

	"golang.org/x/term"
)

var isTerminal = IsInteractive

type fileDescriptor interface {
	Fd() uintptr
}

// IsInteractive reports whether in and out are both attached to a terminal.
// Readers and writers without a file descriptor, such as pipes in tests or
// buffers, are never interactive.
func IsInteractive(in io.Reader, out io.Writer) bool {
	inFile, ok := in.(fileDescriptor)
	if !ok {
		return false
	}
	outFile, ok := out.(fileDescriptor)
	if !ok {
		return false
	}
	return term.IsTerminal(int(inFile.Fd())) && term.IsTerminal(int(outFile.Fd()))
}
