package install

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptFuncsRequireHandlers(t *testing.T) {
	var p PromptFuncs

	_, err := p.Version()
	assert.Error(t, err)
	_, err = p.BinaryPath()
	assert.Error(t, err)

	ok, err := p.ConfirmChmod("/bin/claude")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPromptFuncsDelegate(t *testing.T) {
	p := PromptFuncs{
		VersionFunc:      func() (string, error) { return "1.0.0", nil },
		BinaryPathFunc:   func() (string, error) { return "~/claude", nil },
		ConfirmChmodFunc: func(path string) (bool, error) { return path == "/bin/claude", nil },
	}
	v, err := p.Version()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", v)
	b, err := p.BinaryPath()
	require.NoError(t, err)
	assert.Equal(t, "~/claude", b)
	ok, err := p.ConfirmChmod("/bin/claude")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPrintDiffColorsLines(t *testing.T) {
	var out bytes.Buffer
	printDiff(&out, "--- a\n+++ a\n@@ -1 +1 @@\n-old\n+new\n ctx\n")
	assert.Equal(t, "Manifest changes:\n--- a\n+++ a\n@@ -1 +1 @@\n-old\n+new\n ctx\n", out.String())

	out.Reset()
	printDiff(&out, "")
	assert.Empty(t, out.String())
}
