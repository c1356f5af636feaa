package install

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/ext-installer/internal/config"
	"github.com/conn-castle/ext-installer/internal/testutil"
	"github.com/conn-castle/ext-installer/internal/toolchain"
)

const testManifest = `{
  "name": "claude-code",
  "displayName": "Claude Code",
  "publisher": "anthropic",
  "version": "1.0.0",
  "main": "./extension.js",
  "contributes": {
    "commands": []
  }
}
`

// fixture is a checkout with a manifest, a native binary, and stub tools.
type fixture struct {
	root     string
	binDir   string
	binary   string
	extDir   string
	ideLog   string
	packLog  string
	paths    config.Paths
	caps     toolchain.Capabilities
	stdout   bytes.Buffer
	stderr   bytes.Buffer
	prompter PromptFuncs
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		root:   t.TempDir(),
		binDir: t.TempDir(),
		extDir: filepath.Join(t.TempDir(), "extensions"),
	}
	require.NoError(t, os.WriteFile(filepath.Join(f.root, "package.json"), []byte(testManifest), 0o644))

	f.binary = filepath.Join(t.TempDir(), "claude")
	require.NoError(t, os.WriteFile(f.binary, []byte("#!/bin/sh\n"), 0o755))

	f.ideLog = filepath.Join(f.binDir, "code.log")
	f.packLog = filepath.Join(f.binDir, "vsce.log")
	f.paths = config.Paths{
		Root:          f.root,
		Manifest:      filepath.Join(f.root, "package.json"),
		Link:          filepath.Join(f.root, "resources", "native-binary", "claude"),
		ExtensionsDir: f.extDir,
	}
	f.caps = toolchain.Capabilities{
		IDE:      toolchain.Tool{Name: "code", Path: testutil.WriteRecordingStub(t, f.binDir, "code", f.ideLog, "exit 0\n")},
		Packager: toolchain.Tool{Name: "vsce"},
		JSON:     toolchain.Tool{Name: "jq"},
	}
	f.answer("1.2.3", f.binary)
	return f
}

// withPackager installs a vsce stub that runs body in the checkout.
func (f *fixture) withPackager(t *testing.T, body string) {
	t.Helper()
	f.caps.Packager.Path = testutil.WriteRecordingStub(t, f.binDir, "vsce", f.packLog, body)
}

func (f *fixture) answer(version string, binary string) {
	f.prompter = PromptFuncs{
		VersionFunc:    func() (string, error) { return version, nil },
		BinaryPathFunc: func() (string, error) { return binary, nil },
	}
}

func (f *fixture) options() Options {
	return Options{
		Paths:        f.paths,
		Capabilities: f.caps,
		System:       RealSystem{},
		Runner:       toolchain.NewExecRunner(&f.stdout, &f.stderr, logr.Discard()),
		Prompter:     f.prompter,
		Stdout:       &f.stdout,
		Stderr:       &f.stderr,
		Log:          logr.Discard(),
	}
}

func (f *fixture) run(t *testing.T) (Result, error) {
	t.Helper()
	return Run(context.Background(), f.options())
}

func (f *fixture) readManifest(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(f.paths.Manifest)
	require.NoError(t, err)
	return string(data)
}

func (f *fixture) requireNoLink(t *testing.T) {
	t.Helper()
	_, err := os.Lstat(f.paths.Link)
	require.ErrorIs(t, err, os.ErrNotExist)
}
