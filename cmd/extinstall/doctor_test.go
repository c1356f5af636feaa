package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/ext-installer/internal/doctor"
	"github.com/conn-castle/ext-installer/internal/testutil"
)

func TestDoctorPasses(t *testing.T) {
	c := newCheckout(t)
	testutil.WriteScript(t, c.binDir, "code", "exit 0\n")
	require.NoError(t, os.MkdirAll(filepath.Join(c.root, "resources", "native-binary"), 0o755))
	require.NoError(t, os.Symlink(c.binary, filepath.Join(c.root, "resources", "native-binary", "claude")))

	stdout, _, err := runRoot(t, "", "doctor")
	require.NoError(t, err)

	assert.Contains(t, stdout, "[OK]   IDE CLI: code found at")
	assert.Contains(t, stdout, "[WARN] Packager: vsce not found")
	assert.Contains(t, stdout, "[OK]   Manifest: ")
	assert.Contains(t, stdout, "[OK]   Binary link: ")
	assert.Contains(t, stdout, "All required checks passed.")
}

func TestDoctorFailsWithoutIDE(t *testing.T) {
	newCheckout(t)

	stdout, _, err := runRoot(t, "", "doctor")
	var silent *SilentExitError
	require.ErrorAs(t, err, &silent)
	assert.Equal(t, 1, silent.Code)
	assert.Contains(t, stdout, "[FAIL] IDE CLI: code not found on PATH")
	assert.Contains(t, stdout, "       -> Install the IDE command-line tool")
	assert.Contains(t, stdout, "Some checks failed.")
}

func TestDoctorReportsConfigFailure(t *testing.T) {
	c := newCheckout(t)
	testutil.WriteScript(t, c.binDir, "code", "exit 0\n")
	require.NoError(t, os.WriteFile(filepath.Join(c.root, "extinstall.toml"), []byte("manifest = ["), 0o644))

	stdout, _, err := runRoot(t, "", "doctor")
	require.Error(t, err)
	assert.Contains(t, stdout, "[FAIL] Config: Failed to load configuration")
	assert.Contains(t, stdout, "[OK]   Manifest: ")
}

func TestPrintResult(t *testing.T) {
	var out bytes.Buffer
	printResult(&out, doctor.Result{
		Status:         doctor.StatusWarn,
		CheckName:      "Binary link",
		Message:        "missing",
		Recommendation: "Run extinstall.",
	})
	assert.Equal(t, "[WARN] Binary link: missing\n       -> Run extinstall.\n", out.String())
}
