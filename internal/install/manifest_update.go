package install

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/conn-castle/ext-installer/internal/manifest"
	"github.com/conn-castle/ext-installer/internal/messages"
	"github.com/conn-castle/ext-installer/internal/toolchain"
)

var (
	diffColorAdded   = color.New(color.FgGreen)
	diffColorRemoved = color.New(color.FgRed)
	diffColorHunk    = color.New(color.FgCyan)
)

// updateManifest rewrites the manifest version with the editor chosen at
// startup and prints the resulting diff.
func (inst *installer) updateManifest(ctx context.Context, version string) error {
	path := inst.paths.Manifest
	strategy := inst.caps.EditStrategy()
	if strategy == toolchain.EditTextual {
		inst.warnf(messages.InstallWarnTextualEditFmt, inst.caps.JSON.Name)
	}
	inst.printf(messages.InstallStepManifestFmt, path, version)

	editor := manifest.NewEditor(strategy, inst.runner, inst.caps.JSON.Path)
	edit, err := editor.SetVersion(ctx, path, inst.manifestData, version)
	if err != nil {
		return err
	}
	if !edit.Matched {
		inst.warnf(messages.InstallWarnNoVersionMatchFmt, path)
		return nil
	}
	if err := manifest.Verify(edit.Content, path, version); err != nil {
		return err
	}

	if bytes.Equal(edit.Content, inst.manifestData) {
		inst.printf(messages.InstallManifestUnchangedFmt, version)
		return nil
	}
	printDiff(inst.out, manifest.Diff(path, inst.manifestData, edit.Content))
	if err := inst.sys.WriteFileAtomic(path, edit.Content, inst.manifestMode); err != nil {
		return fmt.Errorf(messages.InstallFailedWriteFmt, path, err)
	}
	inst.manifestData = edit.Content
	return nil
}

// printDiff writes a unified diff with added, removed, and hunk lines colored.
func printDiff(out io.Writer, diff string) {
	if diff == "" {
		return
	}
	_, _ = fmt.Fprintln(out, messages.InstallManifestDiffTitle)
	for _, line := range strings.Split(strings.TrimRight(diff, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			_, _ = fmt.Fprintln(out, line)
		case strings.HasPrefix(line, "+"):
			_, _ = diffColorAdded.Fprintln(out, line)
		case strings.HasPrefix(line, "-"):
			_, _ = diffColorRemoved.Fprintln(out, line)
		case strings.HasPrefix(line, "@@"):
			_, _ = diffColorHunk.Fprintln(out, line)
		default:
			_, _ = fmt.Fprintln(out, line)
		}
	}
}
