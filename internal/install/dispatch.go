package install

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/conn-castle/ext-installer/internal/config"
	"github.com/conn-castle/ext-installer/internal/messages"
)

// ErrNoArtifact is returned when packaging leaves no .vsix in the checkout.
var ErrNoArtifact = errors.New(messages.InstallNoArtifact)

// packageAndInstall builds a .vsix with the packager and installs the newest
// one with the IDE CLI. It returns the installed artifact path.
func (inst *installer) packageAndInstall(ctx context.Context) (string, error) {
	packager := inst.caps.Packager
	inst.printf(messages.InstallStepPackageFmt, packager.Name)
	if err := inst.runner.Run(ctx, inst.paths.Root, packager.Path, "package", "--no-dependencies"); err != nil {
		return "", fmt.Errorf(messages.InstallPackageFailedFmt, packager.Name, err)
	}

	artifact, err := newestArtifact(inst.sys, inst.paths.Root)
	if err != nil {
		return "", err
	}

	ide := inst.caps.IDE
	inst.printf(messages.InstallStepInstallFmt, filepath.Base(artifact), ide.Name)
	if err := inst.runner.Run(ctx, inst.paths.Root, ide.Path, "--install-extension", artifact, "--force"); err != nil {
		return "", fmt.Errorf(messages.InstallExtensionFailedFmt, filepath.Base(artifact), ide.Name, err)
	}
	return artifact, nil
}

// newestArtifact returns the most recently modified .vsix file in dir.
func newestArtifact(sys System, dir string) (string, error) {
	entries, err := sys.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf(messages.InstallListArtifactsFmt, dir, err)
	}
	var (
		newest     string
		newestTime time.Time
	)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), config.ArtifactExtension) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if newest == "" || info.ModTime().After(newestTime) {
			newest = entry.Name()
			newestTime = info.ModTime()
		}
	}
	if newest == "" {
		return "", fmt.Errorf(messages.InstallNoArtifactFmt, ErrNoArtifact, config.ArtifactExtension, dir)
	}
	return filepath.Join(dir, newest), nil
}

// symlinkInstall links the checkout into the IDE extensions directory under
// publisher.name-version, replacing whatever was there.
func (inst *installer) symlinkInstall(version string) (string, error) {
	extDir := inst.paths.ExtensionsDir
	target := filepath.Join(extDir, inst.manifest.DirName(version))
	inst.printf(messages.InstallStepSymlinkFmt, target)

	if filepath.Dir(target) != filepath.Clean(extDir) {
		return "", fmt.Errorf(messages.InstallTargetOutsideFmt, target, extDir)
	}
	if err := inst.sys.MkdirAll(extDir, 0o755); err != nil {
		return "", fmt.Errorf(messages.InstallCreateDirFailedFmt, extDir, err)
	}
	if err := inst.sys.RemoveAll(target); err != nil {
		return "", fmt.Errorf(messages.InstallRemoveFailedFmt, target, err)
	}
	if err := inst.sys.Symlink(inst.paths.Root, target); err != nil {
		return "", fmt.Errorf(messages.InstallSymlinkFailedFmt, target, inst.paths.Root, err)
	}
	return target, nil
}
