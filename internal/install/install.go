// Package install implements the installation sequence: it validates the
// operator's answers, rewrites the manifest version, links the native binary,
// and hands packaging and installation to the external toolchain.
package install

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/go-logr/logr"

	"github.com/conn-castle/ext-installer/internal/config"
	"github.com/conn-castle/ext-installer/internal/manifest"
	"github.com/conn-castle/ext-installer/internal/messages"
	"github.com/conn-castle/ext-installer/internal/toolchain"
)

var (
	// ErrVersionRequired is returned when the operator enters an empty version.
	ErrVersionRequired = errors.New(messages.InstallVersionRequired)
	// ErrVersionInvalid is returned when the version could escape the
	// extensions directory once used as a path component.
	ErrVersionInvalid = errors.New(messages.InstallVersionInvalid)
)

// Options configures a single installation run.
type Options struct {
	Paths        config.Paths
	Capabilities toolchain.Capabilities
	System       System
	Runner       toolchain.Runner
	Prompter     Prompter
	// Stdout receives progress and the completion report; Stderr receives warnings.
	Stdout io.Writer
	Stderr io.Writer
	Log    logr.Logger
}

// Result reports what a successful run produced.
type Result struct {
	Version  string
	Binary   string
	Strategy toolchain.InstallStrategy
	// Artifact is the installed .vsix for package installs.
	Artifact string
	// ExtensionDir is the extensions directory entry for symlink installs.
	ExtensionDir string
}

type installer struct {
	paths    config.Paths
	caps     toolchain.Capabilities
	sys      System
	runner   toolchain.Runner
	prompter Prompter
	out      io.Writer
	warn     io.Writer
	log      logr.Logger

	manifestData []byte
	manifestMode os.FileMode
	manifest     manifest.Manifest
}

var warnColor = color.New(color.FgYellow)

// Run performs one installation. Every precondition, including IDE CLI
// presence, is checked before the manifest or the link is touched; after
// that, a failure leaves completed steps in place.
func Run(ctx context.Context, opts Options) (Result, error) {
	if strings.TrimSpace(opts.Paths.Root) == "" {
		return Result{}, fmt.Errorf(messages.InstallRootRequired)
	}
	if opts.System == nil {
		return Result{}, fmt.Errorf(messages.InstallSystemRequired)
	}
	if opts.Runner == nil {
		return Result{}, fmt.Errorf(messages.InstallRunnerRequired)
	}
	if opts.Prompter == nil {
		return Result{}, fmt.Errorf(messages.InstallPrompterRequired)
	}
	inst := &installer{
		paths:    opts.Paths,
		caps:     opts.Capabilities,
		sys:      opts.System,
		runner:   opts.Runner,
		prompter: opts.Prompter,
		out:      writerOrDiscard(opts.Stdout),
		warn:     writerOrDiscard(opts.Stderr),
		log:      opts.Log,
	}
	return inst.run(ctx)
}

func (inst *installer) run(ctx context.Context) (Result, error) {
	version, bin, err := inst.preflight()
	if err != nil {
		return Result{}, err
	}
	if err := inst.ensureExecutable(bin); err != nil {
		return Result{}, err
	}

	if err := inst.updateManifest(ctx, version); err != nil {
		return Result{}, err
	}

	inst.printf(messages.InstallStepLinkFmt, inst.paths.Link, bin.Path)
	if err := ReplaceSymlink(inst.sys, inst.paths.Link, bin.Path); err != nil {
		return Result{}, err
	}

	result := Result{Version: version, Binary: bin.Path, Strategy: inst.caps.InstallStrategy()}
	switch result.Strategy {
	case toolchain.InstallPackage:
		result.Artifact, err = inst.packageAndInstall(ctx)
	default:
		inst.warnf(messages.InstallWarnNoPackagerFmt, inst.caps.Packager.Name, inst.paths.ExtensionsDir)
		result.ExtensionDir, err = inst.symlinkInstall(version)
	}
	if err != nil {
		return Result{}, err
	}

	inst.report(result)
	return result, nil
}

// preflight gathers and validates input and checks the environment without
// mutating anything.
func (inst *installer) preflight() (string, Binary, error) {
	version, err := inst.prompter.Version()
	if err != nil {
		return "", Binary{}, err
	}
	version = strings.TrimSpace(version)
	if version == "" {
		return "", Binary{}, ErrVersionRequired
	}
	if err := validateVersion(version); err != nil {
		return "", Binary{}, err
	}

	rawPath, err := inst.prompter.BinaryPath()
	if err != nil {
		return "", Binary{}, err
	}
	bin, err := ResolveBinary(inst.sys, rawPath)
	if err != nil {
		return "", Binary{}, err
	}
	inst.log.V(1).Info("binary resolved", "path", bin.Path, "executable", bin.Executable)

	if err := inst.loadManifest(); err != nil {
		return "", Binary{}, err
	}

	if err := inst.caps.RequireIDE(); err != nil {
		return "", Binary{}, err
	}
	inst.log.V(1).Info("capabilities",
		"ide", inst.caps.IDE.Path,
		"edit", inst.caps.EditStrategy().String(),
		"install", inst.caps.InstallStrategy().String())
	return version, bin, nil
}

// validateVersion rejects versions that are not a single path element, since
// symlink installs name a directory entry after the version.
func validateVersion(version string) error {
	if strings.ContainsAny(version, `/\`) || strings.Contains(version, "..") || filepath.Base(version) != version {
		return fmt.Errorf(messages.InstallVersionInvalidFmt, ErrVersionInvalid, version)
	}
	return nil
}

func (inst *installer) loadManifest() error {
	path := inst.paths.Manifest
	data, err := inst.sys.ReadFile(path)
	if err != nil {
		return fmt.Errorf(messages.InstallFailedReadFmt, path, err)
	}
	info, err := inst.sys.Stat(path)
	if err != nil {
		return fmt.Errorf(messages.InstallFailedStatFmt, path, err)
	}
	m, err := manifest.Parse(data, path)
	if err != nil {
		return err
	}
	if inst.caps.InstallStrategy() == toolchain.InstallSymlink {
		if err := m.RequireIdentity(path); err != nil {
			return err
		}
	}
	inst.manifestData = data
	inst.manifestMode = info.Mode().Perm()
	inst.manifest = m
	return nil
}

// ensureExecutable offers to chmod +x a binary that lacks execute permission.
// Declining only warns.
func (inst *installer) ensureExecutable(bin Binary) error {
	if bin.Executable {
		return nil
	}
	ok, err := inst.prompter.ConfirmChmod(bin.Path)
	if err != nil {
		return err
	}
	if !ok {
		inst.warnf(messages.InstallWarnNotExecutableFmt, bin.Path)
		return nil
	}
	if err := MakeExecutable(inst.sys, bin); err != nil {
		return err
	}
	inst.printf(messages.InstallChmodDoneFmt, bin.Path)
	return nil
}

func (inst *installer) report(result Result) {
	_, _ = fmt.Fprintln(inst.out)
	_, _ = fmt.Fprintln(inst.out, color.GreenString(messages.InstallCompleteHeader))
	inst.printf(messages.InstallCompleteVersionFmt, result.Version)
	inst.printf(messages.InstallCompleteBinaryFmt, result.Binary)
	if result.Artifact != "" {
		inst.printf(messages.InstallCompletePackageFmt, result.Artifact)
	}
	if result.ExtensionDir != "" {
		inst.printf(messages.InstallCompleteLinkedFmt, result.ExtensionDir)
	}
	_, _ = fmt.Fprintln(inst.out, messages.InstallReloadHint)
}

func (inst *installer) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(inst.out, format, args...)
}

func (inst *installer) warnf(format string, args ...any) {
	_, _ = warnColor.Fprintf(inst.warn, format, args...)
}

func writerOrDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}
