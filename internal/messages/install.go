package messages

// Installation sequencer messages.
const (
	InstallVersionRequired    = "version is required"
	InstallBinaryRequired     = "binary path is required"
	InstallBinaryNotFound     = "binary not found"
	InstallBinaryNotFoundFmt  = "%w at %s"
	InstallBinaryNotFileFmt   = "%s is not a regular file"
	InstallBinaryStatFmt      = "failed to stat binary %s: %w"
	InstallExpandPathFmt      = "failed to expand path %s: %w"
	InstallChmodFailedFmt     = "failed to make %s executable: %w"
	InstallRootRequired       = "checkout root is required"
	InstallSystemRequired     = "install system is required"
	InstallPrompterRequired   = "install prompter is required"
	InstallRunnerRequired     = "command runner is required"
	InstallFailedReadFmt      = "failed to read %s: %w"
	InstallFailedWriteFmt     = "failed to write %s: %w"
	InstallFailedStatFmt      = "failed to stat %s: %w"
	InstallCreateDirFailedFmt = "failed to create directory %s: %w"
	InstallRemoveFailedFmt    = "failed to remove %s: %w"
	InstallSymlinkFailedFmt   = "failed to link %s -> %s: %w"
	InstallVersionInvalid     = "invalid version"
	InstallVersionInvalidFmt  = "%w %q: it must not contain path separators or \"..\""
	InstallTargetOutsideFmt   = "refusing to replace %s: it is not directly inside %s"
	InstallNotSymlink         = "link verification failed"
	InstallNotSymlinkFmt      = "%w: %s exists but is not a symlink"
	InstallLinkIsDirFmt       = "%s is a directory; remove it before linking the binary"
	InstallPackageFailedFmt   = "packaging with %s failed: %w"
	InstallNoArtifact         = "packaging produced no artifact"
	InstallNoArtifactFmt      = "%w: no %s file in %s"
	InstallListArtifactsFmt   = "failed to list packaged artifacts in %s: %w"
	InstallExtensionFailedFmt = "installing %s with %s failed: %w"

	InstallWarnNotExecutableFmt  = "Warning: %s is not executable; the extension will fail to start it until it is\n"
	InstallWarnNoPackagerFmt     = "Warning: %s not found; installing the extension as a symlink into %s\n"
	InstallWarnTextualEditFmt    = "Warning: %s not found; updating the version with a textual replacement\n"
	InstallWarnNoVersionMatchFmt = "Warning: no \"version\": \"...\" entry matched in %s; the manifest was left unchanged\n"

	InstallStepManifestFmt      = "Updating %s to version %s\n"
	InstallManifestUnchangedFmt = "Manifest already at version %s\n"
	InstallManifestDiffTitle    = "Manifest changes:"
	InstallStepLinkFmt          = "Linking %s -> %s\n"
	InstallStepPackageFmt       = "Packaging extension with %s\n"
	InstallStepInstallFmt       = "Installing %s with %s\n"
	InstallStepSymlinkFmt       = "Linking checkout into %s\n"
	InstallChmodDoneFmt         = "Made %s executable\n"

	InstallCompleteHeader     = "Installation complete."
	InstallCompleteVersionFmt = "  Version: %s\n"
	InstallCompleteBinaryFmt  = "  Binary:  %s\n"
	InstallCompletePackageFmt = "  Package: %s\n"
	InstallCompleteLinkedFmt  = "  Linked:  %s\n"
	InstallReloadHint         = "Reload the IDE window to pick up the new extension."
)
