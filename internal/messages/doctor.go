package messages

// Doctor messages for the doctor command.
const (
	// DoctorUse is the doctor command name.
	DoctorUse   = "doctor"
	DoctorShort = "Report installer prerequisites and the current link without changing anything"

	DoctorHealthCheckFmt = "Checking extension checkout in %s...\n"

	DoctorCheckNameIDE      = "IDE CLI"
	DoctorCheckNamePackager = "Packager"
	DoctorCheckNameJSONTool = "JSON tool"
	DoctorCheckNameManifest = "Manifest"
	DoctorCheckNameLink     = "Binary link"
	DoctorCheckNameConfig   = "Config"

	DoctorToolFoundFmt         = "%s found at %s"
	DoctorIDEMissingFmt        = "%s not found on PATH"
	DoctorIDEMissingRecommend  = "Install the IDE command-line tool (in VS Code: Command Palette > Shell Command: Install 'code' command in PATH)."
	DoctorPackagerMissingFmt   = "%s not found; the extension will be linked into the extensions directory instead of packaged"
	DoctorPackagerRecommend    = "Install it with: npm install -g @vscode/vsce"
	DoctorJSONToolMissingFmt   = "%s not found; the manifest version will be edited textually"
	DoctorJSONToolRecommend    = "Install jq for structured manifest edits."
	DoctorManifestOKFmt        = "%s (%s.%s) at version %s"
	DoctorManifestFailedFmt    = "Failed to read manifest: %v"
	DoctorManifestRecommend    = "Run extinstall from the extension checkout root."
	DoctorLinkOKFmt            = "%s -> %s"
	DoctorLinkMissingFmt       = "%s does not exist yet"
	DoctorLinkDanglingFmt      = "%s -> %s (target missing)"
	DoctorLinkNotSymlinkFmt    = "%s exists but is not a symlink"
	DoctorLinkRecommend        = "Run extinstall to link the native binary."
	DoctorConfigLoadedFmt      = "Configuration loaded from %s"
	DoctorConfigDefaults       = "No config file; using defaults"
	DoctorConfigFailedFmt      = "Failed to load configuration: %v"
	DoctorResultLineFmt        = "%s %s: %s\n"
	DoctorRecommendationPrefix = "       -> "
	DoctorStatusOKLabel        = "[OK]  "
	DoctorStatusWarnLabel      = "[WARN]"
	DoctorStatusFailLabel      = "[FAIL]"
	DoctorFailureSummary       = "Some checks failed."
	DoctorSuccessSummary       = "All required checks passed."
)
