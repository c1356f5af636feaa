package messages

// Configuration messages.
const (
	ConfigFileName          = "extinstall.toml"
	ConfigReadFailedFmt     = "failed to read config %s: %w"
	ConfigInvalidFmt        = "invalid config %s: %w"
	ConfigValidationFmt     = "invalid config %s: %s"
	ConfigFieldInvalidFmt   = "%s failed %q validation"
	ConfigInvalidBoolEnvFmt = "invalid %s value %q: %w"
	ConfigHomeDirFmt        = "failed to resolve home directory: %w"

	ManifestInvalidFmt         = "invalid manifest %s: %w"
	ManifestMissingFieldFmt    = "manifest %s is missing %q"
	ManifestVersionMismatchFmt = "manifest version is %q after edit, expected %q"
	ManifestEditFailedFmt      = "editing manifest with %s failed: %w"
	ManifestFieldsChangedFmt   = "%s changed fields other than version in %s; the manifest was left untouched"

	ToolIDENotFoundFmt = "%s not found on PATH; install the IDE command-line tool and re-run (in VS Code: Command Palette > Shell Command: Install 'code' command in PATH)"
	ToolRunFailedFmt   = "%s %s: %w"
)
