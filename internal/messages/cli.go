package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse = "extinstall"
	// RootShort is the short description for the root command.
	RootShort = "Install the native binary and package the IDE extension from this checkout"
	RootLong  = `Prompts for a version string and the path to a locally installed native binary,
then updates the extension manifest, links the binary into the extension resources,
and packages and installs the extension with the IDE command-line tool.`

	FlagVerboseUsage = "Log debug details, including every external command, to stderr"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	PromptVersionTitle       = "Extension version"
	PromptVersionDescription = "Written verbatim into the manifest version field (for example 1.0.42)."
	PromptBinaryTitle        = "Path to the native binary"
	PromptBinaryDescription  = "A leading ~ expands to your home directory."
	PromptChmodFmt           = "%s is not executable. Run chmod +x on it?"
	PromptLineFmt            = "%s: "
	PromptYesDefaultFmt      = "%s [Y/n]: "
	PromptNoDefaultFmt       = "%s [y/N]: "
	PromptRetryYesNo         = "Please answer y or n."
	PromptInvalidResponse    = "invalid response %q"
	PromptAborted            = "installation aborted"
)
