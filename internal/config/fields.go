package config

// Default settings used when extinstall.toml does not override them.
const (
	DefaultManifest      = "package.json"
	DefaultLink          = "resources/native-binary/claude"
	DefaultExtensionsDir = "~/.vscode/extensions"
	DefaultIDETool       = "code"
	DefaultPackagerTool  = "vsce"
	DefaultJSONTool      = "jq"
	// ArtifactExtension is the suffix the packager gives its output.
	ArtifactExtension = ".vsix"
)

// Environment variables that override config file values.
const (
	EnvIDETool       = "EXTINSTALL_IDE"
	EnvPackagerTool  = "EXTINSTALL_PACKAGER"
	EnvJSONTool      = "EXTINSTALL_JSON_TOOL"
	EnvExtensionsDir = "EXTINSTALL_EXTENSIONS_DIR"
	EnvVerbose       = "EXTINSTALL_VERBOSE"
)

// Config is the installer configuration loaded from extinstall.toml.
type Config struct {
	// Manifest is the manifest path relative to the checkout root.
	Manifest string `toml:"manifest" validate:"required"`
	// Link is where the native binary symlink is created, relative to the checkout root.
	Link string `toml:"link" validate:"required"`
	// ExtensionsDir is the IDE user extensions directory used by symlink installs.
	ExtensionsDir string `toml:"extensions_dir" validate:"required"`
	Verbose       bool   `toml:"verbose"`
	Tools         Tools  `toml:"tools"`
}

// Tools names the external programs the installer invokes.
type Tools struct {
	IDE      string `toml:"ide" validate:"required"`
	Packager string `toml:"packager" validate:"required"`
	JSON     string `toml:"json" validate:"required"`
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{
		Manifest:      DefaultManifest,
		Link:          DefaultLink,
		ExtensionsDir: DefaultExtensionsDir,
		Tools: Tools{
			IDE:      DefaultIDETool,
			Packager: DefaultPackagerTool,
			JSON:     DefaultJSONTool,
		},
	}
}
