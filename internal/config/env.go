package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/conn-castle/ext-installer/internal/messages"
)

// applyEnv overlays EXTINSTALL_* environment variables onto cfg.
// Blank values are ignored.
func applyEnv(cfg *Config, lookupEnv func(string) (string, bool)) error {
	overrides := []struct {
		key string
		dst *string
	}{
		{EnvIDETool, &cfg.Tools.IDE},
		{EnvPackagerTool, &cfg.Tools.Packager},
		{EnvJSONTool, &cfg.Tools.JSON},
		{EnvExtensionsDir, &cfg.ExtensionsDir},
	}
	for _, o := range overrides {
		if value, ok := lookupEnv(o.key); ok && strings.TrimSpace(value) != "" {
			*o.dst = strings.TrimSpace(value)
		}
	}

	if value, ok := lookupEnv(EnvVerbose); ok && strings.TrimSpace(value) != "" {
		verbose, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf(messages.ConfigInvalidBoolEnvFmt, EnvVerbose, value, err)
		}
		cfg.Verbose = verbose
	}
	return nil
}
