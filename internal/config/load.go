package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/conn-castle/ext-installer/internal/messages"
)

var readFile = os.ReadFile

// Loaded is a validated config together with where it came from.
type Loaded struct {
	Config
	// Source is the config file path, or empty when defaults were used.
	Source string
}

// Load reads extinstall.toml from root when present, applies environment
// overrides from lookupEnv, and validates the result.
func Load(root string, lookupEnv func(string) (string, bool)) (*Loaded, error) {
	cfg := Default()
	path := filepath.Join(root, messages.ConfigFileName)
	source := ""

	data, err := readFile(path)
	switch {
	case err == nil:
		if err := decode(data, &cfg); err != nil {
			return nil, fmt.Errorf(messages.ConfigInvalidFmt, path, err)
		}
		source = path
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf(messages.ConfigReadFailedFmt, path, err)
	}

	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}
	if err := applyEnv(&cfg, lookupEnv); err != nil {
		return nil, err
	}

	if source == "" {
		path = messages.ConfigFileName
	}
	if err := cfg.Validate(path); err != nil {
		return nil, err
	}
	return &Loaded{Config: cfg, Source: source}, nil
}

// decode merges TOML data over the defaults already in cfg.
// Unknown keys are rejected so typos do not silently fall back to defaults.
func decode(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(cfg)
}
