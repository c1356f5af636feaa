// Package manifest reads the extension manifest and rewrites its version field.
package manifest

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/conn-castle/ext-installer/internal/messages"
)

// Manifest holds the manifest fields the installer reads.
type Manifest struct {
	Name      string `json:"name"`
	Publisher string `json:"publisher"`
	Version   string `json:"version"`
}

// Parse decodes manifest data. source names the manifest in error messages.
func Parse(data []byte, source string) (Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf(messages.ManifestInvalidFmt, source, err)
	}
	return m, nil
}

// RequireIdentity ensures publisher and name are set; both are needed to
// name the extension directory for symlink installs.
func (m Manifest) RequireIdentity(source string) error {
	if strings.TrimSpace(m.Publisher) == "" {
		return fmt.Errorf(messages.ManifestMissingFieldFmt, source, "publisher")
	}
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf(messages.ManifestMissingFieldFmt, source, "name")
	}
	return nil
}

// ID returns the extension identifier, publisher.name.
func (m Manifest) ID() string {
	return m.Publisher + "." + m.Name
}

// DirName returns the extensions directory entry name for version.
func (m Manifest) DirName(version string) string {
	return m.ID() + "-" + version
}

// Verify checks that data parses and carries version.
func Verify(data []byte, source string, version string) error {
	m, err := Parse(data, source)
	if err != nil {
		return err
	}
	if m.Version != version {
		return fmt.Errorf(messages.ManifestVersionMismatchFmt, m.Version, version)
	}
	return nil
}
