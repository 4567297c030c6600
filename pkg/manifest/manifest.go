// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/plugorder/plugorder/pkg/cueutil"
)

//go:embed manifest_schema.cue
var manifestSchema string

// Manifest is the declared metadata of one plugin, as authored in plugin.cue.
type Manifest struct {
	// ID is the globally unique identity. Optional; Name is the fallback
	// identity when ID is absent.
	ID string `json:"id,omitempty"`

	// Name is the display name.
	Name string `json:"name"`

	// Version is the plugin's semantic version.
	Version string `json:"version"`

	// GameVersion is the host application version the plugin targets.
	GameVersion string `json:"gameVersion,omitempty"`

	Description string `json:"description,omitempty"`

	// Dependencies maps plugin ids to version ranges that must all be
	// satisfied by accepted plugins loading earlier.
	Dependencies map[string]string `json:"dependencies,omitempty"`

	// Conflicts maps plugin ids to version ranges; a satisfying match
	// forbids coexistence.
	Conflicts map[string]string `json:"conflicts,omitempty"`

	// LoadBefore and LoadAfter are pure ordering hints naming plugin ids.
	// Hints naming absent ids are inert.
	LoadBefore []string `json:"loadBefore,omitempty"`
	LoadAfter  []string `json:"loadAfter,omitempty"`

	// Features holds opaque feature request strings, order-significant.
	Features []string `json:"features,omitempty"`
}

// Parse reads and parses a plugin manifest from the given path.
func Parse(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest at %s: %w", path, err)
	}
	return ParseBytes(data, path)
}

// ParseBytes parses manifest content from bytes.
// Uses cueutil.ParseAndDecodeString for the 3-step CUE parsing flow:
// compile schema → compile user data → validate and decode.
func ParseBytes(data []byte, path string) (*Manifest, error) {
	result, err := cueutil.ParseAndDecodeString[Manifest](
		manifestSchema,
		data,
		"#Manifest",
		cueutil.WithFilename(path),
	)
	if err != nil {
		return nil, err
	}
	return result.Value, nil
}
