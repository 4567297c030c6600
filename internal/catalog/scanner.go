// SPDX-License-Identifier: MPL-2.0

package catalog

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/plugorder/plugorder/pkg/manifest"
	"github.com/plugorder/plugorder/pkg/resolve"
)

// ManifestName is the manifest filename looked for in every plugin directory.
const ManifestName = "plugin.cue"

// Scanner walks configured search paths and builds plugin descriptors
// from the manifests it finds.
type Scanner struct {
	log   *slog.Logger
	paths []string
}

// NewScanner creates a scanner over the given search paths, in
// precedence-irrelevant order (resolution does not depend on catalog
// order). A nil logger falls back to slog.Default.
func NewScanner(paths []string, log *slog.Logger) *Scanner {
	if log == nil {
		log = slog.Default()
	}
	return &Scanner{log: log, paths: paths}
}

// Scan visits every subdirectory of every search path that contains a
// plugin.cue and parses it into a descriptor. Directories whose manifest
// fails to parse produce a ManifestInvalid report instead of a
// descriptor; a missing search path is skipped with a warning. Scan
// never fails as a whole.
func (s *Scanner) Scan() ([]*manifest.Descriptor, []resolve.Report) {
	var (
		descriptors []*manifest.Descriptor
		reports     []resolve.Report
	)

	for _, root := range s.paths {
		entries, err := os.ReadDir(root)
		if err != nil {
			s.log.Warn("skipping plugin search path", "path", root, "error", err)
			continue
		}

		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			dir := filepath.Join(root, entry.Name())
			manifestPath := filepath.Join(dir, ManifestName)
			if _, err := os.Stat(manifestPath); err != nil {
				continue
			}

			d, err := s.load(dir, manifestPath)
			if err != nil {
				reports = append(reports, resolve.Report{
					Kind:     resolve.ManifestInvalid,
					Identity: entry.Name(),
					Detail:   err.Error(),
				})
				s.log.Warn("invalid plugin manifest", "path", manifestPath, "error", err)
				continue
			}
			descriptors = append(descriptors, d)
		}
	}

	s.log.Debug("catalog scan complete", "plugins", len(descriptors), "invalid", len(reports))
	return descriptors, reports
}

// load parses one manifest and wraps it in a descriptor. A directory
// holding nothing but its manifest is a bare placeholder: tracked in the
// catalog but ineligible for activation.
func (s *Scanner) load(dir, manifestPath string) (*manifest.Descriptor, error) {
	m, err := manifest.Parse(manifestPath)
	if err != nil {
		return nil, err
	}

	d, err := manifest.NewDescriptor(*m)
	if err != nil {
		return nil, err
	}
	d.SourcePath = dir
	d.IsBare, err = isBare(dir)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// isBare reports whether the plugin directory contains only its manifest.
func isBare(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, fmt.Errorf("failed to inspect plugin directory %s: %w", dir, err)
	}
	for _, entry := range entries {
		if entry.Name() != ManifestName {
			return false, nil
		}
	}
	return true, nil
}

// SelfDescriptor synthesizes the loader's own descriptor. It is always
// first-class: never disabled, never filtered, and available as a
// dependency target for plugins that require a minimum loader version.
func SelfDescriptor(id, name, version string) (*manifest.Descriptor, error) {
	d, err := manifest.NewDescriptor(manifest.Manifest{
		ID:      id,
		Name:    name,
		Version: version,
	})
	if err != nil {
		return nil, fmt.Errorf("invalid self descriptor: %w", err)
	}
	d.IsSelf = true
	return d, nil
}
