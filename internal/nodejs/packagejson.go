// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package nodejs models the parts of an npm package manifest that project
// detection relies on.
package nodejs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"dario.cat/mergo"
)

// ManifestFileName is the conventional npm manifest file name.
const ManifestFileName = "package.json"

// PackageJSON is a parsed package.json. Only the fields consulted during
// detection and validation are modeled; unknown fields are ignored.
type PackageJSON struct {
	Name            string            `json:"name"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
	Scripts         map[string]string `json:"scripts"`
}

// Load reads and parses the package.json inside dir.
func Load(dir string) (*PackageJSON, error) {
	manifestPath := filepath.Join(dir, ManifestFileName)
	contents, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", manifestPath, err)
	}

	var pkg PackageJSON
	if err := json.Unmarshal(contents, &pkg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", manifestPath, err)
	}

	return &pkg, nil
}

// AllDependencies merges runtime and development dependencies into a single
// name-to-range lookup. Runtime entries win on conflict, which is irrelevant
// for the presence-only checks detection performs.
func (p *PackageJSON) AllDependencies() map[string]string {
	merged := map[string]string{}
	// Merge never fails for two maps of identical type.
	_ = mergo.Merge(&merged, p.Dependencies)
	_ = mergo.Merge(&merged, p.DevDependencies)
	return merged
}

// Dependency looks up name in the merged dependency set. The second return
// distinguishes an absent dependency from one declared with an empty range.
func (p *PackageJSON) Dependency(name string) (string, bool) {
	if rng, ok := p.Dependencies[name]; ok {
		return rng, true
	}
	if rng, ok := p.DevDependencies[name]; ok {
		return rng, true
	}
	return "", false
}

// HasDependency reports whether name is declared as a runtime or development
// dependency.
func (p *PackageJSON) HasDependency(name string) bool {
	_, ok := p.Dependency(name)
	return ok
}
