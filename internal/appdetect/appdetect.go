// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package appdetect

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/webtune/webtune/internal/nodejs"
	"github.com/webtune/webtune/internal/provider"
)

// Project is a project found under a scan root, together with the detection
// result reported by the provider that claimed it.
type Project struct {
	// Path is the project directory.
	Path string `json:"path"`
	// Framework is the name of the provider that detected the project.
	Framework string `json:"framework"`
	// Detection is the provider's result.
	Detection provider.DetectionResult `json:"detection"`
}

// Detect walks the directory tree under root and runs the registered
// framework providers against every directory that contains a package
// manifest. Once a project is detected, directories nested under it are not
// scanned further.
func Detect(ctx context.Context, root string, options ...DetectOption) ([]Project, error) {
	config := newConfig(options...)

	projects := []Project{}
	walkFunc := func(path string, entries []fs.DirEntry) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		if rel != "." {
			if strings.HasPrefix(filepath.Base(path), ".") {
				return filepath.SkipDir
			}

			if config.excluded(filepath.ToSlash(rel)) {
				return filepath.SkipDir
			}
		}

		if !hasManifest(entries) {
			return nil
		}

		for _, p := range config.providers {
			detection := p.Detect(ctx, path)
			if detection.Detected {
				projects = append(projects, Project{
					Path:      path,
					Framework: p.Name(),
					Detection: detection,
				})

				// Skip possible inner projects of a detected project.
				return filepath.SkipDir
			}
		}

		return nil
	}

	if err := WalkDirectories(root, walkFunc); err != nil {
		return nil, fmt.Errorf("scanning directories: %w", err)
	}

	return projects, nil
}

func hasManifest(entries []fs.DirEntry) bool {
	for _, entry := range entries {
		if !entry.IsDir() && strings.ToLower(entry.Name()) == nodejs.ManifestFileName {
			return true
		}
	}

	return false
}

// WalkDirFunc is the type of function that is called whenever a directory is
// visited by WalkDirectories.
//
// path is the directory being visited. entries are the file entries
// (including directories) in that directory.
type WalkDirFunc func(path string, entries []fs.DirEntry) error

// WalkDirectories is like filepath.Walk, except it only visits directories.
//
// Unlike filepath.Walk, it bubbles up errors by default, unless the error is
// SkipDir, in which case the directory is skipped for any further walking.
func WalkDirectories(root string, fn WalkDirFunc) error {
	info, err := os.Lstat(root)
	if err != nil {
		return err
	}

	return walkDirRecursive(root, fs.FileInfoToDirEntry(info), fn)
}

func walkDirRecursive(path string, d fs.DirEntry, fn WalkDirFunc) error {
	entries, err := os.ReadDir(path)
	if err != nil {
		return fmt.Errorf("reading directory: %w", err)
	}

	err = fn(path, entries)
	if err != nil {
		// do not bubble up SkipDir, and simply do not expand the directory further.
		if errors.Is(err, filepath.SkipDir) {
			return nil
		}

		return err
	}

	for _, entry := range entries {
		if entry.IsDir() {
			newPath := filepath.Join(path, entry.Name())
			err = walkDirRecursive(newPath, entry, fn)
			if err != nil {
				return err
			}
		}
	}

	return nil
}
