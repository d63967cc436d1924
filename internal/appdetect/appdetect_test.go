// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package appdetect

import (
	"context"
	"path/filepath"
	"testing"

	cp "github.com/otiai10/copy"
	"github.com/stretchr/testify/require"

	"github.com/webtune/webtune/internal/provider"
)

// copyWorkspace copies the testdata workspace into a temp dir so scans run
// against a mutable tree, the same way real invocations do.
func copyWorkspace(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, cp.Copy(filepath.Join("testdata", "workspace"), dir))
	return dir
}

func TestDetect(t *testing.T) {
	dir := copyWorkspace(t)

	projects, err := Detect(context.Background(), dir)
	require.NoError(t, err)

	require.Equal(t, []Project{
		{
			Path:      filepath.Join(dir, "react-app"),
			Framework: "react",
			Detection: provider.DetectionResult{
				Detected:    true,
				Confidence:  provider.ConfidenceHigh,
				Markers:     []string{"react", "react-dom", "Next.js"},
				ProjectType: "react-spa",
			},
		},
	}, projects)
}

func TestDetectExcludePatterns(t *testing.T) {
	dir := copyWorkspace(t)

	projects, err := Detect(context.Background(), dir,
		WithExcludePatterns([]string{"react-app"}, false))
	require.NoError(t, err)
	require.Empty(t, projects)
}

func TestDetectOverrideDefaultExcludes(t *testing.T) {
	dir := copyWorkspace(t)

	// Dropping the default excludes exposes the projects cached under
	// node_modules and dist. Hidden directories stay skipped.
	projects, err := Detect(context.Background(), dir,
		WithExcludePatterns([]string{"react-app"}, true))
	require.NoError(t, err)

	paths := make([]string, len(projects))
	for i, project := range projects {
		paths[i] = project.Path
	}
	require.Equal(t, []string{
		filepath.Join(dir, "dist", "bundle-app"),
		filepath.Join(dir, "node_modules", "cached-app"),
	}, paths)
}

func TestDetectFrameworkFilter(t *testing.T) {
	dir := copyWorkspace(t)

	projects, err := Detect(context.Background(), dir, WithFrameworks("react"))
	require.NoError(t, err)
	require.Len(t, projects, 1)

	projects, err = Detect(context.Background(), dir, WithFrameworks("angular"))
	require.NoError(t, err)
	require.Empty(t, projects)
}

func TestDetectEmptyRoot(t *testing.T) {
	projects, err := Detect(context.Background(), t.TempDir())
	require.NoError(t, err)
	require.Empty(t, projects)
}

func TestDetectMissingRoot(t *testing.T) {
	_, err := Detect(context.Background(), filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}

func TestDetectCancelled(t *testing.T) {
	dir := copyWorkspace(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Detect(ctx, dir)
	require.ErrorIs(t, err, context.Canceled)
}

func TestProviderByName(t *testing.T) {
	p, ok := ProviderByName("react")
	require.True(t, ok)
	require.Equal(t, "react", p.Name())

	_, ok = ProviderByName("angular")
	require.False(t, ok)
}
