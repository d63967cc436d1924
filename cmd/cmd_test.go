// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webtune/webtune/pkg/osutil"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), err
}

func writeReactProject(t *testing.T, dir string, manifest string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(manifest), osutil.PermissionFile))
}

func TestRequirementsCommand(t *testing.T) {
	stdout, err := runCommand(t, "requirements", "--output", "json")
	require.NoError(t, err)

	var infos []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(stdout), &infos))
	require.Len(t, infos, 1)
	assert.Equal(t, "react", infos[0]["framework"])
}

func TestDetectCommand(t *testing.T) {
	dir := t.TempDir()
	projectDir := filepath.Join(dir, "my-app")
	require.NoError(t, os.Mkdir(projectDir, osutil.PermissionDirectory))
	writeReactProject(t, projectDir, `{"dependencies":{"react":"^18","react-dom":"^18"}}`)

	stdout, err := runCommand(t, "detect", dir, "--output", "json")
	require.NoError(t, err)

	var projects []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(stdout), &projects))
	require.Len(t, projects, 1)
	assert.Equal(t, projectDir, projects[0]["path"])
	assert.Equal(t, "react", projects[0]["framework"])
}

func TestValidateCommand(t *testing.T) {
	dir := t.TempDir()
	writeReactProject(t, dir, `{"dependencies":{"react":"^18","react-dom":"^18"}}`)

	stdout, err := runCommand(t, "validate", dir, "--output", "json")
	require.NoError(t, err)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	assert.Equal(t, true, result["isValid"])
}

func TestValidateCommandFailsOnInvalidProject(t *testing.T) {
	dir := t.TempDir()
	writeReactProject(t, dir, `{"dependencies":{"lodash":"^4"}}`)

	_, err := runCommand(t, "validate", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "minimum requirements")
}

func TestValidateCommandUnknownFramework(t *testing.T) {
	dir := t.TempDir()
	writeReactProject(t, dir, `{}`)

	_, err := runCommand(t, "validate", dir, "--framework", "angular")
	require.Error(t, err)
}
