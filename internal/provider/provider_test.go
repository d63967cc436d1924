// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package provider

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationResultIsValid(t *testing.T) {
	valid := ValidationResult{
		Errors:            []string{},
		Warnings:          []string{"something advisory"},
		MissingComponents: []string{},
	}
	assert.True(t, valid.IsValid())

	invalid := ValidationResult{
		Errors:            []string{"Missing required dependency: react"},
		Warnings:          []string{},
		MissingComponents: []string{"react"},
	}
	assert.False(t, invalid.IsValid())
}

func TestValidationResultJSON(t *testing.T) {
	result := ValidationResult{
		Errors:            []string{"Missing required dependency: react"},
		Warnings:          []string{},
		MissingComponents: []string{"react"},
	}

	encoded, err := json.Marshal(result)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(encoded, &decoded))

	// isValid is emitted even though it is derived, so consumers of the
	// JSON form never have to recompute it.
	assert.Equal(t, false, decoded["isValid"])
	assert.Equal(t, []interface{}{"Missing required dependency: react"}, decoded["errors"])
	assert.Equal(t, []interface{}{}, decoded["warnings"])
	assert.Equal(t, []interface{}{"react"}, decoded["missingComponents"])
}

func TestDetectionResultJSONOmitsEmptyProjectType(t *testing.T) {
	result := DetectionResult{
		Detected:   false,
		Confidence: ConfidenceLow,
		Markers:    []string{},
	}

	encoded, err := json.Marshal(result)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.NotContains(t, decoded, "projectType")
	assert.Equal(t, "low", decoded["confidence"])
}
