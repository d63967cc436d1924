// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package provider defines the contract between the webtune host and its
// framework providers.
//
// A provider answers two questions about a project directory:
//
//   - Detect: exploratory — does this look like a project built on the
//     provider's framework, and with what confidence? Detect never fails;
//     anything that goes wrong degrades the result toward "not detected".
//   - Validate: authoritative — does the project satisfy the minimum
//     structural requirements for the optimization pipeline? Findings are
//     reported as data (errors, warnings), not as Go errors.
//
// Requirements and Config expose static capability metadata so the host can
// present what a provider needs without invoking it.
package provider

import (
	"context"
	"encoding/json"

	"github.com/webtune/webtune/internal/nodejs"
)

// Confidence is the qualitative certainty attached to a detection result.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// DetectionResult is the outcome of an exploratory detection pass.
type DetectionResult struct {
	// Detected reports whether the provider's framework was found. When
	// true, Confidence is ConfidenceHigh and Markers contains at least the
	// primary framework marker.
	Detected bool `json:"detected"`

	Confidence Confidence `json:"confidence"`

	// Markers lists the evidence found, in discovery order.
	Markers []string `json:"markers"`

	// ProjectType is the inferred project topology (e.g. "react-spa",
	// "react-fullstack"). Empty when the framework was not detected.
	ProjectType string `json:"projectType,omitempty"`
}

// ProjectContext carries everything a provider needs to validate a project.
// The host constructs it, typically after a successful detection: the
// manifest is parsed up front and the two capability booleans are computed
// by the host, not by the provider.
type ProjectContext struct {
	ProjectPath         string
	Manifest            *nodejs.PackageJSON
	HasTypeScript       bool
	HasStylingFramework bool
}

// ValidationResult is the outcome of an authoritative validation pass.
// Entry order within each slice follows check order and is stable across
// runs with identical input.
type ValidationResult struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`

	// MissingComponents names the required dependencies whose absence
	// produced an entry in Errors.
	MissingComponents []string `json:"missingComponents"`
}

// IsValid reports whether the project passed validation. It is derived from
// Errors rather than stored, so it can never disagree with them.
func (r ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

// MarshalJSON includes the derived isValid field alongside the findings.
func (r ValidationResult) MarshalJSON() ([]byte, error) {
	type alias ValidationResult
	return json.Marshal(struct {
		IsValid bool `json:"isValid"`
		alias
	}{
		IsValid: r.IsValid(),
		alias:   alias(r),
	})
}

// Requirements describes what a provider's framework projects must and
// should contain. The record is constant per provider.
type Requirements struct {
	Framework        string   `json:"framework"`
	Renderer         string   `json:"renderer"`
	Bundlers         []string `json:"bundlers"`
	Languages        []string `json:"languages"`
	RequiredFiles    []string `json:"requiredFiles"`
	RequiredPackages []string `json:"requiredPackages"`
	OptionalPackages []string `json:"optionalPackages"`
}

// Config describes the conventions the optimization pipeline assumes for a
// provider's projects. The record is constant per provider.
type Config struct {
	ProjectTypes []string `json:"projectTypes"`
	OptimizeDirs []string `json:"optimizeDirs"`
	BuildCommand string   `json:"buildCommand"`
	DevCommand   string   `json:"devCommand"`
	OutputDir    string   `json:"outputDir"`
}

// Provider is a framework detector. Implementations are stateless and safe
// for concurrent use; every call is self-contained.
type Provider interface {
	// Name identifies the provider in registries and output.
	Name() string

	// Detect inspects projectPath for evidence of the provider's framework.
	// It never returns an error: unreadable or malformed input degrades the
	// result to not-detected instead.
	Detect(ctx context.Context, projectPath string) DetectionResult

	// Validate checks a well-formed ProjectContext against the provider's
	// minimum requirements. Missing dependencies are findings, not errors.
	Validate(ctx context.Context, project ProjectContext) ValidationResult

	// Requirements returns the provider's static requirements record.
	Requirements() Requirements

	// Config returns the provider's static conventions record.
	Config() Config
}
