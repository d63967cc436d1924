// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package react implements the React framework provider.
//
// Detection is driven by the project manifest: a project is considered a
// React project when both react and react-dom are declared as dependencies.
// Meta-frameworks (Next.js, Gatsby, Remix) and the Vite toolchain contribute
// additional markers, and the directory shape (public, src, client, server)
// determines the inferred project topology.
package react

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"github.com/webtune/webtune/internal/nodejs"
	"github.com/webtune/webtune/internal/provider"
	"github.com/webtune/webtune/pkg/osutil"
)

const (
	depReact      = "react"
	depReactDom   = "react-dom"
	depVite       = "vite"
	depVitePlugin = "@vitejs/plugin-react"
	depWebpack    = "webpack"
	depTypeScript = "typescript"
)

// Project topology tags reported in DetectionResult.ProjectType.
const (
	ProjectTypeBare      = "react"
	ProjectTypeSPA       = "react-spa"
	ProjectTypeFullStack = "react-fullstack"
)

// metaFrameworks lists the recognized React meta-frameworks in priority
// order. The first match wins; later candidates are not consulted, so a
// project declaring both next and gatsby is reported as Next.js only.
var metaFrameworks = []struct {
	dep     string
	display string
}{
	{"next", "Next.js"},
	{"gatsby", "Gatsby"},
	{"@remix-run/react", "Remix"},
}

// entryPointCandidates are the conventional locations of the HTML entry
// point, probed in order with first-hit stop.
var entryPointCandidates = []string{
	"index.html",
	filepath.Join("public", "index.html"),
	filepath.Join("client", "index.html"),
}

type reactProvider struct {
}

// New returns the React provider.
func New() provider.Provider {
	return &reactProvider{}
}

func (p *reactProvider) Name() string {
	return "react"
}

// Detect inspects projectPath for React evidence. It never returns an
// error: a missing or malformed manifest simply yields no dependency
// evidence, and unreadable directories count as absent.
func (p *reactProvider) Detect(ctx context.Context, projectPath string) provider.DetectionResult {
	result := provider.DetectionResult{
		Confidence: provider.ConfidenceLow,
		Markers:    []string{},
	}

	pkg, err := nodejs.Load(projectPath)
	if err != nil {
		// Expected for non-npm directories. Detection proceeds with an
		// empty manifest and reports not-detected.
		log.Printf("react: no usable manifest at %s: %v", projectPath, err)
		pkg = &nodejs.PackageJSON{}
	}

	deps := pkg.AllDependencies()

	_, hasReact := deps[depReact]
	_, hasReactDom := deps[depReactDom]
	if hasReact && hasReactDom {
		result.Detected = true
		result.Confidence = provider.ConfidenceHigh
		result.Markers = append(result.Markers, depReact, depReactDom)

		for _, meta := range metaFrameworks {
			if _, ok := deps[meta.dep]; ok {
				result.Markers = append(result.Markers, meta.display)
				break
			}
		}

		_, hasVite := deps[depVite]
		_, hasVitePlugin := deps[depVitePlugin]
		if hasVite && hasVitePlugin {
			result.Markers = append(result.Markers, "Vite")
		}
	}

	hasPublic := osutil.DirExists(filepath.Join(projectPath, "public"))
	hasSrc := osutil.DirExists(filepath.Join(projectPath, "src"))
	hasClient := osutil.DirExists(filepath.Join(projectPath, "client"))
	log.Printf("react: layout of %s: public=%t src=%t client=%t",
		projectPath, hasPublic, hasSrc, hasClient)

	if result.Detected {
		switch {
		case hasClient:
			if osutil.DirExists(filepath.Join(projectPath, "server")) {
				result.ProjectType = ProjectTypeFullStack
			} else {
				result.ProjectType = ProjectTypeSPA
			}
		case hasSrc:
			result.ProjectType = ProjectTypeSPA
		default:
			result.ProjectType = ProjectTypeBare
		}
	}

	return result
}

// Validate checks project against the minimum requirements for the
// optimization pipeline. All checks run; none short-circuits another, and
// entry order in the result follows check order.
func (p *reactProvider) Validate(ctx context.Context, project provider.ProjectContext) provider.ValidationResult {
	result := provider.ValidationResult{
		Errors:            []string{},
		Warnings:          []string{},
		MissingComponents: []string{},
	}

	deps := project.Manifest.AllDependencies()

	if _, ok := deps[depReact]; !ok {
		result.Errors = append(result.Errors, "Missing required dependency: react")
		result.MissingComponents = append(result.MissingComponents, depReact)
	}

	if _, ok := deps[depReactDom]; !ok {
		result.Errors = append(result.Errors, "Missing required dependency: react-dom")
		result.MissingComponents = append(result.MissingComponents, depReactDom)
	}

	_, hasVite := deps[depVite]
	_, hasVitePlugin := deps[depVitePlugin]
	_, hasWebpack := deps[depWebpack]
	if !(hasVite && hasVitePlugin) && !hasWebpack {
		result.Warnings = append(result.Warnings,
			"No supported bundler found (vite with @vitejs/plugin-react, or webpack); optimization will be limited")
	}

	if _, ok := deps[depTypeScript]; !ok {
		result.Warnings = append(result.Warnings,
			"TypeScript is recommended for better optimization results")
	}

	entryFound := false
	for _, candidate := range entryPointCandidates {
		if osutil.FileExists(filepath.Join(project.ProjectPath, candidate)) {
			entryFound = true
			break
		}
	}
	if !entryFound {
		result.Warnings = append(result.Warnings,
			"No index.html entry point found at the project root, public/, or client/")
	}

	if reactRange, ok := project.Manifest.Dependency(depReact); ok {
		if domRange, ok := project.Manifest.Dependency(depReactDom); ok {
			reactMajor, okReact := nodejs.MajorVersion(reactRange)
			domMajor, okDom := nodejs.MajorVersion(domRange)
			if okReact && okDom && reactMajor != domMajor {
				result.Warnings = append(result.Warnings, fmt.Sprintf(
					"react (v%d) and react-dom (v%d) declare different major versions", reactMajor, domMajor))
			}
		}
	}

	return result
}

func (p *reactProvider) Requirements() provider.Requirements {
	return provider.Requirements{
		Framework:        depReact,
		Renderer:         depReactDom,
		Bundlers:         []string{depVite, depWebpack},
		Languages:        []string{"javascript", "typescript"},
		RequiredFiles:    []string{nodejs.ManifestFileName},
		RequiredPackages: []string{depReact, depReactDom},
		OptionalPackages: []string{depTypeScript, depVite, depVitePlugin, depWebpack},
	}
}

func (p *reactProvider) Config() provider.Config {
	return provider.Config{
		ProjectTypes: []string{ProjectTypeBare, ProjectTypeSPA, ProjectTypeFullStack},
		OptimizeDirs: []string{"src", "public", "client"},
		BuildCommand: "npm run build",
		DevCommand:   "npm run dev",
		OutputDir:    "dist",
	}
}
