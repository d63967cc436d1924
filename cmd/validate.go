// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/webtune/webtune/internal/appdetect"
	"github.com/webtune/webtune/internal/nodejs"
	"github.com/webtune/webtune/internal/provider"
	"github.com/webtune/webtune/pkg/osutil"
	"github.com/webtune/webtune/pkg/output"
)

// stylingPackages are the dependencies that indicate a styling framework is
// in use. Consulted by the host when building the project context; providers
// do not compute this themselves.
var stylingPackages = []string{
	"tailwindcss",
	"styled-components",
	"@emotion/react",
	"sass",
	"less",
}

func newValidateCmd() *cobra.Command {
	var frameworkName string

	cmd := &cobra.Command{
		Use:   "validate [path]",
		Short: "Validate that a project meets the minimum requirements for optimization",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectPath := "."
			if len(args) > 0 {
				projectPath = args[0]
			}

			p, ok := appdetect.ProviderByName(frameworkName)
			if !ok {
				return fmt.Errorf("unknown framework %q", frameworkName)
			}

			manifest, err := nodejs.Load(projectPath)
			if err != nil {
				return fmt.Errorf("loading project manifest: %w", err)
			}

			project := provider.ProjectContext{
				ProjectPath:         projectPath,
				Manifest:            manifest,
				HasTypeScript:       hasTypeScript(projectPath, manifest),
				HasStylingFramework: hasStylingFramework(manifest),
			}

			result := p.Validate(cmd.Context(), project)

			formatter, err := output.GetFormatter(cmd)
			if err != nil {
				return err
			}

			writer := cmd.OutOrStdout()
			if formatter.Kind() == output.JsonFormat {
				if err := formatter.Format(result, writer, nil); err != nil {
					return err
				}
			} else {
				for _, msg := range result.Errors {
					fmt.Fprintln(writer, output.WithErrorFormat("error: %s", msg))
				}
				for _, msg := range result.Warnings {
					fmt.Fprintln(writer, output.WithWarningFormat("warning: %s", msg))
				}
				if result.IsValid() {
					fmt.Fprintln(writer, output.WithSuccessFormat("%s is ready for optimization", projectPath))
				}
			}

			if !result.IsValid() {
				return fmt.Errorf("%s does not meet the minimum requirements for %s",
					projectPath, frameworkName)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&frameworkName, "framework", "react", "Framework provider to validate against")
	output.AddOutputParam(cmd, []output.Format{output.TextFormat, output.JsonFormat}, output.TextFormat)

	return cmd
}

func hasTypeScript(projectPath string, manifest *nodejs.PackageJSON) bool {
	return manifest.HasDependency("typescript") ||
		osutil.FileExists(filepath.Join(projectPath, "tsconfig.json"))
}

func hasStylingFramework(manifest *nodejs.PackageJSON) bool {
	for _, name := range stylingPackages {
		if manifest.HasDependency(name) {
			return true
		}
	}

	return false
}
