// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/webtune/webtune/internal/appdetect"
	"github.com/webtune/webtune/internal/provider"
	"github.com/webtune/webtune/pkg/output"
)

type providerInfo struct {
	Framework    string                `json:"framework"`
	Requirements provider.Requirements `json:"requirements"`
	Config       provider.Config       `json:"config"`
}

func newRequirementsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "requirements",
		Short: "Show what each framework provider requires and assumes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			infos := []providerInfo{}
			for _, p := range appdetect.Providers() {
				infos = append(infos, providerInfo{
					Framework:    p.Name(),
					Requirements: p.Requirements(),
					Config:       p.Config(),
				})
			}

			formatter, err := output.GetFormatter(cmd)
			if err != nil {
				return err
			}

			writer := cmd.OutOrStdout()
			if formatter.Kind() == output.JsonFormat {
				return formatter.Format(infos, writer, nil)
			}

			for _, info := range infos {
				req := info.Requirements
				cfg := info.Config

				fmt.Fprintln(writer, output.WithHighLightFormat("%s", info.Framework))
				fmt.Fprintf(writer, "  required files:    %s\n", strings.Join(req.RequiredFiles, ", "))
				fmt.Fprintf(writer, "  required packages: %s\n", strings.Join(req.RequiredPackages, ", "))
				fmt.Fprintf(writer, "  optional packages: %s\n", strings.Join(req.OptionalPackages, ", "))
				fmt.Fprintf(writer, "  bundlers:          %s\n", strings.Join(req.Bundlers, ", "))
				fmt.Fprintf(writer, "  languages:         %s\n", strings.Join(req.Languages, ", "))
				fmt.Fprintf(writer, "  project types:     %s\n", strings.Join(cfg.ProjectTypes, ", "))
				fmt.Fprintf(writer, "  optimize dirs:     %s\n", strings.Join(cfg.OptimizeDirs, ", "))
				fmt.Fprintf(writer, "  build command:     %s\n", cfg.BuildCommand)
				fmt.Fprintf(writer, "  dev command:       %s\n", cfg.DevCommand)
				fmt.Fprintf(writer, "  output dir:        %s\n", cfg.OutputDir)
			}

			return nil
		},
	}

	output.AddOutputParam(cmd, []output.Format{output.TextFormat, output.JsonFormat}, output.TextFormat)

	return cmd
}
