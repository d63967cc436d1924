// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/webtune/webtune/internal/appdetect"
	"github.com/webtune/webtune/pkg/output"
)

func newDetectCmd() *cobra.Command {
	var excludePatterns []string
	var frameworks []string

	cmd := &cobra.Command{
		Use:   "detect [path]",
		Short: "Detect optimizable front-end projects under a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) > 0 {
				root = args[0]
			}

			var options []appdetect.DetectOption
			if len(excludePatterns) > 0 {
				options = append(options, appdetect.WithExcludePatterns(excludePatterns, false))
			}
			if len(frameworks) > 0 {
				options = append(options, appdetect.WithFrameworks(frameworks...))
			}

			projects, err := appdetect.Detect(cmd.Context(), root, options...)
			if err != nil {
				return err
			}

			formatter, err := output.GetFormatter(cmd)
			if err != nil {
				return err
			}

			writer := cmd.OutOrStdout()
			if formatter.Kind() == output.JsonFormat {
				return formatter.Format(projects, writer, nil)
			}

			if len(projects) == 0 {
				fmt.Fprintln(writer, "No optimizable projects found.")
				return nil
			}

			for _, project := range projects {
				fmt.Fprintf(writer, "%s  %s\n",
					output.WithSuccessFormat("%s", project.Framework), project.Path)
				fmt.Fprintf(writer, "  confidence: %s\n", project.Detection.Confidence)
				if project.Detection.ProjectType != "" {
					fmt.Fprintf(writer, "  type:       %s\n", project.Detection.ProjectType)
				}
				fmt.Fprintf(writer, "  markers:    %s\n",
					strings.Join(project.Detection.Markers, ", "))
			}

			return nil
		},
	}

	cmd.Flags().StringArrayVar(&excludePatterns, "exclude", nil,
		"Glob patterns of directories to exclude from scanning")
	cmd.Flags().StringSliceVar(&frameworks, "framework", nil,
		"Restrict detection to the named frameworks")
	output.AddOutputParam(cmd, []output.Format{output.TextFormat, output.JsonFormat}, output.TextFormat)

	return cmd
}
