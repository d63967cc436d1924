// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the webtune command tree.
func NewRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "webtune",
		Short: "webtune - detect and validate front-end projects for optimization",
		Long: `webtune - detect and validate front-end projects for optimization

webtune inspects a directory tree for projects built on a supported front-end
framework and reports whether each project meets the minimum structural
requirements of the optimization pipeline.

The most common commands are:

	$ webtune detect ./workspace
	$ webtune validate ./workspace/my-app
	$ webtune requirements`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				log.SetFlags(log.LstdFlags | log.Lshortfile)
				log.SetOutput(os.Stderr)
			}
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	cmd.CompletionOptions.HiddenDefaultCmd = true

	cmd.AddCommand(newDetectCmd())
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newRequirementsCmd())

	return cmd
}
