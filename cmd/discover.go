// Copyright (c) 2017-present SIGHUP s.r.l All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sighupio/nukescript/internal/app"
	"github.com/sighupio/nukescript/internal/discovery"
	"github.com/sighupio/nukescript/internal/planner"
)

const maxDiscoverArgs = 2

func NewDiscoverCmd() *cobra.Command {
	discoverCmd := &cobra.Command{
		Use:   "discover COMPONENT [RESOURCE_TYPE]",
		Short: "Show the resource groups generate would walk below a gcloud command",
		Long: `Show the resource groups generate would walk below a gcloud command.

Only help pages are read, no resource is listed. Example:

  nukescript discover compute networks`,
		Args: cobra.RangeArgs(1, maxDiscoverArgs),
		PreRun: func(cmd *cobra.Command, _ []string) {
			if err := viper.BindPFlags(cmd.Flags()); err != nil {
				logrus.Fatalf("error while binding flags: %v", err)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			req := app.DiscoverTreeRequest{
				Component:  args[0],
				MaxDepth:   maxDepth(),
				AnyURI:     viper.GetBool("any-uri"),
				GcloudPath: viper.GetString("gcloud-path"),
			}

			if len(args) == maxDiscoverArgs {
				req.ResourceType = args[1]
			}

			res, err := app.NewDiscoverTree(app.GetContainerInstance().Executor()).Execute(req)
			if err != nil {
				return fmt.Errorf("error while discovering %s: %w", strings.Join(args, " "), err)
			}

			printTree(cmd.OutOrStdout(), res.Root)
			printCapability(cmd.OutOrStdout(), res.Capability)

			return nil
		},
	}

	discoverCmd.Flags().Int("max-depth", planner.DefaultMaxDepth, "Maximum depth of the command groups walked")
	discoverCmd.Flags().Bool("any-uri", false, "Also show groups whose list command has no --uri flag")
	discoverCmd.Flags().String("gcloud-path", "", "Path to the gcloud binary, looked up in PATH when empty")

	return discoverCmd
}

func printTree(w io.Writer, root planner.Node) {
	root.Walk(func(n planner.Node, depth int) {
		fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), n.Path)
	})
}

func printCapability(w io.Writer, c discovery.Result[discovery.Capability]) {
	if c.Failed() {
		fmt.Fprintf(w, "\ncapability: unknown (%v)\n", c.Err)

		return
	}

	fmt.Fprintf(w, "\ncommands: %s\n", strings.Join(c.Value.Commands, ", "))
	fmt.Fprintf(w, "list: %t, delete: %t, create: %t, uri: %t\n",
		c.Value.SupportsList, c.Value.SupportsDelete, c.Value.SupportsCreate, c.Value.SupportsURIOutput)

	if len(c.Value.RequiredDeleteArgs) > 0 {
		fmt.Fprintf(w, "required delete flags: %s\n", strings.Join(c.Value.RequiredDeleteArgs, ", "))
	}
}
