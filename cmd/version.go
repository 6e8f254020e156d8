// Copyright (c) 2017-present SIGHUP s.r.l All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"

	"github.com/sighupio/nukescript/internal/app"
)

func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of nukescript",
		Run: func(cmd *cobra.Command, _ []string) {
			versions := app.GetContainerInstance().Versions().Map()

			keys := make([]string, 0, len(versions))
			for k := range versions {
				keys = append(keys, k)
			}

			slices.Sort(keys)

			for _, k := range keys {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", k, versions[k])
			}
		},
	}
}
