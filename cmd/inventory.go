// Copyright (c) 2017-present SIGHUP s.r.l All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sighupio/nukescript/internal/inventory"
)

func NewInventoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inventory",
		Short: "Print the built-in resource inventory as YAML",
		Long: `Print the built-in resource inventory as YAML.

The output is a valid inventory file: edit it and pass it to "nukescript generate --inventory"
to change which components and resource types are walked.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := inventory.Default().Marshal()
			if err != nil {
				return fmt.Errorf("error while marshaling inventory: %w", err)
			}

			if _, err := cmd.OutOrStdout().Write(out); err != nil {
				return fmt.Errorf("error while printing inventory: %w", err)
			}

			return nil
		},
	}
}
