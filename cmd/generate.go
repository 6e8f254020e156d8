// Copyright (c) 2017-present SIGHUP s.r.l All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sighupio/nukescript/internal/app"
	"github.com/sighupio/nukescript/internal/inventory"
	"github.com/sighupio/nukescript/internal/planner"
)

const (
	DefaultKeyFile          = "project-viewer-credentials.json"
	DefaultMinGcloudVersion = ">= 300.0.0"
)

func NewGenerateCmd() *cobra.Command {
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the deletion script for a project",
		Long: `Generate the deletion script for a project.

The script is written to stdout, or to the file given with --output. Progress and
diagnostics go to stderr, so the two can be redirected separately:

  nukescript generate -p my-project -k viewer.json > nuke.sh

A filter in the form labels.KEY=VALUE is also used to select buckets.`,
		Args: cobra.NoArgs,
		PreRun: func(cmd *cobra.Command, _ []string) {
			if err := viper.BindPFlags(cmd.Flags()); err != nil {
				logrus.Fatalf("error while binding flags: %v", err)
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctn := app.GetContainerInstance()

			inv, err := loadInventory(viper.GetString("inventory"))
			if err != nil {
				return err
			}

			out, closeOut, err := openOutput(cmd.OutOrStdout(), viper.GetString("output"))
			if err != nil {
				return err
			}

			defer closeOut()

			res, err := app.NewGenerateScript(ctn.Executor()).Execute(app.GenerateScriptRequest{
				Project:          viper.GetString("project"),
				KeyFile:          viper.GetString("key-file"),
				Filter:           viper.GetString("filter"),
				Async:            viper.GetBool("background"),
				SkipLogin:        viper.GetBool("skip-login"),
				SkipBuckets:      viper.GetBool("skip-buckets"),
				SkipDependencies: viper.GetBool("skip-dependencies"),
				MaxDepth:         maxDepth(),
				Inventory:        inv,
				GcloudPath:       viper.GetString("gcloud-path"),
				GsutilPath:       viper.GetString("gsutil-path"),
				MinGcloudVersion: viper.GetString("min-gcloud-version"),
				Version:          ctn.Version,
				Out:              out,
				Progress:         cmd.ErrOrStderr(),
			})
			if err != nil {
				return fmt.Errorf("error while generating script: %w", err)
			}

			logrus.Infof("Script generated with %d deletions, review it before running it", res.Deletions)

			return nil
		},
	}

	generateCmd.Flags().StringP("project", "p", "", "Google Cloud project to empty")
	generateCmd.Flags().StringP("key-file", "k", DefaultKeyFile, "Service account key file used to log in")
	generateCmd.Flags().StringP(
		"filter",
		"f",
		"",
		"Filter passed to every list call with --filter. A labels.KEY=VALUE filter also selects buckets",
	)
	generateCmd.Flags().BoolP(
		"background",
		"b",
		false,
		"Do not wait for deletions: gcloud deletes get --async, bucket removals are sent to the background with &",
	)
	generateCmd.Flags().StringP("inventory", "c", "", "Path to an inventory file, the built-in inventory is used when empty")
	generateCmd.Flags().StringP("output", "o", "", "Path to the file where the script is written, stdout when empty")
	generateCmd.Flags().Int("max-depth", planner.DefaultMaxDepth, "Maximum depth of the command groups walked below a resource type")
	generateCmd.Flags().Bool("skip-login", false, "Use the current gcloud credentials instead of activating the key file")
	generateCmd.Flags().Bool("skip-buckets", false, "Do not list and delete Cloud Storage buckets")
	generateCmd.Flags().Bool("skip-dependencies", false, "Do not check that gcloud and gsutil are installed")
	generateCmd.Flags().String("gcloud-path", "", "Path to the gcloud binary, looked up in PATH when empty")
	generateCmd.Flags().String("gsutil-path", "", "Path to the gsutil binary, looked up in PATH when empty")
	generateCmd.Flags().String("min-gcloud-version", DefaultMinGcloudVersion, "Version constraint gcloud must satisfy")

	return generateCmd
}

func loadInventory(path string) (inventory.Inventory, error) {
	if path == "" {
		return inventory.Default(), nil
	}

	logrus.Debugf("Loading inventory from %s", path)

	inv, err := inventory.Load(path)
	if err != nil {
		return inventory.Inventory{}, fmt.Errorf("%w: %w", ErrLoadingInventory, err)
	}

	return inv, nil
}

func openOutput(stdout io.Writer, path string) (io.Writer, func(), error) {
	if path == "" {
		return stdout, func() {}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrOpeningOutput, err)
	}

	return f, func() {
		if err := f.Close(); err != nil {
			logrus.Errorf("error while closing %s: %v", path, err)
		}
	}, nil
}

func maxDepth() *int {
	depth := viper.GetInt("max-depth")

	return &depth
}
