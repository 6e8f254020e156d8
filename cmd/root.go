// Copyright (c) 2017-present SIGHUP s.r.l All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	cobrax "github.com/sighupio/nukescript/internal/x/cobra"
	execx "github.com/sighupio/nukescript/internal/x/exec"
	logrusx "github.com/sighupio/nukescript/internal/x/logrus"
)

const logFilePerm = 0o600

type rootConfig struct {
	Debug         bool
	DisableColors bool
	Log           string
}

func NewRootCmd() *cobra.Command {
	var logFile *os.File

	cfg := &rootConfig{}

	rootCmd := &cobra.Command{
		Use:   "nukescript",
		Short: "Generate a shell script that deletes every resource of a Google Cloud project",
		Long: `nukescript walks the gcloud command tree of a project, lists every resource it finds
and prints one delete command per resource, children before their parents.

Nothing is deleted by nukescript itself: review the generated script and run it yourself.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if err := viper.BindPFlags(cmd.Flags()); err != nil {
				logrus.Fatalf("error while binding flags: %v", err)
			}

			cfg.Debug = viper.GetBool("debug")
			cfg.DisableColors = viper.GetBool("disable-colors")
			cfg.Log = viper.GetString("log")

			if cfg.Log != "" {
				var err error

				logFile, err = os.OpenFile(cfg.Log, os.O_CREATE|os.O_APPEND|os.O_WRONLY, logFilePerm)
				if err != nil {
					logrus.Fatalf("error while opening log file %s: %v", cfg.Log, err)
				}
			}

			logrusx.InitLog(logFile, cfg.Debug, cfg.DisableColors)

			execx.Debug = cfg.Debug
			execx.LogFile = logFile

			logrus.Debugf("Running %s", cobrax.GetFullname(cmd))
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if logFile == nil {
				return
			}

			execx.LogFile = nil

			logrusx.InitLog(nil, cfg.Debug, cfg.DisableColors)

			if err := logFile.Close(); err != nil {
				logrus.Debugf("error while closing log file: %v", err)
			}
		},
	}

	viper.SetEnvPrefix("NUKESCRIPT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.PersistentFlags().BoolP("debug", "D", false, "Enables debug output, including the output of every gcloud call")
	rootCmd.PersistentFlags().StringP("log", "l", "", "Path to a file where every log line is written as JSON")
	rootCmd.PersistentFlags().Bool("disable-colors", false, "Disables colored log output")

	rootCmd.AddCommand(NewGenerateCmd())
	rootCmd.AddCommand(NewDiscoverCmd())
	rootCmd.AddCommand(NewInventoryCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}
