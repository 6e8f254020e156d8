// Copyright (c) 2017-present SIGHUP s.r.l All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"runtime"

	"github.com/sirupsen/logrus"

	"github.com/sighupio/nukescript/cmd"
	"github.com/sighupio/nukescript/internal/app"
)

var (
	version   = "unknown"
	gitCommit = "unknown"
	buildTime = "unknown"
	goVersion = "unknown"
	osArch    = "unknown"
)

func main() {
	os.Exit(exec())
}

func exec() int {
	log := &logrus.Logger{
		Out: os.Stderr,
		Formatter: &logrus.TextFormatter{
			ForceColors:      true,
			DisableTimestamp: true,
		},
		Level: logrus.DebugLevel,
	}

	ctn := app.GetContainerInstance()

	ctn.Version = version
	ctn.GitCommit = gitCommit
	ctn.BuildTime = buildTime
	ctn.GoVersion = goVersion
	ctn.MachineArch = osArch
	ctn.MachineOS = runtime.GOOS

	if _, err := cmd.NewRootCmd().ExecuteC(); err != nil {
		log.Error(err)

		return 1
	}

	return 0
}
