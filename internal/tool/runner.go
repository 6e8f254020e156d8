// Copyright (c) 2017-present SIGHUP s.r.l All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tool

import (
	"github.com/sighupio/nukescript/internal/command"
	"github.com/sighupio/nukescript/internal/tool/gcloud"
	"github.com/sighupio/nukescript/internal/tool/gsutil"
	execx "github.com/sighupio/nukescript/internal/x/exec"
)

type Name string

const (
	Gcloud Name = command.Gcloud
	Gsutil Name = command.Gsutil
)

type Runner interface {
	CmdPath() string
	Run(c command.Command) execx.Result
	Version() (string, error)
}

// RunnerFactoryPaths holds the binaries to invoke. Empty values fall back to
// the tool name, resolved through PATH.
type RunnerFactoryPaths struct {
	Gcloud string
	Gsutil string
}

func NewRunnerFactory(executor execx.Executor, paths RunnerFactoryPaths) *RunnerFactory {
	return &RunnerFactory{
		executor: executor,
		paths:    paths,
	}
}

type RunnerFactory struct {
	executor execx.Executor
	paths    RunnerFactoryPaths
}

func (rf *RunnerFactory) Gcloud(workDir string) *gcloud.Runner {
	return gcloud.NewRunner(rf.executor, gcloud.Paths{
		Gcloud:  orDefault(rf.paths.Gcloud, string(Gcloud)),
		WorkDir: workDir,
	})
}

func (rf *RunnerFactory) Gsutil(workDir string) *gsutil.Runner {
	return gsutil.NewRunner(rf.executor, gsutil.Paths{
		Gsutil:  orDefault(rf.paths.Gsutil, string(Gsutil)),
		WorkDir: workDir,
	})
}

func (rf *RunnerFactory) Create(name Name, workDir string) Runner {
	switch name {
	case Gcloud:
		return rf.Gcloud(workDir)

	case Gsutil:
		return rf.Gsutil(workDir)

	default:
		return nil
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}

	return v
}
