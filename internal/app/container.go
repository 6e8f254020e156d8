// Copyright (c) 2017-present SIGHUP s.r.l All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"sync"

	execx "github.com/sighupio/nukescript/internal/x/exec"
)

var (
	container *Container      //nolint:gochecknoglobals // singleton pattern.
	lock      = &sync.Mutex{} //nolint:gochecknoglobals // singleton pattern.
)

type Parameters struct {
	MachineArch string
	MachineOS   string
	Version     string
	GitCommit   string
	BuildTime   string
	GoVersion   string
}

type services struct {
	executor execx.Executor
	versions *VersionsCtn
}

type Container struct {
	Parameters
	services
}

func NewDefaultParameters() Parameters {
	return Parameters{
		MachineArch: "unknown",
		MachineOS:   "unknown",
		Version:     "unknown",
		GitCommit:   "unknown",
		BuildTime:   "unknown",
		GoVersion:   "unknown",
	}
}

func GetContainerInstance() *Container {
	lock.Lock()
	defer lock.Unlock()

	if container == nil {
		container = &Container{
			Parameters: NewDefaultParameters(),
		}
	}

	return container
}

func (c *Container) Versions() *VersionsCtn {
	if c.versions == nil {
		c.versions = NewVersionsCtn(c.Version, c.GitCommit, c.BuildTime, c.GoVersion, c.MachineOS+"/"+c.MachineArch)
	}

	return c.versions
}

// Executor is the process executor every tool runner shares.
func (c *Container) Executor() execx.Executor {
	if c.executor == nil {
		c.executor = execx.NewStdExecutor()
	}

	return c.executor
}

// SetExecutor replaces the executor, tests use it to fake gcloud.
func (c *Container) SetExecutor(e execx.Executor) {
	c.executor = e
}
