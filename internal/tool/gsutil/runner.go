// Copyright (c) 2017-present SIGHUP s.r.l All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gsutil

import (
	"errors"
	"fmt"

	"github.com/sighupio/nukescript/internal/command"
	execx "github.com/sighupio/nukescript/internal/x/exec"
)

var ErrWrongTool = errors.New("command is not meant for gsutil")

type Paths struct {
	Gsutil  string
	WorkDir string
}

type Runner struct {
	executor execx.Executor
	paths    Paths
}

func NewRunner(executor execx.Executor, paths Paths) *Runner {
	return &Runner{
		executor: executor,
		paths:    paths,
	}
}

func (r *Runner) CmdPath() string {
	return r.paths.Gsutil
}

func (r *Runner) Run(c command.Command) execx.Result {
	if c.Tool() != command.Gsutil {
		return execx.Result{ExitCode: 1, Err: fmt.Errorf("%w: %s", ErrWrongTool, c.Tool())}
	}

	if c.Kind() == command.KindDelete {
		return execx.Result{ExitCode: 1, Err: command.ErrNotExecutable}
	}

	if err := c.Validate(); err != nil {
		return execx.Result{ExitCode: 1, Err: err}
	}

	return execx.Output(execx.NewCmd(r.paths.Gsutil, execx.CmdOptions{
		Args:     c.Args(),
		Executor: r.executor,
		WorkDir:  r.paths.WorkDir,
	}))
}

func (r *Runner) Version() (string, error) {
	out, err := execx.CombinedOutput(execx.NewCmd(r.paths.Gsutil, execx.CmdOptions{
		Args:     []string{"version"},
		Executor: r.executor,
		WorkDir:  r.paths.WorkDir,
	}))
	if err != nil {
		return "", fmt.Errorf("error getting gsutil version: %w", err)
	}

	return out, nil
}
