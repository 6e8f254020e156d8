// Copyright (c) 2017-present SIGHUP s.r.l All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gcloud

import (
	"errors"
	"fmt"

	"github.com/sighupio/nukescript/internal/command"
	execx "github.com/sighupio/nukescript/internal/x/exec"
)

var ErrWrongTool = errors.New("command is not meant for gcloud")

type Paths struct {
	Gcloud  string
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
	return r.paths.Gcloud
}

// Run executes c and reports its outcome. A non-zero exit code is reported in
// the result, never as a panic or a separate error.
func (r *Runner) Run(c command.Command) execx.Result {
	if c.Tool() != command.Gcloud {
		return execx.Result{ExitCode: 1, Err: fmt.Errorf("%w: %s", ErrWrongTool, c.Tool())}
	}

	if c.Kind() == command.KindDelete {
		return execx.Result{ExitCode: 1, Err: command.ErrNotExecutable}
	}

	if err := c.Validate(); err != nil {
		return execx.Result{ExitCode: 1, Err: err}
	}

	return execx.Output(execx.NewCmd(r.paths.Gcloud, execx.CmdOptions{
		Args:     c.Args(),
		Executor: r.executor,
		WorkDir:  r.paths.WorkDir,
	}))
}

func (r *Runner) ActivateServiceAccount(keyFile string) error {
	_, err := execx.CombinedOutput(execx.NewCmd(r.paths.Gcloud, execx.CmdOptions{
		Args:     append(execx.Tokens(command.QuietFlag, "auth activate-service-account", "--key-file"), keyFile),
		Executor: r.executor,
		WorkDir:  r.paths.WorkDir,
	}))
	if err != nil {
		return fmt.Errorf("error activating service account: %w", err)
	}

	return nil
}

func (r *Runner) SetProject(project string) error {
	_, err := execx.CombinedOutput(execx.NewCmd(r.paths.Gcloud, execx.CmdOptions{
		Args:     append(execx.Tokens(command.QuietFlag, "config set project"), project),
		Executor: r.executor,
		WorkDir:  r.paths.WorkDir,
	}))
	if err != nil {
		return fmt.Errorf("error setting gcloud project: %w", err)
	}

	return nil
}

func (r *Runner) Version() (string, error) {
	out, err := execx.CombinedOutput(execx.NewCmd(r.paths.Gcloud, execx.CmdOptions{
		Args:     []string{"version"},
		Executor: r.executor,
		WorkDir:  r.paths.WorkDir,
	}))
	if err != nil {
		return "", fmt.Errorf("error getting gcloud version: %w", err)
	}

	return out, nil
}
