// Copyright (c) 2017-present SIGHUP s.r.l All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package execx

import (
	"os"
	"os/exec"
	"path/filepath"
)

type Executor interface {
	Command(name string, arg ...string) *exec.Cmd
}

func NewStdExecutor() *StdExecutor {
	return &StdExecutor{}
}

type StdExecutor struct{}

func (e *StdExecutor) Command(name string, arg ...string) *exec.Cmd {
	return exec.Command(name, arg...)
}

// NewFakeExecutor returns an executor that re-runs the test binary, so that
// the named test function can act as the invoked tool.
func NewFakeExecutor(testName string) *FakeExecutor {
	return &FakeExecutor{
		testName: testName,
	}
}

type FakeExecutor struct {
	testName string
}

func (e *FakeExecutor) Command(name string, arg ...string) *exec.Cmd {
	cs := []string{"-test.run=" + e.testName, "--", filepath.Base(name)}
	cs = append(cs, arg...)

	return exec.Command(os.Args[0], cs...)
}
