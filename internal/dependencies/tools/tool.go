// Copyright (c) 2017-present SIGHUP s.r.l All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tools

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/Al-Pragliola/go-version"

	"github.com/sighupio/nukescript/internal/tool"
	"github.com/sighupio/nukescript/internal/tool/gcloud"
	"github.com/sighupio/nukescript/internal/tool/gsutil"
	execx "github.com/sighupio/nukescript/internal/x/exec"
)

var (
	ErrToolNotFound      = errors.New("tool not found")
	ErrWrongToolVersion  = errors.New("wrong tool version")
	ErrUnparsableVersion = errors.New("can't parse system tool version")
	ErrInvalidConstraint = errors.New("invalid version constraint")
)

type Tool interface {
	Name() tool.Name
	CheckBinVersion() error
}

func NewFactory(executor execx.Executor, paths tool.RunnerFactoryPaths) *Factory {
	return &Factory{
		runnerFactory: tool.NewRunnerFactory(executor, paths),
	}
}

type Factory struct {
	runnerFactory *tool.RunnerFactory
}

// Create returns the checker of name. constraint is a go-version constraint
// such as ">= 400.0.0"; an empty one only checks the tool runs.
func (f *Factory) Create(name tool.Name, constraint string) Tool {
	t := f.runnerFactory.Create(name, "")

	switch name {
	case tool.Gcloud:
		return NewGcloud(t.(*gcloud.Runner), constraint)

	case tool.Gsutil:
		return NewGsutil(t.(*gsutil.Runner), constraint)

	default:
		return nil
	}
}

type checker struct {
	name   tool.Name
	regex  *regexp.Regexp
	runner tool.Runner
}

func (vc *checker) installed() (*version.Version, error) {
	out, err := vc.runner.Version()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrToolNotFound, vc.name, err)
	}

	match := vc.regex.FindStringSubmatch(out)
	if len(match) < 2 { //nolint:mnd // full match plus the version group.
		return nil, fmt.Errorf("%w using regex '%s'", ErrUnparsableVersion, vc.regex.String())
	}

	v, err := version.NewVersion(match[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnparsableVersion, match[1], err)
	}

	return v, nil
}

func (vc *checker) version(constraint string) error {
	installed, err := vc.installed()
	if err != nil {
		return err
	}

	if constraint == "" {
		return nil
	}

	c, err := version.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidConstraint, constraint, err)
	}

	if !c.Check(installed) {
		return fmt.Errorf("%w: %s installed = %s, expected %s", ErrWrongToolVersion, vc.name, installed, constraint)
	}

	return nil
}
