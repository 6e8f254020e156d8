// Copyright (c) 2017-present SIGHUP s.r.l All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dependencies

import (
	"errors"
	"fmt"

	"github.com/sighupio/nukescript/internal/dependencies/envvars"
	"github.com/sighupio/nukescript/internal/dependencies/tools"
	"github.com/sighupio/nukescript/internal/tool"
	execx "github.com/sighupio/nukescript/internal/x/exec"
)

var (
	ErrValidatingTools = errors.New("errors validating tools")
	ErrValidatingEnv   = errors.New("errors validating env vars")
)

func NewValidator(executor execx.Executor, paths tool.RunnerFactoryPaths) *Validator {
	return &Validator{
		toolsValidator:   tools.NewValidator(executor, paths),
		envVarsValidator: envvars.NewValidator(),
	}
}

func NewValidatorWithEnv(executor execx.Executor, paths tool.RunnerFactoryPaths, env *envvars.Validator) *Validator {
	return &Validator{
		toolsValidator:   tools.NewValidator(executor, paths),
		envVarsValidator: env,
	}
}

type Validator struct {
	toolsValidator   *tools.Validator
	envVarsValidator *envvars.Validator
}

func (v *Validator) Validate(project string, reqs ...tools.Requirement) error {
	if _, errs := v.toolsValidator.Validate(reqs...); len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrValidatingTools, errors.Join(errs...))
	}

	if _, errs := v.envVarsValidator.Validate(project); len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrValidatingEnv, errors.Join(errs...))
	}

	return nil
}
