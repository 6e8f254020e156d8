// Copyright (c) 2017-present SIGHUP s.r.l All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tools

import (
	"github.com/sirupsen/logrus"

	"github.com/sighupio/nukescript/internal/tool"
	execx "github.com/sighupio/nukescript/internal/x/exec"
)

// Requirement is a tool and the version constraint it must satisfy.
type Requirement struct {
	Name       tool.Name
	Constraint string
}

func NewValidator(executor execx.Executor, paths tool.RunnerFactoryPaths) *Validator {
	return &Validator{
		toolFactory: NewFactory(executor, paths),
	}
}

type Validator struct {
	toolFactory *Factory
}

// Validate checks every requirement and returns the names of the tools that
// passed and the errors of those that did not.
func (tv *Validator) Validate(reqs ...Requirement) ([]string, []error) {
	var oks []string

	var errs []error

	for _, r := range reqs {
		t := tv.toolFactory.Create(r.Name, r.Constraint)
		if t == nil {
			continue
		}

		if err := t.CheckBinVersion(); err != nil {
			errs = append(errs, err)

			continue
		}

		logrus.Debugf("%s satisfies '%s'", r.Name, r.Constraint)

		oks = append(oks, string(r.Name))
	}

	return oks, errs
}
