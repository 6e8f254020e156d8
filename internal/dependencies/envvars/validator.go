// Copyright (c) 2017-present SIGHUP s.r.l All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package envvars

import (
	"errors"
	"fmt"
	"os"
)

// ProjectEnvVar overrides the project of the active gcloud configuration.
const ProjectEnvVar = "CLOUDSDK_CORE_PROJECT"

var ErrConflictingEnvVar = errors.New("environment variable conflicts with the requested project")

func NewValidator() *Validator {
	return &Validator{
		getenv: os.Getenv,
	}
}

// NewValidatorWithGetenv reads variables through getenv instead of the
// process environment.
func NewValidatorWithGetenv(getenv func(string) string) *Validator {
	return &Validator{
		getenv: getenv,
	}
}

type Validator struct {
	getenv func(string) string
}

// Validate makes sure gcloud lists the same project the script deletes from:
// list commands follow the active configuration, deletes carry --project.
func (ev *Validator) Validate(project string) ([]string, []error) {
	oks := make([]string, 0)
	errs := make([]error, 0)

	v := ev.getenv(ProjectEnvVar)

	switch v {
	case "":

	case project:
		oks = append(oks, ProjectEnvVar)

	default:
		errs = append(errs, fmt.Errorf("%w: %s=%s, project=%s", ErrConflictingEnvVar, ProjectEnvVar, v, project))
	}

	return oks, errs
}
