// Copyright (c) 2017-present SIGHUP s.r.l All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build unit

package envvars_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sighupio/nukescript/internal/dependencies/envvars"
)

func TestValidator_Validate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		desc    string
		env     map[string]string
		wantOks []string
		wantErr bool
	}{
		{
			desc:    "unset",
			env:     map[string]string{},
			wantOks: []string{},
		},
		{
			desc:    "same project",
			env:     map[string]string{envvars.ProjectEnvVar: "my-project"},
			wantOks: []string{envvars.ProjectEnvVar},
		},
		{
			desc:    "other project",
			env:     map[string]string{envvars.ProjectEnvVar: "prod"},
			wantOks: []string{},
			wantErr: true,
		},
	}

	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			t.Parallel()

			v := envvars.NewValidatorWithGetenv(func(k string) string {
				return tC.env[k]
			})

			oks, errs := v.Validate("my-project")

			assert.Equal(t, tC.wantOks, oks)

			if tC.wantErr {
				assert.Len(t, errs, 1)
				assert.ErrorIs(t, errs[0], envvars.ErrConflictingEnvVar)
			} else {
				assert.Empty(t, errs)
			}
		})
	}
}
