// Copyright (c) 2017-present SIGHUP s.r.l All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tools

import (
	"regexp"

	"github.com/sighupio/nukescript/internal/tool"
	"github.com/sighupio/nukescript/internal/tool/gsutil"
)

var gsutilVersionRegexp = regexp.MustCompile(`gsutil version: (\S+)`)

func NewGsutil(runner *gsutil.Runner, constraint string) *Gsutil {
	return &Gsutil{
		checker: &checker{
			name:   tool.Gsutil,
			regex:  gsutilVersionRegexp,
			runner: runner,
		},
		constraint: constraint,
	}
}

type Gsutil struct {
	*checker
	constraint string
}

func (*Gsutil) Name() tool.Name {
	return tool.Gsutil
}

func (g *Gsutil) CheckBinVersion() error {
	return g.version(g.constraint)
}
