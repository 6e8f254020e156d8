// Copyright (c) 2017-present SIGHUP s.r.l All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tools

import (
	"regexp"

	"github.com/sighupio/nukescript/internal/tool"
	"github.com/sighupio/nukescript/internal/tool/gcloud"
)

var gcloudVersionRegexp = regexp.MustCompile(`Google Cloud SDK (\S+)`)

func NewGcloud(runner *gcloud.Runner, constraint string) *Gcloud {
	return &Gcloud{
		checker: &checker{
			name:   tool.Gcloud,
			regex:  gcloudVersionRegexp,
			runner: runner,
		},
		constraint: constraint,
	}
}

type Gcloud struct {
	*checker
	constraint string
}

func (*Gcloud) Name() tool.Name {
	return tool.Gcloud
}

func (g *Gcloud) CheckBinVersion() error {
	return g.version(g.constraint)
}
