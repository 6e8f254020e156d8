// Copyright (c) 2017-present SIGHUP s.r.l All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/sighupio/nukescript/internal/command"
	"github.com/sighupio/nukescript/internal/discovery"
	"github.com/sighupio/nukescript/internal/planner"
	"github.com/sighupio/nukescript/internal/tool"
	execx "github.com/sighupio/nukescript/internal/x/exec"
)

// DiscoverTreeRequest selects the tree to show. AnyURI drops the --uri
// requirement, showing groups only listable by name. A nil MaxDepth means
// planner.DefaultMaxDepth.
type DiscoverTreeRequest struct {
	Component    string `validate:"required"`
	ResourceType string
	MaxDepth     *int `validate:"omitempty,gte=0"`
	AnyURI       bool
	GcloudPath   string
}

type DiscoverTreeResponse struct {
	Root       planner.Node
	Capability discovery.Result[discovery.Capability]
}

func NewDiscoverTree(executor execx.Executor) *DiscoverTree {
	return &DiscoverTree{
		executor: executor,
		validate: validator.New(),
	}
}

// DiscoverTree shows what a generate run would walk through, without listing
// anything.
type DiscoverTree struct {
	executor execx.Executor
	validate *validator.Validate
}

func (d *DiscoverTree) Execute(req DiscoverTreeRequest) (DiscoverTreeResponse, error) {
	if err := d.validate.Struct(req); err != nil {
		return DiscoverTreeResponse{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	if len(strings.Fields(req.Component)) != 1 {
		return DiscoverTreeResponse{}, fmt.Errorf("%w: component must be a single word, got %q", ErrInvalidRequest, req.Component)
	}

	runner := tool.NewRunnerFactory(d.executor, tool.RunnerFactoryPaths{Gcloud: req.GcloudPath}).Gcloud("")

	reqs := discovery.DefaultRequirements()
	reqs.URISupport = !req.AnyURI

	p := planner.New(runner, nil, planner.WithMaxDepth(orDefaultDepth(req.MaxDepth)), planner.WithRequirements(reqs))

	root := p.Tree(req.Component, req.ResourceType)

	return DiscoverTreeResponse{
		Root:       root,
		Capability: discovery.NewProber(runner).Probe(command.NewPath(req.Component, req.ResourceType)),
	}, nil
}
