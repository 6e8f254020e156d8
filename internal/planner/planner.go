// Copyright (c) 2017-present SIGHUP s.r.l All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package planner walks gcloud's resource namespace and emits one delete per
// resource instance, children before their parents.
package planner

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/sighupio/nukescript/internal/command"
	"github.com/sighupio/nukescript/internal/discovery"
	"github.com/sighupio/nukescript/internal/x/slices"
)

const DefaultMaxDepth = 8

var (
	ErrEmptyComponent = errors.New("component is required")
	ErrListFailed     = errors.New("list failed")
	ErrEmitFailed     = errors.New("error while emitting deletion")
)

// Emitter receives deletions in the order they must run.
type Emitter interface {
	Emit(d command.Deletion) error
}

type Options struct {
	UseURI  bool
	Project string
	Filter  string
	Async   bool
}

type Option func(*Planner)

// WithMaxDepth bounds how many levels below a resource type are explored.
func WithMaxDepth(depth int) Option {
	return func(p *Planner) {
		p.maxDepth = depth
	}
}

// WithRequirements changes what a child group must support to be planned.
func WithRequirements(req discovery.Requirements) Option {
	return func(p *Planner) {
		p.req = req
	}
}

type Planner struct {
	runner   discovery.Runner
	prober   *discovery.Prober
	emitter  Emitter
	maxDepth int
	req      discovery.Requirements
	visited  map[string]struct{}
}

func New(runner discovery.Runner, emitter Emitter, opts ...Option) *Planner {
	p := &Planner{
		runner:   runner,
		prober:   discovery.NewProber(runner),
		emitter:  emitter,
		maxDepth: DefaultMaxDepth,
		req:      discovery.DefaultRequirements(),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Plan emits the deletions of every instance of resourceTypes under component
// and of all their enabled descendants. Probe and list failures only narrow
// the plan; the returned error is reserved for bad input and emitter failures.
func (p *Planner) Plan(component string, resourceTypes []string, opts Options) error {
	if strings.TrimSpace(component) == "" {
		return ErrEmptyComponent
	}

	if opts.Project == "" {
		return command.ErrMissingProject
	}

	p.visited = make(map[string]struct{})

	paths := slices.Map(resourceTypes, func(rt string) command.Path {
		return command.NewPath(component, rt)
	})

	return p.plan(paths, 0, opts)
}

func (p *Planner) plan(paths []command.Path, depth int, opts Options) error {
	for _, path := range paths {
		if !p.enter(path, depth) {
			continue
		}

		children := p.prober.ListEnabledChildren(path, p.req)
		if children.Failed() {
			logrus.Warnf("Cannot discover children of %s, planning its own instances only", path)
		}

		if len(children.Value) > 0 {
			if err := p.plan(children.Value, depth+1, opts); err != nil {
				return err
			}
		}

		if err := p.emitInstances(path, opts); err != nil {
			return err
		}
	}

	return nil
}

func (p *Planner) enter(path command.Path, depth int) bool {
	if depth > p.maxDepth {
		logrus.Warnf("Skipping %s: deeper than %d levels", path, p.maxDepth)

		return false
	}

	if _, ok := p.visited[path.String()]; ok {
		logrus.Warnf("Skipping %s: already planned", path)

		return false
	}

	p.visited[path.String()] = struct{}{}

	return true
}

func (p *Planner) emitInstances(path command.Path, opts Options) error {
	instances := p.list(path, opts.UseURI, opts.Filter)

	for _, id := range instances.Value {
		d := command.Delete{
			Path:       path,
			Project:    opts.Project,
			Identifier: id,
			Async:      opts.Async,
		}

		if err := p.emitter.Emit(d); err != nil {
			return fmt.Errorf("%w %s: %w", ErrEmitFailed, id, err)
		}
	}

	return nil
}

// ListInstances returns the identifiers of the instances of resourceType:
// URIs when useURI is set, bare names otherwise.
func (p *Planner) ListInstances(component, resourceType string, useURI bool, filter string) discovery.Result[[]string] {
	return p.list(command.NewPath(component, resourceType), useURI, filter)
}

func (p *Planner) list(path command.Path, useURI bool, filter string) discovery.Result[[]string] {
	logrus.Infof("Listing %s", path)

	res := p.runner.Run(command.List{Path: path, Filter: filter, URI: useURI})
	if !res.Succeeded() {
		err := fmt.Errorf("%w: %s exited with code %d", ErrListFailed, path, res.ExitCode)

		logrus.Warnf("%v: %s", err, strings.TrimSpace(res.Stderr))

		return discovery.Failed[[]string](err)
	}

	ids := slices.Clean(slices.Map(strings.Split(res.Stdout, "\n"), strings.TrimSpace))

	if len(ids) > 0 {
		logrus.Infof("Listed %d %s", len(ids), path)
	}

	return discovery.Succeeded(ids)
}
