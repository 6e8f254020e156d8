// Copyright (c) 2017-present SIGHUP s.r.l All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/sighupio/nukescript/internal/buckets"
	"github.com/sighupio/nukescript/internal/dependencies"
	"github.com/sighupio/nukescript/internal/dependencies/tools"
	"github.com/sighupio/nukescript/internal/inventory"
	"github.com/sighupio/nukescript/internal/planner"
	"github.com/sighupio/nukescript/internal/script"
	"github.com/sighupio/nukescript/internal/tool"
	execx "github.com/sighupio/nukescript/internal/x/exec"
)

const spinnerInterval = 100 * time.Millisecond

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrDependencies   = errors.New("dependencies are not satisfied")
	ErrLogin          = errors.New("error while logging in")
	ErrPlan           = errors.New("error while planning deletions")
)

// GenerateScriptRequest configures one script generation. The script goes to
// Out; Progress, when set, shows a spinner while gcloud is being probed. A nil
// MaxDepth means planner.DefaultMaxDepth, zero plans no nested groups.
type GenerateScriptRequest struct {
	Project          string `validate:"required"`
	KeyFile          string `validate:"required_without=SkipLogin"`
	Filter           string
	Async            bool
	SkipLogin        bool
	SkipBuckets      bool
	SkipDependencies bool
	MaxDepth         *int `validate:"omitempty,gte=0"`
	Inventory        inventory.Inventory
	GcloudPath       string
	GsutilPath       string
	MinGcloudVersion string
	Version          string
	Out              io.Writer `validate:"required"`
	Progress         io.Writer
}

type GenerateScriptResponse struct {
	RunID       string
	GeneratedAt time.Time
	Deletions   int
}

func NewGenerateScript(executor execx.Executor) *GenerateScript {
	return &GenerateScript{
		executor: executor,
		validate: validator.New(),
		now:      time.Now,
		runID:    uuid.NewString,
	}
}

// NewGenerateScriptWithClock pins the generation time and run id.
func NewGenerateScriptWithClock(executor execx.Executor, now func() time.Time, runID func() string) *GenerateScript {
	g := NewGenerateScript(executor)

	g.now = now
	g.runID = runID

	return g
}

type GenerateScript struct {
	executor execx.Executor
	validate *validator.Validate
	now      func() time.Time
	runID    func() string
}

func (g *GenerateScript) Execute(req GenerateScriptRequest) (GenerateScriptResponse, error) {
	res := GenerateScriptResponse{}

	if err := g.validate.Struct(req); err != nil {
		return res, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	if err := req.Inventory.Validate(); err != nil {
		return res, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	// A bad label filter must fail before anything gets written.
	if !req.SkipBuckets {
		if _, err := buckets.ParseLabelFilter(req.Filter); err != nil {
			return res, err
		}
	}

	paths := tool.RunnerFactoryPaths{
		Gcloud: req.GcloudPath,
		Gsutil: req.GsutilPath,
	}

	if !req.SkipDependencies {
		if err := g.checkDependencies(req, paths); err != nil {
			return res, err
		}
	}

	rf := tool.NewRunnerFactory(g.executor, paths)
	gcloudRunner := rf.Gcloud("")

	if !req.SkipLogin {
		logrus.Infof("Activating service account from %s", req.KeyFile)

		if err := gcloudRunner.ActivateServiceAccount(req.KeyFile); err != nil {
			return res, fmt.Errorf("%w: %w", ErrLogin, err)
		}

		if err := gcloudRunner.SetProject(req.Project); err != nil {
			return res, fmt.Errorf("%w: %w", ErrLogin, err)
		}
	}

	res.RunID = g.runID()
	res.GeneratedAt = g.now()

	w := script.NewWriter(req.Out)

	if err := w.Header(script.HeaderData{
		Version:     req.Version,
		RunID:       res.RunID,
		Project:     req.Project,
		Filter:      req.Filter,
		Async:       req.Async,
		GeneratedAt: res.GeneratedAt,
	}); err != nil {
		return res, err
	}

	logrus.Infof("Run %s: planning deletions in project %s", res.RunID, req.Project)

	s := newSpinner(req.Progress)

	p := planner.New(gcloudRunner, w, planner.WithMaxDepth(orDefaultDepth(req.MaxDepth)))

	for _, t := range req.Inventory.Targets {
		s.Suffix = " Planning " + t.Component
		s.Start()

		err := p.Plan(t.Component, t.ResourceTypes, planner.Options{
			UseURI:  t.UseURI,
			Project: req.Project,
			Filter:  req.Filter,
			Async:   req.Async,
		})

		s.Stop()

		if err != nil {
			res.Deletions = w.Count()

			return res, fmt.Errorf("%w: %s: %w", ErrPlan, t.Component, err)
		}
	}

	if !req.SkipBuckets {
		s.Suffix = " Planning buckets"
		s.Start()

		err := buckets.NewPlanner(rf.Gsutil(""), w).Plan(req.Filter, req.Async)

		s.Stop()

		if err != nil {
			res.Deletions = w.Count()

			return res, fmt.Errorf("%w: buckets: %w", ErrPlan, err)
		}
	}

	res.Deletions = w.Count()

	logrus.Infof("Run %s: %d deletions planned", res.RunID, res.Deletions)

	return res, nil
}

func (g *GenerateScript) checkDependencies(req GenerateScriptRequest, paths tool.RunnerFactoryPaths) error {
	reqs := []tools.Requirement{{Name: tool.Gcloud, Constraint: req.MinGcloudVersion}}

	if !req.SkipBuckets {
		reqs = append(reqs, tools.Requirement{Name: tool.Gsutil})
	}

	logrus.Debug("Validating dependencies...")

	if err := dependencies.NewValidator(g.executor, paths).Validate(req.Project, reqs...); err != nil {
		return fmt.Errorf("%w: %w", ErrDependencies, err)
	}

	return nil
}

// newSpinner returns a spinner writing to out. The spinner only animates when
// out is a terminal.
func newSpinner(out io.Writer) *spinner.Spinner {
	if out == nil {
		out = io.Discard
	}

	return spinner.New(spinner.CharSets[11], spinnerInterval, spinner.WithWriter(out))
}

// orDefaultDepth keeps an explicit depth, zero included, and falls back to
// planner.DefaultMaxDepth when none was given.
func orDefaultDepth(depth *int) int {
	if depth == nil {
		return planner.DefaultMaxDepth
	}

	return *depth
}
