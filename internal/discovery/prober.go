// Copyright (c) 2017-present SIGHUP s.r.l All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package discovery finds out which resource groups exist below a gcloud
// command path and what they can do, by reading gcloud's own help pages.
package discovery

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/sighupio/nukescript/internal/command"
	"github.com/sighupio/nukescript/internal/helptext"
	execx "github.com/sighupio/nukescript/internal/x/exec"
	"github.com/sighupio/nukescript/internal/x/slices"
)

//go:generate mockgen -destination=mock/runner.go -package=mock -source=prober.go

var ErrProbeFailed = errors.New("probe failed")

// Runner executes commands against gcloud.
type Runner interface {
	Run(c command.Command) execx.Result
}

// Requirements is the filter a child group must pass to be part of a plan.
type Requirements struct {
	Commands   []string
	URISupport bool
}

func DefaultRequirements() Requirements {
	return Requirements{
		Commands:   []string{"create", "delete", "list"},
		URISupport: true,
	}
}

// Capability describes what a resource path supports.
type Capability struct {
	Commands           []string
	SupportsList       bool
	SupportsDelete     bool
	SupportsCreate     bool
	SupportsURIOutput  bool
	RequiredDeleteArgs []string
}

func (c Capability) Satisfies(req Requirements) bool {
	if len(slices.Difference(req.Commands, c.Commands)) > 0 {
		return false
	}

	return !req.URISupport || c.SupportsURIOutput
}

type Prober struct {
	runner Runner
	parser helptext.Parser
}

func NewProber(runner Runner) *Prober {
	return &Prober{
		runner: runner,
		parser: helptext.NewGcloudParser(),
	}
}

// Block runs `gcloud <path> [sub...] --help` and parses blockName out of it.
func (p *Prober) Block(path command.Path, blockName string, sub ...string) Result[helptext.Block] {
	probe := command.NewProbe(path, sub...)

	logrus.Debugf("Probing gcloud %s --help", probe)

	res := p.runner.Run(probe)
	if !res.Succeeded() {
		err := fmt.Errorf("%w: gcloud %s --help exited with code %d", ErrProbeFailed, probe, res.ExitCode)

		logrus.Warnf("%v: %s", err, strings.TrimSpace(res.Stderr))

		return Failed[helptext.Block](err)
	}

	return Succeeded(p.parser.Parse(res.Stdout, blockName))
}

// DiscoverChildren returns the sub-groups listed in the GROUPS block of path.
func (p *Prober) DiscoverChildren(path command.Path) Result[[]string] {
	groups := p.Block(path, helptext.Groups)
	if groups.Failed() {
		return Failed[[]string](groups.Err)
	}

	return Succeeded(groups.Value.Names())
}

// ListEnabledChildren returns the sub-groups of path that satisfy req, in the
// order gcloud lists them. Children whose probes fail are left out.
func (p *Prober) ListEnabledChildren(path command.Path, req Requirements) Result[[]command.Path] {
	candidates := p.DiscoverChildren(path)
	if candidates.Failed() {
		return Failed[[]command.Path](candidates.Err)
	}

	enabled := make([]command.Path, 0, len(candidates.Value))

	for _, name := range candidates.Value {
		child := path.Append(name)

		if p.enabled(child, req) {
			enabled = append(enabled, child)
		}
	}

	logrus.Infof(
		"Discovered %d groups under %s, %d enabled: %v",
		len(candidates.Value), path, len(enabled), command.Strings(enabled),
	)

	return Succeeded(enabled)
}

func (p *Prober) enabled(child command.Path, req Requirements) bool {
	commands := p.Block(child, helptext.Commands)
	if commands.Failed() {
		logrus.Warnf("Excluding %s: %v", child, commands.Err)

		return false
	}

	if missing := slices.Difference(req.Commands, commands.Value.Names()); len(missing) > 0 {
		logrus.Debugf("Excluding %s: missing commands %v", child, missing)

		return false
	}

	if !req.URISupport {
		return true
	}

	flags := p.Block(child, helptext.ListCommandFlags, "list")
	if flags.Failed() {
		logrus.Warnf("Excluding %s: %v", child, flags.Err)

		return false
	}

	if !hasFlag(flags.Value, command.URIFlag) {
		logrus.Debugf("Excluding %s: list does not support %s", child, command.URIFlag)

		return false
	}

	return true
}

// Probe builds the full capability descriptor of path.
func (p *Prober) Probe(path command.Path) Result[Capability] {
	commands := p.Block(path, helptext.Commands)
	if commands.Failed() {
		return Failed[Capability](commands.Err)
	}

	c := Capability{
		Commands:       commands.Value.Names(),
		SupportsList:   commands.Value.Has("list"),
		SupportsDelete: commands.Value.Has("delete"),
		SupportsCreate: commands.Value.Has("create"),
	}

	if c.SupportsList {
		if flags := p.Block(path, helptext.ListCommandFlags, "list"); !flags.Failed() {
			c.SupportsURIOutput = hasFlag(flags.Value, command.URIFlag)
		}
	}

	if c.SupportsDelete {
		if required := p.Block(path, helptext.RequiredFlags, "delete"); !required.Failed() {
			c.RequiredDeleteArgs = flagNames(required.Value)
		}
	}

	return Succeeded(c)
}

func hasFlag(b helptext.Block, flag string) bool {
	for _, n := range flagNames(b) {
		if n == flag {
			return true
		}
	}

	return false
}

// flagNames strips values from flag items, eg: "--region=REGION" -> "--region".
func flagNames(b helptext.Block) []string {
	return slices.Map(b.Names(), func(name string) string {
		if i := strings.IndexAny(name, "=[ "); i > 0 {
			return name[:i]
		}

		return name
	})
}
