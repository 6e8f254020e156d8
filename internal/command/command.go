// Copyright (c) 2017-present SIGHUP s.r.l All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package command models the few invocations nukescript ever builds. Each
// variant keeps typed fields and only becomes a list of tokens when it reaches
// the process boundary or the generated script.
package command

import (
	"errors"
	"fmt"
)

const (
	Gcloud = "gcloud"
	Gsutil = "gsutil"

	HelpFlag    = "--help"
	URIFlag     = "--uri"
	AsyncFlag   = "--async"
	FilterFlag  = "--filter"
	ProjectFlag = "--project"
	QuietFlag   = "-q"
	NamesFormat = "--format=table[no-heading](name)"

	// BackgroundMarker sends a shell command to the background.
	BackgroundMarker = "&"
)

type Kind int

const (
	KindProbe Kind = iota
	KindList
	KindDelete
)

func (k Kind) String() string {
	switch k {
	case KindProbe:
		return "probe"

	case KindList:
		return "list"

	case KindDelete:
		return "delete"

	default:
		return "unknown"
	}
}

var (
	ErrEmptyPath       = errors.New("command path is empty")
	ErrMissingProject  = errors.New("project is required")
	ErrMissingResource = errors.New("resource identifier is required")
	ErrNotExecutable   = errors.New("deletions are only written to the script")
)

// Command is an invocation of an external tool.
type Command interface {
	Kind() Kind
	// Tool is the program name, eg: gcloud.
	Tool() string
	// Args are the arguments that follow the program name.
	Args() []string
	Validate() error
}

// Deletion is a command that ends up in the generated script.
type Deletion interface {
	Command
	// ShellSuffix is appended verbatim after the quoted tokens.
	ShellSuffix() string
}

// Tokens renders c as a full argument vector including the tool name.
func Tokens(c Command) []string {
	return append([]string{c.Tool()}, c.Args()...)
}

func validatePath(p Path) error {
	if p.IsEmpty() {
		return ErrEmptyPath
	}

	return nil
}

// Probe asks gcloud for the help page of Path plus Sub, eg: [compute instances] [list].
type Probe struct {
	Path Path
	Sub  []string
}

func NewProbe(path Path, sub ...string) Probe {
	return Probe{Path: path, Sub: sub}
}

func (Probe) Kind() Kind {
	return KindProbe
}

func (Probe) Tool() string {
	return Gcloud
}

func (p Probe) Args() []string {
	args := p.Path.Segments()
	args = append(args, p.Sub...)

	return append(args, HelpFlag)
}

func (p Probe) Validate() error {
	return validatePath(p.Path)
}

func (p Probe) String() string {
	return p.Path.Append(p.Sub...).String()
}

// List enumerates the instances at Path.
type List struct {
	Path   Path
	Filter string
	URI    bool
}

func (List) Kind() Kind {
	return KindList
}

func (List) Tool() string {
	return Gcloud
}

// Args never splits Filter: it is forwarded to gcloud as a single argument.
func (l List) Args() []string {
	args := append(l.Path.Segments(), "list")

	if l.Filter != "" {
		args = append(args, FilterFlag, l.Filter)
	}

	if l.URI {
		return append(args, URIFlag)
	}

	return append(args, NamesFormat)
}

func (l List) Validate() error {
	return validatePath(l.Path)
}

// Delete removes one instance at Path.
type Delete struct {
	Path       Path
	Project    string
	Identifier string
	Async      bool
}

func (Delete) Kind() Kind {
	return KindDelete
}

func (Delete) Tool() string {
	return Gcloud
}

func (d Delete) Args() []string {
	args := append(d.Path.Segments(), "delete", ProjectFlag, d.Project, QuietFlag, d.Identifier)

	if d.Async {
		args = append(args, AsyncFlag)
	}

	return args
}

func (Delete) ShellSuffix() string {
	return ""
}

func (d Delete) Validate() error {
	if err := validatePath(d.Path); err != nil {
		return err
	}

	if d.Project == "" {
		return ErrMissingProject
	}

	if d.Identifier == "" {
		return fmt.Errorf("%w: %s", ErrMissingResource, d.Path)
	}

	return nil
}
