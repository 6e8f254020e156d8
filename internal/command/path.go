// Copyright (c) 2017-present SIGHUP s.r.l All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package command

import (
	"strings"

	"github.com/sighupio/nukescript/internal/x/slices"
)

// Path identifies a node of a tool's command namespace, eg: [compute instances].
// The zero value is the empty path.
type Path struct {
	segments []string
}

// NewPath builds a path from segments, splitting each of them on whitespace so
// that a resource type such as "backend-buckets signed-url-keys" spans two
// segments.
func NewPath(segments ...string) Path {
	p := Path{segments: make([]string, 0, len(segments))}

	for _, s := range segments {
		p.segments = append(p.segments, strings.Fields(s)...)
	}

	return p
}

func (p Path) Segments() []string {
	s := make([]string, len(p.segments))
	copy(s, p.segments)

	return s
}

func (p Path) Len() int {
	return len(p.segments)
}

func (p Path) IsEmpty() bool {
	return len(p.segments) == 0
}

// Append returns a new path with segments added at the end.
func (p Path) Append(segments ...string) Path {
	return NewPath(append(p.Segments(), segments...)...)
}

func (p Path) Equal(o Path) bool {
	if len(p.segments) != len(o.segments) {
		return false
	}

	for i := range p.segments {
		if p.segments[i] != o.segments[i] {
			return false
		}
	}

	return true
}

// Component is the first segment, the gcloud command group (compute, sql...).
func (p Path) Component() string {
	if p.IsEmpty() {
		return ""
	}

	return p.segments[0]
}

// ResourceType is everything after the component, space separated.
func (p Path) ResourceType() string {
	if p.Len() < 2 { //nolint:mnd // component plus at least one segment.
		return ""
	}

	return strings.Join(p.segments[1:], " ")
}

// Last is the deepest segment of the path.
func (p Path) Last() string {
	if p.IsEmpty() {
		return ""
	}

	return p.segments[len(p.segments)-1]
}

func (p Path) String() string {
	return strings.Join(p.segments, " ")
}

// Strings renders paths for log lines.
func Strings(paths []Path) []string {
	return slices.Map(paths, Path.String)
}
