// Copyright (c) 2017-present SIGHUP s.r.l All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package script writes the generated deletion plan: one shell command per
// line, nothing else but comments.
package script

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/template"
	"time"

	"github.com/Masterminds/sprig/v3"
	"github.com/alessio/shellescape"

	"github.com/sighupio/nukescript/internal/command"
	bytesx "github.com/sighupio/nukescript/internal/x/bytes"
	"github.com/sighupio/nukescript/internal/x/slices"
)

// TraceDirective is the first line of every script.
const TraceDirective = "set -x"

const headerTmpl = `# Deletion plan generated by nukescript {{ .Version }}
# run id:    {{ .RunID }}
# project:   {{ .Project }}
# generated: {{ dateInZone "2006-01-02T15:04:05Z07:00" .GeneratedAt "UTC" }}
{{- if .Filter }}
# filter:    {{ .Filter | replace "\n" " " }}
{{- end }}
# mode:      {{ ternary "async" "sync" .Async }}
# Review every line before running it: deletions cannot be undone.
`

var (
	ErrInvalidDeletion = errors.New("invalid deletion")
	ErrWrite           = errors.New("error while writing script")

	header = template.Must(template.New("header").Funcs(sprig.TxtFuncMap()).Parse(headerTmpl)) //nolint:gochecknoglobals // parsed once.
)

type HeaderData struct {
	Version     string
	RunID       string
	Project     string
	Filter      string
	Async       bool
	GeneratedAt time.Time
}

// Writer emits deletions to out as shell lines.
type Writer struct {
	out   io.Writer
	count int
}

func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Header writes the trace directive and a comment block describing the run.
func (w *Writer) Header(d HeaderData) error {
	var buf bytes.Buffer

	buf.WriteString(TraceDirective + "\n")

	if err := header.Execute(&buf, d); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	if _, err := w.out.Write(bytesx.EnsureTrailingNL(buf.Bytes())); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	return nil
}

// Emit writes one deletion line.
func (w *Writer) Emit(d command.Deletion) error {
	if err := d.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDeletion, err)
	}

	if _, err := fmt.Fprintln(w.out, Format(d)); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	w.count++

	return nil
}

// Count is the number of deletions emitted so far.
func (w *Writer) Count() int {
	return w.count
}

// Format renders d as a shell line. Tokens are quoted only when the shell
// would otherwise interpret them.
func Format(d command.Deletion) string {
	line := strings.Join(slices.Map(command.Tokens(d), shellescape.Quote), " ")

	if suffix := d.ShellSuffix(); suffix != "" {
		line += " " + suffix
	}

	return line
}
