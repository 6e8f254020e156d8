// Copyright (c) 2017-present SIGHUP s.r.l All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package test

import (
	"fmt"
	"strings"

	"github.com/sighupio/nukescript/internal/command"
	execx "github.com/sighupio/nukescript/internal/x/exec"
)

// FakeCloud answers commands from canned outputs keyed by their tokens joined
// by a single space, eg: "gcloud compute --help". Unknown commands fail with
// exit code 2 like an invalid gcloud choice.
type FakeCloud struct {
	Outputs map[string]string
	Fails   map[string]int
	Calls   []string
}

func NewFakeCloud() *FakeCloud {
	return &FakeCloud{
		Outputs: make(map[string]string),
		Fails:   make(map[string]int),
	}
}

func Key(c command.Command) string {
	return strings.Join(command.Tokens(c), " ")
}

func (f *FakeCloud) Run(c command.Command) execx.Result {
	key := Key(c)

	f.Calls = append(f.Calls, key)

	if code, ok := f.Fails[key]; ok {
		return execx.Result{
			Stderr:   "ERROR: (gcloud) permission denied",
			ExitCode: code,
			Err:      fmt.Errorf("%w: %s", execx.ErrCmdFailed, key),
		}
	}

	out, ok := f.Outputs[key]
	if !ok {
		return execx.Result{
			Stderr:   fmt.Sprintf("ERROR: (gcloud) Invalid choice: '%s'.", key),
			ExitCode: 2, //nolint:mnd // gcloud usage error.
			Err:      fmt.Errorf("%w: %s", execx.ErrCmdFailed, key),
		}
	}

	return execx.Result{Stdout: out}
}

// CallCount returns how many times the command with the given key ran.
func (f *FakeCloud) CallCount(key string) int {
	n := 0

	for _, c := range f.Calls {
		if c == key {
			n++
		}
	}

	return n
}

// AddGroup registers a resource group at path (component first) with the
// given commands, and lists children groups in its help page. When uri is
// true the list command advertises --uri.
func (f *FakeCloud) AddGroup(path command.Path, commands []string, uri bool, children ...string) {
	f.Outputs[Key(command.NewProbe(path))] = HelpPage(children, commands)

	if uri {
		f.Outputs[Key(command.NewProbe(path, "list"))] = ListHelpPage("--filter=EXPRESSION", command.URIFlag)
	} else {
		f.Outputs[Key(command.NewProbe(path, "list"))] = ListHelpPage("--filter=EXPRESSION")
	}
}

// AddInstances registers the output of a list command.
func (f *FakeCloud) AddInstances(l command.List, ids ...string) {
	out := strings.Join(ids, "\n")
	if out != "" {
		out += "\n"
	}

	f.Outputs[Key(l)] = out
}

// HelpPage renders a gcloud-like help page with GROUPS and COMMANDS blocks.
func HelpPage(groups, commands []string) string {
	var sb strings.Builder

	sb.WriteString("NAME\n    gcloud - fake help page\n\nSYNOPSIS\n    gcloud GROUP | COMMAND [FLAGS]\n\n")

	if len(groups) > 0 {
		sb.WriteString("GROUPS\n    GROUP is one of the following:\n\n")

		for _, g := range groups {
			fmt.Fprintf(&sb, "     %s\n       Manage %s.\n\n", g, g)
		}
	}

	if len(commands) > 0 {
		sb.WriteString("COMMANDS\n    COMMAND is one of the following:\n\n")

		for _, c := range commands {
			fmt.Fprintf(&sb, "     %s\n       %s a resource.\n\n", c, c)
		}
	}

	sb.WriteString("NOTES\n    This is a fake help page.\n")

	return sb.String()
}

// ListHelpPage renders the help page of a list command.
func ListHelpPage(flags ...string) string {
	var sb strings.Builder

	sb.WriteString("NAME\n    gcloud list - list resources\n\n")

	if len(flags) > 0 {
		sb.WriteString("LIST COMMAND FLAGS\n")

		for _, f := range flags {
			fmt.Fprintf(&sb, "     %s\n       Flag %s.\n\n", f, f)
		}
	}

	sb.WriteString("GCLOUD WIDE FLAGS\n    These flags are available to all commands.\n")

	return sb.String()
}
