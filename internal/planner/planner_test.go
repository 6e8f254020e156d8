// Copyright (c) 2017-present SIGHUP s.r.l All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build unit

package planner_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sighupio/nukescript/internal/command"
	"github.com/sighupio/nukescript/internal/discovery"
	"github.com/sighupio/nukescript/internal/planner"
	"github.com/sighupio/nukescript/internal/test"
)

var (
	crud = []string{"create", "delete", "list"}

	errBrokenPipe = errors.New("broken pipe")
)

type recorder struct {
	lines []string
	err   error
}

func (r *recorder) Emit(d command.Deletion) error {
	if r.err != nil {
		return r.err
	}

	line := strings.Join(command.Tokens(d), " ")
	if s := d.ShellSuffix(); s != "" {
		line += " " + s
	}

	r.lines = append(r.lines, line)

	return nil
}

func uriList(path command.Path) command.List {
	return command.List{Path: path, URI: true}
}

// nestedCloud has compute networks -> subnets -> keys, with one instance at
// each level, plus compute instances with vm1.
func nestedCloud() *test.FakeCloud {
	f := test.NewFakeCloud()

	networks := command.NewPath("compute", "networks")
	subnets := networks.Append("subnets")
	keys := subnets.Append("keys")
	instances := command.NewPath("compute", "instances")

	f.AddGroup(networks, crud, true, "subnets")
	f.AddGroup(subnets, crud, true, "keys")
	f.AddGroup(keys, crud, true)
	f.AddGroup(instances, crud, true)

	f.AddInstances(uriList(networks), "net1")
	f.AddInstances(uriList(subnets), "sub1", "sub2")
	f.AddInstances(uriList(keys), "key1")
	f.AddInstances(uriList(instances), "projects/p/zones/z/instances/vm1")

	return f
}

func TestPlanner_Plan(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		desc          string
		component     string
		resourceTypes []string
		opts          planner.Options
		want          []string
	}{
		{
			desc:          "single instance",
			component:     "compute",
			resourceTypes: []string{"instances"},
			opts:          planner.Options{UseURI: true, Project: "p"},
			want: []string{
				"gcloud compute instances delete --project p -q projects/p/zones/z/instances/vm1",
			},
		},
		{
			desc:          "single instance async",
			component:     "compute",
			resourceTypes: []string{"instances"},
			opts:          planner.Options{UseURI: true, Project: "p", Async: true},
			want: []string{
				"gcloud compute instances delete --project p -q projects/p/zones/z/instances/vm1 --async",
			},
		},
		{
			desc:          "grandchildren before children before root",
			component:     "compute",
			resourceTypes: []string{"networks"},
			opts:          planner.Options{UseURI: true, Project: "p"},
			want: []string{
				"gcloud compute networks subnets keys delete --project p -q key1",
				"gcloud compute networks subnets delete --project p -q sub1",
				"gcloud compute networks subnets delete --project p -q sub2",
				"gcloud compute networks delete --project p -q net1",
			},
		},
		{
			desc:          "resource types keep the given order",
			component:     "compute",
			resourceTypes: []string{"instances", "networks"},
			opts:          planner.Options{UseURI: true, Project: "p"},
			want: []string{
				"gcloud compute instances delete --project p -q projects/p/zones/z/instances/vm1",
				"gcloud compute networks subnets keys delete --project p -q key1",
				"gcloud compute networks subnets delete --project p -q sub1",
				"gcloud compute networks subnets delete --project p -q sub2",
				"gcloud compute networks delete --project p -q net1",
			},
		},
		{
			desc:          "explicit descendant is planned once",
			component:     "compute",
			resourceTypes: []string{"networks", "networks subnets keys"},
			opts:          planner.Options{UseURI: true, Project: "p"},
			want: []string{
				"gcloud compute networks subnets keys delete --project p -q key1",
				"gcloud compute networks subnets delete --project p -q sub1",
				"gcloud compute networks subnets delete --project p -q sub2",
				"gcloud compute networks delete --project p -q net1",
			},
		},
		{
			desc:          "unknown resource type yields nothing",
			component:     "compute",
			resourceTypes: []string{"addresses", "instances"},
			opts:          planner.Options{UseURI: true, Project: "p"},
			want: []string{
				"gcloud compute instances delete --project p -q projects/p/zones/z/instances/vm1",
			},
		},
	}

	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			t.Parallel()

			r := &recorder{}

			err := planner.New(nestedCloud(), r).Plan(tC.component, tC.resourceTypes, tC.opts)

			require.NoError(t, err)

			if diff := cmp.Diff(tC.want, r.lines); diff != "" {
				t.Errorf("Plan() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPlanner_Plan_FailingChildProbe(t *testing.T) {
	t.Parallel()

	f := test.NewFakeCloud()

	networks := command.NewPath("compute", "networks")
	peerings := networks.Append("peerings")

	f.AddGroup(networks, crud, true, "subnets", "peerings")
	f.AddGroup(peerings, crud, true)
	f.Fails[test.Key(command.NewProbe(networks.Append("subnets")))] = 1

	f.AddInstances(uriList(networks), "net1")
	f.AddInstances(uriList(peerings), "peer1")

	r := &recorder{}

	require.NoError(t, planner.New(f, r).Plan("compute", []string{"networks"}, planner.Options{UseURI: true, Project: "p"}))

	assert.Equal(t, []string{
		"gcloud compute networks peerings delete --project p -q peer1",
		"gcloud compute networks delete --project p -q net1",
	}, r.lines)
	assert.Zero(t, f.CallCount("gcloud compute networks subnets list --uri"))
}

func TestPlanner_Plan_EmptyGroupsListsOwnInstances(t *testing.T) {
	t.Parallel()

	f := test.NewFakeCloud()

	routes := command.NewPath("compute", "routes")

	f.AddGroup(routes, crud, true)
	f.AddInstances(uriList(routes), "r1")

	r := &recorder{}

	require.NoError(t, planner.New(f, r).Plan("compute", []string{"routes"}, planner.Options{UseURI: true, Project: "p"}))

	assert.Equal(t, []string{"gcloud compute routes delete --project p -q r1"}, r.lines)
	assert.Equal(t, 1, f.CallCount("gcloud compute routes --help"))
	assert.Equal(t, 1, f.CallCount("gcloud compute routes list --uri"))
}

func TestPlanner_Plan_FailingListContinues(t *testing.T) {
	t.Parallel()

	f := nestedCloud()
	f.Fails["gcloud compute networks subnets list --uri"] = 1

	r := &recorder{}

	require.NoError(t, planner.New(f, r).Plan("compute", []string{"networks", "instances"}, planner.Options{UseURI: true, Project: "p"}))

	assert.Equal(t, []string{
		"gcloud compute networks subnets keys delete --project p -q key1",
		"gcloud compute networks delete --project p -q net1",
		"gcloud compute instances delete --project p -q projects/p/zones/z/instances/vm1",
	}, r.lines)
}

func TestPlanner_Plan_NamesAndFilter(t *testing.T) {
	t.Parallel()

	f := test.NewFakeCloud()

	sqlInstances := command.NewPath("sql", "instances")
	functions := command.NewPath("functions")

	f.AddGroup(sqlInstances, crud, false)
	f.AddGroup(functions, []string{"delete", "deploy", "list"}, false, "regions")
	f.AddGroup(functions.Append("regions"), []string{"list"}, false)

	f.AddInstances(command.List{Path: sqlInstances, Filter: "labels.env=dev"}, "db-1")
	f.AddInstances(command.List{Path: functions, Filter: "labels.env=dev"}, "fn-1", "fn-2")

	r := &recorder{}
	p := planner.New(f, r)
	opts := planner.Options{Project: "p", Filter: "labels.env=dev"}

	require.NoError(t, p.Plan("sql", []string{"instances"}, opts))
	require.NoError(t, p.Plan("functions", []string{""}, opts))

	assert.Equal(t, []string{
		"gcloud sql instances delete --project p -q db-1",
		"gcloud functions delete --project p -q fn-1",
		"gcloud functions delete --project p -q fn-2",
	}, r.lines)
	assert.Equal(t, 1, f.CallCount("gcloud sql instances list --filter labels.env=dev --format=table[no-heading](name)"))
}

func TestPlanner_Plan_MaxDepth(t *testing.T) {
	t.Parallel()

	f := test.NewFakeCloud()

	// loop a, loop a a, loop a a a... as a namespace that never ends.
	path := command.NewPath("loop", "a")

	for i := range 5 {
		f.AddGroup(path, crud, true, "a")
		f.AddInstances(uriList(path), fmt.Sprintf("id%d", i))

		path = path.Append("a")
	}

	r := &recorder{}

	err := planner.New(f, r, planner.WithMaxDepth(2)).
		Plan("loop", []string{"a"}, planner.Options{UseURI: true, Project: "p"})

	require.NoError(t, err)
	assert.Equal(t, []string{
		"gcloud loop a a a delete --project p -q id2",
		"gcloud loop a a delete --project p -q id1",
		"gcloud loop a delete --project p -q id0",
	}, r.lines)
}

func TestPlanner_Plan_DefaultMaxDepth(t *testing.T) {
	t.Parallel()

	f := test.NewFakeCloud()

	path := command.NewPath("loop", "a")

	for i := range planner.DefaultMaxDepth + 3 {
		f.AddGroup(path, crud, true, "a")
		f.AddInstances(uriList(path), fmt.Sprintf("id%d", i))

		path = path.Append("a")
	}

	r := &recorder{}

	require.NoError(t, planner.New(f, r).Plan("loop", []string{"a"}, planner.Options{UseURI: true, Project: "p"}))

	assert.Len(t, r.lines, planner.DefaultMaxDepth+1)
	assert.True(t, strings.HasSuffix(r.lines[len(r.lines)-1], "-q id0"))
}

func TestPlanner_Plan_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		desc      string
		component string
		opts      planner.Options
		emitErr   error
		wantErr   error
	}{
		{
			desc:      "empty component",
			component: " ",
			opts:      planner.Options{Project: "p"},
			wantErr:   planner.ErrEmptyComponent,
		},
		{
			desc:      "missing project",
			component: "compute",
			wantErr:   command.ErrMissingProject,
		},
		{
			desc:      "emitter failure",
			component: "compute",
			opts:      planner.Options{UseURI: true, Project: "p"},
			emitErr:   errBrokenPipe,
			wantErr:   planner.ErrEmitFailed,
		},
	}

	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			t.Parallel()

			r := &recorder{err: tC.emitErr}

			err := planner.New(nestedCloud(), r).Plan(tC.component, []string{"instances"}, tC.opts)

			test.AssertErrorIs(t, err, tC.wantErr)

			if tC.emitErr != nil {
				test.AssertErrorIs(t, err, tC.emitErr)
			}
		})
	}
}

func TestPlanner_ListInstances(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		desc    string
		stdout  string
		fail    bool
		want    []string
		wantErr error
	}{
		{
			desc:   "one per line",
			stdout: "a\nb\n",
			want:   []string{"a", "b"},
		},
		{
			desc:   "blank lines dropped",
			stdout: "\n a \n\n   \nb\r\n",
			want:   []string{"a", "b"},
		},
		{
			desc:   "empty output",
			stdout: "  \n",
			want:   []string{},
		},
		{
			desc:    "failure",
			fail:    true,
			wantErr: planner.ErrListFailed,
		},
	}

	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			t.Parallel()

			f := test.NewFakeCloud()
			key := "gcloud pubsub topics list --filter name:x --uri"

			if tC.fail {
				f.Fails[key] = 1
			} else {
				f.Outputs[key] = tC.stdout
			}

			res := planner.New(f, &recorder{}).ListInstances("pubsub", "topics", true, "name:x")

			if tC.wantErr != nil {
				require.True(t, res.Failed())
				test.AssertErrorIs(t, res.Err, tC.wantErr)
				assert.Empty(t, res.Value)

				return
			}

			require.NoError(t, res.Err)

			if diff := cmp.Diff(tC.want, res.Value); diff != "" {
				t.Errorf("ListInstances() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPlanner_Tree(t *testing.T) {
	t.Parallel()

	f := nestedCloud()
	f.AddGroup(command.NewPath("compute"), nil, false, "networks", "instances")

	r := &recorder{}

	root := planner.New(f, r).Tree("compute", "")

	var got []string

	root.Walk(func(n planner.Node, depth int) {
		got = append(got, strings.Repeat(".", depth)+n.Path.String())
	})

	assert.Equal(t, []string{
		"compute",
		".compute networks",
		"..compute networks subnets",
		"...compute networks subnets keys",
		".compute instances",
	}, got)
	assert.Equal(t, 5, root.Size())
	assert.Empty(t, r.lines)
	assert.Zero(t, f.CallCount("gcloud compute networks list --uri"))
}

func TestPlanner_Tree_WithRequirements(t *testing.T) {
	t.Parallel()

	f := test.NewFakeCloud()

	compute := command.NewPath("compute")

	f.AddGroup(compute, nil, false, "images", "disks")
	f.AddGroup(compute.Append("images"), []string{"delete", "list"}, false)
	f.AddGroup(compute.Append("disks"), crud, false)

	root := planner.New(f, &recorder{}, planner.WithRequirements(discovery.Requirements{
		Commands: []string{"delete"},
	})).Tree("compute", "")

	require.Len(t, root.Children, 2)
	assert.Equal(t, "compute images", root.Children[0].Path.String())
	assert.Equal(t, "compute disks", root.Children[1].Path.String())
}
