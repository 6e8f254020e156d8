// Copyright (c) 2017-present SIGHUP s.r.l All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build unit

package inventory_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sighupio/nukescript/internal/inventory"
	"github.com/sighupio/nukescript/internal/test"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "inventory.yaml")

	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestDefault(t *testing.T) {
	t.Parallel()

	inv := inventory.Default()

	require.NoError(t, inv.Validate())

	components := make([]string, 0, len(inv.Targets))
	for _, tg := range inv.Targets {
		components = append(components, tg.Component)
	}

	assert.Equal(t, []string{"container", "compute", "sql", "app", "pubsub", "functions"}, components)
	assert.Len(t, inv.Targets[1].ResourceTypes, 18)
	assert.Equal(t, "instances", inv.Targets[1].ResourceTypes[0])
	assert.False(t, inv.Targets[2].UseURI)
	assert.Equal(t, []string{""}, inv.Targets[5].ResourceTypes)
}

func TestDefault_RoundTrip(t *testing.T) {
	t.Parallel()

	out, err := inventory.Default().Marshal()
	require.NoError(t, err)

	got, err := inventory.Load(writeFile(t, string(out)))
	require.NoError(t, err)

	if diff := cmp.Diff(inventory.Default(), got); diff != "" {
		t.Errorf("Load(Marshal(Default())) mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		desc    string
		content string
		want    inventory.Inventory
		wantErr error
	}{
		{
			desc: "valid",
			content: `targets:
  - component: compute
    resourceTypes: [instances, "backend-buckets signed-url-keys"]
    useUri: true
  - component: functions
    resourceTypes: [""]
`,
			want: inventory.Inventory{
				Targets: []inventory.Target{
					{Component: "compute", ResourceTypes: []string{"instances", "backend-buckets signed-url-keys"}, UseURI: true},
					{Component: "functions", ResourceTypes: []string{""}},
				},
			},
		},
		{
			desc:    "empty file",
			content: "",
			wantErr: inventory.ErrInvalidInventory,
		},
		{
			desc:    "not yaml",
			content: "targets: [",
			wantErr: inventory.ErrReadInventory,
		},
		{
			desc:    "no targets",
			content: "targets: []\n",
			wantErr: inventory.ErrInvalidInventory,
		},
		{
			desc:    "unknown field",
			content: "targets:\n  - component: sql\n    resourceTypes: [instances]\n    async: true\n",
			wantErr: inventory.ErrInvalidInventory,
		},
		{
			desc:    "component with spaces",
			content: "targets:\n  - component: compute instances\n    resourceTypes: [disks]\n",
			wantErr: inventory.ErrInvalidInventory,
		},
		{
			desc:    "missing resource types",
			content: "targets:\n  - component: sql\n",
			wantErr: inventory.ErrInvalidInventory,
		},
		{
			desc:    "resource type with shell characters",
			content: "targets:\n  - component: sql\n    resourceTypes: [\"instances; ls\"]\n",
			wantErr: inventory.ErrInvalidInventory,
		},
	}

	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			t.Parallel()

			got, err := inventory.Load(writeFile(t, tC.content))

			test.AssertErrorIs(t, err, tC.wantErr)

			if tC.wantErr == nil {
				if diff := cmp.Diff(tC.want, got); diff != "" {
					t.Errorf("Load() mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := inventory.Load(filepath.Join(t.TempDir(), "missing.yaml"))

	test.AssertErrorIs(t, err, inventory.ErrReadInventory)
}

func TestInventory_Validate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		desc    string
		inv     inventory.Inventory
		wantErr error
	}{
		{
			desc: "valid",
			inv:  inventory.Inventory{Targets: []inventory.Target{{Component: "sql", ResourceTypes: []string{"instances"}}}},
		},
		{
			desc:    "no targets",
			inv:     inventory.Inventory{},
			wantErr: inventory.ErrInvalidInventory,
		},
		{
			desc:    "no component",
			inv:     inventory.Inventory{Targets: []inventory.Target{{ResourceTypes: []string{"instances"}}}},
			wantErr: inventory.ErrInvalidInventory,
		},
		{
			desc:    "empty resource types",
			inv:     inventory.Inventory{Targets: []inventory.Target{{Component: "sql", ResourceTypes: []string{}}}},
			wantErr: inventory.ErrInvalidInventory,
		},
	}

	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			t.Parallel()

			test.AssertErrorIs(t, tC.inv.Validate(), tC.wantErr)
		})
	}
}
