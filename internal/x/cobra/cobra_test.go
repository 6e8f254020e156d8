// Copyright (c) 2017-present SIGHUP s.r.l All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build unit

package cobrax_test

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"

	cobrax "github.com/sighupio/nukescript/internal/x/cobra"
)

func TestGetFullname(t *testing.T) {
	t.Parallel()

	root := &cobra.Command{Use: "nukescript"}
	gen := &cobra.Command{Use: "generate"}
	sub := &cobra.Command{Use: "script"}

	root.AddCommand(gen)
	gen.AddCommand(sub)

	assert.Equal(t, "generate", cobrax.GetFullname(gen))
	assert.Equal(t, "generate script", cobrax.GetFullname(sub))
}
