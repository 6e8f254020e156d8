// Copyright (c) 2017-present SIGHUP s.r.l All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bytesx

import (
	"regexp"
)

type TransformFunc func([]byte) ([]byte, error)

// This constant was taken from the following public repository:
// Name: stripansi
// URL: https://github.com/acarl005/stripansi
// Commit: 5a71ef0e047df0427e87a79f27009029921f1f9b
// Author: https://github.com/acarl005
// License: MIT License.
const ansi = "[\u001B\u009B][[\\]()#;?]*(?:(?:(?:[a-zA-Z\\d]*(?:;[a-zA-Z\\d]*)*)?\u0007)|(?:(?:\\d{1,4}(?:;\\d{0,4})*)?[\\dA-PRZcf-ntqry=><~]))" //nolint:lll // Cannot split regex in multiple lines.

var reg = regexp.MustCompile(ansi)

func StripColor(p []byte) ([]byte, error) {
	s := string(p)

	strippedS := reg.ReplaceAllString(s, "")

	return []byte(strippedS), nil
}

// Chain applies the transforms in order, stopping at the first error.
func Chain(transforms ...TransformFunc) TransformFunc {
	return func(p []byte) ([]byte, error) {
		var err error

		for _, t := range transforms {
			if p, err = t(p); err != nil {
				return nil, err
			}
		}

		return p, nil
	}
}
