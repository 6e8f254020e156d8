// Copyright (c) 2017-present SIGHUP s.r.l All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package discovery

// Result is the outcome of a probe: either a value or the reason the probe
// failed. Callers usually carry on with the zero value, but can still tell a
// genuinely empty answer from a failed one.
type Result[T any] struct {
	Value T
	Err   error
}

func Succeeded[T any](v T) Result[T] {
	return Result[T]{Value: v}
}

func Failed[T any](err error) Result[T] {
	return Result[T]{Err: err}
}

func (r Result[T]) Failed() bool {
	return r.Err != nil
}
