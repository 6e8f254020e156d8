// Copyright (c) 2017-present SIGHUP s.r.l All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package command

import "errors"

var ErrMissingBucket = errors.New("bucket url is required")

// ListBuckets is `gsutil ls`.
type ListBuckets struct{}

func (ListBuckets) Kind() Kind {
	return KindList
}

func (ListBuckets) Tool() string {
	return Gsutil
}

func (ListBuckets) Args() []string {
	return []string{"ls"}
}

func (ListBuckets) Validate() error {
	return nil
}

// GetBucketLabels is `gsutil label get <url>`.
type GetBucketLabels struct {
	URL string
}

func (GetBucketLabels) Kind() Kind {
	return KindProbe
}

func (GetBucketLabels) Tool() string {
	return Gsutil
}

func (g GetBucketLabels) Args() []string {
	return []string{"label", "get", g.URL}
}

func (g GetBucketLabels) Validate() error {
	if g.URL == "" {
		return ErrMissingBucket
	}

	return nil
}

// RemoveBucket is `gsutil rm -r <url>`, optionally sent to the background.
type RemoveBucket struct {
	URL   string
	Async bool
}

func (RemoveBucket) Kind() Kind {
	return KindDelete
}

func (RemoveBucket) Tool() string {
	return Gsutil
}

func (r RemoveBucket) Args() []string {
	return []string{"rm", "-r", r.URL}
}

func (r RemoveBucket) ShellSuffix() string {
	if r.Async {
		return BackgroundMarker
	}

	return ""
}

func (r RemoveBucket) Validate() error {
	if r.URL == "" {
		return ErrMissingBucket
	}

	return nil
}
