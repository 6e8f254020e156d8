// Copyright (c) 2017-present SIGHUP s.r.l All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package buckets plans the removal of Cloud Storage buckets, which gcloud's
// resource groups do not cover.
package buckets

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/sighupio/nukescript/internal/command"
	"github.com/sighupio/nukescript/internal/discovery"
	"github.com/sighupio/nukescript/internal/planner"
	"github.com/sighupio/nukescript/internal/x/slices"
)

var (
	ErrListFailed   = errors.New("bucket list failed")
	ErrLabelsFailed = errors.New("bucket labels read failed")
)

type Planner struct {
	runner  discovery.Runner
	emitter planner.Emitter
}

func NewPlanner(runner discovery.Runner, emitter planner.Emitter) *Planner {
	return &Planner{
		runner:  runner,
		emitter: emitter,
	}
}

// Plan emits one recursive removal per bucket matching filter. A malformed
// label filter is the only error that is not emitter related.
func (p *Planner) Plan(filter string, async bool) error {
	lf, err := ParseLabelFilter(filter)
	if err != nil {
		return err
	}

	for _, b := range p.List(lf).Value {
		if err := p.emitter.Emit(command.RemoveBucket{URL: b, Async: async}); err != nil {
			return fmt.Errorf("%w %s: %w", planner.ErrEmitFailed, b, err)
		}
	}

	return nil
}

// List returns the bucket URLs of the active project that match lf.
func (p *Planner) List(lf *LabelFilter) discovery.Result[[]string] {
	logrus.Info("Listing buckets")

	res := p.runner.Run(command.ListBuckets{})
	if !res.Succeeded() {
		err := fmt.Errorf("%w: gsutil ls exited with code %d", ErrListFailed, res.ExitCode)

		logrus.Warnf("%v: %s", err, strings.TrimSpace(res.Stderr))

		return discovery.Failed[[]string](err)
	}

	all := slices.Uniq(slices.Clean(slices.Map(strings.Split(res.Stdout, "\n"), strings.TrimSpace)))

	buckets := make([]string, 0, len(all))

	for _, b := range all {
		if lf == nil {
			buckets = append(buckets, b)

			continue
		}

		labels := p.Labels(b)
		if labels.Failed() {
			continue
		}

		if lf.Match(labels.Value) {
			buckets = append(buckets, b)
		}
	}

	if len(buckets) > 0 {
		logrus.Infof("Listed %d buckets", len(buckets))
	}

	return discovery.Succeeded(buckets)
}

// Labels reads the labels of bucket. A bucket without labels yields an empty
// map.
func (p *Planner) Labels(bucket string) discovery.Result[map[string]string] {
	res := p.runner.Run(command.GetBucketLabels{URL: bucket})
	if !res.Succeeded() {
		err := fmt.Errorf("%w: %s: exit code %d", ErrLabelsFailed, bucket, res.ExitCode)

		logrus.Warnf("%v: %s", err, strings.TrimSpace(res.Stderr))

		return discovery.Failed[map[string]string](err)
	}

	out := strings.TrimSpace(res.Stdout)

	// gsutil prints a sentence instead of a JSON object for unlabeled buckets.
	if !strings.HasPrefix(out, "{") {
		return discovery.Succeeded(map[string]string{})
	}

	labels := make(map[string]string)

	if err := json.Unmarshal([]byte(out), &labels); err != nil {
		err = fmt.Errorf("%w: %s: %w", ErrLabelsFailed, bucket, err)

		logrus.Warn(err)

		return discovery.Failed[map[string]string](err)
	}

	return discovery.Succeeded(labels)
}
