// Copyright (c) 2017-present SIGHUP s.r.l All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package buckets

import (
	"errors"
	"fmt"
	"strings"
)

const LabelPrefix = "labels."

var ErrMalformedLabelFilter = errors.New("malformed label filter, expected labels.<key>=<value>")

// LabelFilter keeps buckets whose label Key is set to Value.
type LabelFilter struct {
	Key   string
	Value string
}

// ParseLabelFilter extracts a label filter from a gcloud filter expression.
// Expressions that do not start with "labels." select every bucket and yield
// a nil filter.
func ParseLabelFilter(filter string) (*LabelFilter, error) {
	filter = strings.TrimSpace(filter)

	if !strings.HasPrefix(filter, LabelPrefix) {
		return nil, nil //nolint:nilnil // no filter means every bucket.
	}

	key, value, ok := strings.Cut(strings.TrimPrefix(filter, LabelPrefix), "=")
	if !ok || key == "" {
		return nil, fmt.Errorf("%w: %q", ErrMalformedLabelFilter, filter)
	}

	return &LabelFilter{Key: key, Value: value}, nil
}

func (f *LabelFilter) Match(labels map[string]string) bool {
	if f == nil {
		return true
	}

	v, ok := labels[f.Key]

	return ok && v == f.Value
}

func (f *LabelFilter) String() string {
	if f == nil {
		return ""
	}

	return LabelPrefix + f.Key + "=" + f.Value
}
