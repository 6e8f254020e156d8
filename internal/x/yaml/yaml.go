// Copyright (c) 2017-present SIGHUP s.r.l All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yamlx

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

func FromFileV3[T any](file string) (T, error) {
	var data T

	res, err := os.ReadFile(file)
	if err != nil {
		return data, fmt.Errorf("error while reading file from %s :%w", file, err)
	}

	if err := yaml.Unmarshal(res, &data); err != nil {
		return data, fmt.Errorf("error while unmarshalling file from %s :%w", file, err)
	}

	return data, nil
}

func MarshalV3(in any) ([]byte, error) {
	out, err := yaml.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("error while marshalling yaml: %w", err)
	}

	return out, nil
}
