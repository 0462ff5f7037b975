/*
Copyright 2026 The ANGLE Project Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package vkformat

import (
	"os"

	"github.com/tidwall/gjson"
	"goarrg.com/debug"
)

// ParseSupport parses the hand maintained support data, a json object mapping
// format name to the list of mandatory feature flags. Flag order is preserved
// as declared, it decides the order flags appear in the emitted expressions.
func ParseSupport(data []byte) (map[string][]string, error) {
	if !gjson.ValidBytes(data) {
		return nil, debug.Errorf("Support data is not valid json")
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, debug.Errorf("Support data must be a json object, got %s", root.Type)
	}

	var err error
	support := map[string][]string{}
	root.ForEach(func(key, value gjson.Result) bool {
		if !value.IsArray() {
			err = debug.Errorf("Format %q must map to an array of feature flags", key.String())
			return false
		}
		flags := []string{}
		value.ForEach(func(_, flag gjson.Result) bool {
			if flag.Type != gjson.String {
				err = debug.Errorf("Format %q has a non string feature flag: %s", key.String(), flag.Raw)
				return false
			}
			flags = append(flags, flag.String())
			return true
		})
		if err != nil {
			return false
		}
		support[key.String()] = flags
		return true
	})
	if err != nil {
		return nil, err
	}
	return support, nil
}

// LoadSupport reads the support data file at path and parses it with
// ParseSupport.
func LoadSupport(path string) (map[string][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, debug.ErrorWrapf(err, "Failed to read support data %q", path)
	}
	support, err := ParseSupport(data)
	if err != nil {
		return nil, debug.ErrorWrapf(err, "Failed to parse support data %q", path)
	}
	return support, nil
}
