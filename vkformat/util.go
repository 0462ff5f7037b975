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
	"cmp"
	"slices"

	"goarrg.com/debug"
	"golang.org/x/exp/maps"
)

// mapRunFuncSorted runs f over m in ascending key order, stopping at the
// first error.
func mapRunFuncSorted[M ~map[K]V, K cmp.Ordered, V any](m M, f func(K, V) error) error {
	keys := maps.Keys(m)

	if len(keys) == 0 {
		return debug.Errorf("Empty map")
	}

	slices.Sort(keys)

	for _, k := range keys {
		err := f(k, m[k])
		if err != nil {
			return err
		}
	}

	return nil
}
