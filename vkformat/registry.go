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

// Package vkformat generates the mandatory format support table consumed by
// the vulkan renderer. The registry (vk.xml) provides the VkFormat enumerant
// values, vk_mandatory_format_support_data.json provides the feature flags a
// conformant implementation must support for each format.
package vkformat

import (
	"io"
	"os"
	"strconv"

	"github.com/antchfx/xmlquery"
	"goarrg.com/debug"
)

// ParseRegistry scans the registry document for the VkFormat enums block and
// returns a map of enumerant value to enumerant name. Indices are not
// required to be contiguous.
func ParseRegistry(r io.Reader) (map[int]string, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, debug.ErrorWrapf(err, "Failed to parse registry")
	}

	enums := xmlquery.FindOne(doc, "//enums[@name='VkFormat']")
	if enums == nil {
		return nil, debug.Errorf("Registry has no enums block named \"VkFormat\"")
	}

	formats := map[int]string{}
	for _, e := range enums.SelectElements("enum") {
		name := e.SelectAttr("name")
		if name == "" {
			return nil, debug.Errorf("VkFormat enumerant is missing a name")
		}
		index, err := strconv.Atoi(e.SelectAttr("value"))
		if err != nil {
			return nil, debug.ErrorWrapf(err, "VkFormat enumerant %q has an invalid value", name)
		}
		if index < 0 {
			return nil, debug.Errorf("VkFormat enumerant %q has a negative value: %d", name, index)
		}
		if other, ok := formats[index]; ok {
			return nil, debug.Errorf("VkFormat enumerants %q and %q share value %d", other, name, index)
		}
		formats[index] = name
	}

	if len(formats) == 0 {
		return nil, debug.Errorf("VkFormat enums block has no enumerants")
	}
	return formats, nil
}

// LoadRegistry opens the registry file at path and parses it with
// ParseRegistry.
func LoadRegistry(path string) (map[int]string, error) {
	fIn, err := os.Open(path)
	if err != nil {
		return nil, debug.ErrorWrapf(err, "Failed to open registry %q", path)
	}
	defer fIn.Close()

	formats, err := ParseRegistry(fIn)
	if err != nil {
		return nil, debug.ErrorWrapf(err, "Failed to read registry %q", path)
	}
	return formats, nil
}
