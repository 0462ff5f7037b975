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
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"goarrg.com/debug"
)

// A feature flag is a buffer feature iff its name contains this marker. It is
// a lexical rule, not a registry lookup, and the consuming module depends on
// it staying that way.
const bufferFeatureMarker = "_BUFFER_"

var logger = debug.NewLogger("angle", "vkformat")

const templateTableAutogenCPP = `// GENERATED FILE - DO NOT EDIT.
// Generated by %[1]s using data from %[2]s and
// the vk.xml file situated at
// %[3]s
//
// Copyright %[4]d The ANGLE Project Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.
//
// %[5]s:
//   Queries for full Vulkan mandatory format support information based on VK format.

#include "libANGLE/renderer/vulkan/vk_format_utils.h"

using namespace angle;

namespace
{
constexpr std::array<VkFormatProperties, %[6]d> kFormatProperties = {{
    %[7]s
}};
}  // anonymous namespace

namespace rx
{

namespace vk
{

const VkFormatProperties& GetMandatoryFormatSupport(VkFormat vkFormat)
{
    ASSERT(static_cast<uint64_t>(vkFormat) < sizeof(kFormatProperties));
    return kFormatProperties[vkFormat];
}

}  // namespace vk

}  // namespace rx

`

// TableOptions control the fixed strings stamped into the generated file.
// The zero value produces the canonical output, with the copyright year set
// to the current year.
type TableOptions struct {
	Year          int
	ScriptName    string
	InputFileName string
	RegistryPath  string
	OutFileName   string
}

func (o *TableOptions) fillDefaults() {
	if o.Year == 0 {
		o.Year = time.Now().Year()
	}
	if o.ScriptName == "" {
		o.ScriptName = "vkfmtgen"
	}
	if o.InputFileName == "" {
		o.InputFileName = "vk_mandatory_format_support_data.json"
	}
	if o.RegistryPath == "" {
		o.RegistryPath = filepath.Join("third_party", "vulkan-headers", "src", "registry", "vk.xml")
	}
	if o.OutFileName == "" {
		o.OutFileName = "vk_mandatory_format_support_table"
	}
}

func partitionFeatures(flags []string) (optimal, buffer []string) {
	for _, f := range flags {
		if strings.Contains(f, bufferFeatureMarker) {
			buffer = append(buffer, f)
		} else {
			optimal = append(optimal, f)
		}
	}
	return optimal, buffer
}

func featureExpr(flags []string) string {
	if len(flags) == 0 {
		return "0"
	}
	return strings.Join(flags, "|")
}

// formatRow renders one VkFormatProperties initializer. The first field is
// linear tiling support, which the generator leaves empty.
func formatRow(name string, flags []string) string {
	optimal, buffer := partitionFeatures(flags)
	return fmt.Sprintf("\n/* %s */\n{{}, %s, %s}", name, featureExpr(optimal), featureExpr(buffer))
}

// WriteTable renders the full generated file to w, one row per registry
// enumerant in ascending value order. Formats absent from support get all
// zero rows. Output is deterministic for a fixed TableOptions.Year.
func WriteTable(w io.Writer, o TableOptions, formats map[int]string, support map[string][]string) error {
	o.fillDefaults()

	rows := make([]string, 0, len(formats))
	err := mapRunFuncSorted(formats, func(index int, name string) error {
		rows = append(rows, formatRow(name, support[name]))
		return nil
	})
	if err != nil {
		return debug.ErrorWrapf(err, "No formats to emit")
	}

	_, err = fmt.Fprintf(w, templateTableAutogenCPP,
		o.ScriptName, o.InputFileName, o.RegistryPath, o.Year, o.OutFileName,
		len(formats), strings.Join(rows, "\n,"))
	if err != nil {
		return debug.ErrorWrapf(err, "Failed to write table")
	}
	return nil
}

// Generate runs the whole pipeline: read the registry at registryPath, read
// the support data at dataPath, then write the table to
// <outDir>/vk_mandatory_format_support_table_autogen.cpp, replacing any prior
// content. Nothing is created or truncated unless both inputs parse.
func Generate(outDir, registryPath, dataPath string) error {
	formats, err := LoadRegistry(registryPath)
	if err != nil {
		return err
	}
	logger.VPrintf("Registry has %d VkFormat enumerants", len(formats))

	support, err := LoadSupport(dataPath)
	if err != nil {
		return err
	}
	logger.VPrintf("Support data covers %d formats", len(support))

	o := TableOptions{
		InputFileName: filepath.Base(dataPath),
		RegistryPath:  registryPath,
	}
	o.fillDefaults()

	outFile := filepath.Join(outDir, o.OutFileName+"_autogen.cpp")
	logger.IPrintf("Writing table to: %q", outFile)
	fOut, err := os.Create(outFile)
	if err != nil {
		return debug.ErrorWrapf(err, "Failed to create %q", outFile)
	}

	if err := WriteTable(fOut, o, formats, support); err != nil {
		fOut.Close()
		return err
	}
	return fOut.Close()
}
