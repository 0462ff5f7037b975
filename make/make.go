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

// Package angle provisions the generator's external inputs. The registry is
// normally read out of a third_party checkout, this package instead fetches
// Vulkan-Headers on demand for standalone runs.
package angle

import (
	"path/filepath"

	"goarrg.com/debug"
	"goarrg.com/toolchain"
	"goarrg.com/toolchain/cgodep"
)

func InstallGeneratorDeps() {
	if err := installVkHeaders(); err != nil {
		panic(debug.ErrorWrapf(err, "Failed to install vulkan-headers"))
	}
}

// RegistryPath returns the location of vk.xml inside the vulkan-headers
// checkout made by InstallGeneratorDeps.
func RegistryPath() string {
	installDir := cgodep.InstallDir("vulkan-headers", toolchain.Target{}, toolchain.BuildRelease)
	return filepath.Join(installDir, "registry", "vk.xml")
}
