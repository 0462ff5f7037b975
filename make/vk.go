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

package angle

import (
	"goarrg.com/debug"
	"goarrg.com/toolchain"
	"goarrg.com/toolchain/cgodep"
	"goarrg.com/toolchain/git"
)

const (
	vkHeadersURL   = "https://github.com/KhronosGroup/Vulkan-Headers.git"
	vkHeadersBuild = "-angle0"
)

func installVkHeaders() error {
	installDir := cgodep.InstallDir("vulkan-headers", toolchain.Target{}, toolchain.BuildRelease)

	var ref git.Ref
	{
		refs, err := git.GetRemoteHeads(vkHeadersURL, "vulkan-sdk-*")
		if err != nil {
			return err
		}
		ref = refs[0]
	}

	version := ref.Name + "@" + ref.Hash + vkHeadersBuild
	if cgodep.ReadVersion(installDir) == version {
		return nil
	}

	debug.IPrintf("Fetching vulkan-headers %s", ref.Name)
	if err := git.CloneOrFetch(vkHeadersURL, installDir, ref); err != nil {
		return err
	}

	return cgodep.WriteMetaFile("vulkan-headers", toolchain.Target{}, toolchain.BuildRelease, cgodep.Meta{
		Version: version,
	})
}
