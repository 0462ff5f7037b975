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

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"goarrg.com/debug"

	angle "github.com/playbar/angle/make"
	"github.com/playbar/angle/vkformat"
)

var flags flag.FlagSet

func main() {
	debug.SetLevel(debug.LogLevelWarn)

	flags.Usage = help
	flags.Init("", flag.ExitOnError)

	v := flags.Bool("v", false, "Verbose - Print high level tasks")
	vv := flags.Bool("vv", false, "Very Verbose - Print everything")

	registry := flags.String("registry",
		filepath.Join("third_party", "vulkan-headers", "src", "registry", "vk.xml"),
		"Sets the path to the vk.xml registry.")
	input := flags.String("input", "vk_mandatory_format_support_data.json",
		"Sets the path to the mandatory format support data.")
	outDir := flags.String("out-dir", ".", "Sets the output directory.")

	fetchHeaders := flags.Bool("fetch-headers", false,
		"Fetches Vulkan-Headers and reads the registry from the checkout instead of -registry.")

	err := flags.Parse(os.Args[1:])
	if err != nil {
		panic(err)
	}

	if *v {
		debug.SetLevel(debug.LogLevelInfo)
	} else if *vv {
		debug.SetLevel(debug.LogLevelVerbose)
	}

	if flags.NArg() > 0 {
		debug.EPrintf("vkfmtgen takes no arguments.")
		help()
		os.Exit(2)
	}

	if *fetchHeaders {
		angle.InstallGeneratorDeps()
		*registry = angle.RegistryPath()
	}

	debug.IPrintf("Generating mandatory format support table")
	if err := vkformat.Generate(*outDir, *registry, *input); err != nil {
		panic(err)
	}
}

func help() {
	fmt.Fprintf(os.Stderr, "vkfmtgen regenerates vk_mandatory_format_support_table_autogen.cpp from the\n"+
		"VkFormat block of the vk.xml registry and the hand maintained\n"+
		"vk_mandatory_format_support_data.json.\n"+
		"\nThe output is committed alongside the renderer, it is not regenerated at build time.\n"+
		"\n")
	args := ""
	flags.VisitAll(func(f *flag.Flag) {
		n, u := flag.UnquoteUsage(f)
		if f.DefValue != "" {
			u += "\n\nDefaults to \"" + f.DefValue + "\"."
		}
		args += "\t-" + f.Name + " " + n + "\n\t\t" + strings.ReplaceAll(strings.TrimSpace(u), "\n", "\n\t\t") + "\n"
	})
	fmt.Fprintf(os.Stderr, "Usage:\n\t%s [arguments]\n\nArguments:\n%s", filepath.Base(os.Args[0]), args)
}
