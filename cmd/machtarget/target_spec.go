package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"machtarget/internal/manifest"
	"machtarget/internal/target"
)

// resolveTargetSpec turns a CLI target argument into a target key.
// Named entries from the nearest machtarget.toml take precedence;
// anything else is parsed as "<os>/<arch>[/<abi>]".
func resolveTargetSpec(spec string) (target.Key, error) {
	m, found, err := manifest.Load(".")
	if err != nil {
		return target.Key{}, err
	}
	if found {
		key, ok, err := m.Resolve(spec)
		if err != nil {
			return target.Key{}, err
		}
		if ok {
			if !target.Supported(key) {
				return target.Key{}, fmt.Errorf("manifest target %q resolves to unsupported %s", spec, key)
			}
			return key, nil
		}
	}
	key, err := target.ParseKey(spec)
	if err != nil {
		return target.Key{}, err
	}
	if !target.Supported(key) {
		return target.Key{}, fmt.Errorf("target %s is not in the supported set", key)
	}
	return key, nil
}

// useColor resolves the --color persistent flag against the terminal
// state of f.
func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
}
