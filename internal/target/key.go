package target

import (
	"fmt"
	"strings"
)

// Key is the (OS, architecture, ABI) tuple that uniquely identifies
// one target configuration. It is the sole input to every computation
// in this module.
type Key struct {
	OS   OS
	Arch Arch
	ABI  ABI
}

// String renders the key as "<os>/<arch>" or "<os>/<arch>/<abi>".
func (k Key) String() string {
	if k.ABI == Normal {
		return k.OS.Key() + "/" + k.Arch.TripleName()
	}
	return k.OS.Key() + "/" + k.Arch.TripleName() + "/" + k.ABI.String()
}

// ParseKey parses a "<os>/<arch>[/<abi>]" target spec.
func ParseKey(spec string) (Key, error) {
	parts := strings.Split(spec, "/")
	if len(parts) != 2 && len(parts) != 3 {
		return Key{}, fmt.Errorf("invalid target spec %q (want <os>/<arch>[/<abi>])", spec)
	}
	os, err := ParseOS(parts[0])
	if err != nil {
		return Key{}, err
	}
	arch, err := ParseArch(parts[1])
	if err != nil {
		return Key{}, err
	}
	abi := Normal
	if len(parts) == 3 {
		abi, err = ParseABI(parts[2])
		if err != nil {
			return Key{}, err
		}
	}
	return Key{OS: os, Arch: arch, ABI: abi}, nil
}

// Keys returns the catalog of supported target configurations. Not
// every point of the OS x Arch x ABI cross-product is meaningful
// (there is no watchOS Mac Catalyst, for example); the catalog lists
// exactly the combinations a toolchain defines targets for.
func Keys() []Key {
	return []Key{
		{MacOS, X86_64, Normal},
		{MacOS, X86_64h, Normal},
		{MacOS, Arm64, Normal},
		{MacOS, Arm64e, Normal},
		{MacOS, I686, Normal},

		{IOS, Arm64, Normal},
		{IOS, Arm64e, Normal},
		{IOS, Armv7s, Normal},
		{IOS, Arm64, Simulator},
		{IOS, X86_64, Simulator},
		{IOS, I386, Simulator},
		{IOS, Arm64, MacCatalyst},
		{IOS, X86_64, MacCatalyst},

		{TVOS, Arm64, Normal},
		{TVOS, Arm64e, Normal},
		{TVOS, Arm64, Simulator},
		{TVOS, X86_64, Simulator},

		{WatchOS, Armv7k, Normal},
		{WatchOS, Arm64_32, Normal},
		{WatchOS, Arm64, Normal},
		{WatchOS, Arm64, Simulator},
		{WatchOS, X86_64, Simulator},

		{VisionOS, Arm64, Normal},
		{VisionOS, Arm64, Simulator},
	}
}

// Supported reports whether k is part of the target catalog.
func Supported(k Key) bool {
	for _, known := range Keys() {
		if known == k {
			return true
		}
	}
	return false
}
