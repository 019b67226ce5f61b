// Package deploy resolves the effective minimum-OS version (the
// deployment target) for an Apple target configuration.
package deploy

import (
	"fmt"
	"os"

	"machtarget/internal/target"
)

// Env looks up an environment variable. Resolution re-reads the
// environment on every call — values must never be cached across
// calls, since tests and build drivers mutate the environment between
// resolutions.
type Env func(key string) (string, bool)

// OSEnv reads the real process environment.
func OSEnv() Env {
	return os.LookupEnv
}

// MapEnv returns an Env backed by a fixed map, for deterministic tests.
func MapEnv(vars map[string]string) Env {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

// Floor returns the minimum deployment target supported for the given
// configuration, before any environment override is applied.
func Floor(osv target.OS, arch target.Arch, abi target.ABI) Version {
	// OS-wide minimums. An out-of-range OS is a caller bug; the
	// closed enum panics inside Key() before we ever get here.
	var min Version
	switch osv {
	case target.MacOS:
		min = Version{Major: 10, Minor: 12}
	case target.IOS:
		min = Version{Major: 10}
	case target.TVOS:
		min = Version{Major: 10}
	case target.WatchOS:
		min = Version{Major: 5}
	case target.VisionOS:
		min = Version{Major: 1}
	default:
		panic(fmt.Sprintf("tried to get deployment target for non-Apple platform %d", osv))
	}

	// Certain configurations require a newer minimum than the OS-wide
	// floor.
	switch {
	case osv == target.MacOS && (arch == target.Arm64 || arch == target.Arm64e):
		// 11.0 is the first release with Apple silicon support.
		return Version{Major: 11}
	case osv == target.IOS && arch == target.Arm64e:
		return Version{Major: 14}
	case osv == target.IOS && abi == target.MacCatalyst:
		// Mac Catalyst defaults to 13.1 in Clang.
		return Version{Major: 13, Minor: 1}
	}
	return min
}

// Resolve computes the effective deployment target: the floor for the
// configuration, raised by the OS-specific environment variable when
// one is set.
//
// A malformed override is treated as unset. An override below the
// floor is silently raised to it: deployment targets are commonly set
// too low (for example targeting old x86_64 macOS while building for
// arm64), and going below the floor would produce binaries that
// reference unavailable OS features.
func Resolve(env Env, osv target.OS, arch target.Arch, abi target.ABI) Version {
	floor := Floor(osv, arch, abi)
	raw, ok := env(osv.DeploymentEnvVar())
	if !ok {
		return floor
	}
	v, err := ParseVersion(raw)
	if err != nil {
		return floor
	}
	return v.Max(floor)
}
