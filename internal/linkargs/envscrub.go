package linkargs

import (
	"strings"

	"machtarget/internal/deploy"
	"machtarget/internal/target"
)

// sdkrootMarkers are platform install path fragments that mark
// SDKROOT as set for a non-macOS SDK.
var sdkrootMarkers = []string{
	"iPhoneOS.platform",
	"iPhoneSimulator.platform",
	"AppleTVOS.platform",
	"AppleTVSimulator.platform",
	"WatchOS.platform",
	"WatchSimulator.platform",
	"XROS.platform",
	"XRSimulator.platform",
}

// EnvRemove returns the environment variables that must be scrubbed
// before invoking the linker or compiler driver for the target.
//
// The host is assumed to be macOS, the only officially supported host
// for Apple compilation, so stale variables set up for one target can
// corrupt an unrelated cross-target link.
func EnvRemove(env deploy.Env, osv target.OS) []string {
	if osv != target.MacOS {
		// Cross-compiling to another Apple OS (including Catalyst):
		// the host's deployment target is irrelevant and would leak
		// into sub-invocations.
		return []string{"MACOSX_DEPLOYMENT_TARGET"}
	}

	var remove []string
	// Drop SDKROOT when it clearly points at the wrong platform,
	// which happens when a build script for another target left it
	// behind.
	if sdkroot, ok := env("SDKROOT"); ok {
		for _, marker := range sdkrootMarkers {
			if strings.Contains(sdkroot, marker) {
				remove = append(remove, "SDKROOT")
				break
			}
		}
	}
	// IPHONEOS_DEPLOYMENT_TARGET must not be set when linking macOS
	// binaries with the Xcode toolchain linker; the same goes for the
	// other cross-OS overrides. MACOSX_DEPLOYMENT_TARGET stays: we
	// are targeting macOS.
	remove = append(remove,
		"IPHONEOS_DEPLOYMENT_TARGET",
		"TVOS_DEPLOYMENT_TARGET",
		"XROS_DEPLOYMENT_TARGET",
	)
	return remove
}
