// Package macho holds the Mach-O build-version platform code tables
// and the placeholder SDK versions used before the real SDK is known.
package macho

import "machtarget/internal/target"

// Platform codes embedded in LC_BUILD_VERSION load commands.
const (
	PlatformMacOS            uint32 = 1
	PlatformIOS              uint32 = 2
	PlatformTvOS             uint32 = 3
	PlatformWatchOS          uint32 = 4
	PlatformMacCatalyst      uint32 = 6
	PlatformIOSSimulator     uint32 = 7
	PlatformTvOSSimulator    uint32 = 8
	PlatformWatchOSSimulator uint32 = 9
	// The visionOS codes are documented stand-in values pending a
	// platform definition in the upstream object library.
	PlatformVisionOS          uint32 = 11
	PlatformVisionOSSimulator uint32 = 12
)

// PlatformCode maps an (OS, ABI) pair to its Mach-O platform code.
// The second return is false for pairs that do not denote an Apple
// platform; callers must treat that as "not applicable", not as an
// error.
func PlatformCode(osv target.OS, abi target.ABI) (uint32, bool) {
	switch osv {
	case target.MacOS:
		return PlatformMacOS, true
	case target.IOS:
		switch abi {
		case target.MacCatalyst:
			return PlatformMacCatalyst, true
		case target.Simulator:
			return PlatformIOSSimulator, true
		default:
			return PlatformIOS, true
		}
	case target.TVOS:
		if abi == target.Simulator {
			return PlatformTvOSSimulator, true
		}
		return PlatformTvOS, true
	case target.WatchOS:
		if abi == target.Simulator {
			return PlatformWatchOSSimulator, true
		}
		return PlatformWatchOS, true
	case target.VisionOS:
		if abi == target.Simulator {
			return PlatformVisionOSSimulator, true
		}
		return PlatformVisionOS, true
	default:
		return 0, false
	}
}

// FallbackSDKVersion returns a deliberately approximate SDK version
// for the platform. The values are from an arbitrary point in time and
// must not survive into a final binary: the final link step passes the
// real SDK version and overwrites these.
func FallbackSDKVersion(platform uint32) (major uint16, minor uint8, ok bool) {
	switch platform {
	case PlatformMacOS:
		return 13, 1, true
	case PlatformIOS, PlatformIOSSimulator, PlatformTvOS, PlatformTvOSSimulator, PlatformMacCatalyst:
		return 16, 2, true
	case PlatformWatchOS, PlatformWatchOSSimulator:
		return 9, 1, true
	case PlatformVisionOS, PlatformVisionOSSimulator:
		return 1, 0, true
	default:
		return 0, 0, false
	}
}
