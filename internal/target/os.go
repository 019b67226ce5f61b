package target

import "fmt"

// OS identifies an Apple operating system family. The set is closed;
// an out-of-range value reaching any method is a caller bug and panics
// rather than returning an error.
type OS uint8

const (
	// MacOS is macOS.
	MacOS OS = iota
	// IOS is iOS (including Mac Catalyst and the iOS simulator,
	// which are ABI variants rather than separate OSes).
	IOS
	// TVOS is tvOS.
	TVOS
	// WatchOS is watchOS.
	WatchOS
	// VisionOS is visionOS.
	VisionOS

	osCount
)

// Key returns the internal OS key ("macos", "ios", ...). This is the
// spelling used in configuration and in ld64 platform names; it is
// distinct from the LLVM triple spelling, see LLVMName.
func (os OS) Key() string {
	switch os {
	case MacOS:
		return "macos"
	case IOS:
		return "ios"
	case TVOS:
		return "tvos"
	case WatchOS:
		return "watchos"
	case VisionOS:
		return "visionos"
	default:
		panic(fmt.Sprintf("unknown OS %d", os))
	}
}

// LLVMName returns the canonical OS name used by LLVM triples. The
// renaming is load-bearing: it must match LLVM's triple-parsing table
// exactly (macos→"macosx", visionos→"xros").
func (os OS) LLVMName() string {
	switch os {
	case MacOS:
		return "macosx"
	case IOS:
		return "ios"
	case TVOS:
		return "tvos"
	case WatchOS:
		return "watchos"
	case VisionOS:
		return "xros"
	default:
		panic(fmt.Sprintf("unknown OS %d", os))
	}
}

// DeploymentEnvVar returns the environment variable consulted for the
// deployment target override on this OS.
func (os OS) DeploymentEnvVar() string {
	switch os {
	case MacOS:
		return "MACOSX_DEPLOYMENT_TARGET"
	case IOS:
		return "IPHONEOS_DEPLOYMENT_TARGET"
	case TVOS:
		return "TVOS_DEPLOYMENT_TARGET"
	case WatchOS:
		return "WATCHOS_DEPLOYMENT_TARGET"
	case VisionOS:
		return "XROS_DEPLOYMENT_TARGET"
	default:
		panic(fmt.Sprintf("unknown OS %d", os))
	}
}

// String implements fmt.Stringer using the internal key spelling.
func (os OS) String() string {
	return os.Key()
}

// ParseOS converts an OS key into an OS value.
func ParseOS(s string) (OS, error) {
	for os := OS(0); os < osCount; os++ {
		if os.Key() == s {
			return os, nil
		}
	}
	return 0, fmt.Errorf("unsupported OS %q", s)
}
