package target

import "fmt"

// Arch identifies a CPU architecture supported on Apple platforms.
// The set is closed: Apple toolchains only ever see these nine values.
type Arch uint8

const (
	// Armv7k is the 32-bit ARM variant used by early Apple Watch hardware.
	Armv7k Arch = iota
	// Armv7s is the 32-bit ARM variant introduced with the iPhone 5.
	Armv7s
	// Arm64 is standard 64-bit ARM.
	Arm64
	// Arm64e is 64-bit ARM with pointer authentication.
	Arm64e
	// Arm64_32 is 64-bit ARM with 32-bit pointers (Apple Watch).
	Arm64_32
	// I386 is 32-bit x86.
	I386
	// I686 is 32-bit x86 with a P6 baseline. The linker does not
	// distinguish it from i386; the triple does.
	I686
	// X86_64 is standard 64-bit x86.
	X86_64
	// X86_64h is 64-bit x86 with a Haswell baseline.
	X86_64h

	archCount
)

// StackProbes describes how stack probing is performed for an architecture.
type StackProbes uint8

const (
	// StackProbesNone disables stack probes.
	StackProbesNone StackProbes = iota
	// StackProbesInline emits inline stack probes.
	StackProbesInline
)

// TripleName returns the architecture component of the LLVM target triple.
func (a Arch) TripleName() string {
	switch a {
	case Armv7k:
		return "armv7k"
	case Armv7s:
		return "armv7s"
	case Arm64:
		return "arm64"
	case Arm64e:
		return "arm64e"
	case Arm64_32:
		return "arm64_32"
	case I386:
		return "i386"
	case I686:
		return "i686"
	case X86_64:
		return "x86_64"
	case X86_64h:
		return "x86_64h"
	default:
		panic(fmt.Sprintf("unknown architecture %d", a))
	}
}

// LinkerName returns the architecture name to forward to ld64.
// ld64 does not understand i686, so it collapses to i386; the same
// value is forwarded when linking through cc, since cc ends up
// invoking ld64 anyway.
func (a Arch) LinkerName() string {
	if a == I686 {
		return "i386"
	}
	return a.TripleName()
}

// Family returns the broad architecture family string consumed by
// downstream configuration ("arm", "aarch64", "x86", "x86_64").
func (a Arch) Family() string {
	switch a {
	case Armv7k, Armv7s:
		return "arm"
	case Arm64, Arm64e, Arm64_32:
		return "aarch64"
	case I386, I686:
		return "x86"
	case X86_64, X86_64h:
		return "x86_64"
	default:
		panic(fmt.Sprintf("unknown architecture %d", a))
	}
}

// DefaultCPU returns the default CPU model for the architecture.
// arm64 depends on the ABI: the simulator and Mac Catalyst runtimes
// never target first-generation 64-bit silicon, so they get a newer
// baseline than device builds.
func (a Arch) DefaultCPU(abi ABI) string {
	switch a {
	case Armv7k:
		return "cortex-a8"
	case Armv7s:
		// iOS 10 is only supported on iPhone 5 or higher.
		return "swift"
	case Arm64:
		if abi == Simulator || abi == MacCatalyst {
			return "apple-a12"
		}
		return "apple-a7"
	case Arm64e:
		return "apple-a12"
	case Arm64_32:
		return "apple-s4"
	case I386, I686, X86_64:
		// Only macOS 10.12+ is supported, which means all x86 CPUs
		// must be running at least penryn.
		return "penryn"
	case X86_64h:
		// Higher baseline than penryn, slightly above the x86_64h ISA.
		return "core-avx2"
	default:
		panic(fmt.Sprintf("unknown architecture %d", a))
	}
}

// StackProbes returns the stack probe style used on this architecture.
func (a Arch) StackProbes() StackProbes {
	switch a {
	case Armv7k, Armv7s:
		return StackProbesNone
	default:
		return StackProbesInline
	}
}

// String implements fmt.Stringer using the triple spelling.
func (a Arch) String() string {
	return a.TripleName()
}

// ParseArch converts an architecture spelling into an Arch value.
func ParseArch(s string) (Arch, error) {
	for a := Arch(0); a < archCount; a++ {
		if a.TripleName() == s {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unsupported architecture %q", s)
}
