// Package linkargs assembles the linker and C-compiler-driver
// arguments that tag a Mach-O binary with its platform, architecture
// and deployment target.
package linkargs

import (
	"fmt"

	"machtarget/internal/deploy"
	"machtarget/internal/target"
	"machtarget/internal/triple"
)

// Mode selects which invocation the argument applies to: the platform
// linker invoked directly, or a C compiler front-end driving the link.
type Mode uint8

const (
	// DirectLinker arguments are passed straight to ld64.
	DirectLinker Mode = iota
	// CompilerDriver arguments are passed to cc, which forwards to ld64.
	CompilerDriver
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case DirectLinker:
		return "ld"
	case CompilerDriver:
		return "cc"
	default:
		panic(fmt.Sprintf("unknown invocation mode %d", m))
	}
}

// Arg is one argument token tagged with the invocation mode it
// applies to. Order within a mode is significant.
type Arg struct {
	Mode  Mode
	Token string
}

// Set is the ordered argument list for one target configuration.
type Set []Arg

// Tokens returns the tokens for one invocation mode, in order.
func (s Set) Tokens(mode Mode) []string {
	var out []string
	for _, a := range s {
		if a.Mode == mode {
			out = append(out, a.Token)
		}
	}
	return out
}

func (s *Set) add(mode Mode, tokens ...string) {
	for _, tok := range tokens {
		*s = append(*s, Arg{Mode: mode, Token: tok})
	}
}

// PlatformName returns the platform string ld64 expects in
// -platform_version. This is a third naming scheme, independent from
// both the internal OS key and the LLVM triple OS name: simulators are
// "<os>-simulator" and Mac Catalyst is the literal "mac-catalyst".
func PlatformName(osv target.OS, abi target.ABI) string {
	switch abi {
	case target.Simulator:
		return osv.Key() + "-simulator"
	case target.MacCatalyst:
		return "mac-catalyst"
	default:
		return osv.Key()
	}
}

// Assemble produces the full argument set for the target.
//
// The linker can infer both the architecture and the platform version
// from the objects being linked, but its heuristics produce warnings
// and occasionally wrong answers, so both are always set explicitly.
func Assemble(env deploy.Env, osv target.OS, arch target.Arch, abi target.ABI) Set {
	var args Set

	// ld64 always creates a thin, single-architecture output; -arch
	// names which one, using the linker's own architecture vocabulary.
	args.add(DirectLinker, "-arch", arch.LinkerName())

	ver := deploy.Resolve(env, osv, arch, abi).String()
	// The SDK version is unknown at this stage; the deployment target
	// stands in for it and the final link overwrites it.
	args.add(DirectLinker, "-platform_version", PlatformName(osv, abi), ver, ver)

	// The compiler driver needs the architecture, the OS, the
	// deployment target and the ABI. -target communicates all four at
	// once but is Clang-only, and we cannot know whether cc is Clang
	// or GCC. macOS is the one OS where GCC-compatible flags fully
	// determine the target (it has no ABI qualifier), so it gets
	// -arch plus -mmacosx-version-min. GCC barely supports the other
	// OSes at all, so those use -target unconditionally.
	if osv == target.MacOS {
		args.add(CompilerDriver, "-arch", arch.LinkerName())
		args.add(CompilerDriver, fmt.Sprintf("-mmacosx-version-min=%s", ver))
	} else {
		args.add(CompilerDriver, "-target", triple.Build(env, osv, arch, abi))
	}

	return args
}
