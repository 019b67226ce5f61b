// Package base composes the fact tables, the deployment target
// resolver, the triple builder and the link argument assembler into
// one target configuration record.
package base

import (
	"strings"

	"machtarget/internal/deploy"
	"machtarget/internal/linkargs"
	"machtarget/internal/target"
	"machtarget/internal/triple"
)

// DebugInfoPackedDsym is the debug-info style on Apple platforms:
// dsymutil packs split DWARF into a .dSYM bundle next to the binary.
const DebugInfoPackedDsym = "packed-dsym"

// EnvVar is one environment variable to set for linker sub-invocations.
type EnvVar struct {
	Name  string
	Value string
}

// Options is the target configuration record consumed by the object
// emission and linking collaborators.
type Options struct {
	ABI    string // "", "sim" or "macabi"
	OS     string // internal OS key
	Vendor string // always "apple"
	CPU    string // default CPU model

	LLVMTarget string // the full target triple
	ArchFamily string // "arm", "aarch64", "x86" or "x86_64"

	DynamicLinking      bool
	FunctionSections    bool // macOS has -dead_strip instead
	FramePointerAlways  bool
	HasRPath            bool
	HasThreadLocal      bool
	EHFrameHeader       bool
	DefaultDWARFVersion uint8
	DylibSuffix         string
	ArchiveFormat       string
	DebugInfo           string
	StackProbes         target.StackProbes

	LinkArgs  linkargs.Set
	EnvRemove []string
	// LinkEnv is set for deterministic archives: ZERO_AR_DATE makes ar
	// (and newer linkers) zero mtime fields in archive headers.
	LinkEnv []EnvVar
}

// Base computes the full configuration for a target key. It also
// returns the triple and architecture family separately, since most
// callers only need those two strings.
func Base(env deploy.Env, osv target.OS, arch target.Arch, abi target.ABI) (Options, string, string) {
	tr := triple.Build(env, osv, arch, abi)
	opts := Options{
		ABI:    abi.Suffix(),
		OS:     osv.Key(),
		Vendor: "apple",
		CPU:    arch.DefaultCPU(abi),

		LLVMTarget: tr,
		ArchFamily: arch.Family(),

		DynamicLinking:     true,
		FunctionSections:   false,
		FramePointerAlways: true,
		HasRPath:           true,
		// Thread locals arrived with iOS 8 and macOS 10.7, both far
		// below the supported floors.
		HasThreadLocal: true,
		EHFrameHeader:  false,
		// LLVM defaults macOS 10.11+ and iOS 9+ to DWARF v4.
		DefaultDWARFVersion: 4,
		DylibSuffix:         ".dylib",
		ArchiveFormat:       "darwin",
		DebugInfo:           DebugInfoPackedDsym,
		StackProbes:         arch.StackProbes(),

		LinkArgs:  linkargs.Assemble(env, osv, arch, abi),
		EnvRemove: linkargs.EnvRemove(env, osv),
		LinkEnv:   []EnvVar{{Name: "ZERO_AR_DATE", Value: "1"}},
	}
	return opts, tr, arch.Family()
}

// DeploymentTarget recovers the deployment target from an
// already-built Options record, for callers that hold the record but
// not the original key. Only the architecture distinctions that affect
// the floor tables are recovered; everything else resolves the same.
func DeploymentTarget(env deploy.Env, opts Options) deploy.Version {
	var arch target.Arch
	switch {
	case strings.HasPrefix(opts.LLVMTarget, "arm64e"):
		arch = target.Arm64e
	case opts.ArchFamily == "aarch64":
		arch = target.Arm64
	default:
		// Stand-in: no remaining architecture raises the floor.
		arch = target.X86_64
	}
	osv, err := target.ParseOS(opts.OS)
	if err != nil {
		panic("invalid OS '" + opts.OS + "' for Apple target")
	}
	return deploy.Resolve(env, osv, arch, target.ABIFromSuffix(opts.ABI))
}
