// Package triple formats LLVM target triples for Apple platforms.
package triple

import (
	"fmt"

	"machtarget/internal/deploy"
	"machtarget/internal/target"
)

// Build returns the target triple passed to LLVM and Clang:
// "<arch>-apple-<os><major>.<minor>.<patch><env>".
//
// The triple embeds the resolved deployment target, which is required
// for cross-language LTO and for picking the right Mach-O load
// commands. For a fixed environment snapshot the result is a pure
// function of the target key.
func Build(env deploy.Env, osv target.OS, arch target.Arch, abi target.ABI) string {
	v := deploy.Resolve(env, osv, arch, abi)
	return fmt.Sprintf("%s-apple-%s%s%s",
		arch.TripleName(), osv.LLVMName(), v.String(), abi.TripleSuffix())
}
