// Package main implements the machtarget CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"machtarget/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "machtarget",
	Short: "Apple target configuration toolkit",
	Long:  `machtarget computes LLVM triples, deployment targets and linker arguments for Apple OS/arch/ABI combinations`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tripleCmd)
	rootCmd.AddCommand(deploymentCmd)
	rootCmd.AddCommand(linkargsCmd)
	rootCmd.AddCommand(describeCmd)
	rootCmd.AddCommand(matrixCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
