package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"machtarget/internal/deploy"
	"machtarget/internal/triple"
)

var tripleCmd = &cobra.Command{
	Use:   "triple <target>",
	Short: "Print the LLVM target triple",
	Long:  "Print the LLVM target triple for a target spec (\"<os>/<arch>[/<abi>]\" or a machtarget.toml entry name)",
	Args:  cobra.ExactArgs(1),
	RunE:  runTriple,
}

func runTriple(cmd *cobra.Command, args []string) error {
	key, err := resolveTargetSpec(args[0])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), triple.Build(deploy.OSEnv(), key.OS, key.Arch, key.ABI))
	return err
}
