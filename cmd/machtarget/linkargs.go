package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"machtarget/internal/deploy"
	"machtarget/internal/linkargs"
)

var linkargsCmd = &cobra.Command{
	Use:   "linkargs <target>",
	Short: "Print linker invocation arguments",
	Long:  "Print the arguments that tag a binary with its platform, architecture and deployment target, for direct ld64 invocation or for a C compiler driver",
	Args:  cobra.ExactArgs(1),
	RunE:  runLinkargs,
}

func init() {
	linkargsCmd.Flags().String("mode", "ld", "invocation mode (ld|cc)")
	linkargsCmd.Flags().Bool("scrub", false, "print the environment variables to remove instead")
}

func runLinkargs(cmd *cobra.Command, args []string) error {
	key, err := resolveTargetSpec(args[0])
	if err != nil {
		return err
	}
	modeValue, err := cmd.Flags().GetString("mode")
	if err != nil {
		return fmt.Errorf("failed to get mode flag: %w", err)
	}
	scrub, err := cmd.Flags().GetBool("scrub")
	if err != nil {
		return fmt.Errorf("failed to get scrub flag: %w", err)
	}

	env := deploy.OSEnv()
	out := cmd.OutOrStdout()
	if scrub {
		for _, name := range linkargs.EnvRemove(env, key.OS) {
			if _, err := fmt.Fprintln(out, name); err != nil {
				return err
			}
		}
		return nil
	}

	var mode linkargs.Mode
	switch modeValue {
	case "ld":
		mode = linkargs.DirectLinker
	case "cc":
		mode = linkargs.CompilerDriver
	default:
		return fmt.Errorf("unsupported mode %q (must be ld or cc)", modeValue)
	}
	tokens := linkargs.Assemble(env, key.OS, key.Arch, key.ABI).Tokens(mode)
	_, err = fmt.Fprintln(out, strings.Join(tokens, " "))
	return err
}
