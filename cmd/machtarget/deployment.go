package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"machtarget/internal/deploy"
)

var deploymentCmd = &cobra.Command{
	Use:   "deployment <target>",
	Short: "Print the resolved deployment target",
	Long:  "Print the effective minimum-OS version for a target, after applying the deployment-target environment override",
	Args:  cobra.ExactArgs(1),
	RunE:  runDeployment,
}

func init() {
	deploymentCmd.Flags().Bool("floor", false, "print the unconditional floor, ignoring environment overrides")
}

func runDeployment(cmd *cobra.Command, args []string) error {
	key, err := resolveTargetSpec(args[0])
	if err != nil {
		return err
	}
	floorOnly, err := cmd.Flags().GetBool("floor")
	if err != nil {
		return fmt.Errorf("failed to get floor flag: %w", err)
	}

	var v deploy.Version
	if floorOnly {
		v = deploy.Floor(key.OS, key.Arch, key.ABI)
	} else {
		v = deploy.Resolve(deploy.OSEnv(), key.OS, key.Arch, key.ABI)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), v.String())
	return err
}
