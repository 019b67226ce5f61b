package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"machtarget/internal/deploy"
	"machtarget/internal/snapshot"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Serialize the target matrix snapshot",
	Long:  "Serialize the full computed target matrix as msgpack for consumption by other tools",
	Args:  cobra.NoArgs,
	RunE:  runDump,
}

func init() {
	dumpCmd.Flags().StringP("output", "o", "", "write the snapshot to a file instead of stdout")
}

func runDump(cmd *cobra.Command, args []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to get output flag: %w", err)
	}

	snap := snapshot.Capture(deploy.OSEnv())
	if outputPath == "" {
		return snapshot.Write(cmd.OutOrStdout(), snap)
	}

	// #nosec G304 -- path comes from the user's own -o flag
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", outputPath, err)
	}
	if err := snapshot.Write(file, snap); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close %q: %w", outputPath, err)
	}
	return nil
}
