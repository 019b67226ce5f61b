package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"machtarget/internal/deploy"
	"machtarget/internal/target"
	"machtarget/internal/ui"
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Interactively pick a target and describe it",
	Args:  cobra.NoArgs,
	RunE:  runPick,
}

func runPick(cmd *cobra.Command, args []string) error {
	if !isTerminal(os.Stdout) {
		return fmt.Errorf("pick needs a terminal; use 'machtarget matrix' for scripted output")
	}

	model := ui.NewPickerModel(deploy.OSEnv(), target.Keys())
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout), tea.WithAltScreen())
	finished, err := program.Run()
	if err != nil {
		return fmt.Errorf("target picker failed: %w", err)
	}
	key, ok := ui.Choice(finished)
	if !ok {
		// Dismissed without choosing; not an error.
		return nil
	}
	return describeTarget(cmd.OutOrStdout(), key, useColor(cmd, os.Stdout))
}
