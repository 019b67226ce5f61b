package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"machtarget/internal/base"
	"machtarget/internal/deploy"
	"machtarget/internal/linkargs"
	"machtarget/internal/macho"
	"machtarget/internal/target"
)

var describeCmd = &cobra.Command{
	Use:   "describe <target>",
	Short: "Dump the full target configuration",
	Args:  cobra.ExactArgs(1),
	RunE:  runDescribe,
}

func runDescribe(cmd *cobra.Command, args []string) error {
	key, err := resolveTargetSpec(args[0])
	if err != nil {
		return err
	}
	return describeTarget(cmd.OutOrStdout(), key, useColor(cmd, os.Stdout))
}

func describeTarget(out io.Writer, key target.Key, colored bool) error {
	label := color.New(color.FgCyan, color.Bold)
	if !colored {
		label.DisableColor()
	}
	field := func(name, value string) error {
		_, err := fmt.Fprintf(out, "%s %s\n", label.Sprintf("%-16s", name+":"), value)
		return err
	}

	env := deploy.OSEnv()
	opts, tr, family := base.Base(env, key.OS, key.Arch, key.ABI)

	if err := field("target", key.String()); err != nil {
		return err
	}
	if err := field("triple", tr); err != nil {
		return err
	}
	if err := field("deployment", deploy.Resolve(env, key.OS, key.Arch, key.ABI).String()); err != nil {
		return err
	}
	if err := field("arch family", family); err != nil {
		return err
	}
	if err := field("cpu", opts.CPU); err != nil {
		return err
	}
	if err := field("abi", orNone(opts.ABI)); err != nil {
		return err
	}
	if code, ok := macho.PlatformCode(key.OS, key.ABI); ok {
		sdkMajor, sdkMinor, _ := macho.FallbackSDKVersion(code)
		if err := field("platform code", fmt.Sprintf("%d", code)); err != nil {
			return err
		}
		if err := field("sdk fallback", fmt.Sprintf("%d.%d", sdkMajor, sdkMinor)); err != nil {
			return err
		}
	}
	if err := field("ld args", strings.Join(opts.LinkArgs.Tokens(linkargs.DirectLinker), " ")); err != nil {
		return err
	}
	if err := field("cc args", strings.Join(opts.LinkArgs.Tokens(linkargs.CompilerDriver), " ")); err != nil {
		return err
	}
	if err := field("env remove", orNone(strings.Join(opts.EnvRemove, " "))); err != nil {
		return err
	}
	if err := field("dylib suffix", opts.DylibSuffix); err != nil {
		return err
	}
	if err := field("archive", opts.ArchiveFormat); err != nil {
		return err
	}
	if err := field("debug info", fmt.Sprintf("%s (DWARF v%d)", opts.DebugInfo, opts.DefaultDWARFVersion)); err != nil {
		return err
	}
	return field("stack probes", stackProbesName(opts.StackProbes))
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

func stackProbesName(sp target.StackProbes) string {
	if sp == target.StackProbesInline {
		return "inline"
	}
	return "none"
}
