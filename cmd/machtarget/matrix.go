package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"machtarget/internal/base"
	"machtarget/internal/deploy"
	"machtarget/internal/target"
)

var matrixCmd = &cobra.Command{
	Use:   "matrix",
	Short: "Show the full supported target matrix",
	Long:  "Evaluate every supported target configuration and render the results as a table",
	Args:  cobra.NoArgs,
	RunE:  runMatrix,
}

type matrixRow struct {
	spec       string
	triple     string
	deployment string
	cpu        string
}

func runMatrix(cmd *cobra.Command, args []string) error {
	// The environment is read once up front so every row sees the
	// same snapshot even though rows are evaluated concurrently.
	env := deploy.MapEnv(environSnapshot())

	keys := target.Keys()
	rows := make([]matrixRow, len(keys))
	var g errgroup.Group
	for i, key := range keys {
		g.Go(func() error {
			opts, tr, _ := base.Base(env, key.OS, key.Arch, key.ABI)
			rows[i] = matrixRow{
				spec:       key.String(),
				triple:     tr,
				deployment: deploy.Resolve(env, key.OS, key.Arch, key.ABI).String(),
				cpu:        opts.CPU,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if useColor(cmd, os.Stdout) {
		return renderMatrixFancy(out, rows)
	}
	return renderMatrixPlain(out, rows)
}

func environSnapshot() map[string]string {
	snapshot := make(map[string]string)
	for _, osv := range []target.OS{target.MacOS, target.IOS, target.TVOS, target.WatchOS, target.VisionOS} {
		name := osv.DeploymentEnvVar()
		if v, ok := os.LookupEnv(name); ok {
			snapshot[name] = v
		}
	}
	if v, ok := os.LookupEnv("SDKROOT"); ok {
		snapshot["SDKROOT"] = v
	}
	return snapshot
}

func renderMatrixFancy(out io.Writer, rows []matrixRow) error {
	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	cellStyle := lipgloss.NewStyle().PaddingRight(2)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == 0 {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("TARGET", "TRIPLE", "DEPLOYMENT", "CPU")
	for _, r := range rows {
		t.Row(r.spec, r.triple, r.deployment, r.cpu)
	}
	_, err := fmt.Fprintln(out, t)
	return err
}

func renderMatrixPlain(out io.Writer, rows []matrixRow) error {
	specWidth, tripleWidth, deployWidth := len("TARGET"), len("TRIPLE"), len("DEPLOYMENT")
	for _, r := range rows {
		specWidth = max(specWidth, runewidth.StringWidth(r.spec))
		tripleWidth = max(tripleWidth, runewidth.StringWidth(r.triple))
		deployWidth = max(deployWidth, runewidth.StringWidth(r.deployment))
	}
	line := func(spec, triple, deployment, cpu string) error {
		_, err := fmt.Fprintf(out, "%s  %s  %s  %s\n",
			runewidth.FillRight(spec, specWidth),
			runewidth.FillRight(triple, tripleWidth),
			runewidth.FillRight(deployment, deployWidth),
			cpu)
		return err
	}
	if err := line("TARGET", "TRIPLE", "DEPLOYMENT", "CPU"); err != nil {
		return err
	}
	for _, r := range rows {
		if err := line(r.spec, r.triple, r.deployment, r.cpu); err != nil {
			return err
		}
	}
	return nil
}
