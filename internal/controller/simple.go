package controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/akhilbojedla/pitmutation-plugin/internal/model"
)

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

var _ UI = (*SimpleUI)(nil)

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayGateOutcome prints the kill ratio and the gate result for a build.
func (s *SimpleUI) DisplayGateOutcome(ctx context.Context, ref m.BuildRef, stats m.MutationStats, result m.Result) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Build %s: kill ratio %.1f%% (%d of %d mutations killed)\n",
		ref, stats.KillPercent(), stats.Killed, stats.Total)
	s.printf("Quality gate: %s\n", result)
}

// DisplayNoComparison prints that the build has no predecessor to diff
// against.
func (s *SimpleUI) DisplayNoComparison(ctx context.Context, ref m.BuildRef) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Build %s has no previous build to compare against\n", ref)
}

// DisplayNewTargets prints the classes mutated for the first time in this
// build.
func (s *SimpleUI) DisplayNewTargets(ctx context.Context, targets []string) {
	if err := ctx.Err(); err != nil {
		return
	}

	if len(targets) == 0 {
		s.printf("No new targets\n")
		return
	}

	s.printf("New targets:\n")

	for _, target := range targets {
		s.printf("  %s\n", target)
	}
}

// DisplayMutationDiff renders the changed mutations for one class, marking
// the new survivors.
func (s *SimpleUI) DisplayMutationDiff(ctx context.Context, class string, different, survivors []m.Mutation) {
	if err := ctx.Err(); err != nil {
		return
	}

	if len(different) == 0 {
		return
	}

	s.printf("\n%s: %d changed mutation(s), %d new survivor(s)\n%s",
		class, len(different), len(survivors), renderMutationTable(different))
}

// DisplayBuildList renders the recorded build history as a table.
func (s *SimpleUI) DisplayBuildList(ctx context.Context, records []m.BuildRecord) {
	if err := ctx.Err(); err != nil {
		return
	}

	if len(records) == 0 {
		s.printf("No builds recorded\n")
		return
	}

	s.printf("%s", renderBuildTable(records))
}

func renderMutationTable(mutations []m.Mutation) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Line", "Mutator", "Status"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	for _, mutation := range mutations {
		status := "survived"
		if mutation.Detected {
			status = "killed"
		}

		table.Append([]string{fmt.Sprintf("%d", mutation.Line), mutation.Mutator, status})
	}

	table.Render()

	return tableBuffer.String()
}

func renderBuildTable(records []m.BuildRecord) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Build", "Previous", "Mutations", "Killed", "Kill %"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	for _, record := range records {
		stats := record.Report.Stats()
		table.Append([]string{
			string(record.Ref),
			string(record.Previous),
			fmt.Sprintf("%d", stats.Total),
			fmt.Sprintf("%d", stats.Killed),
			fmt.Sprintf("%.1f", stats.KillPercent()),
		})
	}

	table.SetFooter([]string{fmt.Sprintf("Total Builds %d", len(records)), "", "", "", ""})
	table.Render()

	return tableBuffer.String()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
