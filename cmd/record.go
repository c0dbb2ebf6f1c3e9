package cmd

import (
	"github.com/spf13/cobra"

	"github.com/akhilbojedla/pitmutation-plugin/internal/adapter"
	m "github.com/akhilbojedla/pitmutation-plugin/internal/model"
)

var recordPreviousFlag string

// recordCmd represents the record command.
var recordCmd = newRecordCmd()

func newRecordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record <build> <targets-file>",
		Short: "Record a build's mutation snapshot into the history",
		Long: `Record a build's per-class mutation lists (a YAML map of class name to
mutations) under the history directory, optionally linking it to the
preceding build.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			targets, err := adapter.ReadTargets(args[1])
			if err != nil {
				return err
			}

			record := m.BuildRecord{
				Ref:      m.BuildRef(args[0]),
				Report:   m.NewReport(targets),
				Previous: m.BuildRef(recordPreviousFlag),
			}

			if err := openHistoryStore().Save(record); err != nil {
				return err
			}

			stats := record.Report.Stats()
			cmd.Printf("Recorded build %s: %d mutations, %.1f%% killed\n",
				record.Ref, stats.Total, stats.KillPercent())

			return nil
		},
	}

	cmd.Flags().StringVarP(&recordPreviousFlag, "previous", "p", "", "reference of the preceding build")

	return cmd
}

func init() {
	rootCmd.AddCommand(recordCmd)
}
