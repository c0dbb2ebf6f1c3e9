package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/akhilbojedla/pitmutation-plugin/internal/controller"
	m "github.com/akhilbojedla/pitmutation-plugin/internal/model"
)

// diffCmd represents the diff command.
var diffCmd = newDiffCmd()

func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <build>",
		Short: "Show mutations introduced since the previous build",
		Long:  diffLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := m.BuildRef(args[0])
			store := openHistoryStore()
			ui := controller.NewSimpleUI(cmd)
			ctx := cmd.Context()

			current, err := store.GetReport(ref)
			if err != nil {
				return err
			}

			previous, err := loadPredecessor(store, ref)
			if err != nil {
				return err
			}

			targets, err := differ.FindNewTargets(current, previous)
			if errors.Is(err, m.ErrNoPredecessor) {
				ui.DisplayNoComparison(ctx, ref)
				return nil
			}

			if err != nil {
				return err
			}

			ui.DisplayNewTargets(ctx, targets)

			for _, class := range current.TargetClasses() {
				different, err := differ.FindDifferentMutations(current, previous, class)
				if err != nil {
					return err
				}

				survivors, err := differ.FindNewSurvivors(current, previous, class)
				if err != nil {
					return err
				}

				ui.DisplayMutationDiff(ctx, class, different, survivors)
			}

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
