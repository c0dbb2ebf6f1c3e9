package cmd

import (
	"github.com/spf13/cobra"

	"github.com/akhilbojedla/pitmutation-plugin/internal/controller"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recorded builds and their mutation stats",
		Long:  "List every build recorded in the history directory with its mutation counts and kill ratio.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, err := openHistoryStore().List()
			if err != nil {
				return err
			}

			controller.NewSimpleUI(cmd).DisplayBuildList(cmd.Context(), records)

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
}
