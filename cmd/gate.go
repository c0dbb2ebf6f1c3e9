package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/akhilbojedla/pitmutation-plugin/internal/controller"
	"github.com/akhilbojedla/pitmutation-plugin/internal/domain"
	m "github.com/akhilbojedla/pitmutation-plugin/internal/model"
)

var minKillFlag float64
var mustImproveFlag bool

// gateCmd represents the gate command.
var gateCmd = newGateCmd()

func newGateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gate <build>",
		Short: "Evaluate the quality gate for a recorded build",
		Long:  gateLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := m.BuildRef(args[0])
			store := openHistoryStore()

			current, err := store.GetReport(ref)
			if err != nil {
				return err
			}

			previous, err := loadPredecessor(store, ref)
			if err != nil {
				return err
			}

			conditions, err := domain.ConditionsFromSettings(
				viper.GetFloat64(minKillConfigKey),
				viper.GetBool(mustImproveConfigKey),
			)
			if err != nil {
				return err
			}

			engine := domain.NewGateEngine(slog.Default(), conditions...)
			result := engine.Evaluate(current, previous)

			ui := controller.NewSimpleUI(cmd)
			ui.DisplayGateOutcome(cmd.Context(), ref, current.Stats(), result)

			if result == m.StatusFailure {
				return fmt.Errorf("quality gate failed for build %s", ref)
			}

			return nil
		},
	}

	configureGateFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(gateCmd)
}

func configureGateFlags(cmd *cobra.Command) {
	cmd.Flags().Float64VarP(&minKillFlag, minKillFlagName, "m", viper.GetFloat64(minKillConfigKey), "minimum kill ratio in percent required to pass")
	bindFlagToConfig(cmd.Flags().Lookup(minKillFlagName), minKillConfigKey)

	cmd.Flags().BoolVar(&mustImproveFlag, mustImproveFlagName, viper.GetBool(mustImproveConfigKey), "also compare the kill ratio against the previous build")
	bindFlagToConfig(cmd.Flags().Lookup(mustImproveFlagName), mustImproveConfigKey)
}
