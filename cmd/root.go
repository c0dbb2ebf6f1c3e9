// Package cmd provides the root command and CLI setup for pitgate.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/akhilbojedla/pitmutation-plugin/internal/adapter"
	"github.com/akhilbojedla/pitmutation-plugin/internal/domain"
	m "github.com/akhilbojedla/pitmutation-plugin/internal/model"
)

// differ is the shared report comparator; it is stateless and reused by
// every command that diffs builds.
var differ domain.DiffEngine

// historyFlag is a root-level flag shared by commands that read/write the
// build history.
var historyFlag string

const rootLongDescription = `pitgate evaluates recorded mutation-testing reports against a quality gate
and compares a build's report with its predecessor to surface newly
introduced mutations that the test suite failed to catch.

Reports are recorded per build under the history directory and referenced
by build identifier.`

const gateLongDescription = `Evaluate the configured quality conditions against a recorded build.

The gate fails when the kill ratio falls below the configured minimum and
can additionally compare the ratio against the previous build's.`

const diffLongDescription = `Compare a recorded build's report with its predecessor.

Lists target classes mutated for the first time, mutations that changed
since the previous build, and the new survivors among them.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pitgate",
		Short: "Mutation testing quality gate",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func init() {
	configureRootFlags(rootCmd)

	differ = domain.NewDiffEngine()
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&historyFlag, historyFlagName, "H",
			viper.GetString(historyFlagName),
			"directory holding recorded build reports",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(historyFlagName), historyFlagName)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func openHistoryStore() *adapter.HistoryStore {
	return adapter.NewHistoryStore(viper.GetString(historyFlagName))
}

// loadPredecessor resolves and loads the report of the build preceding ref.
// It returns nil without error when no predecessor is recorded.
func loadPredecessor(store *adapter.HistoryStore, ref m.BuildRef) (*m.Report, error) {
	prevRef, ok, err := store.GetPredecessor(ref)
	if err != nil {
		return nil, err
	}

	if !ok {
		slog.Info("no previous build recorded", "build", ref)
		return nil, nil
	}

	report, err := store.GetReport(prevRef)
	if err != nil {
		return nil, fmt.Errorf("previous build %s: %w", prevRef, err)
	}

	return report, nil
}
