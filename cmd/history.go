package cmd

import (
	"errors"

	"cdn-manager/core/history"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	historyKind  string
	historyKey   string
	historyLimit int
)

// historyCmd lists recorded reconciliation runs.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded reconciliation runs",
	Long:  `Lists reconciliation runs from the run history database, newest first. Requires database.enabled.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		rt, err := newRuntime()
		if err != nil {
			return err
		}
		defer rt.Close()

		repo, err := requireHistory(rt, cmd, true)
		if err != nil {
			return err
		}

		runs, err := repo.List(ctx, history.Filter{Kind: historyKind, ResourceKey: historyKey, Limit: historyLimit})
		if err != nil {
			return err
		}
		return rt.render(ctx, runs)
	},
}

// historySchemaCmd reports columns the runs table is missing.
var historySchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check the runs table against the expected columns",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		rt, err := newRuntime()
		if err != nil {
			return err
		}
		defer rt.Close()

		repo, err := requireHistory(rt, cmd, false)
		if err != nil {
			return err
		}

		missing, err := repo.CheckSchema(ctx)
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			rt.logger.Warn("Runs table is missing columns", zap.Strings("columns", missing))
		} else {
			rt.logger.Info("Runs table schema is up to date")
		}
		return rt.render(ctx, map[string]any{"missing": missing})
	},
}

func requireHistory(rt *runtime, cmd *cobra.Command, migrate bool) (*history.Repository, error) {
	repo, err := rt.historyRepository(cmd.Context(), migrate)
	if err != nil {
		return nil, err
	}
	if repo == nil {
		return nil, errors.New("run history is disabled; set database.enabled")
	}
	return repo, nil
}

func init() {
	historyCmd.Flags().StringVar(&historyKind, "kind", "", "Only runs of this resource kind")
	historyCmd.Flags().StringVar(&historyKey, "key", "", "Only runs for this resource key")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 50, "Maximum number of runs")

	historyCmd.AddCommand(historySchemaCmd)
	RootCmd.AddCommand(historyCmd)
}
