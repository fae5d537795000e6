package cmd

import (
	"context"
	"errors"
	"fmt"

	"cdn-manager/core/api"
	"cdn-manager/core/lock"
	"cdn-manager/core/storage"
	"cdn-manager/feature/integrity"

	"github.com/spf13/cobra"
)

var fixFlag bool

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [name]",
	Short: "Check the backends cdn-manager depends on",
	Long: `Authenticates against StrikeTracker and checks every enabled backend: the run
history schema, the snapshot bucket, the redis lock and the kafka brokers.
With --fix a missing runs table column or snapshot bucket is created.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: integrity.Names(),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		rt, err := newRuntime()
		if err != nil {
			return err
		}
		defer rt.Close()

		client, err := rt.apiClient()
		if err != nil {
			return err
		}
		svc := rt.integrityService(ctx, client)

		if len(args) == 1 {
			res, err := svc.Check(ctx, args[0], fixFlag)
			if err != nil {
				return err
			}
			if err := rt.render(ctx, res); err != nil {
				return err
			}
			if res.Failed() {
				return fmt.Errorf("check %s failed: %s", res.Name, res.Detail)
			}
			return nil
		}

		report := svc.Run(ctx, fixFlag)
		if err := rt.render(ctx, report); err != nil {
			return err
		}
		if !report.Healthy {
			return errors.New("one or more checks failed")
		}
		return nil
	},
}

// integrityService wires the integrity checks for every enabled backend. A
// backend that cannot be set up becomes a failed check rather than an error.
// Unlike originService nothing is created or migrated here: that is what
// --fix is for.
func (r *runtime) integrityService(ctx context.Context, client *api.Client) *integrity.Service {
	opts := []integrity.Option{}

	repo, err := r.historyRepository(ctx, false)
	switch {
	case err != nil:
		opts = append(opts, integrity.WithUnavailable(integrity.CheckDatabase, err))
	case repo != nil:
		opts = append(opts, integrity.WithSchema(repo))
	}

	if r.cfg.Storage.Enabled {
		store, err := storage.NewClient(r.cfg.Storage)
		if err != nil {
			opts = append(opts, integrity.WithUnavailable(integrity.CheckStorage, err))
		} else {
			opts = append(opts, integrity.WithBucket(store, r.cfg.Storage.Bucket, r.cfg.Storage.Region))
		}
	}

	if r.cfg.Lock.Enabled {
		rdb, err := lock.Connect(ctx, r.cfg.Lock.URL)
		if err != nil {
			opts = append(opts, integrity.WithUnavailable(integrity.CheckLock, err))
		} else {
			r.closers = append(r.closers, rdb.Close)
			opts = append(opts, integrity.WithRedis(rdb))
		}
	}

	if r.cfg.Events.Enabled {
		opts = append(opts, integrity.WithBrokers(r.cfg.Events.Brokers, r.cfg.Events.Topic))
	}

	return integrity.NewService(client, r.logger, opts...)
}

func init() {
	checkCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create missing schema columns and buckets")
	RootCmd.AddCommand(checkCmd)
}
