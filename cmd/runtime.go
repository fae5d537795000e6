package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"cdn-manager/core/api"
	"cdn-manager/core/config"
	"cdn-manager/core/database"
	"cdn-manager/core/events"
	"cdn-manager/core/history"
	"cdn-manager/core/lock"
	"cdn-manager/core/logger"
	"cdn-manager/core/output"
	"cdn-manager/core/snapshot"
	"cdn-manager/core/storage"
	"cdn-manager/feature/origin"

	"go.uber.org/zap"
)

// runtime is what every command needs: configuration and a logger.
type runtime struct {
	cfg    *config.Config
	logger *zap.Logger
	// closers run in reverse order by Close.
	closers []func() error
}

func newRuntime() (*runtime, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	applyCredentialFlags(&cfg.API)

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return &runtime{cfg: cfg, logger: l}, nil
}

// applyCredentialFlags lets flags replace configured credentials. Setting
// --login-user clears a configured token and vice versa so the two never clash.
func applyCredentialFlags(cfg *api.Config) {
	if accountFlag != "" {
		cfg.Account = accountFlag
	}
	if tokenFlag != "" {
		cfg.Token = tokenFlag
		if loginUserFlag == "" {
			cfg.Username, cfg.Password = "", ""
		}
	}
	if loginUserFlag != "" {
		cfg.Username = loginUserFlag
		if tokenFlag == "" {
			cfg.Token = ""
		}
	}
	if loginPassFlag != "" {
		cfg.Password = loginPassFlag
	}
}

func (r *runtime) Close() {
	for i := len(r.closers) - 1; i >= 0; i-- {
		if err := r.closers[i](); err != nil {
			r.logger.Warn("Failed to release resource", zap.Error(err))
		}
	}
	_ = r.logger.Sync()
}

func (r *runtime) apiClient() (*api.Client, error) {
	client, err := api.NewClient(r.cfg.API)
	if err != nil {
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}
	return client, nil
}

func (r *runtime) renderer() (*output.Renderer, error) {
	return output.NewRenderer(outputFormat, jqQuery)
}

func (r *runtime) render(ctx context.Context, v any) error {
	renderer, err := r.renderer()
	if err != nil {
		return err
	}
	return renderer.Render(ctx, os.Stdout, v)
}

// historyRepository connects the run history database when it is enabled and,
// when migrate is set, creates or updates the runs table.
func (r *runtime) historyRepository(ctx context.Context, migrate bool) (*history.Repository, error) {
	if !r.cfg.Database.Enabled {
		return nil, nil
	}
	db, err := database.Connect(r.cfg.Database)
	if err != nil {
		return nil, err
	}
	if sqlDB, err := db.DB(); err == nil {
		r.closers = append(r.closers, sqlDB.Close)
	}
	repo := history.NewRepository(db)
	if !migrate {
		return repo, nil
	}
	if err := repo.Migrate(ctx); err != nil {
		return nil, err
	}
	return repo, nil
}

// originService wires the origin service with every enabled collaborator.
// History, snapshots, locking and events are optional: a backend that fails to
// come up is logged and skipped, except storage and locking which guard
// mutations and therefore abort.
func (r *runtime) originService(ctx context.Context, client *api.Client) (*origin.Service, error) {
	var opts []origin.Option

	repo, err := r.historyRepository(ctx, true)
	if err != nil {
		r.logger.Warn("Optional run history unavailable", zap.Error(err))
	} else if repo != nil {
		opts = append(opts, origin.WithRecorder(repo))
	}

	if r.cfg.Storage.Enabled {
		store, err := storage.NewClient(r.cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		archive := snapshot.New(store, r.cfg.Storage.Bucket, r.cfg.Storage.Retain, r.logger)
		if err := archive.EnsureBucket(ctx); err != nil {
			return nil, err
		}
		opts = append(opts, origin.WithArchive(archive))
	}

	if r.cfg.Lock.Enabled {
		rdb, err := lock.Connect(ctx, r.cfg.Lock.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		r.closers = append(r.closers, rdb.Close)
		ttl := time.Duration(r.cfg.Lock.TTLSeconds) * time.Second
		opts = append(opts, origin.WithLocker(lock.NewRedisLocker(rdb, ttl, r.cfg.Lock.Prefix)))
	}

	if r.cfg.Events.Enabled {
		publisher, err := events.NewKafkaPublisher(r.cfg.Events.Brokers, r.cfg.Events.Topic)
		if err != nil {
			r.logger.Warn("Optional event publisher unavailable", zap.Error(err))
		} else {
			r.closers = append(r.closers, publisher.Close)
			opts = append(opts, origin.WithPublisher(publisher))
		}
	}

	adapter := origin.NewAdapter(client)
	return origin.NewService(adapter, client.Account(), r.logger, opts...), nil
}
