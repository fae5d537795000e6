package origin

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"cdn-manager/core/events"
	"cdn-manager/core/faults"
	"cdn-manager/core/history"
	"cdn-manager/core/lock"
	"cdn-manager/core/logger"
	"cdn-manager/core/reconcile"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrHistoryDisabled is returned by Runs when no history store is configured.
var ErrHistoryDisabled = errors.New("run history is disabled")

// Archiver stores the pre-mutation projection of a resource.
type Archiver interface {
	Save(ctx context.Context, account, kind, key, runID string, state map[string]any) (string, error)
}

// Recorder stores finished runs.
type Recorder interface {
	Save(ctx context.Context, run *history.Run) error
	List(ctx context.Context, filter history.Filter) ([]history.Run, error)
}

// Report is the outcome of one reconciliation run.
type Report struct {
	RunID string `json:"run_id"`
	*reconcile.Result
}

// Service reconciles origins and records what it did.
type Service struct {
	adapter   reconcile.Adapter
	account   string
	logger    *zap.Logger
	locker    lock.Locker
	archive   Archiver
	recorder  Recorder
	publisher events.Publisher
	now       func() time.Time

	// mu keeps a process to one reconciliation at a time.
	mu sync.Mutex
}

// Option configures optional collaborators of a Service.
type Option func(*Service)

// WithLocker coordinates mutations with other processes.
func WithLocker(l lock.Locker) Option {
	return func(s *Service) { s.locker = l }
}

// WithArchive snapshots resources before they are updated or deleted.
func WithArchive(a Archiver) Option {
	return func(s *Service) { s.archive = a }
}

// WithRecorder stores every run.
func WithRecorder(r Recorder) Option {
	return func(s *Service) { s.recorder = r }
}

// WithPublisher emits an event for every applied change.
func WithPublisher(p events.Publisher) Option {
	return func(s *Service) { s.publisher = p }
}

// NewService creates a new origin service.
func NewService(adapter reconcile.Adapter, account string, logger *zap.Logger, opts ...Option) *Service {
	s := &Service{
		adapter:   adapter,
		account:   account,
		logger:    logger,
		locker:    lock.NopLocker{},
		publisher: events.NopPublisher{},
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Reconcile converges one origin to opts.
//
// The returned report is never nil. On failure it carries whatever was known when
// the run stopped.
func (s *Service) Reconcile(ctx context.Context, opts Options) (*Report, error) {
	runID := uuid.NewString()
	l := logger.WithRunID(s.logger, runID)
	report := &Report{RunID: runID, Result: &reconcile.Result{Action: reconcile.ActionNone, Resource: map[string]any{}}}

	req, err := opts.Request()
	if err != nil {
		l.Warn("Rejected origin options", zap.Error(err))
		return report, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	started := s.now()

	if !req.DryRun {
		release, err := s.lock(ctx, l, opts.LockKey())
		if err != nil {
			return report, err
		}
		defer release()
	}

	plan, err := reconcile.PlanReconcile(ctx, s.adapter, req)
	if err == nil && !req.DryRun {
		// Runs by id lock the id; take the resolved hostname too so they exclude
		// runs naming the same origin by hostname, then plan again under both.
		if key, ok := s.resolvedKey(plan); ok && key != opts.LockKey() {
			release, lockErr := s.lock(ctx, l, key)
			if lockErr != nil {
				return report, lockErr
			}
			defer release()
			plan, err = reconcile.PlanReconcile(ctx, s.adapter, req)
		}
	}
	if err != nil {
		l.Error("Failed to plan origin reconciliation", zap.Error(err))
		s.record(ctx, l, runID, opts.LockKey(), req, report.Result, nil, started, err)
		return report, err
	}

	l = l.With(zap.String("key", plan.Key), zap.String("action", string(plan.Action)))
	l.Info("Planned origin reconciliation", zap.Bool("dry_run", req.DryRun))

	if err := s.snapshot(ctx, l, runID, plan, req); err != nil {
		report.Result = &reconcile.Result{Action: plan.Action, Resource: plan.Before()}
		s.record(ctx, l, runID, plan.Key, req, report.Result, plan.Before(), started, err)
		return report, err
	}

	result, err := reconcile.Apply(ctx, s.adapter, plan, req)
	report.Result = result
	s.record(ctx, l, runID, plan.Key, req, result, plan.Before(), started, err)
	if err != nil {
		l.Error("Origin reconciliation failed", zap.Error(err))
		return report, err
	}

	if result.Changed && !req.DryRun {
		s.publish(ctx, l, runID, plan.Key, plan.Before(), result)
	}

	l.Info("Origin reconciled", zap.String("result", string(result.Action)), zap.Bool("changed", result.Changed))
	return report, nil
}

// List returns the projection of every origin on the account.
func (s *Service) List(ctx context.Context) ([]map[string]any, error) {
	items, err := s.adapter.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		out = append(out, item.Project())
	}
	return out, nil
}

// Get returns the projection of one origin, or faults.ErrNotFound.
func (s *Service) Get(ctx context.Context, id int64) (map[string]any, error) {
	item, err := s.adapter.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, faults.ErrNotFound
	}
	return item.Project(), nil
}

// Runs lists recorded runs, newest first.
func (s *Service) Runs(ctx context.Context, filter history.Filter) ([]history.Run, error) {
	if s.recorder == nil {
		return nil, ErrHistoryDisabled
	}
	return s.recorder.List(ctx, filter)
}

func (s *Service) lock(ctx context.Context, l *zap.Logger, key string) (func(), error) {
	release, err := s.locker.Acquire(ctx, s.adapter.Name()+"/"+key)
	if err != nil {
		l.Warn("Origin is locked", zap.String("key", key), zap.Error(err))
		return nil, err
	}
	return func() {
		if err := release(context.WithoutCancel(ctx)); err != nil {
			l.Warn("Failed to release origin lock", zap.String("key", key), zap.Error(err))
		}
	}, nil
}

// resolvedKey returns the natural key of the origin a plan resolved.
func (s *Service) resolvedKey(plan *reconcile.Plan) (string, bool) {
	if plan.Current == nil {
		return "", false
	}
	value, ok := plan.Current.Lookup(s.adapter.NaturalKey())
	if !ok || value == nil {
		return "", false
	}
	key := fmt.Sprint(value)
	return key, key != ""
}

// snapshot archives the resolved origin before an update or delete. A failed
// snapshot aborts the run so no change goes unarchived.
func (s *Service) snapshot(ctx context.Context, l *zap.Logger, runID string, plan *reconcile.Plan, req reconcile.Request) error {
	if s.archive == nil || req.DryRun || plan.Current == nil || plan.Action == reconcile.ActionNone {
		return nil
	}
	name, err := s.archive.Save(ctx, s.account, s.adapter.Name(), plan.Key, runID, plan.Before())
	if err != nil {
		l.Error("Failed to snapshot origin", zap.Error(err))
		return err
	}
	l.Debug("Snapshot stored", zap.String("object", name))
	return nil
}

func (s *Service) record(ctx context.Context, l *zap.Logger, runID, key string, req reconcile.Request, result *reconcile.Result, before map[string]any, started time.Time, runErr error) {
	if s.recorder == nil {
		return
	}
	run := &history.Run{
		RunID:       runID,
		Account:     s.account,
		Kind:        s.adapter.Name(),
		ResourceKey: key,
		Action:      string(result.Action),
		Changed:     result.Changed,
		DryRun:      req.DryRun,
		Before:      history.EncodeState(before),
		After:       history.EncodeState(afterState(result)),
		StartedAt:   started,
		FinishedAt:  s.now(),
	}
	if runErr != nil {
		run.Error = runErr.Error()
	}
	if err := s.recorder.Save(context.WithoutCancel(ctx), run); err != nil {
		l.Warn("Failed to record run", zap.Error(err))
	}
}

func (s *Service) publish(ctx context.Context, l *zap.Logger, runID, key string, before map[string]any, result *reconcile.Result) {
	event := events.Event{
		Type:    s.adapter.Name() + "." + string(result.Action),
		RunID:   runID,
		Account: s.account,
		Kind:    s.adapter.Name(),
		Key:     key,
		Action:  string(result.Action),
		Before:  before,
		After:   afterState(result),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		l.Warn("Failed to publish event", zap.Error(err))
	}
}

// afterState is the resource once the run is over. A deleted resource has none.
func afterState(result *reconcile.Result) map[string]any {
	if result.Changed && result.Action == reconcile.ActionDeleted {
		return map[string]any{}
	}
	return result.Resource
}
