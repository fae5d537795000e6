package integrity

import (
	"context"
	"fmt"
	"time"

	"cdn-manager/core/faults"
	"cdn-manager/core/storage"
	"cdn-manager/feature/integrity/checks"

	"go.uber.org/zap"
)

// Check names in the order Run executes them.
const (
	CheckAPI      = "api"
	CheckDatabase = "database"
	CheckStorage  = "storage"
	CheckLock     = "lock"
	CheckEvents   = "events"
)

// Names lists every check.
func Names() []string {
	return []string{CheckAPI, CheckDatabase, CheckStorage, CheckLock, CheckEvents}
}

// Report is the outcome of a full integrity run.
type Report struct {
	Healthy bool            `json:"healthy"`
	Checks  []checks.Result `json:"checks"`
}

// Service checks the backends cdn-manager depends on. Backends that were not
// configured report as disabled.
type Service struct {
	api     checks.Authenticator
	schema  checks.SchemaStore
	store   storage.Client
	bucket  string
	region  string
	redis   checks.Pinger
	brokers []string
	topic   string
	dial    checks.DialFunc
	timeout time.Duration
	// broken holds backends that could not even be set up.
	broken  map[string]error
	logger  *zap.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithSchema checks the run history schema.
func WithSchema(store checks.SchemaStore) Option {
	return func(s *Service) { s.schema = store }
}

// WithBucket checks the snapshot bucket.
func WithBucket(client storage.Client, bucket, region string) Option {
	return func(s *Service) {
		s.store, s.bucket, s.region = client, bucket, region
	}
}

// WithRedis checks the redis server behind the resource lock.
func WithRedis(client checks.Pinger) Option {
	return func(s *Service) { s.redis = client }
}

// WithBrokers checks the kafka cluster events are published to.
func WithBrokers(brokers []string, topic string) Option {
	return func(s *Service) { s.brokers, s.topic = brokers, topic }
}

// WithDialer replaces the kafka dialer.
func WithDialer(dial checks.DialFunc) Option {
	return func(s *Service) { s.dial = dial }
}

// WithUnavailable makes check name fail with err without running it. Use it
// for a backend whose client could not be created.
func WithUnavailable(name string, err error) Option {
	return func(s *Service) {
		if s.broken == nil {
			s.broken = make(map[string]error)
		}
		s.broken[name] = err
	}
}

// WithTimeout bounds each check.
func WithTimeout(d time.Duration) Option {
	return func(s *Service) { s.timeout = d }
}

// NewService creates a new integrity service. api may be nil.
func NewService(api checks.Authenticator, logger *zap.Logger, opts ...Option) *Service {
	s := &Service{
		api:     api,
		dial:    checks.DialKafka,
		timeout: 10 * time.Second,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run executes every check. fix lets the database and storage checks repair
// what they find missing.
func (s *Service) Run(ctx context.Context, fix bool) Report {
	report := Report{Healthy: true}
	for _, name := range Names() {
		res, _ := s.Check(ctx, name, fix)
		if res.Failed() {
			report.Healthy = false
		}
		report.Checks = append(report.Checks, res)
	}
	return report
}

// Check executes one check by name. Unknown names return a NotFound error.
func (s *Service) Check(ctx context.Context, name string, fix bool) (checks.Result, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err, ok := s.broken[name]; ok {
		return checks.Result{Name: name, Status: checks.StatusError, Detail: err.Error()}, nil
	}

	var res checks.Result
	switch name {
	case CheckAPI:
		if s.api == nil {
			return checks.Disabled(name), nil
		}
		res = checks.CheckAPI(ctx, s.api)
	case CheckDatabase:
		if s.schema == nil {
			return checks.Disabled(name), nil
		}
		res = checks.CheckSchema(ctx, s.schema, fix, s.logger)
	case CheckStorage:
		if s.store == nil {
			return checks.Disabled(name), nil
		}
		res = checks.CheckBucket(ctx, s.store, s.bucket, s.region, fix, s.logger)
	case CheckLock:
		if s.redis == nil {
			return checks.Disabled(name), nil
		}
		res = checks.CheckLock(ctx, s.redis)
	case CheckEvents:
		if len(s.brokers) == 0 {
			return checks.Disabled(name), nil
		}
		res = checks.CheckEvents(ctx, s.dial, s.brokers, s.topic)
	default:
		return checks.Result{}, fmt.Errorf("unknown check %q: %w", name, faults.ErrNotFound)
	}

	if res.Status == checks.StatusError || res.Status == checks.StatusWarn {
		s.logger.Warn("Integrity check reported a problem",
			zap.String("check", name),
			zap.String("status", string(res.Status)),
			zap.String("detail", res.Detail),
		)
	}
	return res, nil
}
