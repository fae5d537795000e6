package inventory

import (
	"context"

	"cdn-manager/core/resource"

	"go.uber.org/zap"
)

// Fetcher reads a whole collection of one kind.
type Fetcher interface {
	Fetch(ctx context.Context, kind string) (resource.Record, error)
}

// Service reads account and catalog collections.
type Service struct {
	fetcher Fetcher
	kinds   []string
	logger  *zap.Logger
}

// NewService creates a new inventory service serving kinds.
func NewService(fetcher Fetcher, kinds []string, logger *zap.Logger) *Service {
	return &Service{fetcher: fetcher, kinds: kinds, logger: logger}
}

// Kinds returns the readable kinds.
func (s *Service) Kinds() []string {
	return s.kinds
}

// Get returns the plain form of a collection.
func (s *Service) Get(ctx context.Context, kind string) (any, error) {
	rec, err := s.fetcher.Fetch(ctx, kind)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("Fetched inventory", zap.String("kind", kind), zap.String("decoded_as", string(rec.Kind())))
	return resource.ToValue(rec), nil
}
