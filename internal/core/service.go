package core

import (
	"context"
	"time"
)

// DefaultMaxCatalogItems bounds one catalog submission when no limit is configured.
const DefaultMaxCatalogItems = 200

// ServiceOptions tunes a Service. Zero values select the defaults.
type ServiceOptions struct {
	MaxCatalogItems      int              // Draft rows accepted per submission
	MaxConcurrentBatches int              // Catalog batches written at once
	BatchWait            time.Duration    // How long a batch waits for a slot
	Now                  func() time.Time // Clock used for year validation
}

// Service provides the registration workflow on top of a Repository.
type Service struct {
	repo            Repository
	maxCatalogItems int
	batches         *BatchLimiter
	now             func() time.Time
}

// NewService creates a new Service using repo for persistence.
func NewService(repo Repository, opts ServiceOptions) *Service {
	if opts.MaxCatalogItems <= 0 {
		opts.MaxCatalogItems = DefaultMaxCatalogItems
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Service{
		repo:            repo,
		maxCatalogItems: opts.MaxCatalogItems,
		batches:         NewBatchLimiter(opts.MaxConcurrentBatches, opts.BatchWait),
		now:             opts.Now,
	}
}

// MaxCatalogItems returns the draft row limit for one submission.
func (s *Service) MaxCatalogItems() int {
	return s.maxCatalogItems
}

// BatchStatus reports the catalog batch limiter state.
func (s *Service) BatchStatus() BatchLimiterStatus {
	return s.batches.Status()
}

// WaitForBatches blocks until in-flight catalog batches finish or ctx ends.
func (s *Service) WaitForBatches(ctx context.Context) error {
	return s.batches.WaitForDrain(ctx)
}

// ListIndustries returns all registered industries in display order.
func (s *Service) ListIndustries() []IndustryDefinition {
	return All()
}

// Ping checks that the repository is reachable.
func (s *Service) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
