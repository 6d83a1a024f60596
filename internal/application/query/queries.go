// Package query contains the read operations exposed by the service:
// the cached division lookup, cache clearing, and the cross-division
// statistics aggregation. Queries never modify state beyond filling the
// cache.
package query

import (
	"context"

	"github.com/ugla-hub/proftafla/internal/domain/division"
	"github.com/ugla-hub/proftafla/internal/domain/exam"
	"github.com/ugla-hub/proftafla/pkg/logger"
)

// Fetcher is the upstream capability the lookup path needs: fetch and
// parse one division's exam listing.
type Fetcher interface {
	FetchDivision(ctx context.Context, divisionID int, heading string) (*exam.DivisionResult, error)
}

// ResultCache is the cache capability. Reads report hit/miss only;
// writes and clears are best-effort by contract.
type ResultCache interface {
	Key(slug string) string
	GetResult(ctx context.Context, key string) (*exam.DivisionResult, bool)
	SetResult(ctx context.Context, key string, res *exam.DivisionResult)
	Clear(ctx context.Context) bool
}

// Service executes the queries against the division registry, the
// cache, and the Ugla client.
type Service struct {
	fetcher Fetcher
	cache   ResultCache
	log     *logger.Logger
}

// NewService creates a new query Service.
func NewService(fetcher Fetcher, cache ResultCache, log *logger.Logger) *Service {
	return &Service{
		fetcher: fetcher,
		cache:   cache,
		log:     log.With(logger.Component("query")),
	}
}

// Divisions returns the registry listing in its fixed order.
func (s *Service) Divisions() []division.Division {
	return division.All()
}
