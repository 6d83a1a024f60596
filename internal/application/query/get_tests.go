package query

import (
	"context"
	"fmt"

	"github.com/ugla-hub/proftafla/internal/domain/division"
	"github.com/ugla-hub/proftafla/internal/domain/exam"
	"github.com/ugla-hub/proftafla/pkg/logger"
)

// GetTests returns the exam listing for the division with the given
// slug. An unknown slug returns (nil, nil); absent is not an error.
// Cache hits are returned verbatim, trusting the store's own TTL
// expiry. On a miss the listing is fetched from Ugla and written back
// best-effort. Concurrent misses for the same slug each fetch
// independently; last write wins.
func (s *Service) GetTests(ctx context.Context, slug string) (*exam.DivisionResult, error) {
	div, ok := division.FindBySlug(slug)
	if !ok {
		s.log.Debug("unknown division slug", logger.Slug(slug))
		return nil, nil
	}

	key := s.cache.Key(slug)

	if res, ok := s.cache.GetResult(ctx, key); ok {
		s.log.Debug("cache hit", logger.CacheKey(key))
		return res, nil
	}

	res, err := s.fetcher.FetchDivision(ctx, div.ID, div.Name)
	if err != nil {
		return nil, fmt.Errorf("get tests for %q: %w", slug, err)
	}

	s.cache.SetResult(ctx, key, res)

	s.log.Debug("fetched fresh listing",
		logger.Slug(slug), logger.Int("tests", res.NumTests()))

	return res, nil
}
