package query

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ugla-hub/proftafla/internal/domain/division"
	"github.com/ugla-hub/proftafla/internal/domain/exam"
)

// GetStats fetches every division's listing through the cached lookup
// path, all divisions at once, and folds every test into summary
// statistics. The join is fail-fast: any single lookup error aborts the
// aggregation, there is no partial result.
func (s *Service) GetStats(ctx context.Context) (exam.Stats, error) {
	divisions := division.All()
	results := make([]*exam.DivisionResult, len(divisions))

	g, ctx := errgroup.WithContext(ctx)
	for i, div := range divisions {
		i, div := i, div
		g.Go(func() error {
			res, err := s.GetTests(ctx, div.Slug)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return exam.Stats{}, fmt.Errorf("aggregate stats: %w", err)
	}

	return exam.FoldStats(results), nil
}
