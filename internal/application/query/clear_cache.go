package query

import "context"

// ClearCache removes every cached division result. Returns true when
// listing and all deletes succeed, false otherwise.
func (s *Service) ClearCache(ctx context.Context) bool {
	return s.cache.Clear(ctx)
}
