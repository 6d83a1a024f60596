package query

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/ugla-hub/proftafla/internal/domain/exam"
	"github.com/ugla-hub/proftafla/internal/infrastructure/persistence/cache"
	"github.com/ugla-hub/proftafla/pkg/logger"
)

// fakeFetcher counts upstream calls per division and serves synthetic
// listings, so tests can verify the cache short-circuits the transport.
type fakeFetcher struct {
	mu    sync.Mutex
	calls map[int]int
	err   error
	build func(id int, heading string) *exam.DivisionResult
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{
		calls: make(map[int]int),
		build: func(id int, heading string) *exam.DivisionResult {
			return &exam.DivisionResult{
				Heading: heading,
				Departments: []exam.Department{
					{
						Heading: "Deild",
						Tests: []exam.Test{
							{Course: "PRF101G", Name: "Próf", Type: "Skriflegt", Students: id, Date: "9. desember"},
						},
					},
				},
			}
		},
	}
}

func (f *fakeFetcher) FetchDivision(_ context.Context, id int, heading string) (*exam.DivisionResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls[id]++
	if f.err != nil {
		return nil, f.err
	}
	return f.build(id, heading), nil
}

func (f *fakeFetcher) callCount(id int) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[id]
}

func (f *fakeFetcher) totalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		n += c
	}
	return n
}

type testEnv struct {
	svc     *Service
	fetcher *fakeFetcher
	store   *cache.MemoryStore
	cache   *cache.Cache
}

func newTestEnv(t *testing.T, ttl time.Duration) *testEnv {
	t.Helper()

	store := cache.NewMemoryStore()
	c := cache.New(store, "proftafla", ttl, logger.Discard())
	fetcher := newFakeFetcher()

	return &testEnv{
		svc:     NewService(fetcher, c, logger.Discard()),
		fetcher: fetcher,
		store:   store,
		cache:   c,
	}
}
