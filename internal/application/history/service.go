// Package history implements the cache-first On This Day lookup.
package history

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/halmos/timely/internal/domain"
	"github.com/halmos/timely/internal/ports"
)

// Service orchestrates one lookup end-to-end: resolve the date, consult the
// cache, fetch from the source on a miss, and record the outcome either way.
type Service struct {
	Source ports.HistorySource
	Cache  ports.CacheRepository
	Logger ports.Logger

	mu       sync.Mutex
	inFlight map[string]*sync.Mutex
}

// Result is the canonical lookup response propagated back to the CLI.
type Result struct {
	Response  domain.OnThisDayResponse
	Month     int
	Day       int
	FromCache bool
}

// Lookup processes a single query. Validation failures abort before any
// network access. A live cache entry short-circuits the fetch, including a
// cached failure: short-term negative caching trades a little staleness for
// not hammering the upstream with known-bad requests.
func (s *Service) Lookup(ctx context.Context, q domain.HistoryQuery) (Result, error) {
	if s.Source == nil || s.Cache == nil || s.Logger == nil {
		return Result{}, errors.New("history.Service dependencies not satisfied")
	}

	lang, err := domain.ParseLanguageCode(q.Language)
	if err != nil {
		return Result{}, err
	}

	month, day, err := q.ResolveDate()
	if err != nil {
		return Result{}, err
	}

	key := cacheKey(lang, q.Category, month, day)

	// At most one concurrent fetch per key: a second lookup for the same
	// key waits here and then hits the cache.
	unlock := s.lockKey(key)
	defer unlock()

	if entry, ok := s.Cache.Get(key); ok {
		s.Logger.Debug("cache hit", map[string]interface{}{"key": key, "failed": entry.Failed()})
		if entry.Failed() {
			return Result{}, fmt.Errorf("cached failure for %s: %s", key, entry.FailureMessage)
		}
		return Result{Response: entry.Response, Month: month, Day: day, FromCache: true}, nil
	}

	s.Logger.Debug("cache miss, fetching", map[string]interface{}{
		"key":      key,
		"language": lang,
		"category": string(q.Category),
	})

	entry := domain.CacheEntry{Key: key, CreatedAt: time.Now()}
	resp, err := s.Source.Fetch(ctx, lang, q.Category, month, day)
	if err != nil {
		entry.FailureMessage = err.Error()
		s.Cache.Set(entry)
		return Result{}, fmt.Errorf("fetch on-this-day %s: %w", key, err)
	}

	entry.Response = resp
	s.Cache.Set(entry)
	return Result{Response: resp, Month: month, Day: day}, nil
}

func cacheKey(lang string, category domain.Category, month, day int) string {
	return fmt.Sprintf("%s/%s/%d/%d", lang, category, month, day)
}

func (s *Service) lockKey(key string) func() {
	s.mu.Lock()
	if s.inFlight == nil {
		s.inFlight = make(map[string]*sync.Mutex)
	}
	l, ok := s.inFlight[key]
	if !ok {
		l = &sync.Mutex{}
		s.inFlight[key] = l
	}
	s.mu.Unlock()
	l.Lock()
	return l.Unlock
}
