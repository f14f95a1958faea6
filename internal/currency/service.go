// Package currency resolves per-country display configuration and converts
// USD base prices to local currency for display. Exchange rates come from a
// live API, cached in memory for an hour; when the fetch fails a hardcoded
// table takes over. Callers never see an error, at worst a slightly stale
// or approximate rate.
package currency

import (
	"context"
	"sync"
	"time"

	"github.com/richxcame/agency-site/pkg/logger"
	"github.com/richxcame/agency-site/pkg/resilience"
	"go.uber.org/zap"
)

// DefaultCacheTTL is how long a fetched rate table stays fresh.
const DefaultCacheTTL = time.Hour

// Service owns the rate cache and the live-fetch fallback logic.
type Service struct {
	provider RateProvider
	breaker  *resilience.CircuitBreaker
	ttl      time.Duration
	now      func() time.Time

	mu    sync.RWMutex
	table RateTable
}

// NewService creates a currency service. breaker may be nil (direct calls).
func NewService(provider RateProvider, breaker *resilience.CircuitBreaker, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Service{
		provider: provider,
		breaker:  breaker,
		ttl:      ttl,
		now:      time.Now,
	}
}

// WithNow overrides the clock, for tests.
func (s *Service) WithNow(now func() time.Time) *Service {
	s.now = now
	return s
}

// Rates returns the active rate table, fetching at most once per TTL window.
// Never fails: fetch or parse errors yield the static fallback table, which
// is cached for the same window so the upstream is not hammered.
func (s *Service) Rates(ctx context.Context) RateTable {
	s.mu.RLock()
	if s.table.Loaded() && s.now().Sub(s.table.FetchedAt) < s.ttl {
		table := s.table
		s.mu.RUnlock()
		return table
	}
	s.mu.RUnlock()

	table := s.fetch(ctx)

	s.mu.Lock()
	// Another request may have refreshed the table while we fetched; keep
	// whichever is live, preferring the newest.
	if !s.table.Loaded() || s.table.FetchedAt.Before(table.FetchedAt) {
		s.table = table
	}
	table = s.table
	s.mu.Unlock()

	return table
}

// Refresh drops the cached table so the next Rates call fetches again.
func (s *Service) Refresh() {
	s.mu.Lock()
	s.table = RateTable{}
	s.mu.Unlock()
}

// FormatPrice renders a USD base price in the currency of cfg using the
// active rate table.
func (s *Service) FormatPrice(ctx context.Context, amountUSD float64, cfg Config) string {
	table := s.Rates(ctx)
	return FormatPrice(amountUSD, cfg, &table)
}

func (s *Service) fetch(ctx context.Context) RateTable {
	rates, err := s.fetchThroughBreaker(ctx)
	if err != nil {
		logger.WithContext(ctx).Warn("Exchange rate fetch failed, using fallback table",
			zap.Error(err))
		table := FallbackTable()
		table.FetchedAt = s.now()
		return table
	}

	return RateTable{
		Rates:     rates,
		Source:    SourceLive,
		FetchedAt: s.now(),
	}
}

func (s *Service) fetchThroughBreaker(ctx context.Context) (map[string]float64, error) {
	if s.breaker == nil {
		return s.provider.FetchRates(ctx)
	}

	result, err := s.breaker.Execute(ctx, func(ctx context.Context) (interface{}, error) {
		return s.provider.FetchRates(ctx)
	})
	if err != nil {
		return nil, err
	}
	return result.(map[string]float64), nil
}
