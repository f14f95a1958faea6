// Package geoip resolves a visitor's country from their IP address using a
// chain of free geolocation APIs. Resolution never fails: when every provider
// is unreachable the Accept-Language header decides, and the final default is
// "US". Results are cached in memory for the lifetime of the process only,
// deliberately not persisted, so visitors behind a VPN get re-resolved after
// a restart or refresh.
package geoip

import (
	"context"
	"strings"
	"sync"

	"github.com/richxcame/agency-site/pkg/i18n"
	"github.com/richxcame/agency-site/pkg/logger"
	"go.uber.org/zap"
)

// DefaultCountry is the last-resort country code.
const DefaultCountry = "US"

// maxCacheEntries bounds the per-IP cache. The cache is wiped, not evicted
// LRU-style, once the bound is hit; staleness is acceptable here.
const maxCacheEntries = 10000

// Resolver resolves country codes with provider fallback and an in-memory cache.
type Resolver struct {
	providers []Provider

	mu    sync.RWMutex
	cache map[string]string // ip → country code
}

// NewResolver creates a resolver over the given provider chain.
func NewResolver(providers ...Provider) *Resolver {
	return &Resolver{
		providers: providers,
		cache:     make(map[string]string),
	}
}

// ResolveCountry returns the country code for ip. Providers are tried in
// order; the first usable answer wins and is cached. When all providers fail
// the Accept-Language header is consulted, then DefaultCountry. Never
// returns an error or an empty string.
func (r *Resolver) ResolveCountry(ctx context.Context, ip, acceptLanguage string, forceRefresh bool) string {
	if !forceRefresh {
		if country, ok := r.cached(ip); ok {
			return country
		}
	}

	for _, provider := range r.providers {
		country, err := provider.Lookup(ctx, ip)
		if err != nil {
			logger.WithContext(ctx).Debug("Geo provider lookup failed",
				zap.String("provider", provider.Name()),
				zap.String("ip", ip),
				zap.Error(err))
			continue
		}

		country = normalizeCountry(country)
		if country == "" {
			logger.WithContext(ctx).Debug("Geo provider returned unusable country code",
				zap.String("provider", provider.Name()),
				zap.String("ip", ip))
			continue
		}

		r.store(ip, country)
		return country
	}

	country := countryFromAcceptLanguage(acceptLanguage)
	if country == "" {
		country = DefaultCountry
	}

	logger.WithContext(ctx).Info("All geo providers failed, using locale fallback",
		zap.String("ip", ip),
		zap.String("country", country))

	r.store(ip, country)
	return country
}

// Invalidate drops the cached entry for ip.
func (r *Resolver) Invalidate(ip string) {
	r.mu.Lock()
	delete(r.cache, ip)
	r.mu.Unlock()
}

func (r *Resolver) cached(ip string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	country, ok := r.cache[ip]
	return country, ok
}

func (r *Resolver) store(ip, country string) {
	r.mu.Lock()
	if len(r.cache) >= maxCacheEntries {
		r.cache = make(map[string]string)
	}
	r.cache[ip] = country
	r.mu.Unlock()
}

// normalizeCountry upper-cases and validates a two-letter code; returns ""
// when the value is unusable.
func normalizeCountry(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 2 {
		return ""
	}
	for _, c := range code {
		if c < 'A' || c > 'Z' {
			return ""
		}
	}
	return code
}

// countryFromAcceptLanguage maps the first language subtag of an
// Accept-Language header to a representative country ("es" → "ES").
// Returns "" when nothing usable is present.
func countryFromAcceptLanguage(header string) string {
	if header == "" {
		return ""
	}

	// "es-CO,es;q=0.9,en;q=0.8" → "es-CO"
	first := header
	if idx := strings.IndexByte(first, ','); idx >= 0 {
		first = first[:idx]
	}
	if idx := strings.IndexByte(first, ';'); idx >= 0 {
		first = first[:idx]
	}
	first = strings.TrimSpace(first)

	lang := first
	if idx := strings.IndexByte(lang, '-'); idx >= 0 {
		lang = lang[:idx]
	}
	lang = strings.ToLower(lang)

	return i18n.CountryForLanguage(lang)
}
