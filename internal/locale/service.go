// Package locale ties geolocation, language selection and currency display
// together into one per-visitor state. Detection starts from the client IP;
// a visitor can override the detected language, and the override sticks for
// that IP until it is reset or the process restarts.
package locale

import (
	"context"
	"sync"

	"github.com/richxcame/agency-site/internal/currency"
	"github.com/richxcame/agency-site/internal/geoip"
	"github.com/richxcame/agency-site/pkg/i18n"
)

// Detection is the fully resolved locale state for one visitor.
type Detection struct {
	Country          string          `json:"country"`
	Language         string          `json:"language"`
	DetectedLanguage string          `json:"detected_language"`
	LanguageOverride bool            `json:"language_override"`
	Currency         currency.Config `json:"currency"`
}

// Service resolves and remembers per-visitor locale state, keyed by IP.
type Service struct {
	resolver *geoip.Resolver

	mu        sync.RWMutex
	overrides map[string]string // ip -> language code
}

// NewService creates a locale service
func NewService(resolver *geoip.Resolver) *Service {
	return &Service{
		resolver:  resolver,
		overrides: make(map[string]string),
	}
}

// Detect resolves the visitor's country, language and currency config.
// forceRefresh bypasses the geolocation cache for this IP.
func (s *Service) Detect(ctx context.Context, ip, acceptLanguage string, forceRefresh bool) Detection {
	country := s.resolver.ResolveCountry(ctx, ip, acceptLanguage, forceRefresh)
	detected := i18n.LanguageForCountry(country)

	language := detected
	override := false
	s.mu.RLock()
	if lang, ok := s.overrides[ip]; ok {
		language = lang
		override = true
	}
	s.mu.RUnlock()

	return Detection{
		Country:          country,
		Language:         language,
		DetectedLanguage: detected,
		LanguageOverride: override,
		Currency:         currency.ConfigFor(country),
	}
}

// Country implements currency.CountryResolver.
func (s *Service) Country(ctx context.Context, ip, acceptLanguage string, forceRefresh bool) string {
	return s.resolver.ResolveCountry(ctx, ip, acceptLanguage, forceRefresh)
}

// SetLanguage pins the visitor's language, overriding detection.
// Unsupported languages are rejected.
func (s *Service) SetLanguage(ip, lang string) bool {
	if !i18n.IsSupported(lang) {
		return false
	}
	s.mu.Lock()
	s.overrides[ip] = lang
	s.mu.Unlock()
	return true
}

// ResetLanguage clears the visitor's override and re-runs detection on the
// next Detect call.
func (s *Service) ResetLanguage(ip string) {
	s.mu.Lock()
	delete(s.overrides, ip)
	s.mu.Unlock()
	s.resolver.Invalidate(ip)
}
