package locale

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richxcame/agency-site/internal/geoip"
)

type stubProvider struct {
	country string
	calls   int
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) Lookup(ctx context.Context, ip string) (string, error) {
	s.calls++
	return s.country, nil
}

func newTestService(country string) (*Service, *stubProvider) {
	provider := &stubProvider{country: country}
	return NewService(geoip.NewResolver(provider)), provider
}

func TestDetect(t *testing.T) {
	ctx := context.Background()

	t.Run("colombian ip maps to spanish and cop", func(t *testing.T) {
		svc, _ := newTestService("CO")

		d := svc.Detect(ctx, "190.0.0.1", "", false)

		assert.Equal(t, "CO", d.Country)
		assert.Equal(t, "es", d.Language)
		assert.Equal(t, "es", d.DetectedLanguage)
		assert.False(t, d.LanguageOverride)
		assert.Equal(t, "COP", d.Currency.CurrencyCode)
	})

	t.Run("detection result is cached per ip", func(t *testing.T) {
		svc, provider := newTestService("DE")

		svc.Detect(ctx, "85.0.0.1", "", false)
		svc.Detect(ctx, "85.0.0.1", "", false)

		assert.Equal(t, 1, provider.calls)
	})

	t.Run("refresh bypasses the cache", func(t *testing.T) {
		svc, provider := newTestService("DE")

		svc.Detect(ctx, "85.0.0.1", "", false)
		svc.Detect(ctx, "85.0.0.1", "", true)

		assert.Equal(t, 2, provider.calls)
	})
}

func TestLanguageOverride(t *testing.T) {
	ctx := context.Background()

	t.Run("override wins over detection", func(t *testing.T) {
		svc, _ := newTestService("CO")

		require.True(t, svc.SetLanguage("190.0.0.1", "en"))
		d := svc.Detect(ctx, "190.0.0.1", "", false)

		assert.Equal(t, "en", d.Language)
		assert.Equal(t, "es", d.DetectedLanguage)
		assert.True(t, d.LanguageOverride)
		// currency still follows the country, not the language
		assert.Equal(t, "COP", d.Currency.CurrencyCode)
	})

	t.Run("unsupported language is rejected", func(t *testing.T) {
		svc, _ := newTestService("CO")

		assert.False(t, svc.SetLanguage("190.0.0.1", "xx"))
		d := svc.Detect(ctx, "190.0.0.1", "", false)
		assert.False(t, d.LanguageOverride)
	})

	t.Run("reset returns to detection", func(t *testing.T) {
		svc, _ := newTestService("CO")

		svc.SetLanguage("190.0.0.1", "en")
		svc.ResetLanguage("190.0.0.1")
		d := svc.Detect(ctx, "190.0.0.1", "", false)

		assert.Equal(t, "es", d.Language)
		assert.False(t, d.LanguageOverride)
	})

	t.Run("overrides are per ip", func(t *testing.T) {
		svc, _ := newTestService("CO")

		svc.SetLanguage("190.0.0.1", "en")
		d := svc.Detect(ctx, "190.0.0.2", "", false)

		assert.Equal(t, "es", d.Language)
		assert.False(t, d.LanguageOverride)
	})
}
