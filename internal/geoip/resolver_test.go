package geoip

import (
	"context"
	"errors"
	"testing"

	"github.com/richxcame/agency-site/pkg/i18n"
	"github.com/stretchr/testify/assert"
)

// fakeProvider is a scriptable in-package provider.
type fakeProvider struct {
	name    string
	country string
	err     error
	calls   int
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) Lookup(ctx context.Context, ip string) (string, error) {
	f.calls++
	return f.country, f.err
}

func failing(name string) *fakeProvider {
	return &fakeProvider{name: name, err: errors.New("unreachable")}
}

func answering(name, country string) *fakeProvider {
	return &fakeProvider{name: name, country: country}
}

func TestResolveCountry_FirstProviderWins(t *testing.T) {
	p1 := answering("one", "CO")
	p2 := answering("two", "DE")
	r := NewResolver(p1, p2)

	country := r.ResolveCountry(context.Background(), "1.2.3.4", "", false)

	assert.Equal(t, "CO", country)
	assert.Equal(t, 1, p1.calls)
	assert.Equal(t, 0, p2.calls, "later providers must not be called after a success")
}

func TestResolveCountry_FallsThroughToThirdProvider(t *testing.T) {
	p1 := failing("one")
	p2 := failing("two")
	p3 := answering("three", "BR")
	r := NewResolver(p1, p2, p3)

	country := r.ResolveCountry(context.Background(), "1.2.3.4", "", false)

	assert.Equal(t, "BR", country)
	assert.Equal(t, 1, p1.calls)
	assert.Equal(t, 1, p2.calls)
	assert.Equal(t, 1, p3.calls)

	// Downstream language for BR is Portuguese.
	assert.Equal(t, "pt", i18n.LanguageForCountry(country))
}

func TestResolveCountry_SkipsUnusableCode(t *testing.T) {
	p1 := answering("one", "???")
	p2 := answering("two", "de")
	r := NewResolver(p1, p2)

	country := r.ResolveCountry(context.Background(), "1.2.3.4", "", false)

	assert.Equal(t, "DE", country, "codes are normalized to upper case")
}

func TestResolveCountry_AllFail_AcceptLanguageFallback(t *testing.T) {
	r := NewResolver(failing("one"), failing("two"), failing("three"))

	country := r.ResolveCountry(context.Background(), "1.2.3.4", "es-CO,es;q=0.9,en;q=0.8", false)

	assert.Equal(t, "ES", country)
}

func TestResolveCountry_AllFail_NoHeader_DefaultsUS(t *testing.T) {
	r := NewResolver(failing("one"))

	country := r.ResolveCountry(context.Background(), "1.2.3.4", "", false)

	assert.Equal(t, "US", country)
}

func TestResolveCountry_AllFail_UnknownLanguage_DefaultsUS(t *testing.T) {
	r := NewResolver(failing("one"))

	country := r.ResolveCountry(context.Background(), "1.2.3.4", "tlh", false)

	assert.Equal(t, "US", country)
}

func TestResolveCountry_CachesPerIP(t *testing.T) {
	p := answering("one", "JP")
	r := NewResolver(p)

	first := r.ResolveCountry(context.Background(), "9.9.9.9", "", false)
	second := r.ResolveCountry(context.Background(), "9.9.9.9", "", false)

	assert.Equal(t, "JP", first)
	assert.Equal(t, "JP", second)
	assert.Equal(t, 1, p.calls, "second call must come from cache")
}

func TestResolveCountry_ForceRefresh_BypassesCache(t *testing.T) {
	p := answering("one", "JP")
	r := NewResolver(p)

	r.ResolveCountry(context.Background(), "9.9.9.9", "", false)
	p.country = "KR"
	refreshed := r.ResolveCountry(context.Background(), "9.9.9.9", "", true)

	assert.Equal(t, "KR", refreshed)
	assert.Equal(t, 2, p.calls)
}

func TestResolveCountry_FallbackIsCached(t *testing.T) {
	p := failing("one")
	r := NewResolver(p)

	r.ResolveCountry(context.Background(), "9.9.9.9", "", false)
	r.ResolveCountry(context.Background(), "9.9.9.9", "", false)

	assert.Equal(t, 1, p.calls, "fallback result should be cached too")
}

func TestInvalidate(t *testing.T) {
	p := answering("one", "JP")
	r := NewResolver(p)

	r.ResolveCountry(context.Background(), "9.9.9.9", "", false)
	r.Invalidate("9.9.9.9")
	r.ResolveCountry(context.Background(), "9.9.9.9", "", false)

	assert.Equal(t, 2, p.calls)
}

func TestNormalizeCountry(t *testing.T) {
	assert.Equal(t, "US", normalizeCountry("us"))
	assert.Equal(t, "DE", normalizeCountry(" DE "))
	assert.Equal(t, "", normalizeCountry("USA"))
	assert.Equal(t, "", normalizeCountry("1A"))
	assert.Equal(t, "", normalizeCountry(""))
}

func TestCountryFromAcceptLanguage(t *testing.T) {
	assert.Equal(t, "ES", countryFromAcceptLanguage("es"))
	assert.Equal(t, "ES", countryFromAcceptLanguage("es-MX,es;q=0.9"))
	assert.Equal(t, "US", countryFromAcceptLanguage("en-GB"))
	assert.Equal(t, "BR", countryFromAcceptLanguage("pt-BR;q=0.8"))
	assert.Equal(t, "", countryFromAcceptLanguage(""))
	assert.Equal(t, "", countryFromAcceptLanguage("tlh-QO"))
}
