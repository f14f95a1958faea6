package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate_English(t *testing.T) {
	result := Translate("nav.contact", "en", nil)
	assert.Equal(t, "Contact", result)
}

func TestTranslate_Spanish(t *testing.T) {
	result := Translate("hero.cta", "es", nil)
	assert.Equal(t, "Iniciar un proyecto", result)
}

func TestTranslate_NestedKey(t *testing.T) {
	result := Translate("contact.title", "de", nil)
	assert.Equal(t, "Erzählen Sie uns von Ihrem Projekt", result)
}

func TestTranslate_FallsBackToEnglish_MissingKey(t *testing.T) {
	// Japanese tree has no nav section; must fall back to English.
	result := Translate("nav.portfolio", "ja", nil)
	assert.Equal(t, "Portfolio", result)
}

func TestTranslate_FallsBackToEnglish_UnsupportedLang(t *testing.T) {
	result := Translate("nav.home", "xx", nil)
	assert.Equal(t, "Home", result)
}

func TestTranslate_EmptyLang_UsesEnglish(t *testing.T) {
	result := Translate("footer.rights", "", nil)
	assert.Equal(t, "All rights reserved.", result)
}

func TestTranslate_UnknownKey_ReturnsKey(t *testing.T) {
	result := Translate("does.not.exist", "en", nil)
	assert.Equal(t, "does.not.exist", result)
}

func TestTranslate_UnknownKey_UnknownLang_ReturnsKey(t *testing.T) {
	result := Translate("totally.made.up", "zz", nil)
	assert.Equal(t, "totally.made.up", result)
}

func TestTranslate_KeyThroughStringLeaf_ReturnsKey(t *testing.T) {
	// "nav.home" is a string; descending further cannot resolve.
	result := Translate("nav.home.deeper", "en", nil)
	assert.Equal(t, "nav.home.deeper", result)
}

func TestTranslate_WithParams(t *testing.T) {
	result := Translate("contact.success", "en", map[string]string{"name": "Laura"})
	assert.Equal(t, "Thanks Laura! We received your message and will reply within 24 hours.", result)
}

func TestTranslate_WithParams_Spanish(t *testing.T) {
	result := Translate("pricing.from", "es", map[string]string{"price": "$1.200.000"})
	assert.Equal(t, "Desde $1.200.000", result)
}

func TestTranslate_MissingParam_LeavesPlaceholder(t *testing.T) {
	result := Translate("pricing.from", "en", map[string]string{"other": "x"})
	assert.Equal(t, "From {{price}}", result)
}

func TestTranslate_ArrayLeaf_ReturnedAsIs(t *testing.T) {
	result := Translate("services.items", "en", nil)
	items, ok := result.([]string)
	require.True(t, ok, "expected []string leaf")
	assert.Len(t, items, 5)
	assert.Equal(t, "Brand identity", items[0])
}

func TestTranslate_SubtreeLeaf_ReturnedAsIs(t *testing.T) {
	result := Translate("nav", "en", nil)
	_, ok := result.(Tree)
	assert.True(t, ok, "expected Tree value")
}

func TestTranslateString_CollapsesNonString(t *testing.T) {
	assert.Equal(t, "services.items", TranslateString("services.items", "en", nil))
}

func TestInterpolate_Multiple(t *testing.T) {
	s := Interpolate("{{a}} and {{b}} and {{a}}", map[string]string{"a": "1", "b": "2"})
	assert.Equal(t, "1 and 2 and 1", s)
}

func TestInterpolate_NoParams(t *testing.T) {
	assert.Equal(t, "plain", Interpolate("plain", nil))
}

func TestInterpolate_UnclosedPlaceholder(t *testing.T) {
	assert.Equal(t, "broken {{tail", Interpolate("broken {{tail", map[string]string{"tail": "x"}))
}

func TestLanguageForCountry(t *testing.T) {
	assert.Equal(t, "es", LanguageForCountry("CO"))
	assert.Equal(t, "pt", LanguageForCountry("BR"))
	assert.Equal(t, "de", LanguageForCountry("DE"))
	assert.Equal(t, "en", LanguageForCountry("US"))
}

func TestLanguageForCountry_Unknown_DefaultsToEnglish(t *testing.T) {
	assert.Equal(t, "en", LanguageForCountry("XX"))
	assert.Equal(t, "en", LanguageForCountry(""))
	assert.Equal(t, "en", LanguageForCountry("??"))
}

func TestCountryForLanguage(t *testing.T) {
	assert.Equal(t, "ES", CountryForLanguage("es"))
	assert.Equal(t, "US", CountryForLanguage("en"))
	assert.Equal(t, "", CountryForLanguage("nope"))
}

func TestLanguageTree_MergesEnglishGaps(t *testing.T) {
	tree := LanguageTree("ja")

	// Japanese value survives.
	hero, ok := tree["hero"].(Tree)
	require.True(t, ok)
	assert.Equal(t, "動きのあるブランドをつくる", hero["titleLine"])

	// English fills what Japanese lacks.
	assert.Equal(t, "See our work", hero["secondaryCta"])
	nav, ok := tree["nav"].(Tree)
	require.True(t, ok)
	assert.Equal(t, "Home", nav["home"])
}

func TestLanguageTree_UnsupportedLang_ReturnsEnglish(t *testing.T) {
	tree := LanguageTree("xx")
	nav, ok := tree["nav"].(Tree)
	require.True(t, ok)
	assert.Equal(t, "Home", nav["home"])
}
