package i18n

// Supported UI languages. Anything else resolves to DefaultLang.
const (
	LangES = "es"
	LangEN = "en"
	LangPT = "pt"
	LangFR = "fr"
	LangDE = "de"
	LangZH = "zh"
	LangJA = "ja"
	LangKO = "ko"
	LangVI = "vi"
	LangAR = "ar"
	LangIT = "it"
	LangRU = "ru"
	LangHI = "hi"
)

// supportedLanguages is the closed set of languages the site ships.
var supportedLanguages = map[string]bool{
	LangES: true, LangEN: true, LangPT: true, LangFR: true, LangDE: true,
	LangZH: true, LangJA: true, LangKO: true, LangVI: true, LangAR: true,
	LangIT: true, LangRU: true, LangHI: true,
}

// countryToLanguage maps ISO 3166-1 alpha-2 country codes to the site language
// shown by default for visitors from that country.
var countryToLanguage = map[string]string{
	// Spanish
	"ES": LangES, "MX": LangES, "CO": LangES, "AR": LangES, "PE": LangES,
	"VE": LangES, "CL": LangES, "EC": LangES, "GT": LangES, "CU": LangES,
	"BO": LangES, "DO": LangES, "HN": LangES, "PY": LangES, "SV": LangES,
	"NI": LangES, "CR": LangES, "PA": LangES, "UY": LangES, "PR": LangES,

	// English
	"US": LangEN, "GB": LangEN, "CA": LangEN, "AU": LangEN, "NZ": LangEN,
	"IE": LangEN, "ZA": LangEN, "SG": LangEN, "PH": LangEN, "NG": LangEN,
	"KE": LangEN, "GH": LangEN,

	// Portuguese
	"BR": LangPT, "PT": LangPT, "AO": LangPT, "MZ": LangPT,

	// French
	"FR": LangFR, "BE": LangFR, "CH": LangFR, "LU": LangFR, "MC": LangFR,
	"SN": LangFR, "CI": LangFR, "CM": LangFR, "MA": LangFR, "DZ": LangFR,
	"TN": LangFR,

	// German
	"DE": LangDE, "AT": LangDE, "LI": LangDE,

	// Chinese
	"CN": LangZH, "TW": LangZH, "HK": LangZH, "MO": LangZH,

	// Japanese
	"JP": LangJA,

	// Korean
	"KR": LangKO,

	// Vietnamese
	"VN": LangVI,

	// Arabic
	"SA": LangAR, "AE": LangAR, "EG": LangAR, "IQ": LangAR, "JO": LangAR,
	"KW": LangAR, "LB": LangAR, "LY": LangAR, "OM": LangAR, "QA": LangAR,
	"SY": LangAR, "YE": LangAR, "BH": LangAR,

	// Italian
	"IT": LangIT, "SM": LangIT, "VA": LangIT,

	// Russian
	"RU": LangRU, "BY": LangRU, "KZ": LangRU, "KG": LangRU,

	// Hindi
	"IN": LangHI,
}

// languageToCountry maps a language subtag to a representative country, used
// when geolocation fails and only the visitor's Accept-Language is available.
var languageToCountry = map[string]string{
	LangES: "ES",
	LangEN: "US",
	LangPT: "BR",
	LangFR: "FR",
	LangDE: "DE",
	LangZH: "CN",
	LangJA: "JP",
	LangKO: "KR",
	LangVI: "VN",
	LangAR: "SA",
	LangIT: "IT",
	LangRU: "RU",
	LangHI: "IN",
}

// LanguageForCountry returns the site language for a country code.
// Total over all inputs: unknown or unsupported codes map to DefaultLang.
func LanguageForCountry(country string) string {
	if lang, ok := countryToLanguage[country]; ok {
		return lang
	}
	return DefaultLang
}

// CountryForLanguage returns a representative country for a language subtag,
// or "" when the language is not one the site ships.
func CountryForLanguage(lang string) string {
	return languageToCountry[lang]
}

// IsSupported reports whether lang is one of the shipped site languages.
func IsSupported(lang string) bool {
	return supportedLanguages[lang]
}

// SupportedLanguages returns the list of shipped language codes.
func SupportedLanguages() []string {
	langs := make([]string, 0, len(supportedLanguages))
	for lang := range supportedLanguages {
		langs = append(langs, lang)
	}
	return langs
}
