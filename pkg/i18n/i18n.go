// Package i18n provides the site's compiled-in translations plus the
// country → language mapping used for automatic locale detection.
// Lookup order for a key: active language → English → the key itself.
// Translations are compiled into the binary; there is no runtime loading.
package i18n

import "strings"

// Fallback language used when a key or language is not found.
const DefaultLang = "en"

// Tree is a nested translation structure. Leaves are strings or []string;
// interior nodes are further Trees.
type Tree map[string]interface{}

// Translate resolves a dot-separated key in lang. Missing segments fall back
// to the English tree; if the key is absent there too, the key itself is
// returned. String leaves have {{param}} placeholders substituted from params.
// Total: never panics, never returns nil for a non-empty key.
func Translate(key, lang string, params map[string]string) interface{} {
	if !IsSupported(lang) {
		lang = DefaultLang
	}

	value, ok := walk(translations[lang], key)
	if !ok && lang != DefaultLang {
		value, ok = walk(translations[DefaultLang], key)
	}
	if !ok {
		return key
	}

	if s, isString := value.(string); isString {
		return Interpolate(s, params)
	}
	return value
}

// TranslateString is Translate for callers that expect a string leaf.
// Non-string values (arrays, subtrees) collapse to the raw key.
func TranslateString(key, lang string, params map[string]string) string {
	if s, ok := Translate(key, lang, params).(string); ok {
		return s
	}
	return key
}

// LanguageTree returns the full tree for lang with English entries filling any
// gaps, suitable for handing the whole dictionary to the frontend at once.
func LanguageTree(lang string) Tree {
	if !IsSupported(lang) {
		lang = DefaultLang
	}
	base := translations[DefaultLang]
	if lang == DefaultLang {
		return base
	}
	return mergeTrees(base, translations[lang])
}

// Interpolate substitutes {{name}} placeholders in s from params.
// Placeholders without a matching param are left untouched.
func Interpolate(s string, params map[string]string) string {
	if len(params) == 0 || !strings.Contains(s, "{{") {
		return s
	}

	var b strings.Builder
	for {
		start := strings.Index(s, "{{")
		if start < 0 {
			b.WriteString(s)
			break
		}
		end := strings.Index(s[start:], "}}")
		if end < 0 {
			b.WriteString(s)
			break
		}
		end += start

		name := strings.TrimSpace(s[start+2 : end])
		b.WriteString(s[:start])
		if value, ok := params[name]; ok {
			b.WriteString(value)
		} else {
			b.WriteString(s[start : end+2])
		}
		s = s[end+2:]
	}
	return b.String()
}

// walk descends tree along the dot-separated key.
func walk(tree Tree, key string) (interface{}, bool) {
	if tree == nil || key == "" {
		return nil, false
	}

	segments := strings.Split(key, ".")
	var current interface{} = tree
	for _, segment := range segments {
		node, ok := current.(Tree)
		if !ok {
			return nil, false
		}
		current, ok = node[segment]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// mergeTrees overlays over on top of base without mutating either.
func mergeTrees(base, over Tree) Tree {
	merged := make(Tree, len(base))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range over {
		if overSub, ok := v.(Tree); ok {
			if baseSub, ok := merged[k].(Tree); ok {
				merged[k] = mergeTrees(baseSub, overSub)
				continue
			}
		}
		merged[k] = v
	}
	return merged
}
