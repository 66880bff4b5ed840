package domain

import "regexp"

// LocalizedText maps a locale tag to a translated value. The empty tag
// holds the base, locale-less value.
type LocalizedText map[string]string

// Resolve returns the value for locale, falling back to the base value when
// no variant exists for that locale. ok is false when neither is present;
// a missing field is never an error.
func (t LocalizedText) Resolve(locale string) (value string, ok bool) {
	if locale != "" {
		if v, present := t[locale]; present {
			return v, true
		}
	}
	v, present := t[""]
	return v, present
}

// localeKeyPattern admits the document's locale-variant field keys:
// "name", "name_fr", "description", "description_de" and so on.
var localeKeyPattern = regexp.MustCompile(`^(name|description)(?:_([a-z]+))?$`)

// SplitLocaleKey breaks a raw document key such as "name_fr" into its base
// field ("name" or "description") and locale tag ("" for the base key).
// ok is false for every other key shape.
func SplitLocaleKey(key string) (base, locale string, ok bool) {
	m := localeKeyPattern.FindStringSubmatch(key)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}
