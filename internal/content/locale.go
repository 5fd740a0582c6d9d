package content

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Locale identifies one of the two supported languages.
type Locale string

const (
	English Locale = "en"
	Chinese Locale = "zh"

	DefaultLocale = English
)

var ErrUnknownLocale = errors.New("unknown locale")

var dictionaries = map[Locale]*Dictionary{
	English: &en,
	Chinese: &zh,
}

// Locales returns the supported locales, default first.
func Locales() []Locale {
	return []Locale{English, Chinese}
}

// ParseLocale accepts exactly "en" or "zh" (case-insensitive). The empty
// string resolves to the default locale.
func ParseLocale(s string) (Locale, error) {
	switch Locale(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return DefaultLocale, nil
	case English:
		return English, nil
	case Chinese:
		return Chinese, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLocale, s)
}

// Toggle flips between the two supported locales.
func (l Locale) Toggle() Locale {
	if l == Chinese {
		return English
	}
	return Chinese
}

// Tag returns the BCP 47 tag used for lang attributes and headers.
func (l Locale) Tag() language.Tag {
	if l == Chinese {
		return language.SimplifiedChinese
	}
	return language.English
}

// Resolve returns the dictionary for l. No fallback merging is performed:
// each locale is populated independently.
func Resolve(l Locale) (*Dictionary, error) {
	if l == "" {
		l = DefaultLocale
	}
	d, ok := dictionaries[l]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, l)
	}
	return d, nil
}
