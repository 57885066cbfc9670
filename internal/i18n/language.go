package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Language is a supported content language code.
type Language string

const (
	English Language = "en"
	German  Language = "de"
	Spanish Language = "es"
	French  Language = "fr"
	Arabic  Language = "ar"

	Default = English
)

type Direction string

const (
	LTR Direction = "ltr"
	RTL Direction = "rtl"
)

// Languages lists supported languages; the first one is the fallback.
var Languages = []Language{English, German, Spanish, French, Arabic}

var nativeNames = map[Language]string{
	English: "English",
	German:  "Deutsch",
	Spanish: "Español",
	French:  "Français",
	Arabic:  "العربية",
}

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.German,
	language.Spanish,
	language.French,
	language.Arabic,
})

func (l Language) Valid() bool {
	_, ok := nativeNames[l]
	return ok
}

// Suffix returns the column suffix for the language, e.g. "De".
func (l Language) Suffix() string {
	if !l.Valid() {
		return "En"
	}
	s := string(l)
	return strings.ToUpper(s[:1]) + s[1:]
}

func (l Language) Dir() Direction {
	if l == Arabic {
		return RTL
	}
	return LTR
}

func (l Language) NativeName() string {
	return nativeNames[l]
}

// Parse converts a language code like "de" or "de-AT" to a supported language.
func Parse(code string) (Language, bool) {
	tag, err := language.Parse(strings.TrimSpace(code))
	if err != nil {
		return Default, false
	}

	base, _ := tag.Base()
	l := Language(base.String())
	if !l.Valid() {
		return Default, false
	}

	return l, true
}

// Match picks the best supported language for Accept-Language style values.
func Match(accept ...string) Language {
	_, idx := language.MatchStrings(matcher, accept...)
	if idx < 0 || idx >= len(Languages) {
		return Default
	}
	return Languages[idx]
}
