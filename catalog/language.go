package catalog

import "strings"

// Language selects which side of a Message is shown.
type Language string

const (
	English Language = "en"
	Arabic  Language = "ar"
)

// DefaultLanguage is used when no preference has been stored.
const DefaultLanguage = English

// ParseLanguage accepts "en" and "ar" in any case.
func ParseLanguage(s string) (Language, bool) {
	switch Language(strings.ToLower(strings.TrimSpace(s))) {
	case English:
		return English, true
	case Arabic:
		return Arabic, true
	}
	return DefaultLanguage, false
}

// Direction is the document text direction for the language.
func (l Language) Direction() string {
	if l == Arabic {
		return "rtl"
	}
	return "ltr"
}

func (l Language) IsRTL() bool {
	return l == Arabic
}

// Toggle switches between English and Arabic.
func (l Language) Toggle() Language {
	if l == English {
		return Arabic
	}
	return English
}

func (l Language) String() string {
	return string(l)
}
