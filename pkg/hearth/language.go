package hearth

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Language selects the interface translation. The underlying string is the
// stable identifier persisted in the config file; NativeName is what users
// see. Identifiers never change once shipped, no matter how the display
// labels evolve.
type Language string

const (
	LanguageCzech      Language = "Czech"
	LanguageDanish     Language = "Danish"
	LanguageGerman     Language = "German"
	LanguageEnglish    Language = "English"
	LanguageSpanish    Language = "Spanish"
	LanguageFrench     Language = "French"
	LanguageHungarian  Language = "Hungarian"
	LanguageNorwegian  Language = "Norwegian"
	LanguagePortuguese Language = "Portuguese"
	LanguageRussian    Language = "Russian"
	LanguageSlovak     Language = "Slovak"
	LanguageSwedish    Language = "Swedish"
	LanguageTurkish    Language = "Turkish"
	LanguageUkrainian  Language = "Ukrainian"
)

// DefaultLanguage is used when the config records none.
const DefaultLanguage = LanguageEnglish

// Languages returns every supported language, ordered alphabetically by
// native name for display. The slice is freshly allocated.
func Languages() []Language {
	return []Language{
		LanguageCzech,
		LanguageDanish,
		LanguageGerman,
		LanguageEnglish,
		LanguageSpanish,
		LanguageFrench,
		LanguageHungarian,
		LanguageNorwegian,
		LanguagePortuguese,
		LanguageRussian,
		LanguageSlovak,
		LanguageSwedish,
		LanguageTurkish,
		LanguageUkrainian,
	}
}

// ParseLanguage resolves an identifier to a Language, ignoring case and
// surrounding whitespace. Unknown identifiers return an
// UnknownLanguageError.
func ParseLanguage(s string) (Language, error) {
	id := strings.TrimSpace(s)
	for _, l := range Languages() {
		if strings.EqualFold(id, string(l)) {
			return l, nil
		}
	}
	return "", NewUnknownLanguageError(s)
}

// String returns the stable identifier.
func (l Language) String() string {
	return string(l)
}

// IsValid reports whether l is one of the supported languages.
func (l Language) IsValid() bool {
	for _, known := range Languages() {
		if l == known {
			return true
		}
	}
	return false
}

// NativeName returns the language's own name for itself, exactly as the
// interface has always displayed it.
func (l Language) NativeName() string {
	switch l {
	case LanguageCzech:
		return "Čeština"
	case LanguageDanish:
		return "Dansk"
	case LanguageGerman:
		return "Deutsch"
	case LanguageEnglish:
		return "English"
	case LanguageSpanish:
		return "Español"
	case LanguageFrench:
		return "Français"
	case LanguageHungarian:
		return "Magyar"
	case LanguageNorwegian:
		return "Norsk Bokmål"
	case LanguagePortuguese:
		return "Português"
	case LanguageRussian:
		return "Pусский"
	case LanguageSlovak:
		return "Slovenčina"
	case LanguageSwedish:
		return "Svenska"
	case LanguageTurkish:
		return "Türkçe"
	case LanguageUkrainian:
		return "Yкраїнська"
	default:
		return string(l)
	}
}

// Code returns the locale code used when loading translation catalogs.
// Codes are historical and frozen; Swedish has always shipped as se_SE.
func (l Language) Code() string {
	switch l {
	case LanguageCzech:
		return "cs_CZ"
	case LanguageDanish:
		return "da_DK"
	case LanguageGerman:
		return "de_DE"
	case LanguageEnglish:
		return "en_US"
	case LanguageSpanish:
		return "es_ES"
	case LanguageFrench:
		return "fr_FR"
	case LanguageHungarian:
		return "hu_HU"
	case LanguageNorwegian:
		return "nb_NO"
	case LanguagePortuguese:
		return "pt_PT"
	case LanguageRussian:
		return "ru_RU"
	case LanguageSlovak:
		return "sk_SK"
	case LanguageSwedish:
		return "se_SE"
	case LanguageTurkish:
		return "tr_TR"
	case LanguageUkrainian:
		return "uk_UA"
	default:
		return ""
	}
}

// MarshalYAML writes the canonical identifier.
func (l Language) MarshalYAML() (any, error) {
	return string(l), nil
}

// UnmarshalYAML accepts a scalar language identifier and rejects unknown
// ones.
func (l *Language) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("unsupported yaml node kind %d for language", node.Kind)
	}
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("decode language: %w", err)
	}
	parsed, err := ParseLanguage(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
