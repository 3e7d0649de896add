package notify

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownLanguage = errors.New("unknown language")

// languageCodes maps human-readable language names, as stored in the
// registry, to translation-service codes.
var languageCodes = map[string]string{
	"Afrikaans":             "af",
	"Albanian":              "sq",
	"Amharic":               "am",
	"Arabic":                "ar",
	"Armenian":              "hy",
	"Azerbaijani":           "az",
	"Bengali":               "bn",
	"Bosnian":               "bs",
	"Bulgarian":             "bg",
	"Catalan":               "ca",
	"Chinese (Simplified)":  "zh",
	"Chinese (Traditional)": "zh-TW",
	"Croatian":              "hr",
	"Czech":                 "cs",
	"Danish":                "da",
	"Dari":                  "fa-AF",
	"Dutch":                 "nl",
	"English":               "en",
	"Estonian":              "et",
	"Farsi (Persian)":       "fa",
	"Filipino, Tagalog":     "tl",
	"Finnish":               "fi",
	"French":                "fr",
	"French (Canada)":       "fr-CA",
	"Georgian":              "ka",
	"German":                "de",
	"Greek":                 "el",
	"Gujarati":              "gu",
	"Haitian Creole":        "ht",
	"Hausa":                 "ha",
	"Hebrew":                "he",
	"Hindi":                 "hi",
	"Hungarian":             "hu",
	"Icelandic":             "is",
	"Indonesian":            "id",
	"Irish":                 "ga",
	"Italian":               "it",
	"Japanese":              "ja",
	"Kannada":               "kn",
	"Kazakh":                "kk",
	"Korean":                "ko",
	"Latvian":               "lv",
	"Lithuanian":            "lt",
	"Macedonian":            "mk",
	"Malay":                 "ms",
	"Malayalam":             "ml",
	"Maltese":               "mt",
	"Marathi":               "mr",
	"Mongolian":             "mn",
	"Norwegian":             "no",
	"Pashto":                "ps",
	"Polish":                "pl",
	"Portuguese (Brazil)":   "pt",
	"Portuguese (Portugal)": "pt-PT",
	"Punjabi":               "pa",
	"Romanian":              "ro",
	"Russian":               "ru",
	"Serbian":               "sr",
	"Sinhala":               "si",
	"Slovak":                "sk",
	"Slovenian":             "sl",
	"Somali":                "so",
	"Spanish":               "es",
	"Spanish (Mexico)":      "es-MX",
	"Swahili":               "sw",
	"Swedish":               "sv",
	"Tamil":                 "ta",
	"Telugu":                "te",
	"Thai":                  "th",
	"Turkish":               "tr",
	"Ukrainian":             "uk",
	"Urdu":                  "ur",
	"Uzbek":                 "uz",
	"Vietnamese":            "vi",
	"Welsh":                 "cy",
}

// codesByLower backs the case-insensitive lookup. Built eagerly at
// process start; never mutated afterwards.
var codesByLower = make(map[string]string, len(languageCodes))

func init() {
	for name, code := range languageCodes {
		codesByLower[strings.ToLower(name)] = code
	}
}

// LanguageCode resolves a language name to its translation code,
// matching case-insensitively.
func LanguageCode(name string) (string, error) {
	code, ok := codesByLower[strings.ToLower(name)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, name)
	}
	return code, nil
}
