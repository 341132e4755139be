package settings

import (
	"regexp"

	"github.com/Bharath-Kumar-3231/gruut/internal/normalize"
	"github.com/Bharath-Kumar-3231/gruut/internal/util"
)

// builtinLexiconEnUS holds words that look like initialisms or word-break
// candidates but are themselves standard dictionary/lexicon entries and
// should pass through untouched by splitInitialisms/splitWordBreaks.
var builtinLexiconEnUS = util.NewStringSet([]string{
	"OK", "ID", "TV",
	"well-known", "self-esteem", "long-term", "up-to-date",
})

var maybeNumberRE = regexp.MustCompile(`^-?[\d,]*\.?\d+$`)
var maybeDateRE = regexp.MustCompile(`^\d{1,4}[-/]\d{1,2}([-/]\d{1,4})?$`)

// DefaultEnUS returns the built-in en_US settings, the language the
// pipeline falls back to for an unrecognized language code.
func DefaultEnUS() *Settings {
	s := &Settings{
		Lang:           "en_US",
		JoinStr:        " ",
		KeepWhitespace: true,

		BeginPunctuations: []string{`"`, "«", "(", "[", "{"},
		EndPunctuations:   []string{`"`, "»", ")", "]", "}"},

		MinorBreaks: []string{",", ";", ":"},
		MajorBreaks: []string{".", "!", "?"},
		WordBreaks:  []string{"-"},

		MajorBreakPhoneme: "‖",
		MinorBreakPhoneme: "|",

		SpellOutWords: map[string]string{
			"-": "dash",
			"_": "underscore",
			"/": "slash",
			".": "dot",
			"@": "at",
		},

		NumberLocale: "en",
		DateLocale:   "en",

		DefaultCurrency: "dollar",
		Currencies: []CurrencyInfo{
			{Symbol: "US$", Name: "dollar", SubunitName: "cent"},
			{Symbol: "$", Name: "dollar", SubunitName: "cent"},
			{Symbol: "€", Name: "euro", SubunitName: "cent"},
			{Symbol: "£", Name: "pound", SubunitName: "pence"},
		},

		DefaultDateFormat: "mOy",

		// Templates use a capturing group over the abbreviation's first
		// letter so capitalization is preserved ("Mr." -> "Mister" but
		// "dr." -> "doctor").
		Abbreviations: []AbbreviationRule{
			{Pattern: regexp.MustCompile(`^([Mm])r\.`), Template: "${1}ister"},
			{Pattern: regexp.MustCompile(`^([Mm])rs\.`), Template: "${1}isses"},
			{Pattern: regexp.MustCompile(`^([Dd])r\.`), Template: "${1}octor"},
			{Pattern: regexp.MustCompile(`^([Ss])t\.`), Template: "${1}treet"},
		},
	}

	s.IsMaybeNumber = func(text string) bool { return maybeNumberRE.MatchString(text) }
	s.IsMaybeCurrency = hasDigit
	s.IsMaybeDate = func(text string) bool { return maybeDateRE.MatchString(text) }
	s.IsInitialism = defaultIsInitialism
	s.SplitInitialism = defaultSplitInitialism
	s.InLexicon = builtinLexiconEnUS.Has
	s.IsNonWord = func(text string) bool {
		for _, r := range text {
			if ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9') {
				return false
			}
		}
		return len(text) > 0
	}

	if err := s.CompilePatterns(); err != nil {
		panic("settings: built-in en_US settings failed to compile: " + err.Error())
	}

	return s
}

// hasDigit is the default currency eligibility gate: a cheap pre-filter
// before attempting the more expensive symbol scan and locale-sensitive
// parse.
func hasDigit(text string) bool {
	for _, r := range text {
		if '0' <= r && r <= '9' {
			return true
		}
	}
	return false
}

func defaultIsInitialism(text string) bool {
	return len(text) >= 2 && normalize.IsAllUpper(text)
}

func defaultSplitInitialism(text string) []string {
	out := make([]string, 0, len(text))
	for _, r := range text {
		out = append(out, string(r))
	}
	return out
}
