package locale

import (
	"strings"

	"github.com/shopspring/decimal"
)

// commaDecimalLangs lists languages whose conventional decimal separator
// is a comma (and grouping separator a dot).
var commaDecimalLangs = map[string]bool{
	"de": true, "es": true, "fr": true, "it": true, "pt": true, "nl": true,
	"pl": true, "ru": true, "sv": true, "fi": true, "da": true, "nb": true,
}

func langPrefix(lang string) string {
	if i := strings.IndexAny(lang, "_-"); i >= 0 {
		return strings.ToLower(lang[:i])
	}
	return strings.ToLower(lang)
}

// ParseDecimal parses text as a locale-sensitive decimal number: languages
// in commaDecimalLangs treat ',' as the fractional separator and '.' as a
// grouping separator; everything else is the reverse (US/UK convention).
// Failures are reported via ok only; the transform passes discard them and
// leave the Word untouched.
func ParseDecimal(text, lang string) (decimal.Decimal, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return decimal.Decimal{}, false
	}
	normalized := text
	if commaDecimalLangs[langPrefix(lang)] {
		normalized = strings.ReplaceAll(normalized, ".", "")
		normalized = strings.ReplaceAll(normalized, ",", ".")
	} else {
		normalized = strings.ReplaceAll(normalized, ",", "")
	}
	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}
