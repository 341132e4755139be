package locale

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	ntw "moul.io/number-to-words"
)

// ordinalSuffix returns the English ordinal suffix for n (st/nd/rd/th),
// used as a last resort when the number has no closed-form ordinal word
// (values outside smallOrdinals whose final word has no ordinalWord form).
func ordinalSuffix(n int64) string {
	if n%100 >= 11 && n%100 <= 13 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

var smallOrdinals = map[int64]string{
	1: "first", 2: "second", 3: "third", 4: "fourth", 5: "fifth",
	6: "sixth", 7: "seventh", 8: "eighth", 9: "ninth", 10: "tenth",
	11: "eleventh", 12: "twelfth", 13: "thirteenth", 14: "fourteenth",
	15: "fifteenth", 16: "sixteenth", 17: "seventeenth", 18: "eighteenth",
	19: "nineteenth", 20: "twentieth", 30: "thirtieth", 40: "fortieth",
	50: "fiftieth", 60: "sixtieth", 70: "seventieth", 80: "eightieth",
	90: "ninetieth",
}

// ntwLocale maps this module's language codes (en_US, es_ES, ...) to the
// locale codes moul.io/number-to-words expects.
func ntwLocale(lang string) string {
	if i := strings.IndexAny(lang, "_-"); i >= 0 {
		return strings.ToLower(lang[:i])
	}
	return strings.ToLower(lang)
}

// cardinal converts an integer to words via moul.io/number-to-words, falling
// back to digit-by-digit spelling if the library doesn't know the locale.
// The library hyphenates compound numbers (e.g. "ninety-nine"); gruut's
// verbalize passes attach one child Word per whitespace-separated token (see
// attachVerbalized), so hyphens are normalized to spaces here.
func cardinal(n int64, lang string) (string, error) {
	l := ntw.Languages.Lookup(ntwLocale(lang))
	if l == nil {
		return digitsWords(n, lang), nil
	}
	neg := ""
	if n < 0 {
		neg = "minus "
		n = -n
	}
	words := l.IntegerToWords(int(n))
	if words == "" {
		return digitsWords(n, lang), nil
	}
	return neg + strings.ReplaceAll(words, "-", " "), nil
}

func digitsWords(n int64, lang string) string {
	s := strconv.FormatInt(n, 10)
	var parts []string
	start := 0
	if strings.HasPrefix(s, "-") {
		parts = append(parts, "negative")
		start = 1
	}
	for _, r := range s[start:] {
		parts = append(parts, digitWord(r))
	}
	return strings.Join(parts, " ")
}

func digitWord(r rune) string {
	names := []string{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}
	if r < '0' || r > '9' {
		return string(r)
	}
	return names[r-'0']
}

func ordinal(n int64, lang string) (string, error) {
	if ntwLocale(lang) != "en" {
		// No ordinal tables for other locales; the cardinal reading is the
		// common spoken form for dates in the supported ones.
		return cardinal(n, lang)
	}
	if w, ok := smallOrdinals[n]; ok {
		return w, nil
	}
	base, err := cardinal(n, lang)
	if err != nil {
		return "", err
	}
	// Replace the last word's tail with the ordinal form when possible
	// (e.g. "twenty one" -> "twenty first"); otherwise append the ordinal
	// suffix to the cardinal words (e.g. "one hundred" -> "one hundredth").
	fields := strings.Fields(base)
	if len(fields) == 0 {
		return base, nil
	}
	last := fields[len(fields)-1]
	if ord, ok := ordinalWord(last); ok {
		fields[len(fields)-1] = ord
		return strings.Join(fields, " "), nil
	}
	return base + ordinalSuffix(n), nil
}

func ordinalWord(cardinalWord string) (string, bool) {
	table := map[string]string{
		"one": "first", "two": "second", "three": "third", "four": "fourth",
		"five": "fifth", "six": "sixth", "seven": "seventh", "eight": "eighth",
		"nine": "ninth", "ten": "tenth", "twenty": "twentieth",
		"thirty": "thirtieth", "forty": "fortieth", "fifty": "fiftieth",
		"sixty": "sixtieth", "seventy": "seventieth", "eighty": "eightieth",
		"ninety": "ninetieth",
	}
	w, ok := table[cardinalWord]
	return w, ok
}

// NumToWords verbalizes n according to mode ("cardinal", "ordinal",
// "year", "digits").
func NumToWords(n decimal.Decimal, lang, mode string) (string, error) {
	switch mode {
	case "", "cardinal":
		if n.IsInteger() {
			return cardinal(n.IntPart(), lang)
		}
		return fractionalCardinal(n, lang)
	case "ordinal":
		return ordinal(n.IntPart(), lang)
	case "year":
		return yearWords(n.IntPart(), lang)
	case "digits":
		whole := n.IntPart()
		return digitsWords(whole, lang), nil
	default:
		return "", fmt.Errorf("locale: unsupported number format %q", mode)
	}
}

func fractionalCardinal(n decimal.Decimal, lang string) (string, error) {
	whole := n.Truncate(0)
	frac := n.Sub(whole).Abs()
	wholeWords, err := cardinal(whole.IntPart(), lang)
	if err != nil {
		return "", err
	}
	if frac.IsZero() {
		return wholeWords, nil
	}
	fracStr := frac.String()
	if i := strings.IndexByte(fracStr, '.'); i >= 0 {
		fracStr = fracStr[i+1:]
	}
	return wholeWords + " point " + digitsWords(mustParseDigits(fracStr), lang), nil
}

func mustParseDigits(s string) int64 {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// yearWords renders a four-digit-style year the common English way: split
// into two two-digit groups read as separate numbers (e.g. 1999 -> "nineteen
// ninety nine"), falling back to plain cardinal for years that don't split
// cleanly.
func yearWords(y int64, lang string) (string, error) {
	if y >= 1100 && y < 10000 && y%100 != 0 {
		hi := y / 100
		lo := y % 100
		hiWords, err := cardinal(hi, lang)
		if err != nil {
			return "", err
		}
		var loWords string
		if lo < 10 {
			loWords, err = cardinal(lo, lang)
			if err != nil {
				return "", err
			}
			loWords = "oh " + loWords
		} else {
			loWords, err = cardinal(lo, lang)
			if err != nil {
				return "", err
			}
		}
		return hiWords + " " + loWords, nil
	}
	return cardinal(y, lang)
}

// pluralize appends the English plural "s" to a currency/subunit name
// unless n is exactly one ("one dollar" vs. "ten dollars").
func pluralize(name string, n int64) string {
	if n == 1 || name == "" {
		return name
	}
	return name + "s"
}

// CurrencyWords renders a decimal amount as "N currency-name|K
// subunit-name". The '|' marks where the subunit half starts so the
// verbalize pass can strip it when it is zero (see internal/pipeline).
func CurrencyWords(amount decimal.Decimal, lang, currencyName, subunitName string) (string, error) {
	whole := amount.Truncate(0)
	cents := amount.Sub(whole).Abs().Mul(decimal.NewFromInt(100)).Round(0)
	wholeWords, err := cardinal(whole.IntPart(), lang)
	if err != nil {
		return "", err
	}
	centsWords, err := cardinal(cents.IntPart(), lang)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %s|%s %s", wholeWords, pluralize(currencyName, whole.IntPart()), centsWords, pluralize(subunitName, cents.IntPart())), nil
}
