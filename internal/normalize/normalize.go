// Package normalize provides the small Unicode text-hygiene helpers that sit
// ahead of tokenization: NFC normalization and upper-case folding for
// initialism detection, using golang.org/x/text the way the rest of this
// module's ambient stack does.
package normalize

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// NFC returns s normalized to Unicode Normalization Form C, the form the SSML
// reader and tokenizer assume incoming text is already in.
func NFC(s string) string {
	return norm.NFC.String(s)
}

var upperCaser = cases.Upper(language.Und)

// IsAllUpper reports whether s contains at least one letter and is already
// its own upper-case form, the basic shape test behind initialism
// before a language's lexicon/predicate is consulted. Digits and
// punctuation inside an otherwise-uppercase token do not disqualify it.
func IsAllUpper(s string) bool {
	seenLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			seenLetter = true
		}
	}
	return seenLetter && s == upperCaser.String(s)
}
