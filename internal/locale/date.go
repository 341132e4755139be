package locale

import (
	"strings"
	"time"
)

var monthNames = map[string][]string{
	"en": {"January", "February", "March", "April", "May", "June", "July",
		"August", "September", "October", "November", "December"},
	"es": {"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio",
		"agosto", "septiembre", "octubre", "noviembre", "diciembre"},
	"de": {"Januar", "Februar", "März", "April", "Mai", "Juni", "Juli",
		"August", "September", "Oktober", "November", "Dezember"},
}

// FormatMonth returns the locale's full month name for a 1-12 month number,
// falling back to English when the language has no table.
func FormatMonth(month int, lang string) string {
	if month < 1 || month > 12 {
		return ""
	}
	names, ok := monthNames[langPrefix(lang)]
	if !ok {
		names = monthNames["en"]
	}
	return names[month-1]
}

// strictLayouts are the unambiguous date layouts tried when strict parsing
// is requested (interpret_as not forced to date).
var strictLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
}

// looseLayouts adds ambiguous, partial layouts tried only when the caller
// forced interpret_as=date via <say-as> and strict parsing already failed.
var looseLayouts = []string{
	"01/02",
	"1/2",
	"2006-01",
	"January 2",
	"Jan 2",
	"2006",
}

// ParseDate attempts to parse text as a date. strict=true restricts parsing
// to unambiguous, fully-specified layouts; strict=false (retried only when
// interpret_as was forced to date) additionally tries partial layouts like
// "month/day" with no year.
func ParseDate(text string, lang string, strict bool) (time.Time, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, false
	}
	for _, layout := range strictLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t, true
		}
	}
	if !strict {
		for _, layout := range looseLayouts {
			if t, err := time.Parse(layout, text); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}
