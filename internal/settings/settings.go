// Package settings holds the per-language Settings schema: everything the
// pipeline needs to tokenize, split, transform, and verbalize text for one
// language, constructed once and treated as immutable afterward.
package settings

import (
	"fmt"
	"regexp"

	"github.com/Bharath-Kumar-3231/gruut/internal/graph"
)

// ReplacementRule is a single (pattern, template) entry applied to
// text_with_ws by the replacements split pass. Template follows
// regexp.ReplaceAll's $1-style group substitution.
type ReplacementRule struct {
	Pattern  *regexp.Regexp
	Template string
}

// AbbreviationRule is a single (pattern, template) entry tried, in order,
// against the start of a leaf Word's text_with_ws by the abbreviations split
// pass.
type AbbreviationRule struct {
	Pattern  *regexp.Regexp
	Template string
}

// validDateFormats is the closed set of date formats: the cardinal-day
// forms, plus one ordinal-day variant per form that has a day component,
// built by swapping that form's 'd' for 'O' in place (e.g. "mdy" -> "mOy").
var validDateFormats = map[string]bool{
	"mdy": true, "dmy": true, "ymd": true, "ym": true, "my": true,
	"md": true, "dm": true, "y": true,
	"mOy": true, "Omy": true, "ymO": true, "mO": true, "Om": true,
}

// ValidDateFormat reports whether format is one of the recognized
// date-format strings (including ordinal-day 'O' variants).
func ValidDateFormat(format string) bool {
	return validDateFormats[format]
}

// POSTagger batches part-of-speech tagging for one sentence's word texts,
// returning one tag per input word. Tagging is an external collaborator;
// Settings only holds the callback.
type POSTagger func(words []string) []string

// PhonemeLookup is the lookup/guess collaborator interface: given a word's
// text and role, return its phoneme sequence, or ok=false if the word is
// unknown.
type PhonemeLookup func(text, role string) (phonemes []string, ok bool)

// SentencePostProcessor is invoked once per flattened Sentence, after
// enrichment, in document order. Mutating the passed graph is allowed but
// unusual; most implementations just inspect leaves.
type SentencePostProcessor func(g *graph.Graph, sentenceID graph.ID)

// GraphPostProcessor is invoked once, after all sentences have been
// post-processed, over the whole document graph.
type GraphPostProcessor func(g *graph.Graph, root graph.ID)

// CurrencyInfo names a currency's full words for the "1 dollar"/"1 euro"
// verbalization, plus its subunit name ("cent").
type CurrencyInfo struct {
	Symbol      string
	Name        string
	SubunitName string
}

// Settings is the complete per-language configuration the pipeline consumes.
// It is constructed once, by a built-in DefaultXxYY constructor or a
// langpack loader, and never mutated during a Process call.
type Settings struct {
	Lang string

	WhitespaceSplit *regexp.Regexp
	JoinStr         string
	KeepWhitespace  bool

	BeginPunctuations []string
	EndPunctuations   []string

	Replacements  []ReplacementRule
	Abbreviations []AbbreviationRule

	SpellOutWords map[string]string

	MajorBreaks []string
	MinorBreaks []string
	WordBreaks  []string

	majorBreakPattern *regexp.Regexp
	minorBreakPattern *regexp.Regexp
	wordBreakPattern  *regexp.Regexp

	MajorBreakPhoneme string
	MinorBreakPhoneme string

	IsMaybeNumber   func(text string) bool
	IsMaybeCurrency func(text string) bool
	IsMaybeDate     func(text string) bool

	NumberLocale string
	DateLocale   string

	DefaultCurrency string
	Currencies      []CurrencyInfo

	IsInitialism    func(text string) bool
	SplitInitialism func(text string) []string
	InLexicon       func(text string) bool

	IsNonWord func(text string) bool

	LookupPhonemes PhonemeLookup
	GuessPhonemes  PhonemeLookup
	POSTag         POSTagger

	PostProcessSentence SentencePostProcessor
	PostProcessGraph    GraphPostProcessor

	DefaultDateFormat string
}

// CompilePatterns derives the internal alternation regexes from the
// MajorBreaks/MinorBreaks/WordBreaks literal sets, and orders
// BeginPunctuations, EndPunctuations and Currencies longest-first. Callers
// must invoke this once after populating the literal-set fields and before
// using the settings with the pipeline. It also validates DefaultDateFormat.
func (s *Settings) CompilePatterns() error {
	if s.DefaultDateFormat != "" && !ValidDateFormat(s.DefaultDateFormat) {
		return fmt.Errorf("settings: invalid default_date_format %q", s.DefaultDateFormat)
	}
	s.BeginPunctuations = sortByDecreasingLength(s.BeginPunctuations)
	s.EndPunctuations = sortByDecreasingLength(s.EndPunctuations)
	s.Currencies = sortCurrenciesByDecreasingLength(s.Currencies)

	if len(s.MajorBreaks) > 0 {
		s.majorBreakPattern = compileAlternation(s.MajorBreaks)
	}
	if len(s.MinorBreaks) > 0 {
		s.minorBreakPattern = compileAlternation(s.MinorBreaks)
	}
	if len(s.WordBreaks) > 0 {
		s.wordBreakPattern = compileAlternation(s.WordBreaks)
	}
	if s.WhitespaceSplit == nil {
		s.WhitespaceSplit = regexp.MustCompile(`\s+`)
	}
	return nil
}

// MajorBreakPattern returns the compiled major-break alternation, or nil if
// none is configured.
func (s *Settings) MajorBreakPattern() *regexp.Regexp { return s.majorBreakPattern }

// MinorBreakPattern returns the compiled minor-break alternation, or nil if
// none is configured.
func (s *Settings) MinorBreakPattern() *regexp.Regexp { return s.minorBreakPattern }

// WordBreakPattern returns the compiled word-break alternation, or nil if
// none is configured.
func (s *Settings) WordBreakPattern() *regexp.Regexp { return s.wordBreakPattern }

func sortCurrenciesByDecreasingLength(in []CurrencyInfo) []CurrencyInfo {
	out := make([]CurrencyInfo, len(in))
	copy(out, in)
	for i := 1; i < len(out); i++ {
		j := i
		for j > 0 && len(out[j-1].Symbol) < len(out[j].Symbol) {
			out[j-1], out[j] = out[j], out[j-1]
			j--
		}
	}
	return out
}

// CurrencyBySymbolPrefix returns the first (longest-match) currency whose
// Symbol is a prefix of text.
func (s *Settings) CurrencyBySymbolPrefix(text string) (CurrencyInfo, bool) {
	for _, c := range s.Currencies {
		if len(c.Symbol) > 0 && len(text) >= len(c.Symbol) && text[:len(c.Symbol)] == c.Symbol {
			return c, true
		}
	}
	return CurrencyInfo{}, false
}

// DefaultCurrencyInfo returns the CurrencyInfo matching s.DefaultCurrency by
// name, used when a Word is forced to interpret_as=currency but carries no
// recognizable symbol.
func (s *Settings) DefaultCurrencyInfo() (CurrencyInfo, bool) {
	for _, c := range s.Currencies {
		if c.Name == s.DefaultCurrency {
			return c, true
		}
	}
	return CurrencyInfo{}, false
}
