package settings

import (
	"regexp"
	"sort"
	"strings"
)

// compileAlternation builds a single alternation regex matching any of the
// given literals, sorted by decreasing length first so that greedy
// alternation resolves prefix ties in favor of the longest literal (e.g.
// "US$" must be tried before "$"). Literals are quoted via regexp.QuoteMeta
// so callers pass plain glyphs, not regex fragments.
func compileAlternation(literals []string) *regexp.Regexp {
	if len(literals) == 0 {
		return nil
	}
	sorted := make([]string, len(literals))
	copy(sorted, literals)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i]) > len(sorted[j])
	})
	quoted := make([]string, len(sorted))
	for i, lit := range sorted {
		quoted[i] = regexp.QuoteMeta(lit)
	}
	return regexp.MustCompile(strings.Join(quoted, "|"))
}

// sortByDecreasingLength returns a copy of literals ordered longest-first,
// used for the punctuation sets, where prefix and suffix matching must try
// longer candidates before shorter ones.
func sortByDecreasingLength(literals []string) []string {
	out := make([]string, len(literals))
	copy(out, literals)
	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i]) > len(out[j])
	})
	return out
}
