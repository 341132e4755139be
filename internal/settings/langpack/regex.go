package langpack

import (
	"regexp"
	"strings"

	"github.com/Bharath-Kumar-3231/gruut/internal/settings"
)

// compileAbbreviation compiles a raw abbreviation pattern string from a
// langpack file. An unanchored pattern (one not ending in "$") gets an
// optional trailing major-break group plus trailing whitespace appended, and
// the template is extended to carry both through the expansion, so
// "Mr.?" still expands to "Mister?" with the break glyph intact for the
// major-break pass that runs later.
func compileAbbreviation(pattern, template string, majorBreaks []string) (settings.AbbreviationRule, error) {
	if !strings.HasSuffix(pattern, "$") && len(majorBreaks) > 0 {
		quoted := make([]string, len(majorBreaks))
		for i, b := range majorBreaks {
			quoted[i] = regexp.QuoteMeta(b)
		}
		pattern = pattern + "(?P<break>" + strings.Join(quoted, "|") + ")?(?P<whitespace>\\s*)$"
		template += "${break}${whitespace}"
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return settings.AbbreviationRule{}, err
	}
	return settings.AbbreviationRule{Pattern: re, Template: template}, nil
}
