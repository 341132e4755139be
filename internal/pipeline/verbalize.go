package pipeline

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Bharath-Kumar-3231/gruut/internal/graph"
	"github.com/Bharath-Kumar-3231/gruut/internal/locale"
	"github.com/Bharath-Kumar-3231/gruut/internal/settings"
)

// attachVerbalized re-tokenizes an already word-separated verbalization
// string on whitespace and attaches one child Word per part, joining on the
// language's configured separator and carrying the original word's trailing
// whitespace onto the last part.
func attachVerbalized(g *graph.Graph, s *settings.Settings, id graph.ID, n *graph.Node, text, suffixWS string) {
	parts := strings.Fields(text)
	if len(parts) == 0 {
		return
	}
	join := wsFromJoin(s)
	for i, p := range parts {
		ws := p
		if i == len(parts)-1 {
			ws += suffixWS
		} else {
			ws += join
		}
		cw := &graph.Word{Text: p, TextWithWS: wsText(s, p, ws)}
		cid := g.AddNode(cw, n.Lang, n.Voice, true)
		g.AddEdge(id, cid)
	}
}

func wsFromJoin(s *settings.Settings) string {
	if s.JoinStr == "" {
		return " "
	}
	return s.JoinStr
}

// verbalizeNumber expands a parsed number into spoken-word children,
// honoring the cardinal/ordinal/year/digits format subtag.
func verbalizeNumber(g *graph.Graph, reg *settings.Registry, leaves []graph.ID) {
	for _, id := range leaves {
		n, w, ok := wordLeaf(g, id)
		if !ok || w.InterpretAs != graph.InterpretNumber || w.Number == nil {
			continue
		}
		s := reg.Get(n.Lang)
		suffix := w.TextWithWS[len(w.Text):]
		format := w.Format
		if format == "" {
			format = "cardinal"
		}

		if format == "digits" {
			digits := strconv.FormatInt(w.Number.Truncate(0).Abs().IntPart(), 10)
			var words []string
			for _, r := range digits {
				word, err := locale.NumToWords(decimal.NewFromInt(int64(r-'0')), s.NumberLocale, "cardinal")
				if err == nil {
					words = append(words, word)
				}
			}
			attachVerbalized(g, s, id, n, strings.Join(words, " "), suffix)
			continue
		}

		text, err := locale.NumToWords(*w.Number, s.NumberLocale, format)
		if err != nil {
			continue
		}
		attachVerbalized(g, s, id, n, text, suffix)
	}
}

// verbalizeDate expands a parsed date into spoken-word children, composing
// the display string from the word's format letters.
func verbalizeDate(g *graph.Graph, reg *settings.Registry, leaves []graph.ID) {
	for _, id := range leaves {
		n, w, ok := wordLeaf(g, id)
		if !ok || w.InterpretAs != graph.InterpretDate || w.Date == nil {
			continue
		}
		s := reg.Get(n.Lang)
		suffix := w.TextWithWS[len(w.Text):]
		format := w.Format
		if format == "" {
			format = s.DefaultDateFormat
		}
		if format == "" {
			format = "mdy"
		}

		// Format letters are lowercase (m, d, y) except the ordinal-day
		// marker O, which is always capital; d and O never both appear in
		// the same format string.
		var parts []string
		for _, letter := range format {
			switch letter {
			case 'M', 'm':
				parts = append(parts, locale.FormatMonth(int(w.Date.Month()), s.DateLocale))
			case 'D', 'd':
				day, _ := locale.NumToWords(decimal.NewFromInt(int64(w.Date.Day())), s.NumberLocale, "cardinal")
				parts = append(parts, day)
			case 'O', 'o':
				day, _ := locale.NumToWords(decimal.NewFromInt(int64(w.Date.Day())), s.NumberLocale, "ordinal")
				parts = append(parts, day)
			case 'Y', 'y':
				year, _ := locale.NumToWords(decimal.NewFromInt(int64(w.Date.Year())), s.NumberLocale, "year")
				parts = append(parts, year)
			}
		}
		if len(parts) == 0 {
			continue
		}
		attachVerbalized(g, s, id, n, strings.Join(parts, " "), suffix)
	}
}

// verbalizeCurrency expands a parsed amount into spoken-word children.
// CurrencyWords produces "N name|K subunit"; an amount with no fractional
// part drops the '|' and everything after it ("zero cents" is omitted),
// otherwise only the '|' marker itself is dropped.
func verbalizeCurrency(g *graph.Graph, reg *settings.Registry, leaves []graph.ID) {
	for _, id := range leaves {
		n, w, ok := wordLeaf(g, id)
		if !ok || w.InterpretAs != graph.InterpretCurrency || w.Number == nil {
			continue
		}
		s := reg.Get(n.Lang)
		suffix := w.TextWithWS[len(w.Text):]

		name := w.CurrencyName
		subunit := ""
		if ci, ok := s.CurrencyBySymbolPrefix(w.CurrencySymbol); ok && w.CurrencySymbol != "" {
			name = ci.Name
			subunit = ci.SubunitName
		} else if ci, ok := s.DefaultCurrencyInfo(); ok && name == "" {
			name = ci.Name
			subunit = ci.SubunitName
		}
		if subunit == "" {
			subunit = "cent"
		}

		text, err := locale.CurrencyWords(*w.Number, s.NumberLocale, name, subunit)
		if err != nil {
			continue
		}
		if w.Number.Sub(w.Number.Truncate(0)).IsZero() {
			if i := strings.IndexByte(text, '|'); i >= 0 {
				text = text[:i]
			}
		} else {
			text = strings.ReplaceAll(text, "|", " ")
		}
		attachVerbalized(g, s, id, n, text, suffix)
	}
}
