package pipeline

import (
	"github.com/Bharath-Kumar-3231/gruut/internal/graph"
	"github.com/Bharath-Kumar-3231/gruut/internal/locale"
	"github.com/Bharath-Kumar-3231/gruut/internal/settings"
)

// transformNumber classifies number-looking Words and parses their value.
// Parse failures are silent: the word is left in its literal form.
func transformNumber(g *graph.Graph, reg *settings.Registry, leaves []graph.ID) {
	for _, id := range leaves {
		n, w, ok := wordLeaf(g, id)
		if !ok {
			continue
		}
		if w.InterpretAs != graph.InterpretNone && w.InterpretAs != graph.InterpretNumber {
			continue
		}
		s := reg.Get(n.Lang)
		if s.IsMaybeNumber == nil || !s.IsMaybeNumber(w.Text) {
			continue
		}
		d, ok := locale.ParseDecimal(w.Text, s.NumberLocale)
		if !ok {
			continue
		}
		w.InterpretAs = graph.InterpretNumber
		w.Number = &d
	}
}

// transformCurrency classifies currency-looking Words, resolving the
// longest matching symbol prefix and parsing the remainder as an amount.
func transformCurrency(g *graph.Graph, reg *settings.Registry, leaves []graph.ID) {
	for _, id := range leaves {
		n, w, ok := wordLeaf(g, id)
		if !ok {
			continue
		}
		if w.InterpretAs != graph.InterpretNone && w.InterpretAs != graph.InterpretCurrency {
			continue
		}
		s := reg.Get(n.Lang)
		forced := w.InterpretAs == graph.InterpretCurrency
		if !forced && s.IsMaybeCurrency != nil && !s.IsMaybeCurrency(w.Text) {
			continue
		}

		if ci, ok := s.CurrencyBySymbolPrefix(w.Text); ok {
			remainder := w.Text[len(ci.Symbol):]
			d, ok := locale.ParseDecimal(remainder, s.NumberLocale)
			if !ok {
				continue
			}
			w.InterpretAs = graph.InterpretCurrency
			w.CurrencySymbol = ci.Symbol
			w.Number = &d
			continue
		}

		if forced {
			d, ok := locale.ParseDecimal(w.Text, s.NumberLocale)
			if !ok {
				continue
			}
			if ci, ok := s.DefaultCurrencyInfo(); ok {
				w.CurrencyName = ci.Name
			} else {
				w.CurrencyName = s.DefaultCurrency
			}
			w.Number = &d
		}
	}
}

// transformDate classifies date-looking Words. A Word forced to a date
// interpretation via <say-as> gets a second, looser parse attempt.
func transformDate(g *graph.Graph, reg *settings.Registry, leaves []graph.ID) {
	for _, id := range leaves {
		n, w, ok := wordLeaf(g, id)
		if !ok {
			continue
		}
		if w.InterpretAs != graph.InterpretNone && w.InterpretAs != graph.InterpretDate {
			continue
		}
		s := reg.Get(n.Lang)
		forced := w.InterpretAs == graph.InterpretDate
		if !forced && (s.IsMaybeDate == nil || !s.IsMaybeDate(w.Text)) {
			continue
		}
		t, ok := locale.ParseDate(w.Text, s.DateLocale, true)
		if !ok && forced {
			t, ok = locale.ParseDate(w.Text, s.DateLocale, false)
		}
		if !ok {
			continue
		}
		w.InterpretAs = graph.InterpretDate
		w.Date = &t
	}
}
