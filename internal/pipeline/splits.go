// Package pipeline runs the fixed ordered sequence of split, transform, and
// verbalize passes over a graph built by internal/ssmlreader, then breaks
// implicit sentences at major breaks and flattens the result.
package pipeline

import (
	"strings"
	"unicode"

	"github.com/Bharath-Kumar-3231/gruut/internal/graph"
	"github.com/Bharath-Kumar-3231/gruut/internal/settings"
)

func isLocked(w *graph.Word) bool {
	return w.InterpretAs != graph.InterpretNone
}

// wordLeaf returns the *Word and true if id names a leaf Word node.
func wordLeaf(g *graph.Graph, id graph.ID) (*graph.Node, *graph.Word, bool) {
	n := g.Node(id)
	if n == nil {
		return nil, nil, false
	}
	w, ok := n.Word()
	return n, w, ok
}

// wsText picks a node's text_with_ws: the whitespace-carrying form when the
// language keeps whitespace, the bare text otherwise.
func wsText(s *settings.Settings, text, withWS string) string {
	if s.KeepWhitespace {
		return withWS
	}
	return text
}

func attachChildWords(g *graph.Graph, s *settings.Settings, parent graph.ID, lang, voice string, implicit bool, toks []Token, inheritRole string) {
	for _, t := range toks {
		w := &graph.Word{Text: t.Text, TextWithWS: wsText(s, t.Text, t.TextWithWS), Role: inheritRole}
		id := g.AddNode(w, lang, voice, implicit)
		g.AddEdge(parent, id)
	}
}

// splitReplacements is split pass 1.
func splitReplacements(g *graph.Graph, reg *settings.Registry, leaves []graph.ID) {
	for _, id := range leaves {
		n, w, ok := wordLeaf(g, id)
		if !ok || isLocked(w) {
			continue
		}
		s := reg.Get(n.Lang)
		text := w.TextWithWS
		changed := false
		for _, rule := range s.Replacements {
			replaced := rule.Pattern.ReplaceAllString(text, rule.Template)
			if replaced != text {
				changed = true
				text = replaced
			}
		}
		if !changed {
			continue
		}
		toks := retokenize(text, s.WhitespaceSplit)
		attachChildWords(g, s, id, n.Lang, n.Voice, true, toks, w.Role)
	}
}

// splitPunctuation implements split passes 2 and 7 (pre- and post-break
// punctuation peeling); both call this same logic.
func splitPunctuation(g *graph.Graph, reg *settings.Registry, leaves []graph.ID) {
	for _, id := range leaves {
		n, w, ok := wordLeaf(g, id)
		if !ok || isLocked(w) {
			continue
		}
		s := reg.Get(n.Lang)
		if len(s.BeginPunctuations) == 0 && len(s.EndPunctuations) == 0 {
			continue
		}

		remaining := w.TextWithWS
		var beginPunct []string
		for {
			found := ""
			for _, p := range s.BeginPunctuations {
				if strings.HasPrefix(remaining, p) {
					found = p
					break
				}
			}
			if found == "" {
				break
			}
			beginPunct = append(beginPunct, found)
			remaining = remaining[len(found):]
		}

		trailingWS := trailingWhitespace(remaining)
		core := remaining[:len(remaining)-len(trailingWS)]

		var endPunctRev []string
		for {
			found := ""
			for _, p := range s.EndPunctuations {
				if strings.HasSuffix(core, p) {
					found = p
					break
				}
			}
			if found == "" {
				break
			}
			endPunctRev = append(endPunctRev, found)
			core = core[:len(core)-len(found)]
		}

		if len(beginPunct) == 0 && len(endPunctRev) == 0 {
			continue
		}

		for _, p := range beginPunct {
			pw := &graph.PunctuationWord{Text: p, TextWithWS: p}
			cid := g.AddNode(pw, n.Lang, n.Voice, true)
			g.AddEdge(id, cid)
		}

		if core != "" {
			residueWS := core
			if len(endPunctRev) == 0 {
				residueWS += trailingWS
			}
			rw := &graph.Word{Text: core, TextWithWS: wsText(s, core, residueWS), Role: w.Role}
			rid := g.AddNode(rw, n.Lang, n.Voice, true)
			g.AddEdge(id, rid)
		}

		for i := len(endPunctRev) - 1; i >= 0; i-- {
			p := endPunctRev[i]
			ws := p
			if i == 0 {
				ws += trailingWS
			}
			pw := &graph.PunctuationWord{Text: p, TextWithWS: wsText(s, p, ws)}
			cid := g.AddNode(pw, n.Lang, n.Voice, true)
			g.AddEdge(id, cid)
		}
	}
}

func trailingWhitespace(s string) string {
	i := len(s)
	for i > 0 {
		r := rune(s[i-1])
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			break
		}
		i--
	}
	return s[i:]
}

func splitBreak(g *graph.Graph, reg *settings.Registry, leaves []graph.ID, major bool) {
	for _, id := range leaves {
		n, w, ok := wordLeaf(g, id)
		if !ok || isLocked(w) {
			continue
		}
		s := reg.Get(n.Lang)
		pattern := s.MinorBreakPattern()
		breakType := graph.BreakMinor
		if major {
			pattern = s.MajorBreakPattern()
			breakType = graph.BreakMajor
		}
		if pattern == nil {
			continue
		}
		loc := pattern.FindStringIndex(w.TextWithWS)
		if loc == nil {
			continue
		}
		residue := w.TextWithWS[:loc[0]]
		glyph := w.TextWithWS[loc[0]:loc[1]]
		rest := w.TextWithWS[loc[1]:]

		if residue != "" {
			rw := &graph.Word{Text: residue, TextWithWS: residue, Role: w.Role}
			rid := g.AddNode(rw, n.Lang, n.Voice, true)
			g.AddEdge(id, rid)
		}
		bw := &graph.BreakWord{BreakType: breakType, Text: glyph, TextWithWS: wsText(s, glyph, glyph+rest)}
		bid := g.AddNode(bw, n.Lang, n.Voice, true)
		g.AddEdge(id, bid)
	}
}

// splitMinorBreaks is split pass 3.
func splitMinorBreaks(g *graph.Graph, reg *settings.Registry, leaves []graph.ID) {
	splitBreak(g, reg, leaves, false)
}

// splitMajorBreaks is split pass 6.
func splitMajorBreaks(g *graph.Graph, reg *settings.Registry, leaves []graph.ID) {
	splitBreak(g, reg, leaves, true)
}

// splitAbbreviations is split pass 4. Abbreviation patterns are matched
// against a prefix of text_with_ws (anchored at the start); anything after
// the match is carried through unexpanded and the whole result is
// re-tokenized, so a break glyph following the abbreviation (e.g. "Mr.?")
// survives into the expansion and is picked up by the major-break pass that
// runs afterward, without this pass needing to know about break characters
// itself.
func splitAbbreviations(g *graph.Graph, reg *settings.Registry, leaves []graph.ID) {
	for _, id := range leaves {
		n, w, ok := wordLeaf(g, id)
		if !ok || isLocked(w) {
			continue
		}
		s := reg.Get(n.Lang)
		text := w.TextWithWS
		for _, rule := range s.Abbreviations {
			loc := rule.Pattern.FindStringIndex(text)
			if loc == nil || loc[0] != 0 {
				continue
			}
			expanded := rule.Pattern.ReplaceAllString(text[:loc[1]], rule.Template) + text[loc[1]:]
			toks := retokenize(expanded, s.WhitespaceSplit)
			attachChildWords(g, s, id, n.Lang, n.Voice, true, toks, w.Role)
			break
		}
	}
}

func splitInitialisms(g *graph.Graph, reg *settings.Registry, leaves []graph.ID) {
	for _, id := range leaves {
		n, w, ok := wordLeaf(g, id)
		if !ok || isLocked(w) {
			continue
		}
		s := reg.Get(n.Lang)
		if s.IsInitialism == nil || !s.IsInitialism(w.Text) {
			continue
		}
		if s.InLexicon != nil && s.InLexicon(w.Text) {
			continue
		}
		letters := s.SplitInitialism(w.Text)
		if len(letters) == 0 {
			continue
		}
		suffix := w.TextWithWS[len(w.Text):]
		for i, l := range letters {
			ws := l
			if i == len(letters)-1 {
				ws += suffix
			}
			lw := &graph.Word{Text: l, TextWithWS: wsText(s, l, ws), Role: graph.RoleLetter}
			lid := g.AddNode(lw, n.Lang, n.Voice, true)
			g.AddEdge(id, lid)
		}
	}
}

// splitWordBreaks is split pass 10.
func splitWordBreaks(g *graph.Graph, reg *settings.Registry, leaves []graph.ID) {
	for _, id := range leaves {
		n, w, ok := wordLeaf(g, id)
		if !ok || !n.Implicit || isLocked(w) {
			continue
		}
		s := reg.Get(n.Lang)
		pattern := s.WordBreakPattern()
		if pattern == nil {
			continue
		}
		if s.InLexicon != nil && s.InLexicon(w.Text) {
			continue
		}
		parts := pattern.Split(w.Text, -1)
		nonEmpty := 0
		for _, p := range parts {
			if p != "" {
				nonEmpty++
			}
		}
		if nonEmpty < 2 {
			continue
		}
		suffix := w.TextWithWS[len(w.Text):]
		for i, p := range parts {
			if p == "" {
				continue
			}
			ws := p
			if i == len(parts)-1 {
				ws += suffix
			}
			pwd := &graph.Word{Text: p, TextWithWS: wsText(s, p, ws), Role: w.Role}
			pid := g.AddNode(pwd, n.Lang, n.Voice, true)
			g.AddEdge(id, pid)
		}
	}
}

// splitIgnoreNonWords is split pass 11: in-place mutation of the leaf's Data
// to Ignore rather than attaching children.
func splitIgnoreNonWords(g *graph.Graph, reg *settings.Registry, leaves []graph.ID) {
	for _, id := range leaves {
		n, w, ok := wordLeaf(g, id)
		if !ok {
			continue
		}
		s := reg.Get(n.Lang)
		if s.IsNonWord == nil || !s.IsNonWord(w.Text) {
			continue
		}
		n.Data = graph.Ignore{}
	}
}

// splitSpellOut is split pass 9, run after the sentence breaker.
func splitSpellOut(g *graph.Graph, reg *settings.Registry, leaves []graph.ID) {
	for _, id := range leaves {
		n, w, ok := wordLeaf(g, id)
		if !ok || w.InterpretAs != graph.InterpretSpellOut {
			continue
		}
		s := reg.Get(n.Lang)
		suffix := w.TextWithWS[len(w.Text):]
		runes := []rune(w.Text)
		for i, r := range runes {
			ch := string(r)
			text := ch
			role := ""
			if mapped, ok := s.SpellOutWords[ch]; ok {
				text = mapped
			} else if unicode.IsLetter(r) {
				role = graph.RoleLetter
			}
			ws := text
			if i == len(runes)-1 {
				ws += suffix
			}
			cw := &graph.Word{Text: text, TextWithWS: wsText(s, text, ws), Role: role}
			cid := g.AddNode(cw, n.Lang, n.Voice, true)
			g.AddEdge(id, cid)
		}
	}
}
