package pipeline

import (
	"log"

	"github.com/Bharath-Kumar-3231/gruut/internal/graph"
	"github.com/Bharath-Kumar-3231/gruut/internal/settings"
)

// sentenceWordLeaves returns, in document order, the *Word leaves directly
// enriched by POS tagging and phonemization (BreakWord/PunctuationWord are
// handled separately; Ignore nodes are skipped entirely).
func sentenceWordLeaves(g *graph.Graph, sentenceID graph.ID) []graph.ID {
	var out []graph.ID
	for _, id := range g.Leaves(sentenceID) {
		if n := g.Node(id); n != nil {
			if _, ok := n.Word(); ok {
				out = append(out, id)
			}
		}
	}
	return out
}

// tagSentence calls s.POSTag once for the sentence. A panicking tagger is
// logged and recovered from rather than propagated; the words are simply
// left untagged.
func tagSentence(g *graph.Graph, s *settings.Settings, wordIDs []graph.ID) {
	if s.POSTag == nil || len(wordIDs) == 0 {
		return
	}
	texts := make([]string, len(wordIDs))
	for i, id := range wordIDs {
		w, _ := g.Node(id).Word()
		texts[i] = w.Text
	}

	tags := callPOSTagger(s.POSTag, texts)
	if tags == nil {
		return
	}
	for i, id := range wordIDs {
		if i >= len(tags) {
			break
		}
		w, _ := g.Node(id).Word()
		w.POS = tags[i]
		if w.Role == "" && tags[i] != "" {
			w.Role = "gruut:" + tags[i]
		}
	}
}

func callPOSTagger(tag settings.POSTagger, texts []string) (tags []string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("gruut: CollaboratorFailure: POS tagger panicked: %v", r)
			tags = nil
		}
	}()
	return tag(texts)
}

func callLookup(fn settings.PhonemeLookup, text, role string) (phonemes []string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("gruut: CollaboratorFailure: phoneme collaborator panicked on %q: %v", text, r)
			phonemes, ok = nil, false
		}
	}()
	return fn(text, role)
}

// phonemizeWord looks up, then guesses, phonemes for a single Word leaf
// that doesn't already carry them.
func phonemizeWord(g *graph.Graph, s *settings.Settings, id graph.ID) {
	n := g.Node(id)
	w, ok := n.Word()
	if !ok || len(w.Phonemes) > 0 {
		return
	}
	if s.LookupPhonemes != nil {
		if ph, ok := callLookup(s.LookupPhonemes, w.Text, w.Role); ok {
			w.Phonemes = ph
			return
		}
	}
	if s.GuessPhonemes != nil {
		if ph, ok := callLookup(s.GuessPhonemes, w.Text, w.Role); ok {
			w.Phonemes = ph
		}
	}
}

// phonemizeBreak attaches the language's fixed single-symbol break marker
// to a BreakWord leaf.
func phonemizeBreak(g *graph.Graph, s *settings.Settings, id graph.ID) {
	n := g.Node(id)
	bw, ok := n.BreakWord()
	if !ok || len(bw.Phonemes) > 0 {
		return
	}
	if bw.BreakType == graph.BreakMajor {
		bw.Phonemes = []string{s.MajorBreakPhoneme}
	} else {
		bw.Phonemes = []string{s.MinorBreakPhoneme}
	}
}

// enrich runs POS tagging and phonemization: group leaves by enclosing
// Sentence in document order, tag each sentence's words once, then look up
// or guess phonemes for every Word, and optionally attach break phonemes
// to BreakWord leaves.
func enrich(g *graph.Graph, reg *settings.Registry, root graph.ID, doPOS, doPhonemize, breakPhonemes bool) {
	for _, sid := range g.DFSPreorder(root) {
		n := g.Node(sid)
		if n == nil || !n.IsSentence() {
			continue
		}
		s := reg.Get(n.Lang)
		wordIDs := sentenceWordLeaves(g, sid)

		if doPOS {
			tagSentence(g, s, wordIDs)
		}
		if doPhonemize {
			for _, id := range wordIDs {
				phonemizeWord(g, s, id)
			}
			if breakPhonemes {
				for _, id := range g.Leaves(sid) {
					if nd := g.Node(id); nd != nil {
						if _, ok := nd.BreakWord(); ok {
							phonemizeBreak(g, s, id)
						}
					}
				}
			}
		}
	}
}
