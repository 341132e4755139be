package pipeline

import (
	"strings"

	"github.com/Bharath-Kumar-3231/gruut/internal/graph"
)

// Word is one emitted word in a flattened Sentence.
type Word struct {
	Text          string
	TextWithWS    string
	Idx           int
	SentIdx       int
	Lang          string
	Voice         string
	Role          string
	POS           string
	Phonemes      []string
	IsBreak       bool
	IsPunctuation bool
}

// Sentence is one flattened sentence record.
type Sentence struct {
	Idx        int
	Text       string
	TextWithWS string
	Lang       string
	Voice      string
	Words      []Word
}

// FlattenOptions controls which word kinds Flatten emits and how per-word
// language tags are reported.
type FlattenOptions struct {
	MajorBreaks   bool
	MinorBreaks   bool
	Punctuations  bool
	ExplicitLang  bool
	BreakPhonemes bool
	DefaultLang   string
}

func includeLeaf(g *graph.Graph, id graph.ID, opts FlattenOptions) bool {
	n := g.Node(id)
	if n == nil {
		return false
	}
	switch d := n.Data.(type) {
	case graph.Ignore:
		return false
	case *graph.BreakWord:
		if d.BreakType == graph.BreakMajor {
			return opts.MajorBreaks
		}
		return opts.MinorBreaks
	case *graph.PunctuationWord:
		return opts.Punctuations
	case *graph.Word:
		return true
	default:
		return false
	}
}

func leafLang(n *graph.Node, opts FlattenOptions) string {
	if !opts.ExplicitLang && n.Lang == opts.DefaultLang {
		return ""
	}
	return n.Lang
}

// Flatten walks the tree in depth-first pre-order and emits one Sentence
// per Sentence node in document order, each built from its included leaf
// Word/BreakWord/PunctuationWord nodes.
func Flatten(g *graph.Graph, root graph.ID, opts FlattenOptions) []Sentence {
	var out []Sentence
	sentIdx := 0

	for _, sid := range g.DFSPreorder(root) {
		n := g.Node(sid)
		if n == nil || !n.IsSentence() {
			continue
		}

		leafIDs := g.Leaves(sid)
		var words []Word
		var textWithWS strings.Builder
		voiceSet := map[string]bool{}

		idx := 0
		for _, lid := range leafIDs {
			if !includeLeaf(g, lid, opts) {
				continue
			}
			ln := g.Node(lid)
			w := Word{Idx: idx, SentIdx: sentIdx, Lang: leafLang(ln, opts), Voice: ln.Voice}
			voiceSet[ln.Voice] = true

			switch d := ln.Data.(type) {
			case *graph.Word:
				w.Text = d.Text
				w.TextWithWS = d.TextWithWS
				w.Role = d.Role
				w.POS = d.POS
				w.Phonemes = d.Phonemes
			case *graph.BreakWord:
				w.Text = d.Text
				w.TextWithWS = d.TextWithWS
				w.IsBreak = true
				if opts.BreakPhonemes {
					w.Phonemes = d.Phonemes
				}
			case *graph.PunctuationWord:
				w.Text = d.Text
				w.TextWithWS = d.TextWithWS
				w.IsPunctuation = true
			}

			textWithWS.WriteString(w.TextWithWS)
			words = append(words, w)
			idx++
		}

		sentVoice := ""
		if len(voiceSet) == 1 {
			for v := range voiceSet {
				sentVoice = v
			}
		}

		twws := textWithWS.String()
		out = append(out, Sentence{
			Idx:        sentIdx,
			Text:       strings.Join(strings.Fields(twws), " "),
			TextWithWS: twws,
			Lang:       leafLang(n, opts),
			Voice:      sentVoice,
			Words:      words,
		})
		sentIdx++
	}

	return out
}
