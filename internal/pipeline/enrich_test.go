package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Bharath-Kumar-3231/gruut/internal/graph"
	"github.com/Bharath-Kumar-3231/gruut/internal/settings"
)

func buildSimpleSentence(g *graph.Graph, words ...string) (speak, sent graph.ID) {
	speak = g.AddNode(graph.Speak{}, "en_US", "", false)
	g.SetRoot(speak)
	para := g.AddNode(graph.Paragraph{}, "en_US", "", true)
	g.AddEdge(speak, para)
	sent = g.AddNode(graph.Sentence{}, "en_US", "", true)
	g.AddEdge(para, sent)
	for _, text := range words {
		id := g.AddNode(&graph.Word{Text: text, TextWithWS: text + " "}, "en_US", "", false)
		g.AddEdge(sent, id)
	}
	return speak, sent
}

func Test_Enrich_tagsWordsViaPOSTagger(t *testing.T) {
	assert := assert.New(t)

	g := graph.New()
	speak, sent := buildSimpleSentence(g, "run", "fast")
	s := settings.DefaultEnUS()
	s.POSTag = func(words []string) []string {
		tags := make([]string, len(words))
		for i := range words {
			tags[i] = "VERB"
		}
		return tags
	}
	reg := settings.NewRegistry(s)

	enrich(g, reg, speak, true, false, false)

	for _, id := range g.Children(sent) {
		w, _ := g.Node(id).Word()
		assert.Equal("VERB", w.POS)
		assert.Equal("gruut:VERB", w.Role)
	}
}

func Test_Enrich_posTaggerPanicIsRecovered(t *testing.T) {
	assert := assert.New(t)

	g := graph.New()
	speak, sent := buildSimpleSentence(g, "run")
	s := settings.DefaultEnUS()
	s.POSTag = func(words []string) []string { panic("boom") }
	reg := settings.NewRegistry(s)

	assert.NotPanics(func() {
		enrich(g, reg, speak, true, false, false)
	})

	id := g.Children(sent)[0]
	w, _ := g.Node(id).Word()
	assert.Equal("", w.POS)
}

func Test_Enrich_phonemizeUsesLookupThenGuess(t *testing.T) {
	assert := assert.New(t)

	g := graph.New()
	speak, sent := buildSimpleSentence(g, "known", "unknown")
	s := settings.DefaultEnUS()
	s.LookupPhonemes = func(text, role string) ([]string, bool) {
		if text == "known" {
			return []string{"K", "N", "OW"}, true
		}
		return nil, false
	}
	s.GuessPhonemes = func(text, role string) ([]string, bool) {
		return []string{"G", "U", "E", "S", "S"}, true
	}
	reg := settings.NewRegistry(s)

	enrich(g, reg, speak, false, true, false)

	kids := g.Children(sent)
	w0, _ := g.Node(kids[0]).Word()
	w1, _ := g.Node(kids[1]).Word()
	assert.Equal([]string{"K", "N", "OW"}, w0.Phonemes)
	assert.Equal([]string{"G", "U", "E", "S", "S"}, w1.Phonemes)
}

func Test_Enrich_breakPhonemesAttachLanguageMarker(t *testing.T) {
	assert := assert.New(t)

	g := graph.New()
	speak := g.AddNode(graph.Speak{}, "en_US", "", false)
	g.SetRoot(speak)
	para := g.AddNode(graph.Paragraph{}, "en_US", "", true)
	g.AddEdge(speak, para)
	sent := g.AddNode(graph.Sentence{}, "en_US", "", true)
	g.AddEdge(para, sent)
	bid := g.AddNode(&graph.BreakWord{BreakType: graph.BreakMajor, Text: "."}, "en_US", "", true)
	g.AddEdge(sent, bid)

	reg := settings.NewRegistry(settings.DefaultEnUS())
	enrich(g, reg, speak, false, true, true)

	bw, _ := g.Node(bid).BreakWord()
	assert.Equal([]string{"‖"}, bw.Phonemes)
}
