package ssmlreader

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Bharath-Kumar-3231/gruut/internal/graph"
)

func wordTexts(t *testing.T, g *graph.Graph, root graph.ID) []string {
	t.Helper()
	var out []string
	for _, id := range g.Leaves(root) {
		n := g.Node(id)
		if w, ok := n.Word(); ok {
			out = append(out, w.Text)
		}
	}
	return out
}

func buildFrom(t *testing.T, ssml, lang, voice string) (*graph.Graph, graph.ID) {
	t.Helper()
	events, err := Tokenize(ssml)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	return Build(events, lang, voice)
}

func Test_Build_implicitStructure(t *testing.T) {
	assert := assert.New(t)

	g, root := buildFrom(t, "<speak>This is  a   test    </speak>", "en_US", "")

	n := g.Node(root)
	assert.True(n.IsSpeak())
	assert.False(n.Implicit)

	assert.Equal([]string{"This", "is", "a", "test"}, wordTexts(t, g, root))
}

func Test_Build_wordElementKeepsWhitespaceVerbatim(t *testing.T) {
	assert := assert.New(t)

	g, root := buildFrom(t, `<speak>a <w>b   c</w> d</speak>`, "en_US", "")

	texts := wordTexts(t, g, root)
	assert.Contains(texts, "b   c")
}

func Test_Build_sayAsAppliesToWordsInsideIt(t *testing.T) {
	assert := assert.New(t)

	g, root := buildFrom(t, `<speak><say-as interpret-as="spell-out">test123</say-as></speak>`, "en_US", "")

	leaves := g.Leaves(root)
	if !assert.Len(leaves, 1) {
		return
	}
	w, ok := g.Node(leaves[0]).Word()
	if !assert.True(ok) {
		return
	}
	assert.Equal(graph.InterpretSpellOut, w.InterpretAs)
	assert.Equal("test123", w.Text)
}

func Test_Build_subReplacesContentWithAlias(t *testing.T) {
	assert := assert.New(t)

	g, root := buildFrom(t, `<speak><sub alias="World Wide Web Consortium">W3C</sub></speak>`, "en_US", "")

	assert.Equal([]string{"World", "Wide", "Web", "Consortium"}, wordTexts(t, g, root))
}

func Test_Build_wordLangOverridesSpeakLang(t *testing.T) {
	assert := assert.New(t)

	g, root := buildFrom(t, `<speak>1 <w lang="es_ES">2</w> <w lang="de_DE">3</w></speak>`, "en_US", "")

	var langs []string
	for _, id := range g.Leaves(root) {
		n := g.Node(id)
		if _, ok := n.Word(); ok {
			langs = append(langs, n.Lang)
		}
	}
	assert.Equal([]string{"en_US", "es_ES", "de_DE"}, langs)
}

func Test_Build_breakCreatesBreakNode(t *testing.T) {
	assert := assert.New(t)

	g, root := buildFrom(t, `<speak>hi<break time="500ms"/>there</speak>`, "en_US", "")

	var sawBreak bool
	for _, id := range g.Leaves(root) {
		n := g.Node(id)
		if _, ok := n.Data.(graph.Break); ok {
			sawBreak = true
		}
	}
	assert.True(sawBreak)
}
