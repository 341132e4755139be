package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Bharath-Kumar-3231/gruut/internal/graph"
	"github.com/Bharath-Kumar-3231/gruut/internal/settings"
)

func newTestRegistry() *settings.Registry {
	return settings.NewRegistry(settings.DefaultEnUS())
}

// addWordLeaf creates a standalone Word node (no parent) and returns its ID,
// mimicking the shape splitXxx passes expect their leaves slice to contain.
func addWordLeaf(g *graph.Graph, text, textWithWS string) graph.ID {
	return g.AddNode(&graph.Word{Text: text, TextWithWS: textWithWS}, "en_US", "", true)
}

func childTexts(t *testing.T, g *graph.Graph, parent graph.ID) []string {
	t.Helper()
	var out []string
	for _, cid := range g.Children(parent) {
		n := g.Node(cid)
		switch d := n.Data.(type) {
		case *graph.Word:
			out = append(out, d.Text)
		case *graph.PunctuationWord:
			out = append(out, d.Text)
		case *graph.BreakWord:
			out = append(out, d.Text)
		}
	}
	return out
}

func Test_SplitPunctuation_peelsBeginAndEndPunctuation(t *testing.T) {
	assert := assert.New(t)

	g := graph.New()
	reg := newTestRegistry()
	id := addWordLeaf(g, `"test"`, `"test" `)

	splitPunctuation(g, reg, []graph.ID{id})

	assert.Equal([]string{`"`, "test", `"`}, childTexts(t, g, id))
}

func Test_SplitPunctuation_noopWhenNoPunctuation(t *testing.T) {
	assert := assert.New(t)

	g := graph.New()
	reg := newTestRegistry()
	id := addWordLeaf(g, "hello", "hello ")

	splitPunctuation(g, reg, []graph.ID{id})

	assert.Empty(g.Children(id))
}

func Test_SplitPunctuation_lockedWordIsSkipped(t *testing.T) {
	assert := assert.New(t)

	g := graph.New()
	reg := newTestRegistry()
	w := &graph.Word{Text: `"test"`, TextWithWS: `"test" `, InterpretAs: graph.InterpretNumber}
	id := g.AddNode(w, "en_US", "", true)

	splitPunctuation(g, reg, []graph.ID{id})

	assert.Empty(g.Children(id))
}

func Test_SplitMinorBreaks_splitsOffComma(t *testing.T) {
	assert := assert.New(t)

	g := graph.New()
	reg := newTestRegistry()
	id := addWordLeaf(g, "test,", "test, ")

	splitMinorBreaks(g, reg, []graph.ID{id})

	assert.Equal([]string{"test", ","}, childTexts(t, g, id))
}

func Test_SplitMajorBreaks_splitsOffPeriod(t *testing.T) {
	assert := assert.New(t)

	g := graph.New()
	reg := newTestRegistry()
	id := addWordLeaf(g, "test.", "test.")

	splitMajorBreaks(g, reg, []graph.ID{id})

	kids := g.Children(id)
	if !assert.Len(kids, 2) {
		return
	}
	n := g.Node(kids[1])
	b, isBreak := n.BreakWord()
	if !assert.True(isBreak) {
		return
	}
	assert.Equal(graph.BreakMajor, b.BreakType)
	assert.Equal(".", b.Text)
}

func Test_SplitAbbreviations_expandsMrWithTrailingPunctuation(t *testing.T) {
	assert := assert.New(t)

	g := graph.New()
	reg := newTestRegistry()
	id := addWordLeaf(g, "Mr.?", "Mr.? ")

	splitAbbreviations(g, reg, []graph.ID{id})

	assert.Equal([]string{"Mister?"}, childTexts(t, g, id))
}

func Test_SplitAbbreviations_noMatchLeavesLeafAlone(t *testing.T) {
	assert := assert.New(t)

	g := graph.New()
	reg := newTestRegistry()
	id := addWordLeaf(g, "hello", "hello ")

	splitAbbreviations(g, reg, []graph.ID{id})

	assert.Empty(g.Children(id))
}

func Test_SplitIgnoreNonWords_marksConfiguredNonWordsIgnored(t *testing.T) {
	assert := assert.New(t)

	g := graph.New()
	s := settings.DefaultEnUS()
	s.IsNonWord = func(text string) bool { return text == "--" }
	reg := settings.NewRegistry(s)

	id := addWordLeaf(g, "--", "-- ")
	splitIgnoreNonWords(g, reg, []graph.ID{id})

	n := g.Node(id)
	assert.True(n.IsIgnore())
}

func Test_SplitSpellOut_splitsIntoPerCharacterWords(t *testing.T) {
	assert := assert.New(t)

	g := graph.New()
	reg := newTestRegistry()
	w := &graph.Word{Text: "ab1", TextWithWS: "ab1 ", InterpretAs: graph.InterpretSpellOut}
	id := g.AddNode(w, "en_US", "", true)

	splitSpellOut(g, reg, []graph.ID{id})

	kids := g.Children(id)
	if !assert.Len(kids, 3) {
		return
	}
	var texts []string
	var roles []string
	for _, cid := range kids {
		cw, _ := g.Node(cid).Word()
		texts = append(texts, cw.Text)
		roles = append(roles, cw.Role)
	}
	assert.Equal([]string{"a", "b", "1"}, texts)
	assert.Equal([]string{graph.RoleLetter, graph.RoleLetter, ""}, roles)
}

func Test_SplitWordBreaks_splitsOnConfiguredSeparator(t *testing.T) {
	assert := assert.New(t)

	g := graph.New()
	s := settings.DefaultEnUS()
	s.WordBreaks = []string{"-"}
	if err := s.CompilePatterns(); err != nil {
		t.Fatal(err)
	}
	reg := settings.NewRegistry(s)

	id := addWordLeaf(g, "fast-food", "fast-food ")
	splitWordBreaks(g, reg, []graph.ID{id})

	assert.Equal([]string{"fast", "food"}, childTexts(t, g, id))
}

func Test_SplitWordBreaks_skipsWordsInLexicon(t *testing.T) {
	assert := assert.New(t)

	g := graph.New()
	s := settings.DefaultEnUS()
	s.WordBreaks = []string{"-"}
	if err := s.CompilePatterns(); err != nil {
		t.Fatal(err)
	}
	reg := settings.NewRegistry(s)

	id := addWordLeaf(g, "well-known", "well-known ")
	splitWordBreaks(g, reg, []graph.ID{id})

	assert.Empty(g.Children(id))
}

func Test_SplitWordBreaks_skipsExplicitNodes(t *testing.T) {
	assert := assert.New(t)

	g := graph.New()
	s := settings.DefaultEnUS()
	s.WordBreaks = []string{"-"}
	if err := s.CompilePatterns(); err != nil {
		t.Fatal(err)
	}
	reg := settings.NewRegistry(s)

	w := &graph.Word{Text: "well-known", TextWithWS: "well-known "}
	id := g.AddNode(w, "en_US", "", false) // not implicit: explicit SSML word
	splitWordBreaks(g, reg, []graph.ID{id})

	assert.Empty(g.Children(id))
}

func Test_SplitAbbreviations_keepWhitespaceDisabledYieldsBareText(t *testing.T) {
	assert := assert.New(t)

	g := graph.New()
	s := settings.DefaultEnUS()
	s.KeepWhitespace = false
	reg := settings.NewRegistry(s)

	id := addWordLeaf(g, "Mr.", "Mr. ")
	splitAbbreviations(g, reg, []graph.ID{id})

	kids := g.Children(id)
	if !assert.Len(kids, 1) {
		return
	}
	w, _ := g.Node(kids[0]).Word()
	assert.Equal("Mister", w.Text)
	assert.Equal("Mister", w.TextWithWS)
}

func Test_Retokenize_preservesWhitespaceOnPrecedingToken(t *testing.T) {
	assert := assert.New(t)

	toks := retokenize("one  two\tthree", nil)
	if !assert.Len(toks, 3) {
		return
	}
	assert.Equal(Token{Text: "one", TextWithWS: "one  "}, toks[0])
	assert.Equal(Token{Text: "two", TextWithWS: "two\t"}, toks[1])
	assert.Equal(Token{Text: "three", TextWithWS: "three"}, toks[2])
}

func Test_Retokenize_dropsLeadingWhitespaceWithNoPrecedingToken(t *testing.T) {
	assert := assert.New(t)

	toks := retokenize("  one", nil)
	if !assert.Len(toks, 1) {
		return
	}
	assert.Equal("one", toks[0].Text)
}
