package gruut

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func wordTextsOf(t *testing.T, sentences []Sentence) []string {
	t.Helper()
	var out []string
	for _, s := range sentences {
		for _, w := range s.Words {
			out = append(out, w.Text)
		}
	}
	return out
}

func processDefault(t *testing.T, p *Processor, text string, ssml bool) []Sentence {
	t.Helper()
	opts := DefaultProcessOptions()
	opts.SSML = ssml
	g, root, err := p.Process(text, opts)
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	return p.Sentences(g, root, DefaultSentenceOptions())
}

func Test_Process_scenarioTable(t *testing.T) {
	testCases := []struct {
		name   string
		text   string
		ssml   bool
		expect []string
	}{
		{
			name:   "plain text without break glyphs",
			text:   "This is  a   test    ",
			expect: []string{"This", "is", "a", "test"},
		},
		{
			name:   "begin/end punctuation plus minor/major breaks",
			text:   `This «is»,  a "test".`,
			expect: []string{"This", "«", "is", "»", ",", "a", `"`, "test", `"`, "."},
		},
		{
			name:   "currency verbalization",
			text:   "$10",
			expect: []string{"ten", "dollars"},
		},
		{
			name:   "forced date format=md via say-as",
			text:   `<say-as interpret-as="date" format="md">4/1</say-as>`,
			ssml:   true,
			expect: []string{"April", "one"},
		},
		{
			name:   "implicit date defaults to ordinal day",
			text:   "4/1/1999",
			expect: []string{"April", "first", "nineteen", "ninety", "nine"},
		},
		{
			name:   "spell-out say-as",
			text:   `<say-as interpret-as="spell-out">test123</say-as>`,
			ssml:   true,
			expect: []string{"t", "e", "s", "t", "one", "two", "three"},
		},
		{
			name:   "sub alias replaces content",
			text:   `<speak><sub alias="World Wide Web Consortium">W3C</sub></speak>`,
			ssml:   true,
			expect: []string{"World", "Wide", "Web", "Consortium"},
		},
	}

	proc := New(DefaultRegistry(), "en_US", "")

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sentences := processDefault(t, proc, tc.text, tc.ssml)
			assert.Equal(t, tc.expect, wordTextsOf(t, sentences))
		})
	}
}

func Test_Process_abbreviationsAndSentenceBreak(t *testing.T) {
	assert := assert.New(t)

	proc := New(DefaultRegistry(), "en_US", "")
	sentences := processDefault(t, proc, "Mr.? I'm just a dr., on this St. at least.", false)

	if !assert.Len(sentences, 2) {
		return
	}

	var firstTexts, secondTexts []string
	for _, w := range sentences[0].Words {
		firstTexts = append(firstTexts, w.Text)
	}
	for _, w := range sentences[1].Words {
		secondTexts = append(secondTexts, w.Text)
	}

	assert.Equal([]string{"Mister", "?"}, firstTexts)
	assert.Equal([]string{"I'm", "just", "a", "doctor", ",", "on", "this", "Street", "at", "least", "."}, secondTexts)
}

func Test_Process_twoSentencesClosingQuoteBelongsToFirst(t *testing.T) {
	assert := assert.New(t)

	proc := New(DefaultRegistry(), "en_US", "")
	sentences := processDefault(t, proc, `Test "one." Test two.`, false)

	if !assert.Len(sentences, 2) {
		return
	}
	var s0, s1 []string
	for _, w := range sentences[0].Words {
		s0 = append(s0, w.Text)
	}
	for _, w := range sentences[1].Words {
		s1 = append(s1, w.Text)
	}
	assert.Equal([]string{"Test", `"`, "one", ".", `"`}, s0)
	assert.Equal([]string{"Test", "two", "."}, s1)
}

func Test_Process_wordLangOverrideVerbalizesPerLanguage(t *testing.T) {
	assert := assert.New(t)

	reg := DefaultRegistry()
	proc := New(reg, "en_US", "")
	sentences := processDefault(t, proc, `<speak>1 <w lang="es_ES">2</w> <w lang="de_DE">3</w></speak>`, true)

	if !assert.Len(sentences, 1) {
		return
	}
	var texts, langs []string
	for _, w := range sentences[0].Words {
		texts = append(texts, w.Text)
		langs = append(langs, w.Lang)
	}
	assert.Equal([]string{"one", "dos", "drei"}, texts)
	assert.Equal([]string{"en_US", "es_ES", "de_DE"}, langs)
}

func Test_Process_roundTripsPlainText(t *testing.T) {
	assert := assert.New(t)

	proc := New(DefaultRegistry(), "en_US", "")
	text := "hello there my friend"
	sentences := processDefault(t, proc, text, false)

	var rebuilt string
	for _, s := range sentences {
		rebuilt += s.TextWithWS
	}
	assert.Equal(text, rebuilt)
}

func Test_Process_idempotentOnOwnOutput(t *testing.T) {
	assert := assert.New(t)

	proc := New(DefaultRegistry(), "en_US", "")
	first := processDefault(t, proc, "Hello there, my friend.", false)

	var detok string
	for _, s := range first {
		detok += s.TextWithWS
	}
	second := processDefault(t, proc, detok, false)

	assert.Equal(wordTextsOf(t, first), wordTextsOf(t, second))
}

func Test_Process_unknownLanguageFallsBackToDefault(t *testing.T) {
	assert := assert.New(t)

	reg := DefaultRegistry()
	proc := New(reg, "xx_XX", "")
	sentences := processDefault(t, proc, "hello", false)
	if !assert.Len(sentences, 1) {
		return
	}
	assert.Equal("hello", sentences[0].Text)
}
