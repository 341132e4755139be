package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Bharath-Kumar-3231/gruut/internal/graph"
)

func Test_BreakSentences_splitsImplicitSentenceAtMajorBreak(t *testing.T) {
	assert := assert.New(t)

	g := graph.New()
	speak := g.AddNode(graph.Speak{}, "en_US", "", false)
	g.SetRoot(speak)
	para := g.AddNode(graph.Paragraph{}, "en_US", "", true)
	g.AddEdge(speak, para)
	sent := g.AddNode(graph.Sentence{}, "en_US", "", true)
	g.AddEdge(para, sent)

	w1 := g.AddNode(&graph.Word{Text: "Test", TextWithWS: "Test "}, "en_US", "", false)
	g.AddEdge(sent, w1)

	wPeriod := g.AddNode(&graph.Word{Text: "test.", TextWithWS: "test."}, "en_US", "", false)
	g.AddEdge(sent, wPeriod)
	wResidue := g.AddNode(&graph.Word{Text: "test", TextWithWS: "test"}, "en_US", "", true)
	g.AddEdge(wPeriod, wResidue)
	bw := g.AddNode(&graph.BreakWord{BreakType: graph.BreakMajor, Text: ".", TextWithWS: ". "}, "en_US", "", true)
	g.AddEdge(wPeriod, bw)

	w3 := g.AddNode(&graph.Word{Text: "Next", TextWithWS: "Next"}, "en_US", "", false)
	g.AddEdge(sent, w3)

	breakSentences(g, speak)

	pkids := g.Children(para)
	if !assert.Len(pkids, 2) {
		return
	}
	assert.Equal([]graph.ID{w1, wPeriod}, g.Children(pkids[0]))
	assert.Equal([]graph.ID{w3}, g.Children(pkids[1]))
}

func Test_BreakSentences_ignoresExplicitSentence(t *testing.T) {
	assert := assert.New(t)

	g := graph.New()
	speak := g.AddNode(graph.Speak{}, "en_US", "", false)
	g.SetRoot(speak)
	para := g.AddNode(graph.Paragraph{}, "en_US", "", true)
	g.AddEdge(speak, para)
	sent := g.AddNode(graph.Sentence{}, "en_US", "", false) // explicit <s>
	g.AddEdge(para, sent)

	wPeriod := g.AddNode(&graph.Word{Text: "test.", TextWithWS: "test."}, "en_US", "", false)
	g.AddEdge(sent, wPeriod)
	bw := g.AddNode(&graph.BreakWord{BreakType: graph.BreakMajor, Text: ".", TextWithWS: "."}, "en_US", "", true)
	g.AddEdge(wPeriod, bw)
	w3 := g.AddNode(&graph.Word{Text: "Next", TextWithWS: "Next"}, "en_US", "", false)
	g.AddEdge(sent, w3)

	breakSentences(g, speak)

	assert.Equal([]graph.ID{sent}, g.Children(para))
	assert.Equal([]graph.ID{wPeriod, w3}, g.Children(sent))
}

func Test_BreakSentences_noopWhenBreakIsLastLeaf(t *testing.T) {
	assert := assert.New(t)

	g := graph.New()
	speak := g.AddNode(graph.Speak{}, "en_US", "", false)
	g.SetRoot(speak)
	para := g.AddNode(graph.Paragraph{}, "en_US", "", true)
	g.AddEdge(speak, para)
	sent := g.AddNode(graph.Sentence{}, "en_US", "", true)
	g.AddEdge(para, sent)

	wPeriod := g.AddNode(&graph.Word{Text: "test.", TextWithWS: "test."}, "en_US", "", false)
	g.AddEdge(sent, wPeriod)
	bw := g.AddNode(&graph.BreakWord{BreakType: graph.BreakMajor, Text: ".", TextWithWS: "."}, "en_US", "", true)
	g.AddEdge(wPeriod, bw)

	breakSentences(g, speak)

	assert.Equal([]graph.ID{sent}, g.Children(para))
}
