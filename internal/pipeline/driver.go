package pipeline

import (
	"github.com/Bharath-Kumar-3231/gruut/internal/graph"
	"github.com/Bharath-Kumar-3231/gruut/internal/settings"
)

// Options controls which stages of Run execute.
type Options struct {
	POS           bool
	Phonemize     bool
	PostProcess   bool
	BreakPhonemes bool
}

// splitPass is one entry in the fixed split-pass order.
type splitPass func(g *graph.Graph, reg *settings.Registry, leaves []graph.ID)

var prebreakPasses = []splitPass{
	splitReplacements,
	splitPunctuation,
	splitMinorBreaks,
	splitAbbreviations,
	splitInitialisms,
	splitMajorBreaks,
	splitPunctuation,
	splitInitialisms,
}

// postbreakPasses are split pass steps 9-11, run after the sentence
// breaker.
var postbreakPasses = []splitPass{
	splitSpellOut,
	splitWordBreaks,
	splitIgnoreNonWords,
}

var transformPasses = []splitPass{
	transformNumber,
	transformCurrency,
	transformDate,
}

var verbalizePasses = []splitPass{
	verbalizeNumber,
	verbalizeDate,
	verbalizeCurrency,
}

// runPass snapshots the current leaf set and applies pass to it once. The
// snapshot is what keeps a pass from re-visiting children it attached
// during the same pass: a leaf that gained children is only picked up by
// the next pass's snapshot.
func runPass(g *graph.Graph, reg *settings.Registry, root graph.ID, pass splitPass) {
	leaves := g.Leaves(root)
	pass(g, reg, leaves)
}

// Run executes the complete ordered pipeline over a tree already built by
// internal/ssmlreader: split passes 1-8, the sentence breaker, split passes
// 9-11, the number/currency/date transforms, their verbalizers, and
// (depending on opts) POS tagging and phonemization. It does not flatten;
// call Flatten separately once Run returns.
func Run(g *graph.Graph, root graph.ID, reg *settings.Registry, opts Options) {
	for _, pass := range prebreakPasses {
		runPass(g, reg, root, pass)
	}

	breakSentences(g, root)

	for _, pass := range postbreakPasses {
		runPass(g, reg, root, pass)
	}

	for _, pass := range transformPasses {
		runPass(g, reg, root, pass)
	}
	for _, pass := range verbalizePasses {
		runPass(g, reg, root, pass)
	}

	if opts.POS || opts.Phonemize {
		enrich(g, reg, root, opts.POS, opts.Phonemize, opts.BreakPhonemes)
	}

	if opts.PostProcess {
		runPostProcess(g, reg, root)
	}
}

// runPostProcess invokes each sentence's post-processor, then the whole
// graph's post-processor.
func runPostProcess(g *graph.Graph, reg *settings.Registry, root graph.ID) {
	for _, sid := range g.DFSPreorder(root) {
		n := g.Node(sid)
		if n == nil || !n.IsSentence() {
			continue
		}
		s := reg.Get(n.Lang)
		if s.PostProcessSentence != nil {
			s.PostProcessSentence(g, sid)
		}
	}
	def := reg.Default()
	if def.PostProcessGraph != nil {
		def.PostProcessGraph(g, root)
	}
}
