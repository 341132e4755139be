// Package gruut is a text normalization front end for speech synthesis: it
// ingests natural-language text (optionally marked up with a subset of
// SSML) and produces a flat, ordered sequence of sentences of speakable
// words, with numbers, currencies, dates, abbreviations, and spelled-out
// tokens expanded to their verbalized word form.
package gruut

import (
	"github.com/Bharath-Kumar-3231/gruut/internal/graph"
	"github.com/Bharath-Kumar-3231/gruut/internal/gruuterr"
	"github.com/Bharath-Kumar-3231/gruut/internal/pipeline"
	"github.com/Bharath-Kumar-3231/gruut/internal/settings"
	"github.com/Bharath-Kumar-3231/gruut/internal/ssmlreader"
)

// Graph and NodeID are re-exported so callers can walk a processed document
// without importing internal/graph directly.
type Graph = graph.Graph
type NodeID = graph.ID

// Word and Sentence are the flattened output records.
type Word = pipeline.Word
type Sentence = pipeline.Sentence

// Registry resolves language codes to Settings.
type Registry = settings.Registry

// ProcessOptions controls which stages of Process run and how raw input
// is interpreted.
type ProcessOptions struct {
	SSML        bool
	POS         bool
	Phonemize   bool
	PostProcess bool
	AddSpeakTag bool
}

// DefaultProcessOptions returns the standard defaults: plain-text input,
// POS tagging, phonemization, post-processing, and <speak> auto-wrapping
// all on.
func DefaultProcessOptions() ProcessOptions {
	return ProcessOptions{POS: true, Phonemize: true, PostProcess: true, AddSpeakTag: true}
}

// SentenceOptions controls which word kinds Sentences emits and how
// per-word language tags are reported.
type SentenceOptions struct {
	MajorBreaks   bool
	MinorBreaks   bool
	Punctuations  bool
	ExplicitLang  bool
	BreakPhonemes bool
}

// DefaultSentenceOptions returns the standard defaults (everything on).
func DefaultSentenceOptions() SentenceOptions {
	return SentenceOptions{MajorBreaks: true, MinorBreaks: true, Punctuations: true, ExplicitLang: true, BreakPhonemes: true}
}

// Processor is a construct-once, call-many normalizer for one default
// language/voice pair, backed by a Registry of per-language Settings.
type Processor struct {
	reg          *Registry
	defaultLang  string
	defaultVoice string
}

// New builds a Processor. reg must contain at least a default language's
// Settings (see settings.NewRegistry); defaultLang/defaultVoice seed nodes
// created before any explicit xml:lang/voice scope is opened.
func New(reg *Registry, defaultLang, defaultVoice string) *Processor {
	return &Processor{reg: reg, defaultLang: defaultLang, defaultVoice: defaultVoice}
}

// Process runs the full pipeline over text: SSML parsing and tree
// construction, the fixed split/transform/verbalize passes, the sentence
// breaker, and (per opts) POS tagging and phonemization. It returns the
// resulting graph and its root Speak node.
func (p *Processor) Process(text string, opts ProcessOptions) (*Graph, NodeID, error) {
	prepared := ssmlreader.PrepareInput(text, opts.SSML, opts.AddSpeakTag)

	events, err := ssmlreader.Tokenize(prepared)
	if err != nil {
		return nil, 0, err
	}

	g, root := ssmlreader.Build(events, p.defaultLang, p.defaultVoice)
	if g.Node(root) == nil {
		return nil, 0, gruuterr.InputFormatErr("gruut: no root speak node after tree construction")
	}

	pipeline.Run(g, root, p.reg, pipeline.Options{
		POS:           opts.POS,
		Phonemize:     opts.Phonemize,
		PostProcess:   opts.PostProcess,
		BreakPhonemes: opts.Phonemize,
	})

	return g, root, nil
}

// Sentences flattens a processed graph into Sentence records in document
// order.
func (p *Processor) Sentences(g *Graph, root NodeID, opts SentenceOptions) []Sentence {
	return pipeline.Flatten(g, root, pipeline.FlattenOptions{
		MajorBreaks:   opts.MajorBreaks,
		MinorBreaks:   opts.MinorBreaks,
		Punctuations:  opts.Punctuations,
		ExplicitLang:  opts.ExplicitLang,
		BreakPhonemes: opts.BreakPhonemes,
		DefaultLang:   p.defaultLang,
	})
}

// Words flattens a processed graph into a single word stream, for callers
// that don't care about sentence boundaries. Convenience wrapper over
// Sentences.
func (p *Processor) Words(g *Graph, root NodeID, opts SentenceOptions) []Word {
	var out []Word
	for _, sent := range p.Sentences(g, root, opts) {
		out = append(out, sent.Words...)
	}
	return out
}

// DefaultRegistry returns a Registry pre-populated with built-in English
// (en_US, the fallback default), Spanish (es_ES), and German (de_DE)
// settings, so multi-language <w lang="..."> documents verbalize per
// language without a langpack bundle on disk.
func DefaultRegistry() *Registry {
	reg := settings.NewRegistry(settings.DefaultEnUS())
	reg.Register(settings.DefaultEsES())
	reg.Register(settings.DefaultDeDE())
	return reg
}
