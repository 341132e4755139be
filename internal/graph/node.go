// Package graph implements the typed node arena that backs the normalization
// pipeline's working tree: document structure, paragraphs, sentences, words,
// and the sub-word nodes produced by split passes.
package graph

import (
	"time"

	"github.com/shopspring/decimal"
)

// ID uniquely identifies a Node within a Graph. It is also the Node's
// insertion index, so IDs are stable and monotonically increasing for the
// lifetime of a Graph.
type ID int

// InterpretAs is the say-as interpretation assigned to a Word, either
// explicitly via SSML <say-as> or inferred by a transform pass.
type InterpretAs string

const (
	InterpretNone     InterpretAs = ""
	InterpretSpellOut InterpretAs = "spell-out"
	InterpretNumber   InterpretAs = "number"
	InterpretCurrency InterpretAs = "currency"
	InterpretDate     InterpretAs = "date"
)

// BreakType distinguishes a phrase-level break from a sentence-level one.
type BreakType int

const (
	BreakMinor BreakType = iota
	BreakMajor
)

func (bt BreakType) String() string {
	if bt == BreakMajor {
		return "major"
	}
	return "minor"
}

// Built-in word roles. Any other string is a valid role too; these are just
// the ones the pipeline itself assigns.
const (
	RoleDefault = ""
	RoleLetter  = "letter"
)

// ElementRef is a lightweight pointer back to the SSML element (if any) that
// caused a node to be created. It is informational only; nothing in the
// pipeline mutates it.
type ElementRef struct {
	Tag   string
	Attrs map[string]string
}

// Data is implemented by each node variant named in the node model. A type
// switch on Data (or a pointer to one of the mutable variants) recovers the
// concrete node kind.
type Data interface {
	nodeData()
}

// Speak is the root marker node of a processed document.
type Speak struct{}

func (Speak) nodeData() {}

// Paragraph groups sentences below a <p> element or an implicit paragraph
// boundary.
type Paragraph struct{}

func (Paragraph) nodeData() {}

// Sentence groups words below an <s> element or an implicit sentence
// boundary. Explicit sentences are immune to splitting by the sentence
// breaker (see internal/pipeline/sentencebreak.go).
type Sentence struct{}

func (Sentence) nodeData() {}

// Word is the workhorse node variant: free text, or text that has been
// classified and parsed as a number, currency amount, or date, pending
// verbalization into child Words.
//
// Word is used as a pointer variant (*Word) because the transform and
// enrichment passes mutate it in place (setting InterpretAs, Number, Date,
// CurrencySymbol/Name, POS, Role, Phonemes) and the mutations need to be
// visible to every holder of the Node.
type Word struct {
	Text       string
	TextWithWS string

	InterpretAs InterpretAs
	Format      string
	Role        string

	Number         *decimal.Decimal
	Date           *time.Time
	CurrencySymbol string
	CurrencyName   string

	POS      string
	Phonemes []string
}

func (*Word) nodeData() {}

// BreakWord carries a break glyph (such as "," or ".") split off of a Word by
// the minor/major break split passes.
type BreakWord struct {
	BreakType  BreakType
	Text       string
	TextWithWS string
	Phonemes   []string
}

func (*BreakWord) nodeData() {}

// Break is an explicit SSML <break time="..."/> marker.
type Break struct {
	Time string
}

func (Break) nodeData() {}

// PunctuationWord carries punctuation peeled off the head or tail of a Word.
type PunctuationWord struct {
	Text       string
	TextWithWS string
}

func (*PunctuationWord) nodeData() {}

// Ignore marks a Word that should be excluded from the final flattened
// output (see Settings.IsNonWord).
type Ignore struct{}

func (Ignore) nodeData() {}

// Node is the envelope shared by every node variant: identity, inherited
// scope (language, voice), provenance (implicit vs. author-written), and an
// optional pointer back to the SSML element that produced it.
type Node struct {
	ID       ID
	Lang     string
	Voice    string
	Implicit bool
	Element  *ElementRef

	Data Data
}

// Word returns the node's data as *Word along with whether the node is in
// fact a Word. Convenience wrapper around a type assertion.
func (n *Node) Word() (*Word, bool) {
	w, ok := n.Data.(*Word)
	return w, ok
}

// BreakWord returns the node's data as *BreakWord along with whether the
// node is in fact a BreakWord.
func (n *Node) BreakWord() (*BreakWord, bool) {
	b, ok := n.Data.(*BreakWord)
	return b, ok
}

// PunctuationWord returns the node's data as *PunctuationWord along with
// whether the node is in fact a PunctuationWord.
func (n *Node) PunctuationWord() (*PunctuationWord, bool) {
	p, ok := n.Data.(*PunctuationWord)
	return p, ok
}

// IsSentence returns whether the node is a Sentence node.
func (n *Node) IsSentence() bool {
	_, ok := n.Data.(Sentence)
	return ok
}

// IsParagraph returns whether the node is a Paragraph node.
func (n *Node) IsParagraph() bool {
	_, ok := n.Data.(Paragraph)
	return ok
}

// IsSpeak returns whether the node is a Speak node.
func (n *Node) IsSpeak() bool {
	_, ok := n.Data.(Speak)
	return ok
}

// IsIgnore returns whether the node is an Ignore marker.
func (n *Node) IsIgnore() bool {
	_, ok := n.Data.(Ignore)
	return ok
}
