package ssmlreader

import (
	"regexp"
	"strings"

	"github.com/Bharath-Kumar-3231/gruut/internal/graph"
)

const noID graph.ID = -1

type scopeEntry struct {
	Tag   string
	Value string
}

type sayAsEntry struct {
	Tag         string
	InterpretAs graph.InterpretAs
	Format      string
}

// builder walks a flat Event stream and constructs the initial document
// tree: implicit Speak/Paragraph/Sentence creation, voice/say-as/lang scope
// stacks, explicit <w>/<token> word boundaries, and <sub alias="...">
// substitution.
type builder struct {
	g *graph.Graph

	langStack  []scopeEntry
	voiceStack []scopeEntry
	sayAsStack []sayAsEntry

	speakID     graph.ID
	paragraphID graph.ID
	sentenceID  graph.ID
	lastWordID  graph.ID

	inWord   bool
	wordBuf  strings.Builder
	wordRole string
}

var tokenPattern = regexp.MustCompile(`\S+\s*`)
var leadingWSPattern = regexp.MustCompile(`^\s+`)

// Build constructs a graph from events, returning the root Speak node's ID.
// defaultLang/defaultVoice seed the scope stacks for content appearing
// before any explicit xml:lang/voice element.
func Build(events []Event, defaultLang, defaultVoice string) (*graph.Graph, graph.ID) {
	b := &builder{
		g:           graph.New(),
		speakID:     noID,
		paragraphID: noID,
		sentenceID:  noID,
		lastWordID:  noID,
	}
	b.langStack = append(b.langStack, scopeEntry{Tag: "__default__", Value: defaultLang})
	b.voiceStack = append(b.voiceStack, scopeEntry{Tag: "__default__", Value: defaultVoice})

	i := 0
	for i < len(events) {
		e := events[i]
		switch e.Kind {
		case Start:
			i = b.handleStart(events, i)
		case Text:
			b.emitText(e.Text)
			i++
		case End:
			b.handleEnd(e.Tag)
			i++
		}
	}
	return b.g, b.speakID
}

func (b *builder) curLang() string  { return b.langStack[len(b.langStack)-1].Value }
func (b *builder) curVoice() string { return b.voiceStack[len(b.voiceStack)-1].Value }

func (b *builder) pushLang(tag, langAttr string) {
	v := b.curLang()
	if langAttr != "" {
		v = langAttr
	}
	b.langStack = append(b.langStack, scopeEntry{Tag: tag, Value: v})
}

func (b *builder) popLang(tag string) {
	if len(b.langStack) > 1 && b.langStack[len(b.langStack)-1].Tag == tag {
		b.langStack = b.langStack[:len(b.langStack)-1]
	}
}

func (b *builder) handleStart(events []Event, i int) int {
	e := events[i]
	switch e.Tag {
	case "speak":
		b.pushLang("speak", e.Attrs["lang"])
		id := b.g.AddNode(graph.Speak{}, b.curLang(), b.curVoice(), false)
		b.g.SetRoot(id)
		b.speakID = id
		return i + 1
	case "p":
		b.pushLang("p", e.Attrs["lang"])
		id := b.g.AddNode(graph.Paragraph{}, b.curLang(), b.curVoice(), false)
		b.ensureSpeak()
		b.g.AddEdge(b.speakID, id)
		b.paragraphID = id
		b.sentenceID = noID
		return i + 1
	case "s":
		b.pushLang("s", e.Attrs["lang"])
		b.ensureParagraph()
		id := b.g.AddNode(graph.Sentence{}, b.curLang(), b.curVoice(), false)
		b.g.AddEdge(b.paragraphID, id)
		b.sentenceID = id
		b.lastWordID = noID
		return i + 1
	case "voice":
		b.voiceStack = append(b.voiceStack, scopeEntry{Tag: "voice", Value: e.Attrs["name"]})
		return i + 1
	case "say-as":
		b.sayAsStack = append(b.sayAsStack, sayAsEntry{
			Tag:         "say-as",
			InterpretAs: graph.InterpretAs(e.Attrs["interpret-as"]),
			Format:      e.Attrs["format"],
		})
		return i + 1
	case "w", "token":
		b.pushLang(e.Tag, e.Attrs["lang"])
		b.inWord = true
		b.wordBuf.Reset()
		b.wordRole = e.Attrs["role"]
		return i + 1
	case "break":
		b.ensureSentence()
		id := b.g.AddNode(graph.Break{Time: e.Attrs["time"]}, b.curLang(), b.curVoice(), false)
		b.g.AddEdge(b.sentenceID, id)
		return i + 1
	case "sub":
		alias := e.Attrs["alias"]
		end := findMatchingEnd(events, i, "sub")
		b.emitText(alias)
		return end + 1
	case "metadata":
		end := findMatchingEnd(events, i, "metadata")
		return end + 1
	default:
		return i + 1
	}
}

func (b *builder) handleEnd(tag string) {
	switch tag {
	case "speak":
		b.popLang("speak")
	case "p":
		b.popLang("p")
		b.paragraphID = noID
		b.sentenceID = noID
	case "s":
		b.flushWord()
		b.popLang("s")
		b.sentenceID = noID
	case "voice":
		if len(b.voiceStack) > 1 {
			b.voiceStack = b.voiceStack[:len(b.voiceStack)-1]
		}
	case "say-as":
		if len(b.sayAsStack) > 0 {
			b.sayAsStack = b.sayAsStack[:len(b.sayAsStack)-1]
		}
	case "w", "token":
		b.flushWord()
		b.popLang(tag)
	}
}

func (b *builder) ensureSpeak() {
	if b.speakID == noID {
		id := b.g.AddNode(graph.Speak{}, b.curLang(), b.curVoice(), true)
		b.g.SetRoot(id)
		b.speakID = id
	}
}

func (b *builder) ensureParagraph() {
	b.ensureSpeak()
	if b.paragraphID == noID {
		id := b.g.AddNode(graph.Paragraph{}, b.curLang(), b.curVoice(), true)
		b.g.AddEdge(b.speakID, id)
		b.paragraphID = id
		b.sentenceID = noID
	}
}

func (b *builder) ensureSentence() {
	b.ensureParagraph()
	if b.sentenceID == noID {
		id := b.g.AddNode(graph.Sentence{}, b.curLang(), b.curVoice(), true)
		b.g.AddEdge(b.paragraphID, id)
		b.sentenceID = id
		b.lastWordID = noID
	}
}

func (b *builder) currentSayAs() (graph.InterpretAs, string) {
	if len(b.sayAsStack) == 0 {
		return graph.InterpretNone, ""
	}
	top := b.sayAsStack[len(b.sayAsStack)-1]
	return top.InterpretAs, top.Format
}

// emitText handles a raw chunk of text as it would appear directly inside
// the current container: inside <w>/<token> it is appended verbatim (no
// whitespace tokenization); otherwise it is split on whitespace into one
// Word per token, each carrying its own trailing whitespace.
func (b *builder) emitText(text string) {
	if text == "" {
		return
	}
	if b.inWord {
		b.wordBuf.WriteString(text)
		return
	}

	leading := leadingWSPattern.FindString(text)
	if leading != "" && b.lastWordID != noID {
		if n := b.g.Node(b.lastWordID); n != nil {
			if w, ok := n.Word(); ok {
				w.TextWithWS += leading
			}
		}
	}

	matches := tokenPattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return
	}
	b.ensureSentence()
	interpretAs, format := b.currentSayAs()
	for _, m := range matches {
		trimmed := strings.TrimRightFunc(m, isSpace)
		w := &graph.Word{
			Text:        trimmed,
			TextWithWS:  m,
			InterpretAs: interpretAs,
			Format:      format,
		}
		id := b.g.AddNode(w, b.curLang(), b.curVoice(), true)
		b.g.AddEdge(b.sentenceID, id)
		b.lastWordID = id
	}
}

func (b *builder) flushWord() {
	if !b.inWord {
		return
	}
	b.inWord = false
	raw := b.wordBuf.String()
	if raw == "" {
		return
	}
	b.ensureSentence()
	interpretAs, format := b.currentSayAs()
	trimmed := strings.TrimRightFunc(raw, isSpace)
	w := &graph.Word{
		Text:        trimmed,
		TextWithWS:  raw,
		InterpretAs: interpretAs,
		Format:      format,
		Role:        b.wordRole,
	}
	id := b.g.AddNode(w, b.curLang(), b.curVoice(), false)
	b.g.AddEdge(b.sentenceID, id)
	b.lastWordID = id
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// findMatchingEnd returns the index of the End event matching the Start
// event at events[start] (same tag, honoring nesting of the same tag name).
func findMatchingEnd(events []Event, start int, tag string) int {
	depth := 0
	for i := start; i < len(events); i++ {
		switch events[i].Kind {
		case Start:
			if events[i].Tag == tag {
				depth++
			}
		case End:
			if events[i].Tag == tag {
				depth--
				if depth == 0 {
					return i
				}
			}
		}
	}
	return len(events) - 1
}
