package ssmlreader

import (
	"encoding/xml"
	"html"
	"io"
	"strings"

	"github.com/Bharath-Kumar-3231/gruut/internal/gruuterr"
	"github.com/Bharath-Kumar-3231/gruut/internal/normalize"
)

// PrepareInput readies raw input for Tokenize: text is first Unicode-NFC
// normalized (so later byte-wise comparisons in the split passes behave
// consistently regardless of the input's composed/decomposed form); when
// ssml is false it is then XML-escaped so markup-looking characters are
// spoken literally; finally, unless addSpeakTag is false, text that does not
// begin with '<' is wrapped in <speak>...</speak>. SSML fragments rooted at
// some other element (say, a bare <say-as>) are passed through as-is; the
// tree builder creates the enclosing Speak implicitly.
func PrepareInput(text string, ssml, addSpeakTag bool) string {
	text = normalize.NFC(text)
	if !ssml {
		text = html.EscapeString(text)
	}
	if addSpeakTag && !strings.HasPrefix(strings.TrimLeft(text, " \t\r\n"), "<") {
		return "<speak>" + text + "</speak>"
	}
	return text
}

// stripNS removes any "prefix:" namespace qualifier from a tag or attribute
// name, so that comparisons are namespace-insensitive regardless of which
// side (tag vs. attribute) the prefix appears on.
func stripNS(name string) string {
	if i := strings.IndexByte(name, ':'); i >= 0 {
		return name[i+1:]
	}
	return name
}

// Tokenize parses ssml (already prepared via PrepareInput if needed) into a
// flat depth-first Start/Text/End event stream using encoding/xml as the
// tokenizer. A malformed document (unclosed tags, invalid XML) yields a
// gruuterr InputFormat error.
func Tokenize(ssml string) ([]Event, error) {
	dec := xml.NewDecoder(strings.NewReader(ssml))
	// SSML documents in the wild often carry HTML named entities (&nbsp;
	// and friends) that plain XML does not declare; resolve those rather
	// than failing the parse. Structural problems (unclosed or mismatched
	// tags) remain fatal.
	dec.Entity = xml.HTMLEntity

	var events []Event
	sawRoot := false

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, gruuterr.WrapInputFormat("ssmlreader: malformed XML", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			sawRoot = true
			attrs := make(map[string]string, len(t.Attr))
			for _, a := range t.Attr {
				name := a.Name.Local
				if a.Name.Space != "" && a.Name.Space != "xmlns" {
					name = stripNS(a.Name.Space + ":" + a.Name.Local)
				}
				attrs[stripNS(name)] = a.Value
			}
			events = append(events, Event{Kind: Start, Tag: stripNS(t.Name.Local), Attrs: attrs})
		case xml.CharData:
			events = append(events, Event{Kind: Text, Text: string(t)})
		case xml.EndElement:
			events = append(events, Event{Kind: End, Tag: stripNS(t.Name.Local)})
		case xml.Comment, xml.ProcInst, xml.Directive:
			// ignored
		}
	}

	if !sawRoot {
		return nil, gruuterr.InputFormatErr("ssmlreader: no root element found")
	}
	return events, nil
}
