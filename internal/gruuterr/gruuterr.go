// Package gruuterr defines the error taxonomy for the normalization
// pipeline: InputFormat is the only error kind that escapes to a caller as a
// returned error; UnknownLanguage is reported once per language code in the
// settings registry's warning log, ParseLocal failures are silent by design
// and CollaboratorFailure is logged, never returned.
package gruuterr

import "fmt"

// Kind classifies an error for callers that want to branch on it (e.g. a
// server handler returning 400 on InputFormat vs. 200-with-fallback on
// UnknownLanguage).
type Kind int

const (
	// InputFormat marks malformed SSML input: unclosed tags, invalid XML,
	// or a missing root <speak> element after tree construction. Fatal.
	InputFormat Kind = iota
	// UnknownLanguage marks a language code with no registered settings.
	// Non-fatal: callers fall back to default-constructed settings after
	// this is surfaced once.
	UnknownLanguage
)

func (k Kind) String() string {
	switch k {
	case InputFormat:
		return "InputFormat"
	case UnknownLanguage:
		return "UnknownLanguage"
	default:
		return "Unknown"
	}
}

// Error is the error type returned for InputFormat and UnknownLanguage
// conditions. It carries a machine-checkable Kind plus a human-facing
// message, and unwraps to any underlying cause.
type Error struct {
	kind  Kind
	msg   string
	human string
	wrap  error
}

func (e *Error) Error() string {
	if e.wrap != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.wrap)
	}
	return e.msg
}

// Unwrap allows errors.Is/errors.As to see through to the wrapped cause.
func (e *Error) Unwrap() error { return e.wrap }

// Kind returns the error's taxonomy classification.
func (e *Error) Kind() Kind { return e.kind }

// Human returns a message suitable for display to an end user, falling back
// to the internal message if none was set.
func (e *Error) Human() string {
	if e.human == "" {
		return e.msg
	}
	return e.human
}

// InputFormatErr builds a fatal malformed-input error.
func InputFormatErr(msg string) error {
	return &Error{kind: InputFormat, msg: msg, human: "the input could not be parsed as SSML"}
}

// InputFormatErrf is InputFormatErr with Printf-style formatting.
func InputFormatErrf(format string, args ...any) error {
	return &Error{kind: InputFormat, msg: fmt.Sprintf(format, args...), human: "the input could not be parsed as SSML"}
}

// WrapInputFormat wraps cause as a fatal malformed-input error.
func WrapInputFormat(msg string, cause error) error {
	return &Error{kind: InputFormat, msg: msg, human: "the input could not be parsed as SSML", wrap: cause}
}

// UnknownLanguageErr builds a non-fatal unknown-language-code error.
func UnknownLanguageErr(lang string) error {
	return &Error{
		kind:  UnknownLanguage,
		msg:   fmt.Sprintf("no settings registered for language %q", lang),
		human: fmt.Sprintf("unrecognized language %q; using default settings", lang),
	}
}
