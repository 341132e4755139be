package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_DefaultEnUS_compilesPatternsEagerly(t *testing.T) {
	assert := assert.New(t)

	s := DefaultEnUS()
	assert.NotNil(s.MajorBreakPattern())
	assert.NotNil(s.MinorBreakPattern())
	assert.NotNil(s.WordBreakPattern())
	assert.Equal("mOy", s.DefaultDateFormat)
}

func Test_DefaultEnUS_abbreviationsPreserveCase(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect string
	}{
		{name: "capitalized Mr.", input: "Mr.", expect: "Mister"},
		{name: "lowercase dr.", input: "dr.", expect: "doctor"},
		{name: "capitalized St.", input: "St.", expect: "Street"},
	}

	s := DefaultEnUS()

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			var matched bool
			for _, rule := range s.Abbreviations {
				if rule.Pattern.MatchString(tc.input) {
					matched = true
					got := rule.Pattern.ReplaceAllString(tc.input, rule.Template)
					assert.Equal(tc.expect, got)
					break
				}
			}
			assert.Truef(matched, "no abbreviation rule matched %q", tc.input)
		})
	}
}

func Test_DefaultEnUS_isMaybeCurrencyGatesOnDigits(t *testing.T) {
	assert := assert.New(t)

	s := DefaultEnUS()
	assert.True(s.IsMaybeCurrency("$10"))
	assert.False(s.IsMaybeCurrency("$"))
}

func Test_defaultIsInitialism(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect bool
	}{
		{name: "all caps", input: "TTS", expect: true},
		{name: "too short", input: "A", expect: false},
		{name: "mixed case", input: "Tts", expect: false},
		{name: "lowercase", input: "tts", expect: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, defaultIsInitialism(tc.input))
		})
	}
}

func Test_defaultSplitInitialism(t *testing.T) {
	assert.Equal(t, []string{"T", "T", "S"}, defaultSplitInitialism("TTS"))
}
