package locale

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func Test_ParseDecimal(t *testing.T) {
	testCases := []struct {
		name   string
		text   string
		lang   string
		expect string
		ok     bool
	}{
		{name: "plain integer", text: "10", lang: "en", expect: "10", ok: true},
		{name: "dot decimal for English", text: "10.5", lang: "en", expect: "10.5", ok: true},
		{name: "comma decimal for German", text: "10,5", lang: "de", expect: "10.5", ok: true},
		{name: "thousands comma stripped for English", text: "1,000", lang: "en", expect: "1000", ok: true},
		{name: "garbage rejected", text: "abc", lang: "en", ok: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			got, ok := ParseDecimal(tc.text, tc.lang)
			assert.Equal(tc.ok, ok)
			if tc.ok {
				want, err := decimal.NewFromString(tc.expect)
				if assert.NoError(err) {
					assert.True(want.Equal(got), "got %s, want %s", got, want)
				}
			}
		})
	}
}
