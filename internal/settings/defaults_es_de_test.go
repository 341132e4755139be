package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_DefaultEsES(t *testing.T) {
	assert := assert.New(t)

	s := DefaultEsES()
	assert.Equal("es_ES", s.Lang)
	assert.Equal("es", s.NumberLocale)
	assert.Equal("es", s.DateLocale)
	assert.NotNil(s.MajorBreakPattern())
}

func Test_DefaultDeDE(t *testing.T) {
	assert := assert.New(t)

	s := DefaultDeDE()
	assert.Equal("de_DE", s.Lang)
	assert.Equal("de", s.NumberLocale)
	assert.Equal("de", s.DateLocale)
	assert.NotNil(s.MajorBreakPattern())
}
