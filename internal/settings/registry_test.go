package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Registry_GetFallsBackToDefault(t *testing.T) {
	assert := assert.New(t)

	def := &Settings{Lang: "en_US"}
	es := &Settings{Lang: "es_ES"}
	reg := NewRegistry(def)
	reg.Register(es)

	assert.Same(es, reg.Get("es_ES"))
	assert.Same(def, reg.Get("fr_FR"))
	assert.Same(def, reg.Default())
}

func Test_Registry_GetIsIdempotentForUnknownLanguage(t *testing.T) {
	assert := assert.New(t)

	def := &Settings{Lang: "en_US"}
	reg := NewRegistry(def)

	first := reg.Get("xx_XX")
	second := reg.Get("xx_XX")
	assert.Same(first, second)
	assert.Same(def, first)
}
