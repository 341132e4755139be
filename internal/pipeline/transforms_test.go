package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Bharath-Kumar-3231/gruut/internal/graph"
	"github.com/Bharath-Kumar-3231/gruut/internal/settings"
)

func Test_TransformNumber_parsesPlainInteger(t *testing.T) {
	assert := assert.New(t)

	g := graph.New()
	reg := newTestRegistry()
	id := addWordLeaf(g, "42", "42 ")

	transformNumber(g, reg, []graph.ID{id})

	_, w, _ := wordLeaf(g, id)
	assert.Equal(graph.InterpretNumber, w.InterpretAs)
	if assert.NotNil(w.Number) {
		assert.True(w.Number.Equal(w.Number.Truncate(0)))
		assert.Equal("42", w.Number.String())
	}
}

func Test_TransformNumber_leavesNonNumericWordAlone(t *testing.T) {
	assert := assert.New(t)

	g := graph.New()
	reg := newTestRegistry()
	id := addWordLeaf(g, "hello", "hello ")

	transformNumber(g, reg, []graph.ID{id})

	_, w, _ := wordLeaf(g, id)
	assert.Equal(graph.InterpretNone, w.InterpretAs)
	assert.Nil(w.Number)
}

func Test_TransformNumber_skipsWordAlreadyLockedToOtherInterpretation(t *testing.T) {
	assert := assert.New(t)

	g := graph.New()
	reg := newTestRegistry()
	w := &graph.Word{Text: "42", TextWithWS: "42 ", InterpretAs: graph.InterpretDate}
	id := g.AddNode(w, "en_US", "", true)

	transformNumber(g, reg, []graph.ID{id})

	assert.Equal(graph.InterpretDate, w.InterpretAs)
	assert.Nil(w.Number)
}

func Test_TransformCurrency_parsesSymbolPrefixedAmount(t *testing.T) {
	assert := assert.New(t)

	g := graph.New()
	reg := newTestRegistry()
	id := addWordLeaf(g, "$10", "$10 ")

	transformCurrency(g, reg, []graph.ID{id})

	_, w, _ := wordLeaf(g, id)
	assert.Equal(graph.InterpretCurrency, w.InterpretAs)
	assert.Equal("$", w.CurrencySymbol)
	if assert.NotNil(w.Number) {
		assert.Equal("10", w.Number.String())
	}
}

func Test_TransformCurrency_gatesOnIsMaybeCurrency(t *testing.T) {
	assert := assert.New(t)

	g := graph.New()
	reg := newTestRegistry()
	id := addWordLeaf(g, "hello", "hello ")

	transformCurrency(g, reg, []graph.ID{id})

	_, w, _ := wordLeaf(g, id)
	assert.Equal(graph.InterpretNone, w.InterpretAs)
}

func Test_TransformCurrency_forcedInterpretationUsesDefaultCurrency(t *testing.T) {
	assert := assert.New(t)

	g := graph.New()
	reg := newTestRegistry()
	w := &graph.Word{Text: "10", TextWithWS: "10 ", InterpretAs: graph.InterpretCurrency}
	id := g.AddNode(w, "en_US", "", true)

	transformCurrency(g, reg, []graph.ID{id})

	assert.Equal("dollar", w.CurrencyName)
	if assert.NotNil(w.Number) {
		assert.Equal("10", w.Number.String())
	}
}

func Test_TransformDate_parsesSlashDate(t *testing.T) {
	assert := assert.New(t)

	g := graph.New()
	reg := newTestRegistry()
	id := addWordLeaf(g, "4/1/1999", "4/1/1999 ")

	transformDate(g, reg, []graph.ID{id})

	_, w, _ := wordLeaf(g, id)
	assert.Equal(graph.InterpretDate, w.InterpretAs)
	if assert.NotNil(w.Date) {
		assert.Equal(1999, w.Date.Year())
	}
}

func Test_TransformDate_forcedInterpretationTriesLooseParseOnStrictFailure(t *testing.T) {
	assert := assert.New(t)

	g := graph.New()
	reg := newTestRegistry()
	w := &graph.Word{Text: "4/1", TextWithWS: "4/1 ", InterpretAs: graph.InterpretDate, Format: "md"}
	id := g.AddNode(w, "en_US", "", true)

	transformDate(g, reg, []graph.ID{id})

	assert.Equal(graph.InterpretDate, w.InterpretAs)
	if assert.NotNil(w.Date) {
		assert.Equal(4, int(w.Date.Month()))
		assert.Equal(1, w.Date.Day())
	}
}

func Test_TransformDate_leavesPlainWordAlone(t *testing.T) {
	assert := assert.New(t)

	g := graph.New()
	reg := newTestRegistry()
	id := addWordLeaf(g, "hello", "hello ")

	transformDate(g, reg, []graph.ID{id})

	_, w, _ := wordLeaf(g, id)
	assert.Equal(graph.InterpretNone, w.InterpretAs)
	assert.Nil(w.Date)
}

func Test_TransformCurrency_noSymbolNoForceLeavesAlone(t *testing.T) {
	assert := assert.New(t)

	g := graph.New()
	s := settings.DefaultEnUS()
	reg := settings.NewRegistry(s)
	id := addWordLeaf(g, "10", "10 ")

	transformCurrency(g, reg, []graph.ID{id})

	_, w, _ := wordLeaf(g, id)
	assert.Equal(graph.InterpretNone, w.InterpretAs)
}
