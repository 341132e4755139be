package settings

// DefaultEsES returns built-in es_ES settings: the same punctuation/break
// configuration as DefaultEnUS, with number/date locale and default
// currency switched to Spanish conventions, so a <w lang="es_ES"> word is
// verbalized in Spanish.
func DefaultEsES() *Settings {
	s := DefaultEnUS()
	s.Lang = "es_ES"
	s.NumberLocale = "es"
	s.DateLocale = "es"
	s.DefaultCurrency = "euro"
	s.Currencies = []CurrencyInfo{
		{Symbol: "€", Name: "euro", SubunitName: "céntimo"},
		{Symbol: "$", Name: "dólar", SubunitName: "centavo"},
	}
	if err := s.CompilePatterns(); err != nil {
		panic("settings: built-in es_ES settings failed to compile: " + err.Error())
	}
	return s
}
