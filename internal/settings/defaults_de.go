package settings

// DefaultDeDE returns built-in de_DE settings, mirroring DefaultEsES's
// approach: DefaultEnUS's tokenization tables with German number/date
// locale and currency words.
func DefaultDeDE() *Settings {
	s := DefaultEnUS()
	s.Lang = "de_DE"
	s.NumberLocale = "de"
	s.DateLocale = "de"
	s.DefaultCurrency = "euro"
	s.Currencies = []CurrencyInfo{
		{Symbol: "€", Name: "euro", SubunitName: "cent"},
		{Symbol: "$", Name: "dollar", SubunitName: "cent"},
	}
	if err := s.CompilePatterns(); err != nil {
		panic("settings: built-in de_DE settings failed to compile: " + err.Error())
	}
	return s
}
