package settings

import (
	"log"
	"sync"

	"github.com/Bharath-Kumar-3231/gruut/internal/gruuterr"
)

// Registry resolves language codes to Settings, falling back to a default
// language and warning at most once per unrecognized code. The warn cache
// is the only mutation after construction; processing callers serialize,
// so it is guarded by a plain mutex rather than anything fancier.
type Registry struct {
	byLang map[string]*Settings
	def    *Settings
	warned map[string]bool
	warnMu sync.Mutex
}

// NewRegistry builds a Registry with def as the fallback for unrecognized
// language codes.
func NewRegistry(def *Settings) *Registry {
	return &Registry{
		byLang: make(map[string]*Settings),
		def:    def,
		warned: make(map[string]bool),
	}
}

// Register adds or replaces the Settings for a language code.
func (r *Registry) Register(s *Settings) {
	r.byLang[s.Lang] = s
}

// Get returns the Settings for lang, falling back to the registry's default
// and logging an UnknownLanguage warning the first time lang is seen.
func (r *Registry) Get(lang string) *Settings {
	if s, ok := r.byLang[lang]; ok {
		return s
	}
	r.warnMu.Lock()
	if !r.warned[lang] {
		r.warned[lang] = true
		log.Printf("gruut: %v; falling back to %q", gruuterr.UnknownLanguageErr(lang), r.def.Lang)
	}
	r.warnMu.Unlock()
	return r.def
}

// Default returns the registry's fallback Settings.
func (r *Registry) Default() *Settings {
	return r.def
}
