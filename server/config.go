package server

import (
	"fmt"
	"time"
)

const (
	MaxSecretSize = 64
	MinSecretSize = 32
)

// APIKey is one bcrypt-hashed static credential a client can exchange for a
// bearer token via POST /login. Name identifies the key's holder in logs and
// in the JWT subject claim; it is not secret.
type APIKey struct {
	Name      string
	HashedKey string
}

// Config is a configuration for a Server. It contains all parameters needed
// to configure the operation of a gruut HTTP API.
type Config struct {
	// TokenSecret is the secret used for signing JWTs. Must be between
	// MinSecretSize and MaxSecretSize bytes.
	TokenSecret []byte

	// APIKeys are the static credentials accepted by POST /login.
	APIKeys []APIKey

	// DefaultLang is the language new Processor nodes are tagged with before
	// any explicit SSML xml:lang scope is entered.
	DefaultLang string

	// DefaultVoice is the voice new Processor nodes are tagged with before
	// any explicit SSML voice scope is entered.
	DefaultVoice string

	// LexiconDBPath, if set, opens a sqlitelex lexicon at this path and
	// wires its Lookup method in as the default language's
	// Settings.LookupPhonemes collaborator.
	LexiconDBPath string

	// UnauthDelayMillis is the amount of additional time to wait (in
	// milliseconds) before responding to an unauthenticated or unauthorized
	// request, as a naive anti-flood measure. Defaults to 1000 if unset; set
	// to a negative number to disable.
	UnauthDelayMillis int
}

// UnauthDelay returns the configured delay as a time.Duration.
func (cfg Config) UnauthDelay() time.Duration {
	if cfg.UnauthDelayMillis < 1 {
		var dur time.Duration
		return dur
	}
	return time.Millisecond * time.Duration(cfg.UnauthDelayMillis)
}

// FillDefaults returns a new Config identical to cfg but with unset values
// set to their defaults.
func (cfg Config) FillDefaults() Config {
	newCFG := cfg

	if newCFG.DefaultLang == "" {
		newCFG.DefaultLang = "en_US"
	}
	if newCFG.UnauthDelayMillis == 0 {
		newCFG.UnauthDelayMillis = 1000
	}

	return newCFG
}

// Validate returns an error if the Config has invalid field values set.
func (cfg Config) Validate() error {
	if len(cfg.TokenSecret) < MinSecretSize {
		return fmt.Errorf("token secret: must be at least %d bytes, but is %d", MinSecretSize, len(cfg.TokenSecret))
	}
	if len(cfg.TokenSecret) > MaxSecretSize {
		return fmt.Errorf("token secret: must be no more than %d bytes, but is %d", MaxSecretSize, len(cfg.TokenSecret))
	}
	if len(cfg.APIKeys) == 0 {
		return fmt.Errorf("at least one API key must be configured")
	}
	seen := map[string]bool{}
	for _, k := range cfg.APIKeys {
		if k.Name == "" {
			return fmt.Errorf("API key name must not be empty")
		}
		if seen[k.Name] {
			return fmt.Errorf("duplicate API key name: %q", k.Name)
		}
		seen[k.Name] = true
	}

	return nil
}
