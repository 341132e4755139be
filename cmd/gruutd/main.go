/*
Gruutd starts a gruut text normalization server and begins listening for new
connections.

Usage:

	gruutd [flags]
	gruutd [flags] -l [[ADDRESS]:PORT]

Once started, the gruut server will listen for HTTP requests and respond to
them using a small REST API: clients exchange a configured API key for a
bearer token at POST /login, then submit text for normalization at POST
/normalize. GET /healthz requires no authentication.

If a JWT token secret is not given, one will be automatically generated and
seeded from the system's random source. As a consequence, in this mode of
operation all tokens are rendered invalid as soon as the server shuts down.
This is suitable for testing, but must be given via either CLI flags or
environment variable if running in production.

The flags are:

	-v, --version
		Give the current version of the gruut server and then exit.

	-l, --listen LISTEN_ADDRESS
		Listen on the given address. Must be in BIND_ADDRESS:PORT or :PORT
		format. If not given, will default to the value of environment
		variable GRUUT_LISTEN_ADDRESS, and if that is not given, will default
		to localhost:8080.

	-s, --secret TOKEN_SECRET
		Use the provided secret for signing JWT tokens. If there are less
		than 32 bytes in the secret, it will be repeated until it is. The
		maximum size is 64 bytes. If not given, will default to the value of
		environment variable GRUUT_TOKEN_SECRET. If no secret is specified or
		an empty secret is given, a random secret will be automatically
		generated.

	-k, --api-key NAME=KEY
		Register a client API key, in NAME=KEY form. May be given multiple
		times. If not given, will default to the value of environment
		variable GRUUT_API_KEYS, a comma-separated list of NAME=KEY pairs. If
		none are given, a single random key named "default" is generated and
		printed to stderr.

	--lang LANG
		The default language to normalize text as when a request does not
		specify one. Defaults to "en_US".

	--db PATH
		Use a sqlite-backed phoneme lexicon at PATH as the default
		language's phoneme lookup collaborator. If not given, will default to
		the value of environment variable GRUUT_LEXICON_DB. If neither is
		set, no lexicon is used; the built-in settings configure no phoneme
		guesser either, so words are not phonemized.
*/
package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/Bharath-Kumar-3231/gruut/internal/version"
	"github.com/Bharath-Kumar-3231/gruut/server"
	"github.com/spf13/pflag"
)

const (
	EnvListen    = "GRUUT_LISTEN_ADDRESS"
	EnvSecret    = "GRUUT_TOKEN_SECRET"
	EnvAPIKeys   = "GRUUT_API_KEYS"
	EnvLexiconDB = "GRUUT_LEXICON_DB"
)

var (
	flagVersion = pflag.BoolP("version", "v", false, "Give the current version of the gruut server and then exit.")
	flagListen  = pflag.StringP("listen", "l", "", "Listen on the given address.")
	flagSecret  = pflag.StringP("secret", "s", "", "Use the given secret for token generation.")
	flagAPIKeys = pflag.StringArrayP("api-key", "k", nil, "Register a client API key, in NAME=KEY form.")
	flagLang    = pflag.String("lang", "en_US", "Default language for requests that don't specify one.")
	flagDB      = pflag.String("db", "", "Path to a sqlite-backed phoneme lexicon.")
)

func main() {
	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s (gruut v%s)\n", version.ServerCurrent, version.Current)
		return
	}

	if len(pflag.Args()) > 0 {
		fmt.Fprintf(os.Stderr, "Too many arguments\nDo -h for help.\n")
		os.Exit(1)
	}

	addr, port, err := parseListenAddr()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\nDo -h for help.\n", err.Error())
		os.Exit(1)
	}

	tokSecret, err := resolveTokenSecret()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err.Error())
		os.Exit(1)
	}

	apiKeys, err := resolveAPIKeys()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err.Error())
		os.Exit(1)
	}

	lexiconDB := os.Getenv(EnvLexiconDB)
	if pflag.Lookup("db").Changed {
		lexiconDB = *flagDB
	}

	srv, err := server.New(server.Config{
		TokenSecret:   tokSecret,
		APIKeys:       apiKeys,
		DefaultLang:   *flagLang,
		LexiconDBPath: lexiconDB,
	})
	if err != nil {
		log.Fatalf("FATAL could not start server: %s", err.Error())
	}
	log.Printf("DEBUG Server initialized")

	log.Printf("INFO  Starting gruut server %s...", version.ServerCurrent)
	srv.ServeForever(addr, port)
}

func parseListenAddr() (addr string, port int, err error) {
	listenAddr := os.Getenv(EnvListen)
	if pflag.Lookup("listen").Changed {
		listenAddr = *flagListen
	}
	if listenAddr == "" {
		return "localhost", 8080, nil
	}

	bindParts := strings.SplitN(listenAddr, ":", 2)
	if len(bindParts) != 2 {
		return "", 0, fmt.Errorf("listen address is not in ADDRESS:PORT or :PORT format")
	}

	port, convErr := strconv.Atoi(bindParts[1])
	if convErr != nil {
		return "", 0, fmt.Errorf("%q is not a valid port number", bindParts[1])
	}

	return bindParts[0], port, nil
}

func resolveTokenSecret() ([]byte, error) {
	tokSecStr := os.Getenv(EnvSecret)
	if pflag.Lookup("secret").Changed {
		tokSecStr = *flagSecret
	}

	if tokSecStr == "" {
		secret := make([]byte, 64)
		if _, err := rand.Read(secret); err != nil {
			return nil, fmt.Errorf("could not generate token secret: %w", err)
		}
		log.Printf("WARN  Using generated token secret; all tokens issued will become invalid at shutdown")
		return secret, nil
	}

	secret := []byte(tokSecStr)
	for len(secret) < server.MinSecretSize {
		secret = append(secret, secret...)
	}
	if len(secret) > server.MaxSecretSize {
		return nil, fmt.Errorf("token secret is %d bytes, but it must be <= %d bytes", len(secret), server.MaxSecretSize)
	}

	return secret, nil
}

func resolveAPIKeys() ([]server.APIKey, error) {
	var pairs []string
	if len(*flagAPIKeys) > 0 {
		pairs = *flagAPIKeys
	} else if env := os.Getenv(EnvAPIKeys); env != "" {
		pairs = strings.Split(env, ",")
	}

	if len(pairs) == 0 {
		generated, err := randomAPIKey()
		if err != nil {
			return nil, fmt.Errorf("could not generate default API key: %w", err)
		}
		log.Printf("WARN  No API keys configured; generated key for client \"default\": %s", generated)
		pairs = []string{"default=" + generated}
	}

	keys := make([]server.APIKey, 0, len(pairs))
	for _, p := range pairs {
		nameKey := strings.SplitN(p, "=", 2)
		if len(nameKey) != 2 || nameKey[0] == "" || nameKey[1] == "" {
			return nil, fmt.Errorf("API key %q is not in NAME=KEY form", p)
		}
		hashed, err := server.HashAPIKey(nameKey[1])
		if err != nil {
			return nil, fmt.Errorf("hash API key %q: %w", nameKey[0], err)
		}
		keys = append(keys, server.APIKey{Name: nameKey[0], HashedKey: hashed})
	}

	return keys, nil
}

func randomAPIKey() (string, error) {
	raw := make([]byte, 24)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}
