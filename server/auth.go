package server

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// HashAPIKey bcrypt-hashes a plaintext API key so Config.APIKeys can be
// populated from a plaintext source (CLI flag, env var, config file)
// without ever storing the plaintext.
func HashAPIKey(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash API key: %w", err)
	}
	return string(hashed), nil
}

// authenticateAPIKey finds the configured key matching plaintext and returns
// its Name. Every configured key is compared (not short-circuited on first
// name match) so key enumeration can't be timed against the key list.
func (s *Server) authenticateAPIKey(plaintext string) (string, error) {
	var matched string
	for _, k := range s.cfg.APIKeys {
		if bcrypt.CompareHashAndPassword([]byte(k.HashedKey), []byte(plaintext)) == nil {
			matched = k.Name
		}
	}
	if matched == "" {
		return "", ErrBadCredentials
	}
	return matched, nil
}

type authError string

func (e authError) Error() string { return string(e) }

const (
	// ErrBadCredentials indicates the supplied API key does not match any
	// configured key.
	ErrBadCredentials authError = "the supplied API key is not valid"

	// ErrInvalidLogin indicates no valid bearer token was presented.
	ErrInvalidLogin authError = "no valid bearer token was presented"
)

const jwtIssuer = "gruutd"

func (s *Server) generateJWT(subject string) (string, error) {
	claims := &jwt.MapClaims{
		"iss": jwtIssuer,
		"sub": subject,
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return tok.SignedString(s.cfg.TokenSecret)
}

// requireJWT extracts and validates a bearer token from req, returning its
// subject (the API key Name used to obtain it).
func (s *Server) requireJWT(req *http.Request) (string, error) {
	tokStr, err := bearerToken(req)
	if err != nil {
		return "", err
	}

	tok, err := jwt.Parse(tokStr, func(t *jwt.Token) (interface{}, error) {
		return s.cfg.TokenSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}), jwt.WithIssuer(jwtIssuer), jwt.WithLeeway(time.Minute))
	if err != nil {
		return "", ErrInvalidLogin
	}

	subj, err := tok.Claims.GetSubject()
	if err != nil || subj == "" {
		return "", ErrInvalidLogin
	}

	return subj, nil
}

func bearerToken(req *http.Request) (string, error) {
	authHeader := strings.TrimSpace(req.Header.Get("Authorization"))
	if authHeader == "" {
		return "", fmt.Errorf("no authorization header present")
	}

	authParts := strings.SplitN(authHeader, " ", 2)
	if len(authParts) != 2 {
		return "", fmt.Errorf("authorization header not in Bearer format")
	}

	scheme := strings.TrimSpace(strings.ToLower(authParts[0]))
	token := strings.TrimSpace(authParts[1])

	if scheme != "bearer" {
		return "", fmt.Errorf("authorization header not in Bearer format")
	}

	return token, nil
}
