package server

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/Bharath-Kumar-3231/gruut"
	"github.com/Bharath-Kumar-3231/gruut/internal/lexicon/sqlitelex"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// Server wraps the gruut normalization pipeline in a small chi-routed HTTP
// API: POST /login exchanges a configured API key for a bearer JWT, POST
// /normalize runs text through the pipeline, and GET /healthz reports
// liveness without authentication.
type Server struct {
	router chi.Router
	proc   *gruut.Processor
	cfg    Config
}

// New builds a Server from cfg. cfg is validated after defaults are filled
// in; an invalid Config (missing token secret, no API keys) is an error.
func New(cfg Config) (*Server, error) {
	cfg = cfg.FillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	reg := gruut.DefaultRegistry()
	if cfg.LexiconDBPath != "" {
		lex, err := sqlitelex.Open(cfg.LexiconDBPath)
		if err != nil {
			return nil, fmt.Errorf("open lexicon db: %w", err)
		}
		reg.Default().LookupPhonemes = lex.Lookup
	}

	s := &Server{
		proc: gruut.New(reg, cfg.DefaultLang, cfg.DefaultVoice),
		cfg:  cfg,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger)
	r.Use(recoverer)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		jsonNotFound().writeResponse(w, req)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		jsonMethodNotAllowed(req).writeResponse(w, req)
	})

	r.Get("/healthz", s.handleGETHealthz)
	r.Post("/login", s.handlePOSTLogin)
	r.With(s.requireAuth).Post("/normalize", s.handlePOSTNormalize)

	s.router = r
	return s, nil
}

// ServeForever starts listening on addr:port and blocks until the server
// stops (normally via a fatal error from net/http).
func (s *Server) ServeForever(addr string, port int) {
	listenOn := fmt.Sprintf("%s:%d", addr, port)
	log.Printf("INFO  gruut server listening on %s", listenOn)
	if err := http.ListenAndServe(listenOn, s.router); err != nil {
		log.Fatalf("FATAL server stopped: %s", err.Error())
	}
}

// ServeHTTP lets Server itself be used as an http.Handler, e.g. from
// httptest.NewServer in tests.
func (s *Server) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	s.router.ServeHTTP(w, req)
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, req)
		log.Printf("INFO  %s %s %s: %s", requestID(req), req.Method, req.URL.Path, time.Since(start))
	})
}

func requestID(req *http.Request) string {
	if id := middleware.GetReqID(req.Context()); id != "" {
		return id
	}
	return uuid.NewString()
}

func recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		defer func() {
			if panicErr := recover(); panicErr != nil {
				jsonInternalServerError("panic: %v", panicErr).writeResponse(w, req)
			}
		}()
		next.ServeHTTP(w, req)
	})
}
