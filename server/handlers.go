package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Bharath-Kumar-3231/gruut"
	"github.com/Bharath-Kumar-3231/gruut/internal/gruuterr"
)

type authSubjectKey struct{}

// authSubject returns the API key name the request authenticated as, or ""
// for routes that don't pass through requireAuth.
func authSubject(req *http.Request) string {
	subj, _ := req.Context().Value(authSubjectKey{}).(string)
	return subj
}

// requireAuth is chi middleware gating a route behind a valid bearer JWT
// obtained from POST /login.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		subject, err := s.requireJWT(req)
		if err != nil {
			time.Sleep(s.cfg.UnauthDelay())
			jsonUnauthorized("", err.Error()).writeResponse(w, req)
			return
		}
		ctx := context.WithValue(req.Context(), authSubjectKey{}, subject)
		next.ServeHTTP(w, req.WithContext(ctx))
	})
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	APIKey string `json:"api_key"`
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}

// LoginResponse is the body of a successful POST /login response.
type LoginResponse struct {
	Token string `json:"token"`
}

func (s *Server) handlePOSTLogin(w http.ResponseWriter, req *http.Request) {
	var loginReq LoginRequest
	if err := parseJSON(req, &loginReq); err != nil {
		jsonBadRequest(err.Error()).writeResponse(w, req)
		return
	}

	subject, err := s.authenticateAPIKey(loginReq.APIKey)
	if err != nil {
		time.Sleep(s.cfg.UnauthDelay())
		jsonUnauthorized("The supplied API key is not valid").writeResponse(w, req)
		return
	}

	tok, err := s.generateJWT(subject)
	if err != nil {
		jsonInternalServerError("could not generate JWT: %s", err.Error()).writeResponse(w, req)
		return
	}

	jsonOK(LoginResponse{Token: tok}, "API key %q exchanged for bearer token", subject).writeResponse(w, req)
}

// NormalizeRequest is the body of POST /normalize.
type NormalizeRequest struct {
	Text        string `json:"text"`
	SSML        bool   `json:"ssml"`
	Lang        string `json:"lang"`
	Voice       string `json:"voice"`
	POS         *bool  `json:"pos"`
	Phonemize   *bool  `json:"phonemize"`
	PostProcess *bool  `json:"post_process"`
}

// NormalizeResponse is the body of a successful POST /normalize response.
type NormalizeResponse struct {
	Sentences []SentenceResponse `json:"sentences"`
}

// SentenceResponse is one flattened sentence in a NormalizeResponse.
type SentenceResponse struct {
	Idx        int            `json:"idx"`
	Text       string         `json:"text"`
	TextWithWS string         `json:"text_with_ws"`
	Lang       string         `json:"lang"`
	Voice      string         `json:"voice,omitempty"`
	Words      []WordResponse `json:"words"`
}

// WordResponse is one flattened word in a SentenceResponse.
type WordResponse struct {
	Text          string   `json:"text"`
	TextWithWS    string   `json:"text_with_ws"`
	Idx           int      `json:"idx"`
	SentIdx       int      `json:"sent_idx"`
	Lang          string   `json:"lang"`
	Voice         string   `json:"voice,omitempty"`
	Role          string   `json:"role,omitempty"`
	POS           string   `json:"pos,omitempty"`
	Phonemes      []string `json:"phonemes,omitempty"`
	IsBreak       bool     `json:"is_break"`
	IsPunctuation bool     `json:"is_punctuation"`
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

func (s *Server) handlePOSTNormalize(w http.ResponseWriter, req *http.Request) {
	var normReq NormalizeRequest
	if err := parseJSON(req, &normReq); err != nil {
		jsonBadRequest(err.Error()).writeResponse(w, req)
		return
	}
	if strings.TrimSpace(normReq.Text) == "" {
		jsonBadRequest("text must not be empty").writeResponse(w, req)
		return
	}

	proc := s.proc
	if normReq.Lang != "" || normReq.Voice != "" {
		lang, voice := normReq.Lang, normReq.Voice
		if lang == "" {
			lang = s.cfg.DefaultLang
		}
		if voice == "" {
			voice = s.cfg.DefaultVoice
		}
		proc = gruut.New(gruut.DefaultRegistry(), lang, voice)
	}

	opts := gruut.DefaultProcessOptions()
	opts.SSML = normReq.SSML
	opts.POS = boolOr(normReq.POS, opts.POS)
	opts.Phonemize = boolOr(normReq.Phonemize, opts.Phonemize)
	opts.PostProcess = boolOr(normReq.PostProcess, opts.PostProcess)

	g, root, err := proc.Process(normReq.Text, opts)
	if err != nil {
		var gerr *gruuterr.Error
		if errors.As(err, &gerr) && gerr.Kind() == gruuterr.InputFormat {
			jsonBadRequest(gerr.Human(), "normalize failed: %s", err.Error()).writeResponse(w, req)
			return
		}
		jsonInternalServerError("normalize failed: %s", err.Error()).writeResponse(w, req)
		return
	}

	sentences := proc.Sentences(g, root, gruut.DefaultSentenceOptions())
	resp := NormalizeResponse{Sentences: make([]SentenceResponse, len(sentences))}
	for i, sent := range sentences {
		sr := SentenceResponse{
			Idx:  sent.Idx,
			Text: sent.Text, TextWithWS: sent.TextWithWS, Lang: sent.Lang, Voice: sent.Voice,
			Words: make([]WordResponse, len(sent.Words)),
		}
		for j, wd := range sent.Words {
			sr.Words[j] = WordResponse{
				Text: wd.Text, TextWithWS: wd.TextWithWS,
				Idx: wd.Idx, SentIdx: wd.SentIdx,
				Lang: wd.Lang, Voice: wd.Voice, Role: wd.Role,
				POS: wd.POS, Phonemes: wd.Phonemes,
				IsBreak: wd.IsBreak, IsPunctuation: wd.IsPunctuation,
			}
		}
		resp.Sentences[i] = sr
	}

	jsonOK(resp, "normalized %d sentence(s) for %q", len(sentences), authSubject(req)).writeResponse(w, req)
}

func (s *Server) handleGETHealthz(w http.ResponseWriter, req *http.Request) {
	jsonOK(map[string]string{"status": "ok"}).writeResponse(w, req)
}

// v must be a pointer to a type.
func parseJSON(req *http.Request, v interface{}) error {
	contentType := req.Header.Get("Content-Type")
	if !strings.HasPrefix(strings.ToLower(contentType), "application/json") {
		return fmt.Errorf("request content-type is not application/json")
	}

	bodyData, err := io.ReadAll(req.Body)
	if err != nil {
		return fmt.Errorf("could not read request body: %w", err)
	}

	if err := json.Unmarshal(bodyData, v); err != nil {
		return fmt.Errorf("malformed JSON in request")
	}

	return nil
}
