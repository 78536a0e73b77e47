// Package server exposes quiz generation over HTTP for non-terminal
// clients. The endpoint returns the raw generation reply; parsing and
// session state stay client-side.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/abhisek/quizcraft/internal/llm"
	"github.com/abhisek/quizcraft/internal/quizgen"
)

// TextGenerator is the slice of the generation pipeline the HTTP
// endpoint needs: validated request in, raw reply text out.
type TextGenerator interface {
	GenerateText(ctx context.Context, req quizgen.Request) (string, error)
}

// Server handles quiz generation requests.
type Server struct {
	gen TextGenerator
	log zerolog.Logger
}

// New creates a Server around the given generator.
func New(gen TextGenerator, log zerolog.Logger) *Server {
	return &Server{gen: gen, log: log}
}

// Router builds the HTTP routing table.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)
	r.Use(middleware.Timeout(90 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(s.requestLogger)

	r.Post("/generate-quiz", s.handleGenerateQuiz)
	r.Get("/healthz", s.handleHealthz)
	return r
}

type generateResponse struct {
	Questions string `json:"questions"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleGenerateQuiz(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req := quizgen.Request{
		Passage:      r.PostFormValue("text"),
		Difficulty:   quizgen.ParseDifficulty(r.PostFormValue("difficulty")),
		MCQs:         formCount(r, "mcqs"),
		FillInBlanks: formCount(r, "fibs"),
		TrueFalse:    formCount(r, "tfs"),
	}

	reply, err := s.gen.GenerateText(r.Context(), req)
	if err != nil {
		status, msg := mapGenerateError(err)
		s.log.Warn().Err(err).Int("status", status).Msg("quiz generation failed")
		writeError(w, status, msg)
		return
	}

	writeJSON(w, http.StatusOK, generateResponse{Questions: reply})
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// mapGenerateError translates pipeline errors into HTTP status codes
// and user-facing messages.
func mapGenerateError(err error) (int, string) {
	var budgetErr *quizgen.BudgetError
	var credits *llm.ErrCreditsRequired
	var rateLimit *llm.ErrRateLimit

	switch {
	case errors.Is(err, quizgen.ErrMissingInput):
		return http.StatusBadRequest, "No text provided"
	case errors.Is(err, quizgen.ErrCountOutOfRange):
		return http.StatusBadRequest, "Question counts must be between 0 and 10"
	case errors.As(err, &budgetErr):
		return http.StatusInternalServerError, budgetErr.UserMessage()
	case errors.As(err, &credits):
		return http.StatusPaymentRequired, "Payment required. Please add credits to your workspace."
	case errors.As(err, &rateLimit):
		return http.StatusTooManyRequests, "Rate limit exceeded. Please try again later."
	default:
		return http.StatusInternalServerError, "Failed to generate quiz"
	}
}

// formCount reads a question count field, treating absent or malformed
// values as zero.
func formCount(r *http.Request, key string) int {
	n, err := strconv.Atoi(r.PostFormValue(key))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// requestLogger emits one structured line per request.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}
