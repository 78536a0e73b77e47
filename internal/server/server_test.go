package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizcraft/internal/llm"
	"github.com/abhisek/quizcraft/internal/quizgen"
)

const sampleReply = `T or F:
Q1: Mitochondria have their own DNA.
Answer: True
`

func newTestServer(responses ...llm.MockResponse) (*Server, *llm.MockProvider) {
	mock := llm.NewMockProvider(responses...)
	gen := quizgen.New(mock, quizgen.DefaultConfig())
	return New(gen, zerolog.Nop()), mock
}

func postForm(t *testing.T, handler http.Handler, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/generate-quiz", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestGenerateQuiz_OK(t *testing.T) {
	srv, mock := newTestServer(llm.MockResponse{Content: sampleReply})

	rec := postForm(t, srv.Router(), url.Values{
		"text":       {"Mitochondria are organelles."},
		"difficulty": {"hard"},
		"tfs":        {"1"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp generateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, sampleReply, resp.Questions)

	require.Equal(t, 1, mock.CallCount())
	assert.Equal(t, quizgen.UnitsPerQuestion, mock.Calls[0].MaxTokens)
	assert.Contains(t, mock.Calls[0].Messages[0].Content, "challenging and require deep understanding")
}

func TestGenerateQuiz_NoText(t *testing.T) {
	srv, mock := newTestServer()

	rec := postForm(t, srv.Router(), url.Values{"mcqs": {"2"}})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "No text provided", resp.Error)
	assert.Zero(t, mock.CallCount())
}

func TestGenerateQuiz_CountOutOfRange(t *testing.T) {
	srv, _ := newTestServer()

	rec := postForm(t, srv.Router(), url.Values{
		"text": {"some text"},
		"mcqs": {"11"},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateQuiz_BudgetExceeded(t *testing.T) {
	srv, mock := newTestServer()

	rec := postForm(t, srv.Router(), url.Values{
		"text": {"some text"},
		"mcqs": {"10"},
		"fibs": {"10"},
		"tfs":  {"10"},
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "Token limit exceeded")
	assert.Zero(t, mock.CallCount())
}

func TestGenerateQuiz_ProviderStatuses(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"rate limit", &llm.ErrRateLimit{Err: errors.New("429")}, http.StatusTooManyRequests},
		{"credits required", &llm.ErrCreditsRequired{Err: errors.New("402")}, http.StatusPaymentRequired},
		{"provider down", &llm.ErrProviderUnavailable{Err: errors.New("503")}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newTestServer(llm.MockResponse{Err: tt.err})
			rec := postForm(t, srv.Router(), url.Values{
				"text": {"some text"},
				"tfs":  {"1"},
			})
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestGenerateQuiz_MalformedCountsDefaultToZero(t *testing.T) {
	srv, mock := newTestServer(llm.MockResponse{Content: sampleReply})

	rec := postForm(t, srv.Router(), url.Values{
		"text": {"some text"},
		"mcqs": {"not-a-number"},
		"tfs":  {"1"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, mock.CallCount())
	assert.Contains(t, mock.Calls[0].Messages[0].Content, "Generate exactly 0 multiple-choice questions")
}

func TestHealthz(t *testing.T) {
	srv, _ := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
