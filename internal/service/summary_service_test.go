package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dormhub/dormhub-api/internal/repository"
)

func newSummaryService(t *testing.T, cfg SummaryConfig) *SummaryService {
	t.Helper()
	s := seededStore(t)
	repairs := NewRepairService(repository.NewRepairRepository(s), repository.NewStudentRepository(s), nil, nil)
	hygiene := NewHygieneService(repository.NewHygieneRepository(s), repository.NewStudentRepository(s), nil, nil)
	visitors := NewVisitorService(repository.NewVisitorRepository(s), repository.NewStudentRepository(s), nil, nil)
	return NewSummaryService(repairs, hygiene, visitors, NewMetricsService(), nil, cfg)
}

func TestSummaryUnconfiguredReturnsPlaceholderWithoutCalling(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer server.Close()

	svc := newSummaryService(t, SummaryConfig{BaseURL: server.URL})

	text, err := svc.Generate(context.Background(), adminClaims(), LanguageEN)
	require.NoError(t, err)
	assert.Equal(t, "Gemini API key is not configured. Cannot generate summary.", text)

	text, err = svc.Generate(context.Background(), adminClaims(), LanguageZH)
	require.NoError(t, err)
	assert.Equal(t, "未配置 Gemini API 密钥，无法生成摘要。", text)

	assert.Zero(t, atomic.LoadInt32(&calls), "no outbound request may be made without a key")
}

func TestSummarySuccessReturnsGeneratedText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, ":generateContent")
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		var payload generateContentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.Len(t, payload.Contents, 1)
		prompt := payload.Contents[0].Parts[0].Text
		assert.Contains(t, prompt, "Repair Requests")
		assert.Contains(t, prompt, "rep-1")

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{"parts": []map[string]string{{"text": "All quiet in the dorms."}}}},
			},
		})
	}))
	defer server.Close()

	svc := newSummaryService(t, SummaryConfig{APIKey: "test-key", BaseURL: server.URL})

	text, err := svc.Generate(context.Background(), adminClaims(), LanguageEN)
	require.NoError(t, err)
	assert.Equal(t, "All quiet in the dorms.", text)
}

func TestSummaryScopesPromptDataToCaller(t *testing.T) {
	var prompt string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload generateContentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		prompt = payload.Contents[0].Parts[0].Text
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{"parts": []map[string]string{{"text": "ok"}}}},
			},
		})
	}))
	defer server.Close()

	svc := newSummaryService(t, SummaryConfig{APIKey: "test-key", BaseURL: server.URL})

	_, err := svc.Generate(context.Background(), managerClaims("dorm-b"), LanguageEN)
	require.NoError(t, err)
	assert.Contains(t, prompt, "rep-2", "dorm-b repair must be visible")
	assert.False(t, strings.Contains(prompt, "rep-1"), "dorm-a repair must not leak into the prompt")
}

func TestSummaryUpstreamFailureYieldsLocalizedFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	svc := newSummaryService(t, SummaryConfig{APIKey: "test-key", BaseURL: server.URL})

	text, err := svc.Generate(context.Background(), adminClaims(), LanguageZH)
	require.NoError(t, err, "upstream failures never surface as errors")
	assert.Equal(t, "因发生错误，无法生成 AI 摘要。", text)

	text, err = svc.Generate(context.Background(), adminClaims(), "klingon")
	require.NoError(t, err)
	assert.Equal(t, "Could not generate AI summary due to an error.", text, "unknown language falls back to English")
}

func TestSummaryEmptyCandidatesIsAFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	svc := newSummaryService(t, SummaryConfig{APIKey: "test-key", BaseURL: server.URL})

	text, err := svc.Generate(context.Background(), adminClaims(), LanguageEN)
	require.NoError(t, err)
	assert.Equal(t, "Could not generate AI summary due to an error.", text)
}
