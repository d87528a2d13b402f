package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dormhub/dormhub-api/internal/models"
)

type summaryServiceMock struct {
	text     string
	err      error
	language string
}

func (m *summaryServiceMock) Generate(ctx context.Context, claims *models.SessionClaims, language string) (string, error) {
	m.language = language
	return m.text, m.err
}

func TestSummaryHandlerGenerate(t *testing.T) {
	mockSvc := &summaryServiceMock{text: "宿舍状况良好。"}
	handler := NewSummaryHandler(mockSvc)

	c, w := testContext(t, http.MethodPost, "/summary", []byte(`{"language":"zh"}`), adminSession())
	handler.Generate(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "zh", mockSvc.language)

	var envelope struct {
		Data struct {
			Summary string `json:"summary"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "宿舍状况良好。", envelope.Data.Summary)
}

func TestSummaryHandlerEmptyBodyDefaultsLanguage(t *testing.T) {
	mockSvc := &summaryServiceMock{text: "ok"}
	handler := NewSummaryHandler(mockSvc)

	c, w := testContext(t, http.MethodPost, "/summary", nil, adminSession())
	handler.Generate(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, mockSvc.language)
}

func TestSummaryHandlerRequiresClaims(t *testing.T) {
	handler := NewSummaryHandler(&summaryServiceMock{})

	c, w := testContext(t, http.MethodPost, "/summary", nil, nil)
	handler.Generate(c)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
