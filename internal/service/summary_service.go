package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/dormhub/dormhub-api/internal/models"
)

type scopedHygieneLister interface {
	List(ctx context.Context, claims *models.SessionClaims) ([]models.HygieneCheck, error)
}

// SummaryConfig configures the external text-generation call.
type SummaryConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// LanguageEN and LanguageZH are the two supported summary languages.
const (
	LanguageEN = "en"
	LanguageZH = "zh"
)

var summaryUnconfigured = map[string]string{
	LanguageEN: "Gemini API key is not configured. Cannot generate summary.",
	LanguageZH: "未配置 Gemini API 密钥，无法生成摘要。",
}

var summaryFailed = map[string]string{
	LanguageEN: "Could not generate AI summary due to an error.",
	LanguageZH: "因发生错误，无法生成 AI 摘要。",
}

// SummaryService forwards the caller-visible repair, hygiene and visitor data
// to an external text-generation API and returns the generated prose. It
// never fails past its boundary: a missing credential or a failed call both
// yield a fixed localized placeholder.
type SummaryService struct {
	repairs  scopedRepairLister
	hygiene  scopedHygieneLister
	visitors scopedVisitorLister
	metrics  *MetricsService
	logger   *zap.Logger
	config   SummaryConfig
	client   *http.Client
}

// NewSummaryService constructs the summary service.
func NewSummaryService(
	repairs scopedRepairLister,
	hygiene scopedHygieneLister,
	visitors scopedVisitorLister,
	metrics *MetricsService,
	logger *zap.Logger,
	config SummaryConfig,
) *SummaryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if config.Timeout <= 0 {
		config.Timeout = 30 * time.Second
	}
	if config.Model == "" {
		config.Model = "gemini-2.5-flash"
	}
	if config.BaseURL == "" {
		config.BaseURL = "https://generativelanguage.googleapis.com"
	}
	return &SummaryService{
		repairs:  repairs,
		hygiene:  hygiene,
		visitors: visitors,
		metrics:  metrics,
		logger:   logger,
		config:   config,
		client:   &http.Client{Timeout: config.Timeout},
	}
}

// Generate produces the daily briefing for the caller's visible data in the
// requested language. Unknown languages fall back to English.
func (s *SummaryService) Generate(ctx context.Context, claims *models.SessionClaims, language string) (string, error) {
	if language != LanguageZH {
		language = LanguageEN
	}

	if s.config.APIKey == "" {
		s.metrics.ObserveSummary("unconfigured")
		return summaryUnconfigured[language], nil
	}

	repairs, err := s.repairs.List(ctx, claims)
	if err != nil {
		return "", err
	}
	hygiene, err := s.hygiene.List(ctx, claims)
	if err != nil {
		return "", err
	}
	visitors, err := s.visitors.List(ctx, claims)
	if err != nil {
		return "", err
	}

	prompt, err := buildSummaryPrompt(repairs, hygiene, visitors, language)
	if err != nil {
		s.metrics.ObserveSummary("error")
		s.logger.Warn("summary prompt build failed", zap.Error(err))
		return summaryFailed[language], nil
	}

	text, err := s.generateContent(ctx, prompt)
	if err != nil {
		s.metrics.ObserveSummary("error")
		s.logger.Warn("summary generation failed", zap.Error(err))
		return summaryFailed[language], nil
	}

	s.metrics.ObserveSummary("ok")
	return text, nil
}

func buildSummaryPrompt(repairs []models.RepairRequest, hygiene []models.HygieneCheck, visitors []models.Visitor, language string) (string, error) {
	repairsJSON, err := json.Marshal(repairs)
	if err != nil {
		return "", err
	}
	hygieneJSON, err := json.Marshal(hygiene)
	if err != nil {
		return "", err
	}
	visitorsJSON, err := json.Marshal(visitors)
	if err != nil {
		return "", err
	}

	if language == LanguageZH {
		return fmt.Sprintf(`作为宿舍管理助手，根据以下 JSON 数据生成一份简洁、专业的摘要。
请不要使用问候语或客套话，直接切入主题。使用项目符号列出关键指标。

**今日数据:**
- 维修请求: %s
- 卫生检查: %s
- 访客记录: %s

**指令:**
1. 用一句话概述当前的宿舍状况。
2. 提供一个关键洞察的项目符号列表。
3. 突出显示任何紧急事项（例如，待处理的维修）。
4. 提及一个积极的方面（例如，高卫生评分）。
5. 将整个摘要保持在 150 字以内。`, repairsJSON, hygieneJSON, visitorsJSON), nil
	}

	return fmt.Sprintf(`As a dormitory management assistant, generate a concise, professional summary based on the following data.
Do not greet me or use conversational fluff. Get straight to the point. Use bullet points for key metrics.

**Today's Data:**
- Repair Requests: %s
- Hygiene Checks: %s
- Visitors: %s

**Instructions:**
1. Start with a one-sentence overview of the current dormitory status.
2. Provide a bulleted list of key insights.
3. Highlight any urgent matters (e.g., pending repairs).
4. Mention one positive point (e.g., high hygiene scores).
5. Keep the entire summary under 100 words.`, repairsJSON, hygieneJSON, visitorsJSON), nil
}

type generateContentRequest struct {
	Contents []generateContent `json:"contents"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generatePart struct {
	Text string `json:"text"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []generatePart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (s *SummaryService) generateContent(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(generateContentRequest{
		Contents: []generateContent{{Parts: []generatePart{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", s.config.BaseURL, s.config.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", s.config.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("text generation API returned status %d", resp.StatusCode)
	}

	var decoded generateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", err
	}
	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("text generation API returned no candidates")
	}
	return decoded.Candidates[0].Content.Parts[0].Text, nil
}
