package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
	"github.com/vetlink/vetlink-api/internal/config"
)

const resumeSystemPrompt = "You are a career coach who translates military experience into civilian resume language."

type OpenRouterService struct {
	client *resty.Client
	model  string
}

func NewOpenRouterService() (*OpenRouterService, error) {
	cfg := config.LoadOpenRouterConfig()
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OPENROUTER_API_KEY not set")
	}
	return newOpenRouterService(cfg.BaseURL, cfg.APIKey, cfg.Model), nil
}

func newOpenRouterService(baseURL, apiKey, model string) *OpenRouterService {
	client := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(90 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() == 429 || r.StatusCode() >= 500
		})
	return &OpenRouterService{client: client, model: model}
}

func (s *OpenRouterService) Name() string {
	return "openrouter:" + s.model
}

// GenerateText runs a single chat completion and returns the assistant reply.
func (s *OpenRouterService) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(map[string]any{
			"model": s.model,
			"messages": []map[string]string{
				{"role": "system", "content": resumeSystemPrompt},
				{"role": "user", "content": prompt},
			},
			"response_format": map[string]string{"type": "json_object"},
		}).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("openrouter request: %w", err)
	}
	if resp.IsError() {
		msg := gjson.Get(resp.String(), "error.message").String()
		return "", fmt.Errorf("openrouter returned %d: %s", resp.StatusCode(), msg)
	}

	text := gjson.Get(resp.String(), "choices.0.message.content").String()
	if text == "" {
		return "", fmt.Errorf("no response from LLM")
	}
	return text, nil
}
