package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync/atomic"
	"time"

	"github.com/vetlink/vetlink-api/internal/config"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

const maxEmbeddingInput = 10000

type GeminiService struct {
	Client            *genai.Client
	Model             string
	EmbeddingModel    string
	MaxRetries        int
	BaseDelay         time.Duration
	MaxDelay          time.Duration
	RequestTimeout    time.Duration
	logger            *zap.Logger
	consecutiveErrors atomic.Int32
	circuitBreakerMax int32
}

func NewGeminiService(ctx context.Context, logger *zap.Logger) (*GeminiService, error) {
	geminiConfig := config.LoadGeminiConfig()
	if geminiConfig.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  geminiConfig.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiService{
		Client:            client,
		Model:             geminiConfig.Model,
		EmbeddingModel:    geminiConfig.EmbeddingModel,
		MaxRetries:        3,
		BaseDelay:         time.Second,
		MaxDelay:          90 * time.Second,
		RequestTimeout:    90 * time.Second,
		logger:            logger,
		circuitBreakerMax: 5,
	}, nil
}

func (s *GeminiService) Name() string {
	return "gemini:" + s.Model
}

// GenerateText sends prompt to the configured model and returns the text of
// the first candidate.
func (s *GeminiService) GenerateText(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	var result *genai.GenerateContentResponse
	err := s.withRetry(ctx, "GenerateContent", func(ctx context.Context) error {
		resp, err := s.Client.Models.GenerateContent(ctx, s.Model, genai.Text(prompt), &genai.GenerateContentConfig{
			Temperature:      genai.Ptr(float32(0.2)),
			ResponseMIMEType: "application/json",
		})
		if err != nil {
			return err
		}
		if err := validateGenerateResponse(resp); err != nil {
			return permanent(fmt.Errorf("invalid response: %w", err))
		}
		result = resp
		return nil
	})
	if err != nil {
		return "", err
	}
	return result.Text(), nil
}

func (s *GeminiService) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	trimmedText := strings.TrimSpace(text)
	if trimmedText == "" {
		return nil, fmt.Errorf("text for embedding cannot be empty")
	}
	if len(trimmedText) > maxEmbeddingInput {
		s.logger.Warn("embedding input truncated", zap.Int("length", len(trimmedText)))
		trimmedText = trimmedText[:maxEmbeddingInput]
	}

	content := []*genai.Content{genai.NewContentFromText(trimmedText, genai.RoleUser)}

	var embeddings []float32
	err := s.withRetry(ctx, "EmbedContent", func(ctx context.Context) error {
		resp, err := s.Client.Models.EmbedContent(ctx, s.EmbeddingModel, content, nil)
		if err != nil {
			return err
		}
		values, err := validateEmbeddingResponse(resp)
		if err != nil {
			return permanent(fmt.Errorf("invalid embedding response: %w", err))
		}
		embeddings = values
		return nil
	})
	return embeddings, err
}

type permanentError struct{ err error }

func (e permanentError) Error() string { return e.err.Error() }
func (e permanentError) Unwrap() error { return e.err }

// permanent marks err as not worth retrying.
func permanent(err error) error { return permanentError{err} }

// withRetry runs call with exponential backoff under a per-request timeout and
// trips a simple circuit breaker after repeated failures.
func (s *GeminiService) withRetry(ctx context.Context, op string, call func(context.Context) error) error {
	if n := s.consecutiveErrors.Load(); n >= s.circuitBreakerMax {
		return fmt.Errorf("circuit breaker open: too many consecutive errors (%d)", n)
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, s.RequestTimeout)
	defer cancel()

	var lastErr error
	for attempt := 0; attempt <= s.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := s.calculateBackoff(attempt)
			s.logger.Info("retrying gemini call",
				zap.String("op", op),
				zap.Int("attempt", attempt),
				zap.Duration("delay", delay),
			)

			select {
			case <-time.After(delay):
			case <-timeoutCtx.Done():
				return fmt.Errorf("context timeout during retry: %w", timeoutCtx.Err())
			}
		}

		err := call(timeoutCtx)
		if err == nil {
			s.consecutiveErrors.Store(0)
			return nil
		}
		lastErr = err

		var perm permanentError
		if errors.As(err, &perm) || !isRetryableError(err) {
			s.consecutiveErrors.Add(1)
			return fmt.Errorf("%s failed: %w", op, err)
		}
		s.logger.Warn("retryable gemini error", zap.String("op", op), zap.Int("attempt", attempt+1), zap.Error(err))
	}

	s.consecutiveErrors.Add(1)
	return fmt.Errorf("max retries (%d) exceeded for %s: %w", s.MaxRetries, op, lastErr)
}

func (s *GeminiService) calculateBackoff(attempt int) time.Duration {
	delay := s.BaseDelay * time.Duration(math.Pow(2, float64(attempt-1)))
	if delay > s.MaxDelay {
		delay = s.MaxDelay
	}
	return delay
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case 429, 500, 502, 503, 504:
			return true
		default:
			return false
		}
	}

	errMsg := err.Error()
	return strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "connection reset") ||
		strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "temporary failure") ||
		strings.Contains(errMsg, "EOF")
}

func validateGenerateResponse(resp *genai.GenerateContentResponse) error {
	if resp == nil {
		return fmt.Errorf("response is nil")
	}
	if len(resp.Candidates) == 0 {
		return fmt.Errorf("no candidates in response")
	}
	if resp.Candidates[0].Content == nil {
		return fmt.Errorf("candidate content is nil")
	}
	if len(resp.Candidates[0].Content.Parts) == 0 {
		return fmt.Errorf("no parts in content")
	}
	return nil
}

func validateEmbeddingResponse(resp *genai.EmbedContentResponse) ([]float32, error) {
	if resp == nil {
		return nil, fmt.Errorf("response is nil")
	}
	if len(resp.Embeddings) == 0 {
		return nil, fmt.Errorf("no embeddings returned")
	}

	embeddings := resp.Embeddings[0].Values
	if len(embeddings) == 0 {
		return nil, fmt.Errorf("embedding vector is empty")
	}
	for i, val := range embeddings {
		if math.IsNaN(float64(val)) || math.IsInf(float64(val), 0) {
			return nil, fmt.Errorf("invalid embedding value at index %d: %v", i, val)
		}
	}
	return embeddings, nil
}
