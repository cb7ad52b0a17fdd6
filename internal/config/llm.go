package config

import (
	"strings"
	"sync"
)

const (
	LLMProviderGemini     = "gemini"
	LLMProviderOpenRouter = "openrouter"
	LLMProviderNone       = "none"
)

type LLMConfig struct {
	// Provider selects the resume writer backend.
	Provider string
}

var (
	llmConfig *LLMConfig
	llmOnce   sync.Once
)

func LoadLLMConfig() *LLMConfig {
	llmOnce.Do(func() {
		v := environment()
		v.SetDefault("LLM_PROVIDER", LLMProviderGemini)
		llmConfig = &LLMConfig{
			Provider: strings.ToLower(v.GetString("LLM_PROVIDER")),
		}
	})
	return llmConfig
}
