package config

import "sync"

type GeminiConfig struct {
	APIKey         string
	Model          string
	EmbeddingModel string
}

var (
	geminiConfig *GeminiConfig
	geminiOnce   sync.Once
)

func LoadGeminiConfig() *GeminiConfig {
	geminiOnce.Do(func() {
		v := environment()
		v.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
		v.SetDefault("GEMINI_EMBEDDING_MODEL", "gemini-embedding-001")

		geminiConfig = &GeminiConfig{
			APIKey:         v.GetString("GEMINI_API_KEY"),
			Model:          v.GetString("GEMINI_MODEL"),
			EmbeddingModel: v.GetString("GEMINI_EMBEDDING_MODEL"),
		}
	})
	return geminiConfig
}
