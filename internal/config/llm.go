package config

import (
	"os"
	"strings"
	"sync"
)

type LLMConfig struct {
	// Provider is "gemini" or "openrouter".
	Provider string
	// RequestsPerSecond throttles outgoing model calls for the whole process.
	RequestsPerSecond float64
	Burst             int
}

var (
	llmConfig *LLMConfig
	llmOnce   sync.Once
)

func LoadLLMConfig() *LLMConfig {
	llmOnce.Do(func() {
		provider := strings.ToLower(os.Getenv("LLM_PROVIDER"))
		if provider == "" {
			provider = "gemini"
		}
		llmConfig = &LLMConfig{
			Provider:          provider,
			RequestsPerSecond: envFloat("MODEL_RPS", 2),
			Burst:             envInt("MODEL_BURST", 4),
		}
	})
	return llmConfig
}
