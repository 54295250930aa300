package service

import (
	"context"
	"fmt"

	"github.com/fadilmartias/apostila-analyzer/internal/config"
	"github.com/fadilmartias/apostila-analyzer/internal/evaluation"
	"golang.org/x/time/rate"
)

// NewGenerator picks the text generator named by LLM_PROVIDER. The Gemini
// service is always returned as well because embeddings only exist there;
// it is nil when GEMINI_API_KEY is missing.
func NewGenerator(ctx context.Context, limiter *rate.Limiter) (evaluation.Generator, *GeminiService, error) {
	gemini, geminiErr := NewGeminiService(ctx, limiter)

	switch provider := config.LoadLLMConfig().Provider; provider {
	case "gemini":
		if geminiErr != nil {
			return nil, nil, geminiErr
		}
		return gemini, gemini, nil
	case "openrouter":
		or, err := NewOpenRouterService(limiter)
		if err != nil {
			return nil, nil, err
		}
		return or, gemini, nil
	default:
		return nil, nil, fmt.Errorf("unknown LLM_PROVIDER %q", provider)
	}
}
