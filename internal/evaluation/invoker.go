package evaluation

import (
	"context"
	"fmt"
	"strings"
)

// Generator is the generative model seen as a black box: prompt in, text out.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Invoker issues single, non-retried model calls and classifies failures.
type Invoker struct {
	gen Generator
}

func NewInvoker(gen Generator) *Invoker {
	return &Invoker{gen: gen}
}

// Evaluate sends an already built prompt and returns the raw answer.
func (i *Invoker) Evaluate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("%w: empty prompt", ErrValidation)
	}
	raw, err := i.gen.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrModelUnavailable, err)
	}
	return raw, nil
}

// ExtractLinks asks the model for the URLs present in documentText.
func (i *Invoker) ExtractLinks(ctx context.Context, documentText string) ([]string, error) {
	raw, err := i.Evaluate(ctx, BuildLinkPrompt(documentText))
	if err != nil {
		return nil, err
	}
	return ParseLinks(raw)
}

// SuggestCorrections asks the model for literal fixes for a rejected criterion.
func (i *Invoker) SuggestCorrections(ctx context.Context, in SuggestionInput) ([]CorrectionCandidate, error) {
	raw, err := i.Evaluate(ctx, BuildSuggestionPrompt(in))
	if err != nil {
		return nil, err
	}
	return ParseCorrections(raw)
}
