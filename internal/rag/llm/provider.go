package llm

import "context"

// Provider is a text-in, text-out generative model. Every call is fallible
// and must be treated as such - callers own the fallback policy.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
