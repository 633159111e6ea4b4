// Package llm abstracts the language-model collaborator behind a single
// chat-style completion call. Two backends are provided: an OpenAI-compatible
// endpoint (Ollama, vLLM, or hosted) and the Anthropic API.
package llm

import "context"

// CompletionRequest describes one chat-style request.
type CompletionRequest struct {
	// System is an optional system prompt.
	System string
	// Prompt is the user message.
	Prompt string
	// ForceJSON requests a syntactically valid JSON object response.
	// Callers must still validate the returned text before use.
	ForceJSON bool
}

// Client performs a single completion against a language model.
type Client interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
