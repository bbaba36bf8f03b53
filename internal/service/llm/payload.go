package llm

import (
	DTO_llm "openrouter_relay/internal/DTO/llm"
)

// Fixed generation parameters; callers cannot override them.
const (
	modelName   = "openai/gpt-3.5-turbo"
	maxTokens   = 1000
	temperature = 0.7
)

func newChatRequest(question string) DTO_llm.ChatRequest {
	return DTO_llm.ChatRequest{
		Model:       modelName,
		Messages:    []DTO_llm.Message{{Role: "user", Content: question}},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}
}
