package llm

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
}

// ChatResponse covers only the slice of the upstream reply the relay
// extracts. Message and Content are pointers so a missing key is
// distinguishable from an empty answer.
type ChatResponse struct {
	Choices []Choice `json:"choices"`
}

type Choice struct {
	Message *ChoiceMessage `json:"message"`
}

type ChoiceMessage struct {
	Content *string `json:"content"`
}
