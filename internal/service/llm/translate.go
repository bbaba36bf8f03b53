package llm

import (
	"encoding/json"
	"net/http"
	"strings"

	DTO_llm "openrouter_relay/internal/DTO/llm"
	"openrouter_relay/internal/apierror"
)

// mapStatus translates an upstream error status into the relay's
// vocabulary. Unmapped statuses pass through with their code intact.
func mapStatus(code int) *apierror.Error {
	switch code {
	case http.StatusUnauthorized, http.StatusPaymentRequired:
		return apierror.New(code, "API Key required")
	case http.StatusTooManyRequests:
		return apierror.New(code, "Rate limit exceeded")
	default:
		return apierror.Upstream(code)
	}
}

// extractContent pulls the first completion's message text out of a 2xx
// body, trimmed. A body that fails to decode at all is an unclassified
// failure; a decodable body missing any expected key fails whole as an
// unexpected format. There is no partial extraction.
func extractContent(raw []byte) (string, error) {
	var parsed DTO_llm.ChatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", apierror.Internal(err)
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message == nil || parsed.Choices[0].Message.Content == nil {
		return "", apierror.UnexpectedFormat()
	}
	return strings.TrimSpace(*parsed.Choices[0].Message.Content), nil
}
