package relay

import (
	"context"

	"github.com/sirupsen/logrus"

	"openrouter_relay/internal/apierror"
	"openrouter_relay/internal/service/llm"
)

type relay struct {
	defaultAPIKey string
	llm           llm.Client
}

type Relay interface {
	Ask(ctx context.Context, question string, headerKey string) (string, error)
}

// NewRelay takes the default credential explicitly so key resolution
// stays a pure function of (header value, configured default).
func NewRelay(defaultAPIKey string, client llm.Client) Relay {
	return &relay{
		defaultAPIKey: defaultAPIKey,
		llm:           client,
	}
}

func (r *relay) Ask(ctx context.Context, question string, headerKey string) (string, error) {
	apiKey, err := resolveKey(headerKey, r.defaultAPIKey)
	if err != nil {
		return "", err
	}

	answer, err := r.llm.Complete(ctx, apiKey, question)
	if err != nil {
		logrus.WithError(err).Error("upstream call failed")
		return "", err
	}
	return answer, nil
}

// resolveKey prefers the caller's key, then the configured default.
// Without either, no outbound call is ever attempted.
func resolveKey(headerKey, defaultKey string) (string, error) {
	if headerKey != "" {
		return headerKey, nil
	}
	if defaultKey != "" {
		return defaultKey, nil
	}
	return "", apierror.Unauthorized()
}
