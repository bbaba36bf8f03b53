package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"openrouter_relay/internal/apierror"
)

// DefaultTimeout bounds the whole outbound call, connection included.
const DefaultTimeout = 60 * time.Second

type client struct {
	upstreamURL string
	http        *http.Client
}

type Client interface {
	Complete(ctx context.Context, apiKey string, question string) (string, error)
}

func NewClient(upstreamURL string, timeout time.Duration) Client {
	return &client{
		upstreamURL: upstreamURL,
		http:        &http.Client{Timeout: timeout},
	}
}

// Complete performs the single outbound chat-completions call. There are
// no retries: every failure is classified and surfaced immediately.
func (c *client) Complete(ctx context.Context, apiKey string, question string) (string, error) {
	body, err := json.Marshal(newChatRequest(question))
	if err != nil {
		return "", apierror.Internal(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.upstreamURL, bytes.NewReader(body))
	if err != nil {
		return "", apierror.Internal(err)
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return "", classifyTransport(err)
	}
	defer func() { io.Copy(io.Discard, res.Body); res.Body.Close() }()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		// The relay maps the bare status; the upstream body is never read.
		logrus.WithField("status", res.StatusCode).Warn("upstream returned error status")
		return "", mapStatus(res.StatusCode)
	}

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return "", apierror.GatewayTimeout()
		}
		return "", apierror.Internal(err)
	}

	return extractContent(raw)
}

// classifyTransport sorts outbound failures into the relay vocabulary:
// timeouts become 504, reachability problems (refused connection, DNS,
// TLS) become 503, anything unclassified becomes 500 with the cause.
func classifyTransport(err error) *apierror.Error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if urlErr.Timeout() || errors.Is(err, context.DeadlineExceeded) {
			return apierror.GatewayTimeout()
		}
		return apierror.ServiceUnavailable()
	}
	return apierror.Internal(err)
}
