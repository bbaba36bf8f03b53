package handler

import (
	"context"
	"encoding/json"
	"errors"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	DTO_http "openrouter_relay/internal/DTO/http"
	"openrouter_relay/internal/apierror"
)

type stubRelay struct {
	answer       string
	err          error
	gotQuestion  string
	gotHeaderKey string
}

func (s *stubRelay) Ask(_ context.Context, question string, headerKey string) (string, error) {
	s.gotQuestion = question
	s.gotHeaderKey = headerKey
	return s.answer, s.err
}

func doRequest(t *testing.T, svc *stubRelay, body string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(stdhttp.MethodPost, "/ask", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	NewAskHandler(svc)(rec, req)
	return rec
}

func decodeDetail(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var out DTO_http.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatalf("decoding error body: %v", err)
	}
	return out.Detail.Message
}

func TestAskSuccess(t *testing.T) {
	svc := &stubRelay{answer: "the answer"}
	rec := doRequest(t, svc, `{"question":"why?"}`, map[string]string{"X-API-Key": "sk-caller"})

	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var out DTO_http.Response
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if out.Response != "the answer" {
		t.Errorf("response = %q, want %q", out.Response, "the answer")
	}
	if svc.gotQuestion != "why?" {
		t.Errorf("question = %q, want %q", svc.gotQuestion, "why?")
	}
	if svc.gotHeaderKey != "sk-caller" {
		t.Errorf("header key = %q, want %q", svc.gotHeaderKey, "sk-caller")
	}
}

func TestAskValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing question", `{}`},
		{"empty question", `{"question":""}`},
		{"malformed json", `{"question":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubRelay{answer: "never returned"}
			rec := doRequest(t, svc, tt.body, nil)

			if rec.Code != stdhttp.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
			if msg := decodeDetail(t, rec); msg == "" {
				t.Error("expected a detail message")
			}
			if svc.gotQuestion != "" {
				t.Errorf("service was called with %q, want no call", svc.gotQuestion)
			}
		})
	}
}

func TestAskForwardsWhitespaceQuestion(t *testing.T) {
	svc := &stubRelay{answer: "still answered"}
	rec := doRequest(t, svc, `{"question":"   "}`, nil)

	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if svc.gotQuestion != "   " {
		t.Errorf("question = %q, want the whitespace forwarded verbatim", svc.gotQuestion)
	}
}

func TestAskRejectsNonJSONContentType(t *testing.T) {
	req := httptest.NewRequest(stdhttp.MethodPost, "/ask", strings.NewReader(`{"question":"why?"}`))
	req.Header.Set("Content-Type", "text/plain")
	rec := httptest.NewRecorder()
	NewAskHandler(&stubRelay{})(rec, req)

	if rec.Code != stdhttp.StatusUnsupportedMediaType {
		t.Errorf("status = %d, want 415", rec.Code)
	}
}

func TestAskRelayErrors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"missing key", apierror.Unauthorized(), 401, "API Key required"},
		{"rate limited", apierror.TooManyRequests(), 429, "Rate limit exceeded"},
		{"timeout", apierror.GatewayTimeout(), 504, "Request timeout"},
		{"unreachable", apierror.ServiceUnavailable(), 503, "Connection error"},
		{"upstream status", apierror.Upstream(500), 500, "OpenAI API error: 500"},
		{"untyped error", errors.New("boom"), 500, "Internal server error: boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &stubRelay{err: tt.err}, `{"question":"why?"}`, nil)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if msg := decodeDetail(t, rec); msg != tt.wantMessage {
				t.Errorf("message = %q, want %q", msg, tt.wantMessage)
			}
		})
	}
}
