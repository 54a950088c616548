package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"gestao_orcamentos/internal/infrastructure/metrics"
	"gestao_orcamentos/internal/usecase/interfaces"
	"gestao_orcamentos/pkg/requestid"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

)

// FallbackMessage is shown when the backend gives no usable message.
const FallbackMessage = "Erro inesperado na requisição."

const maxErrorBody = 64 << 10

// Client talks JSON to the budgets backend. Gateways share one Client.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	metrics *metrics.Metrics
}

func NewClient(baseURL string, timeout time.Duration, m *metrics.Metrics) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(strings.TrimSpace(baseURL), "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid backend url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid backend url %q: scheme must be http or https", baseURL)
	}
	return &Client{
		baseURL: u,
		http:    &http.Client{Timeout: timeout},
		metrics: m,
	}, nil
}

// do sends one request and decodes a 2xx body into out (when non-nil).
// Any failure is returned as *interfaces.GatewayError.
func (c *Client) do(ctx context.Context, operation, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return &interfaces.GatewayError{Message: FallbackMessage, Err: err}
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, reader)
	if err != nil {
		return &interfaces.GatewayError{Message: FallbackMessage, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if id := requestid.FromContext(ctx); id != "" {
		req.Header.Set(requestid.Header, id)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.ObserveBackend(operation, 0, time.Since(start))
		log.Printf("[backend][client] %s transport failed method=%s path=%s err=%v", operation, method, path, err)
		return &interfaces.GatewayError{Message: FallbackMessage, Err: err}
	}
	defer resp.Body.Close()
	c.metrics.ObserveBackend(operation, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		msg := ExtractMessage(raw)
		log.Printf("[backend][client] %s failed method=%s path=%s status=%d message=%q", operation, method, path, resp.StatusCode, msg)
		return &interfaces.GatewayError{Status: resp.StatusCode, Message: msg}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		log.Printf("[backend][client] %s decode failed status=%d err=%v", operation, resp.StatusCode, err)
		return &interfaces.GatewayError{Status: resp.StatusCode, Message: FallbackMessage, Err: err}
	}
	return nil
}

// ExtractMessage reads the human-readable message of an error body: the
// "message" field, then "error", then FallbackMessage.
func ExtractMessage(raw []byte) string {
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return FallbackMessage
	}
	for _, key := range []string{"message", "error"} {
		if s, ok := body[key].(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}
	return FallbackMessage
}
