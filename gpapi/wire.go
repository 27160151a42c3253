package gpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// WireRequest is a compiled GP-API call. Endpoint is relative to the API base
// URL and already carries the merchant prefix. Callers must treat Body as
// read-only.
type WireRequest struct {
	Verb     string          `json:"verb"`
	Endpoint string          `json:"endpoint"`
	Body     json.RawMessage `json:"body"`
}

// NewHTTPRequest builds the HTTP request a transport sends for w. Timeouts,
// retries and authentication headers are the transport's concern.
func (w WireRequest) NewHTTPRequest(ctx context.Context, baseURL string) (*http.Request, error) {
	url := strings.TrimRight(baseURL, "/") + w.Endpoint

	req, err := http.NewRequestWithContext(ctx, w.Verb, url, bytes.NewReader(w.Body))
	if err != nil {
		return nil, fmt.Errorf("creating request for %s: %w", w.Endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return req, nil
}
