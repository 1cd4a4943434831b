// Package parser provides the client for the external resume parsing API.
// The platform performs no parsing itself; raw uploads are forwarded
// wholesale and the structured result is returned to the caller.
package parser

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/jonathan/kandidaten-platform/internal/schemas"
	"github.com/jonathan/kandidaten-platform/internal/types"
)

// DefaultTimeout bounds a single parse call. Upstream parsing of large
// documents is slow; the caller blocks until the upstream responds.
const DefaultTimeout = 60 * time.Second

// Client calls the external resume parsing endpoint.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a parser client for the given endpoint and bearer
// credential.
func NewClient(endpoint, apiKey string) *Client {
	return &Client{
		endpoint:   endpoint,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// response mirrors the parser's envelope; the structured profile sits
// under "parsed".
type response struct {
	Parsed types.ParsedProfile `json:"parsed"`
}

// Parse forwards one uploaded file to the parsing endpoint and returns the
// structured profile. Any failure is reported as *UpstreamError; nothing
// is retried.
func (c *Client) Parse(ctx context.Context, file io.Reader, filename string) (types.ParsedProfile, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return types.ParsedProfile{}, &UpstreamError{URL: c.endpoint, Message: "failed to build upload body", Cause: err}
	}
	if _, err := io.Copy(part, file); err != nil {
		return types.ParsedProfile{}, &UpstreamError{URL: c.endpoint, Message: "failed to read upload", Cause: err}
	}
	if err := writer.Close(); err != nil {
		return types.ParsedProfile{}, &UpstreamError{URL: c.endpoint, Message: "failed to finalize upload body", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, &body)
	if err != nil {
		return types.ParsedProfile{}, &UpstreamError{URL: c.endpoint, Message: "failed to build request", Cause: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return types.ParsedProfile{}, &UpstreamError{URL: c.endpoint, Message: "request failed", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return types.ParsedProfile{}, &UpstreamError{
			URL:        c.endpoint,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("parser returned status %d", resp.StatusCode),
		}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return types.ParsedProfile{}, &UpstreamError{URL: c.endpoint, Message: "failed to read response", Cause: err}
	}

	if err := schemas.ValidateParserResponse(raw); err != nil {
		return types.ParsedProfile{}, &UpstreamError{URL: c.endpoint, Message: "unexpected response shape", Cause: err}
	}

	var parsed response
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return types.ParsedProfile{}, &UpstreamError{URL: c.endpoint, Message: "failed to decode response", Cause: err}
	}
	return parsed.Parsed, nil
}
