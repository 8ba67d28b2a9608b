package canva

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const canvaAPIBase = "https://api.canva.com/v1"

// Client represents a Canva API client with transport settings suited to
// large export payloads. Every request is a single attempt: failures are
// reported to the caller, never retried.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new Canva API client authenticating with the provided
// API key. The client carries no request timeout: exports of large
// multi-page designs can take minutes, and the call is expected to block
// until the server answers.
func NewClient(apiKey string) *Client {
	// Configure transport for better handling of large export bodies.
	transport := &http.Transport{
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		MaxIdleConnsPerHost: 10,
		// Disable HTTP/2 to avoid stream errors with large files.
		ForceAttemptHTTP2: false,
	}

	return &Client{
		apiKey:  apiKey,
		baseURL: canvaAPIBase,
		httpClient: &http.Client{
			Transport: transport,
		},
	}
}

// WithBaseURL points the client at a different API base URL and returns the
// client. Used to target a mock server in tests or a self-hosted gateway.
func (c *Client) WithBaseURL(base string) *Client {
	c.baseURL = strings.TrimSuffix(base, "/")
	return c
}

// ExportDesign requests an export of the design in the given format and
// returns the exported bytes. The request selects all pages and sends the
// format upper-cased on the wire. Any transport error or non-2xx status is
// returned as an error carrying the status code when one was received.
//
// The response body is assumed to hold the exported file directly. The
// Canva connect API can instead answer export requests asynchronously with
// a job reference that requires polling; that flow is not implemented, so
// runs against such an endpoint receive the job document rather than the
// design (see the package documentation of canvasync, Known limitations).
func (c *Client) ExportDesign(designID string, format Format) ([]byte, error) {
	url := fmt.Sprintf("%s/designs/%s/export", c.baseURL, designID)

	payload, err := json.Marshal(ExportRequest{
		Format: format.Wire(),
		Pages:  PagesAll,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode export request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return body, nil
}
