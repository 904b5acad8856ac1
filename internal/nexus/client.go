// Package nexus is a thin client for the Nexus Mods REST API.
package nexus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL is the production API root.
const DefaultBaseURL = "https://api.nexusmods.com/v1"

// Client wraps HTTP calls to the Nexus Mods API. The API key is sent in the
// apikey header on every request.
type Client struct {
	baseURL    string
	apiKey     string
	userAgent  string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API root (tests, proxies).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// NewClient creates a Nexus Mods API client.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:   DefaultBaseURL,
		apiKey:    apiKey,
		userAgent: "nexusdl",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Link is one download location offered by the API. Premium accounts get a
// list of CDN mirrors; free accounts get a single pre-authorized link.
type Link struct {
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
	URI       string `json:"URI"`
}

// User is the account behind an API key.
type User struct {
	UserID    int64  `json:"user_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	IsPremium bool   `json:"is_premium"`
}

// DownloadLink exchanges a (domain, modID, fileID) triple for a temporary
// download URL. Direct-delivery links are preferred over mirror pages.
func (c *Client) DownloadLink(ctx context.Context, domain string, modID, fileID int) (string, error) {
	path := fmt.Sprintf("/games/%s/mods/%d/files/%d/download_link.json", domain, modID, fileID)

	var links []Link
	if err := c.get(ctx, path, &links); err != nil {
		return "", fmt.Errorf("download link for %s/%d/%d: %w", domain, modID, fileID, err)
	}

	uri, err := pickLink(links)
	if err != nil {
		return "", fmt.Errorf("download link for %s/%d/%d: %w", domain, modID, fileID, err)
	}
	return uri, nil
}

// Validate checks the API key and returns the account it belongs to.
func (c *Client) Validate(ctx context.Context) (*User, error) {
	var u User
	if err := c.get(ctx, "/users/validate.json", &u); err != nil {
		return nil, fmt.Errorf("validate api key: %w", err)
	}
	return &u, nil
}

// pickLink chooses the most direct usable URI from the link list:
// filedelivery CDN first, then the named direct/primary entries, then the
// first link that has a URI at all.
func pickLink(links []Link) (string, error) {
	for _, l := range links {
		if l.URI == "" {
			continue
		}
		if strings.Contains(l.URI, "filedelivery.nexusmods.com") {
			return l.URI, nil
		}
		if l.ShortName == "Direct Download" || l.Name == "Primary Download" {
			return l.URI, nil
		}
	}
	for _, l := range links {
		if l.URI != "" {
			return l.URI, nil
		}
	}
	return "", fmt.Errorf("no usable download link in API response")
}

func (c *Client) get(ctx context.Context, path string, result any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return apiError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// apiError extracts the API's message field when the error body is JSON,
// falling back to a snippet of the raw body.
func apiError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var e struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &e); err == nil && e.Message != "" {
		return fmt.Errorf("nexus api %d: %s", resp.StatusCode, e.Message)
	}
	return fmt.Errorf("nexus api %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
}
