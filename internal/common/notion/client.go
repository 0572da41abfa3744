package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const apiVersion = "2022-06-28"

type Client struct {
	token      string
	databaseID string
	baseURL    string
	httpClient *http.Client
}

// Page is the subset of the page object returned on creation.
type Page struct {
	ID  string `json:"id"`
	URL string `json:"url,omitempty"`
}

type createPageRequest struct {
	Parent     map[string]string      `json:"parent"`
	Properties map[string]interface{} `json:"properties"`
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL, used in tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func NewClient(token, databaseID string, opts ...Option) *Client {
	c := &Client{
		token:      token,
		databaseID: databaseID,
		baseURL:    "https://api.notion.com",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Configured reports whether both credentials are present.
func (c *Client) Configured() bool {
	return c.token != "" && c.databaseID != ""
}

// HasToken reports token presence without exposing its value.
func (c *Client) HasToken() bool {
	return c.token != ""
}

// HasDatabase reports database id presence without exposing its value.
func (c *Client) HasDatabase() bool {
	return c.databaseID != ""
}

// CreatePage creates a page in the configured database with the given properties.
func (c *Client) CreatePage(ctx context.Context, properties map[string]interface{}) (*Page, error) {
	url := fmt.Sprintf("%s/v1/pages", c.baseURL)

	payload := createPageRequest{
		Parent:     map[string]string{"database_id": c.databaseID},
		Properties: properties,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal page: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", apiVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("failed to create page (status %d): %s", resp.StatusCode, string(body))
	}

	var page Page
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if page.ID == "" {
		return nil, fmt.Errorf("no page id in response")
	}

	if page.URL == "" {
		page.URL = PageURL(page.ID)
	}

	return &page, nil
}

// PageURL builds the public page URL from a page ID.
// Page IDs come back dashed; the web URL uses the compact form.
func PageURL(pageID string) string {
	return "https://www.notion.so/" + strings.ReplaceAll(pageID, "-", "")
}
