package webflow

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

const (
	DefaultBaseURL    = "https://api.webflow.com/v2"
	DefaultAPIVersion = "2.0.0"
)

// UpstreamError is a non-2xx answer from Webflow. Body is the raw response
// text, or "" when it could not be read.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("webflow upstream error: status %d", e.Status)
}

// ListParams selects one page of a collection.
type ListParams struct {
	CollectionID string
	Live         bool
	Limit        int
	Offset       int
}

// Path is the items sub-resource for the requested item set.
func (p ListParams) Path() string {
	path := "/collections/" + url.PathEscape(p.CollectionID) + "/items"
	if p.Live {
		path += "/live"
	}
	return path
}

type Client struct {
	BaseURL    string
	APIVersion string
	HTTP       *http.Client
}

func NewClient(baseURL, apiVersion string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if apiVersion == "" {
		apiVersion = DefaultAPIVersion
	}
	return &Client{BaseURL: baseURL, APIVersion: apiVersion, HTTP: http.DefaultClient}
}

// ListItems fetches one page of collection items and returns the raw JSON
// body. Non-2xx responses come back as *UpstreamError.
func (c *Client) ListItems(ctx context.Context, token string, p ListParams) ([]byte, error) {
	u, err := url.Parse(c.BaseURL + p.Path())
	if err != nil {
		return nil, fmt.Errorf("build webflow url: %w", err)
	}
	q := u.Query()
	q.Set("limit", strconv.Itoa(p.Limit))
	q.Set("offset", strconv.Itoa(p.Offset))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build webflow request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("accept-version", c.APIVersion)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			body = nil
		}
		return nil, &UpstreamError{Status: resp.StatusCode, Body: string(body)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read webflow response: %w", err)
	}
	return body, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}
