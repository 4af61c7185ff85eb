package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"studio-site/internal/domain/content"
)

// ProxyPath is where the collection proxy is mounted.
const ProxyPath = "/api/collection-proxy"

// PageSize is the number of items requested per collection.
const PageSize = 100

// ErrMalformedItems is returned when the response has no items array.
var ErrMalformedItems = errors.New("response items is not an array")

// Source returns the raw published items of a collection.
type Source interface {
	FetchCollection(ctx context.Context, collectionID string) ([]content.RawItem, error)
}

// StatusError is a non-2xx answer from the proxy.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API error: %d %s", e.Status, e.Body)
}

// ProxyClient reads collections through the collection proxy over HTTP.
type ProxyClient struct {
	BaseURL string
	HTTP    *http.Client
}

func NewProxyClient(baseURL string) *ProxyClient {
	return &ProxyClient{BaseURL: baseURL, HTTP: http.DefaultClient}
}

type itemsEnvelope struct {
	Items json.RawMessage `json:"items"`
}

func (p *ProxyClient) FetchCollection(ctx context.Context, collectionID string) ([]content.RawItem, error) {
	q := url.Values{}
	q.Set("collectionId", collectionID)
	q.Set("live", "1")
	q.Set("limit", strconv.Itoa(PageSize))
	q.Set("offset", "0")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.BaseURL+ProxyPath+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build proxy request: %w", err)
	}

	client := p.HTTP
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if err != nil {
			body = nil
		}
		return nil, &StatusError{Status: resp.StatusCode, Body: string(body)}
	}
	if err != nil {
		return nil, fmt.Errorf("read proxy response: %w", err)
	}

	return DecodeItems(body)
}

// DecodeItems extracts the items array of a Webflow list response.
func DecodeItems(body []byte) ([]content.RawItem, error) {
	var env itemsEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode proxy response: %w", err)
	}
	raw := bytes.TrimSpace(env.Items)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, ErrMalformedItems
	}
	var items []content.RawItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}
	return items, nil
}
