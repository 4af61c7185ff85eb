package forms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Source identifies this site in relayed submissions.
const Source = "base-nyc-website"

// Submitter relays a form submission to the forms collaborator.
type Submitter interface {
	Submit(ctx context.Context, formType string, data map[string]any) (any, error)
}

// NopSubmitter accepts every submission without sending it anywhere. It is
// used when no form endpoint is configured.
type NopSubmitter struct{}

func (NopSubmitter) Submit(context.Context, string, map[string]any) (any, error) {
	return nil, nil
}

// AssemblyClient posts submissions to an Assembly form endpoint.
type AssemblyClient struct {
	Endpoint string
	APIKey   string
	HTTP     *http.Client
	Now      func() time.Time
}

// NewSubmitter returns an AssemblyClient, or NopSubmitter when endpoint is empty.
func NewSubmitter(endpoint, apiKey string) Submitter {
	if endpoint == "" {
		return NopSubmitter{}
	}
	return &AssemblyClient{Endpoint: endpoint, APIKey: apiKey, HTTP: http.DefaultClient, Now: time.Now}
}

func (a *AssemblyClient) Submit(ctx context.Context, formType string, data map[string]any) (any, error) {
	payload := make(map[string]any, len(data)+3)
	for k, v := range data {
		payload[k] = v
	}
	payload["formType"] = formType
	payload["submittedAt"] = a.now().UTC().Format(time.RFC3339)
	payload["source"] = Source

	buf, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.Endpoint, bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("build submission request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+a.APIKey)
	req.Header.Set("X-Assembly-Form-Type", formType)

	client := a.HTTP
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("Assembly API error: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read submission response: %w", err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}
	var out any
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode submission response: %w", err)
	}
	return out, nil
}

func (a *AssemblyClient) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}
