package files

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"termfolio/internal/model"
)

// Remote is a Service backed by the HTTP file API of another termfolio
// instance (see the web package).
type Remote struct {
	baseURL string
	client  *http.Client
}

// NewRemote creates a client for the file API at baseURL. A nil client gets
// a default with a 10 second timeout.
func NewRemote(baseURL string, client *http.Client) *Remote {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Remote{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  client,
	}
}

func (r *Remote) endpoint(route string, path []string) string {
	escaped := make([]string, len(path))
	for i, segment := range path {
		escaped[i] = url.PathEscape(segment)
	}
	return r.baseURL + route + strings.Join(escaped, "/")
}

// fetch performs a GET and decodes the envelope. Error envelopes are mapped
// to the sentinel errors.
func (r *Remote) fetch(ctx context.Context, route string, path []string, into any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.endpoint(route, path), nil)
	if err != nil {
		return fmt.Errorf("files: build request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("files: request %s: %w", route, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("files: read response: %w", err)
	}

	var envelope Response
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("files: decode response (status %d): %w", resp.StatusCode, err)
	}

	if envelope.Error {
		var msg string
		if err := json.Unmarshal(envelope.Data, &msg); err != nil {
			return fmt.Errorf("files: remote error (status %d)", resp.StatusCode)
		}
		return ErrorFromMessage(msg)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("files: unexpected status %d", resp.StatusCode)
	}

	if err := json.Unmarshal(envelope.Data, into); err != nil {
		return fmt.Errorf("files: decode data: %w", err)
	}
	return nil
}

// List implements Service.
func (r *Remote) List(ctx context.Context, path []string) ([]model.Node, error) {
	var nodes []model.Node
	if err := r.fetch(ctx, ListRoute, path, &nodes); err != nil {
		return nil, err
	}
	return nodes, nil
}

// Read implements Service.
func (r *Remote) Read(ctx context.Context, path []string) (string, error) {
	var contents string
	if err := r.fetch(ctx, ReadRoute, path, &contents); err != nil {
		return "", err
	}
	return contents, nil
}
