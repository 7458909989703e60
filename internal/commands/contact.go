package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ContactError is returned when the contact endpoint answers with a non-200
// status. Body is the response text shown to the user.
type ContactError struct {
	Status int
	Body   string
}

func (e *ContactError) Error() string {
	return fmt.Sprintf("contact endpoint returned %d: %s", e.Status, e.Body)
}

// ContactClient posts install requests as {"message": "..."} JSON.
type ContactClient struct {
	URL    string
	Client *http.Client
}

// NewContactClient creates a notifier for the given endpoint.
func NewContactClient(url string) *ContactClient {
	return &ContactClient{
		URL:    url,
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Notify implements Notifier.
func (c *ContactClient) Notify(ctx context.Context, message string) error {
	payload, err := json.Marshal(map[string]string{"message": message})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("contact: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return fmt.Errorf("contact: post: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("contact: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return &ContactError{Status: resp.StatusCode, Body: string(body)}
	}
	return nil
}
