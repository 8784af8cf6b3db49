package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dvstudio/nodewire/pkg/domain"
	"github.com/dvstudio/nodewire/pkg/formatstring"
	"github.com/dvstudio/nodewire/pkg/ports"
)

// Client implements ports.TemplateService against a remote template server.
// It is what the editor-side Syncer uses when the parser runs out of
// process.
type Client struct {
	base string
	hc   *http.Client
}

// NewClient creates a client for the server at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		hc:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("server returned %d for %s: %s", resp.StatusCode, path, strings.TrimSpace(string(msg)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}

// UpdateNodeConfig submits the template and returns the derived config.
func (c *Client) UpdateNodeConfig(ctx context.Context, req domain.UpdateRequest) (domain.NodeConfig, error) {
	var cfg domain.NodeConfig
	if err := c.post(ctx, "/update_format_string_node", req, &cfg); err != nil {
		return domain.NodeConfig{}, err
	}
	return cfg, nil
}

// LoadState retrieves persisted node state. The server answers a bare
// object, so the body is decoded generically and mapped into a SavedState.
func (c *Client) LoadState(ctx context.Context, filePath string) (domain.SavedState, error) {
	body := map[string]string{"file_path": filePath}
	var raw map[string]any
	if err := c.post(ctx, "/load_format_string_node", body, &raw); err != nil {
		return domain.SavedState{}, err
	}
	if len(raw) == 0 {
		return domain.SavedState{}, nil
	}
	return formatstring.DecodeSavedState(raw)
}

var _ ports.TemplateService = (*Client)(nil)
