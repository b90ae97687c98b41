// internal/adapters/x3pl/client.go
package x3pl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mkoval-dev/x3pl-dashboard/internal/core/domain"
	"github.com/mkoval-dev/x3pl-dashboard/internal/core/ports"
)

// fetchLimit is the fixed upper bound requested from the backend. The
// dashboard always fetches the full record set in one shot and pages
// client-side.
const fetchLimit = 10000

// Client is a thin HTTP gateway around the two x3pl endpoints.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// Statically assert that *Client implements the InventoryGateway port.
var _ ports.InventoryGateway = (*Client)(nil)

// NewClient creates a gateway client. timeout applies to every request;
// there are no retries.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.With(slog.String("adapter", "x3pl")),
	}
}

// fetchAllResponse mirrors the backend's list envelope.
type fetchAllResponse struct {
	Success   bool `json:"success"`
	ErrorCode int  `json:"errorCode"`
	Value     struct {
		Items      []domain.InventoryRecord `json:"items"`
		Pagination struct {
			Total   int  `json:"total"`
			Limit   int  `json:"limit"`
			Offset  int  `json:"offset"`
			HasMore bool `json:"hasMore"`
		} `json:"pagination"`
	} `json:"value"`
}

// FetchAll retrieves the full record set in a single call.
func (c *Client) FetchAll(ctx context.Context) ([]domain.InventoryRecord, error) {
	url := fmt.Sprintf("%s/x3pl/all?limit=%d&offset=0", c.baseURL, fetchLimit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build fetch request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.TransportError{Op: "fetch_all", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.TransportError{Op: "fetch_all", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &domain.BackendError{
			Op:         "fetch_all",
			StatusCode: resp.StatusCode,
			Body:       truncate(string(body), 512),
		}
	}

	var envelope fetchAllResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode fetch response: %w", err)
	}

	if !envelope.Success {
		return nil, &domain.BackendError{Op: "fetch_all", ErrorCode: envelope.ErrorCode}
	}

	c.logger.DebugContext(ctx, "fetched inventory records",
		slog.Int("count", len(envelope.Value.Items)),
		slog.Int("total", envelope.Value.Pagination.Total))

	return envelope.Value.Items, nil
}

// AddMinimal creates one record from a minimal payload. Failures are
// wrapped with the offending item's code and name so per-item errors
// stay attributable inside a batch.
func (c *Client) AddMinimal(ctx context.Context, item domain.MinimalImportRecord) error {
	payload, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("failed to marshal item %s (%s): %w", item.SHK, item.Name, err)
	}

	url := c.baseURL + "/x3pl/add-minimal"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build add request for %s (%s): %w", item.SHK, item.Name, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to add item %s (%s): %w",
			item.SHK, item.Name, &domain.TransportError{Op: "add_minimal", Err: err})
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("failed to add item %s (%s): %w", item.SHK, item.Name,
			&domain.BackendError{
				Op:         "add_minimal",
				StatusCode: resp.StatusCode,
				Body:       truncate(string(body), 512),
			})
	}

	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
