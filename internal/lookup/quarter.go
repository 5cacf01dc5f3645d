// Package lookup calls the optional fiscal-quarter service: given a calendar
// date it returns the year-quarter label the finance side uses.
package lookup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const requestTimeout = 10 * time.Second

// QuarterClient resolves dates against the external quarter service. A single
// attempt per call; failures surface to the user rather than being retried.
type QuarterClient struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// NewQuarterClient creates a client for the service at baseURL. An empty
// baseURL yields a nil client, which callers treat as "feature disabled".
func NewQuarterClient(baseURL string, logger *slog.Logger) *QuarterClient {
	if baseURL == "" {
		return nil
	}
	return &QuarterClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: requestTimeout},
		logger:  logger,
	}
}

type quarterRequest struct {
	Date string `json:"date"`
}

type quarterResponse struct {
	YearQuarter string `json:"year_quarter"`
}

// Lookup posts the date (YYYY-MM-DD) to /get_quarter and returns the
// year-quarter label.
func (c *QuarterClient) Lookup(ctx context.Context, date string) (string, error) {
	body, err := json.Marshal(quarterRequest{Date: date})
	if err != nil {
		return "", fmt.Errorf("encode quarter request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/get_quarter", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build quarter request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("quarter service unreachable: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		c.logger.Warn("quarter lookup failed", "status", resp.StatusCode, "date", date)
		return "", fmt.Errorf("quarter service returned %d: %s", resp.StatusCode, bytes.TrimSpace(snippet))
	}

	var out quarterResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode quarter response: %w", err)
	}
	return out.YearQuarter, nil
}
