package fifa

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"match-notify-service/internal/domain/matches"
	"match-notify-service/internal/providers"
)

// Config controls how the fifa client reaches the upstream feed.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *slog.Logger
	// Audit, when set, receives one timestamped line per successful
	// fetch containing the raw response body.
	Audit io.Writer
}

// Client fetches today's matches from the worldcup.sfg.io feed and maps
// them to domain models.
type Client struct {
	baseURL    string
	httpClient httpDoer
	logger     *slog.Logger
	audit      io.Writer
	now        func() time.Time
}

// NewClient constructs a fifa client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		logger:     cfg.Logger,
		audit:      cfg.Audit,
		now:        time.Now,
	}
}

// FetchMatches retrieves today's matches. Records that fail to decode or
// normalize are dropped with a warning; they never fail the whole fetch.
func (c *Client) FetchMatches(ctx context.Context) ([]matches.Match, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/matches/today", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("fifa: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	c.writeAudit(body)

	var rawRecords []json.RawMessage
	if err := json.Unmarshal(body, &rawRecords); err != nil {
		return nil, fmt.Errorf("fifa: decode payload: %w", err)
	}

	result := make([]matches.Match, 0, len(rawRecords))
	for i, rawRecord := range rawRecords {
		var record matchResponse
		if err := json.Unmarshal(rawRecord, &record); err != nil {
			c.logSkip(i, err)
			continue
		}
		match, err := mapMatch(record)
		if err != nil {
			c.logSkip(i, err)
			continue
		}
		result = append(result, match)
	}

	return result, nil
}

func parseRetryAfter(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	if seconds, err := strconv.Atoi(raw); err == nil && seconds > 0 {
		return time.Duration(seconds) * time.Second
	}
	return 0
}

func (c *Client) logSkip(index int, err error) {
	if c.logger != nil {
		c.logger.Warn("skipping malformed match record",
			slog.String("provider", providerName),
			slog.Int("index", index),
			slog.Any("err", err),
		)
	}
}

func (c *Client) writeAudit(body []byte) {
	if c.audit == nil {
		return
	}
	line := c.now().Format("2006-01-02 15:04:05") + ": " + string(body) + "\n"
	if _, err := c.audit.Write([]byte(line)); err != nil && c.logger != nil {
		c.logger.Warn("audit write failed", slog.Any("err", err))
	}
}
