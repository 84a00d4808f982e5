package commands

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/costlens/costlens/pkg/models/api"
	"github.com/goccy/go-json"
)

// Client queries a running cost API over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) TotalCost(ctx context.Context) (api.CostTotals, error) {
	var totals api.CostTotals
	err := c.get(ctx, "/api/v1/costs/total", &totals)
	return totals, err
}

func (c *Client) CostByRegion(ctx context.Context) (api.RegionRollup, error) {
	var rollup api.RegionRollup
	err := c.get(ctx, "/api/v1/costs/by-region", &rollup)
	return rollup, err
}

func (c *Client) CostByService(ctx context.Context) (api.ServiceRollup, error) {
	var rollup api.ServiceRollup
	err := c.get(ctx, "/api/v1/costs/by-service", &rollup)
	return rollup, err
}

func (c *Client) SavingsSummary(ctx context.Context) (api.SavingsSummary, error) {
	var summary api.SavingsSummary
	err := c.get(ctx, "/api/v1/savings/summary", &summary)
	return summary, err
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("building request for %s: %w", path, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("requesting %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("unexpected status %d from %s: %s", resp.StatusCode, path, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response from %s: %w", path, err)
	}

	return nil
}
