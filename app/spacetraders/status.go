package spacetraders

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Status fetches the API root. Any HTTP answer is a successful check; only
// transport failures are returned as errors.
func (c *Client) Status(ctx context.Context) (ServerStatus, error) {
	target := strings.TrimRight(c.cfg.BasePath, "/") + "/"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return ServerStatus{}, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return ServerStatus{}, fmt.Errorf("GET /: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return ServerStatus{}, fmt.Errorf("read response: %w", err)
	}
	c.logger.Debug("status check", "status", resp.StatusCode)

	return ServerStatus{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Body:       string(body),
	}, nil
}
