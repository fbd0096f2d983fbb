package spacetraders

import (
	"context"
	"net/url"
	"strings"
)

// GetSystemWaypoints returns the first page of waypoints in system.
func (c *Client) GetSystemWaypoints(ctx context.Context, system string) ([]Waypoint, error) {
	return getJSON[[]Waypoint](ctx, c, "/systems/"+url.PathEscape(system)+"/waypoints", pageQuery())
}

// SystemOf returns the system part of a waypoint symbol, e.g. X1-DF55 for
// X1-DF55-20250Z. Symbols without a waypoint part are returned unchanged.
func SystemOf(waypoint string) string {
	parts := strings.Split(waypoint, "-")
	if len(parts) < 3 {
		return waypoint
	}
	return strings.Join(parts[:len(parts)-1], "-")
}
