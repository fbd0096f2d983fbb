package spacetraders

import (
	"context"
	"net/url"
)

// GetMyShips returns the first page of the agent's ships.
func (c *Client) GetMyShips(ctx context.Context) ([]Ship, error) {
	return getJSON[[]Ship](ctx, c, "/my/ships", pageQuery())
}

// GetShipNav returns the navigation state of one ship.
func (c *Client) GetShipNav(ctx context.Context, symbol string) (ShipNav, error) {
	return getJSON[ShipNav](ctx, c, "/my/ships/"+url.PathEscape(symbol)+"/nav", nil)
}
