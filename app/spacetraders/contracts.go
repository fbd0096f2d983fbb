package spacetraders

import (
	"context"
	"net/url"
)

// GetContracts returns the first page of the agent's contracts.
func (c *Client) GetContracts(ctx context.Context) ([]Contract, error) {
	return getJSON[[]Contract](ctx, c, "/my/contracts", pageQuery())
}

// GetContract returns one contract by id.
func (c *Client) GetContract(ctx context.Context, id string) (Contract, error) {
	return getJSON[Contract](ctx, c, "/my/contracts/"+url.PathEscape(id), nil)
}

// AcceptContract accepts the contract and returns the updated agent and contract.
func (c *Client) AcceptContract(ctx context.Context, id string) (AcceptContractData, error) {
	return postJSON[AcceptContractData](ctx, c, "/my/contracts/"+url.PathEscape(id)+"/accept", nil)
}
