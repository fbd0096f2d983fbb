package spacetraders

import (
	"context"
	"errors"
	"strings"
)

// DefaultFaction is used by register when no faction is given.
const DefaultFaction = "COSMIC"

// Factions lists the starting factions accepted by POST /register.
var Factions = []string{
	"COSMIC", "VOID", "GALACTIC", "QUANTUM", "DOMINION",
	"ASTRO", "CORSAIRS", "OBSIDIAN", "AEGIS", "UNITED",
}

// NormalizeFaction upper-cases name and reports whether it is a known faction.
func NormalizeFaction(name string) (string, bool) {
	sym := strings.ToUpper(strings.TrimSpace(name))
	for _, f := range Factions {
		if f == sym {
			return sym, true
		}
	}
	return sym, false
}

// Register claims a call sign for a new agent. It does not need a token.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (RegisterData, error) {
	if strings.TrimSpace(req.Symbol) == "" {
		return RegisterData{}, errors.New("empty call sign")
	}
	req.Faction = strings.ToUpper(req.Faction)
	return postJSON[RegisterData](ctx, c, "/register", req)
}

// GetMyAgent returns the agent owning the bearer token.
func (c *Client) GetMyAgent(ctx context.Context) (Agent, error) {
	return getJSON[Agent](ctx, c, "/my/agent", nil)
}
