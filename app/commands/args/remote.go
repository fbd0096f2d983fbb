package args

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Guerrilla-Interactive/spacetraders-cli/app"
	"github.com/Guerrilla-Interactive/spacetraders-cli/app/render"
	"github.com/Guerrilla-Interactive/spacetraders-cli/app/spacetraders"
)

const (
	minCallSignLen = 3
	maxCallSignLen = 14
)

func init() {
	RegisterCommand(checkServerCommand())
	RegisterCommand(registerCommand())
	RegisterCommand(getAgentCommand())
	RegisterCommand(showShipsCommand())
	RegisterCommand(showShipNavCommand())
	RegisterCommand(showContractsCommand())
	RegisterCommand(showContractCommand())
	RegisterCommand(acceptContractCommand())
	RegisterCommand(systemWaypointsCommand())
}

func checkServerCommand() Command {
	return &command[struct{}]{
		name:        "check_server",
		description: "Check the server status",
		bind:        noParams,
		run: func(ctx context.Context, rt *Runtime, _ struct{}) (string, error) {
			return invoke(ctx, rt, "check server",
				func(ctx context.Context, gw app.Gateway) (spacetraders.ServerStatus, error) {
					return gw.Status(ctx)
				},
				render.ServerStatus), nil
		},
	}
}

type registerParams struct {
	CallSign string
	Faction  string
}

func bindRegister(v Values) (registerParams, error) {
	callSign := strings.TrimSpace(v["callsign"])
	if n := utf8.RuneCountInString(callSign); n < minCallSignLen || n > maxCallSignLen {
		return registerParams{}, fmt.Errorf("call sign must be %d to %d characters", minCallSignLen, maxCallSignLen)
	}
	faction, ok := spacetraders.NormalizeFaction(v["faction"])
	if !ok {
		return registerParams{}, fmt.Errorf("unknown faction %q, choose one of %s", v["faction"], strings.Join(spacetraders.Factions, ", "))
	}
	return registerParams{CallSign: callSign, Faction: faction}, nil
}

func registerCommand() Command {
	return &command[registerParams]{
		name:        "register",
		description: "Register as a new agent. The token is kept in the config and saved on exit",
		args: []ArgDef{
			{Name: "callsign", Description: "Unique agent symbol, 3 to 14 characters", Required: true},
			{Name: "faction", Description: "Starting faction", Default: spacetraders.DefaultFaction},
		},
		bind: bindRegister,
		run: func(ctx context.Context, rt *Runtime, p registerParams) (string, error) {
			req := spacetraders.RegisterRequest{Faction: p.Faction, Symbol: p.CallSign}
			return invoke(ctx, rt, "register player",
				func(ctx context.Context, gw app.Gateway) (spacetraders.RegisterData, error) {
					return gw.Register(ctx, req)
				},
				func(data spacetraders.RegisterData) string {
					faction := data.Faction.Symbol
					if faction == "" {
						faction = p.Faction
					}
					rt.Session.ApplyRegistration(app.Registration{
						Token:        data.Token,
						CallSign:     p.CallSign,
						Faction:      faction,
						Headquarters: data.Agent.Headquarters,
					})
					return render.Registered(data.Token)
				}), nil
		},
	}
}

func getAgentCommand() Command {
	return &command[struct{}]{
		name:        "get_agent",
		description: "Show your agent",
		bind:        noParams,
		run: func(ctx context.Context, rt *Runtime, _ struct{}) (string, error) {
			return invoke(ctx, rt, "get agent data",
				func(ctx context.Context, gw app.Gateway) (spacetraders.Agent, error) {
					return gw.GetMyAgent(ctx)
				},
				render.Agent), nil
		},
	}
}

func showShipsCommand() Command {
	return &command[struct{}]{
		name:        "show_ships",
		description: "List your ships",
		bind:        noParams,
		run: func(ctx context.Context, rt *Runtime, _ struct{}) (string, error) {
			return invoke(ctx, rt, "list ships",
				func(ctx context.Context, gw app.Gateway) ([]spacetraders.Ship, error) {
					return gw.GetMyShips(ctx)
				},
				render.Ships), nil
		},
	}
}

type symbolParams struct {
	Symbol string
}

func bindSymbol(name string) func(Values) (symbolParams, error) {
	return func(v Values) (symbolParams, error) {
		s := strings.TrimSpace(v[name])
		if s == "" {
			return symbolParams{}, fmt.Errorf("%s must not be empty", name)
		}
		return symbolParams{Symbol: s}, nil
	}
}

func showShipNavCommand() Command {
	return &command[symbolParams]{
		name:        "show_ship_nav",
		description: "Show where a ship is and where it is going",
		args: []ArgDef{
			{Name: "symbol", Description: "Ship symbol, e.g. BADGER-1", Required: true},
		},
		bind: bindSymbol("symbol"),
		run: func(ctx context.Context, rt *Runtime, p symbolParams) (string, error) {
			return invoke(ctx, rt, "get nav for ship "+p.Symbol,
				func(ctx context.Context, gw app.Gateway) (spacetraders.ShipNav, error) {
					return gw.GetShipNav(ctx, p.Symbol)
				},
				func(nav spacetraders.ShipNav) string {
					return render.ShipNav(p.Symbol, nav)
				}), nil
		},
	}
}

func showContractsCommand() Command {
	return &command[struct{}]{
		name:        "show_contracts",
		description: "List your contracts",
		bind:        noParams,
		run: func(ctx context.Context, rt *Runtime, _ struct{}) (string, error) {
			return invoke(ctx, rt, "list contracts",
				func(ctx context.Context, gw app.Gateway) ([]spacetraders.Contract, error) {
					return gw.GetContracts(ctx)
				},
				render.Contracts), nil
		},
	}
}

func showContractCommand() Command {
	return &command[symbolParams]{
		name:        "show_contract",
		description: "Show the delivery terms of a contract",
		args: []ArgDef{
			{Name: "contract", Description: "Contract id", Required: true},
		},
		bind: bindSymbol("contract"),
		run: func(ctx context.Context, rt *Runtime, p symbolParams) (string, error) {
			return invoke(ctx, rt, "get contract "+p.Symbol,
				func(ctx context.Context, gw app.Gateway) (spacetraders.Contract, error) {
					return gw.GetContract(ctx, p.Symbol)
				},
				render.ContractTerms), nil
		},
	}
}

func acceptContractCommand() Command {
	return &command[symbolParams]{
		name:        "accept_contract",
		description: "Accept a contract",
		args: []ArgDef{
			{Name: "contract", Description: "Contract id", Required: true},
		},
		bind: bindSymbol("contract"),
		run: func(ctx context.Context, rt *Runtime, p symbolParams) (string, error) {
			return invoke(ctx, rt, "accept contract "+p.Symbol,
				func(ctx context.Context, gw app.Gateway) (spacetraders.AcceptContractData, error) {
					return gw.AcceptContract(ctx, p.Symbol)
				},
				render.Accepted), nil
		},
	}
}

type waypointParams struct {
	System string
}

var errNoSystem = errors.New("no system given and no headquarters known, usage: system_waypoints [system]")

func systemWaypointsCommand() Command {
	return &command[waypointParams]{
		name:        "system_waypoints",
		description: "List the waypoints of a system. Defaults to the system of your headquarters",
		args: []ArgDef{
			{Name: "system", Description: "System symbol, e.g. X1-DF55"},
		},
		bind: func(v Values) (waypointParams, error) {
			return waypointParams{System: strings.TrimSpace(v["system"])}, nil
		},
		run: func(ctx context.Context, rt *Runtime, p waypointParams) (string, error) {
			system := p.System
			if system == "" {
				hq := rt.Session.Config().Headquarters
				if hq == "" {
					return errNoSystem.Error(), nil
				}
				system = spacetraders.SystemOf(hq)
			}
			return invoke(ctx, rt, "list waypoints of "+system,
				func(ctx context.Context, gw app.Gateway) ([]spacetraders.Waypoint, error) {
					return gw.GetSystemWaypoints(ctx, system)
				},
				render.Waypoints), nil
		},
	}
}
