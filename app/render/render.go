// Package render turns API payloads into the text printed by the REPL.
// Every function here is only called with a successful payload.
package render

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/Guerrilla-Interactive/spacetraders-cli/app"
	"github.com/Guerrilla-Interactive/spacetraders-cli/app/spacetraders"
	config "github.com/Guerrilla-Interactive/spacetraders-cli/internal"
)

// Column headers, one set per table.
var (
	AgentHeaders     = []string{"Account ID", "Symbol", "Headquarters", "Credits"}
	ShipHeaders      = []string{"Symbol", "Role", "Frame", "Status", "Waypoint", "Fuel", "Cargo"}
	NavHeaders       = []string{"System", "Waypoint", "Status", "Flight Mode", "Destination", "Arrival"}
	ContractHeaders  = []string{"ID", "Faction", "Type", "Accepted", "Fulfilled", "Deadline", "On Accepted", "On Fulfilled"}
	DeliverHeaders   = []string{"Trade Good", "Destination", "Required", "Fulfilled"}
	WaypointHeaders  = []string{"Symbol", "Type", "X", "Y", "Orbitals", "Traits"}
	emptyPlaceholder = "-"
)

// Table renders headers and rows with the shared cell styles.
func Table(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(app.BorderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return app.HeaderStyle
			}
			return app.CellStyle
		}).
		Headers(headers...).
		Rows(rows...)
	return t.String()
}

// AgentRows is the single row shown by get_agent.
func AgentRows(a spacetraders.Agent) [][]string {
	return [][]string{{a.AccountID, a.Symbol, a.Headquarters, strconv.FormatInt(a.Credits, 10)}}
}

// Agent renders the player's agent.
func Agent(a spacetraders.Agent) string {
	return Table(AgentHeaders, AgentRows(a))
}

// ShipRows has one row per ship.
func ShipRows(ships []spacetraders.Ship) [][]string {
	rows := make([][]string, 0, len(ships))
	for _, s := range ships {
		rows = append(rows, []string{
			s.Symbol,
			s.Registration.Role,
			s.Frame.Name,
			s.Nav.Status,
			s.Nav.WaypointSymbol,
			ratio(s.Fuel.Current, s.Fuel.Capacity),
			ratio(s.Cargo.Units, s.Cargo.Capacity),
		})
	}
	return rows
}

// Ships renders the fleet list.
func Ships(ships []spacetraders.Ship) string {
	return Table(ShipHeaders, ShipRows(ships))
}

// NavRows is the single row shown by show_ship_nav.
func NavRows(nav spacetraders.ShipNav) [][]string {
	return [][]string{{
		nav.SystemSymbol,
		nav.WaypointSymbol,
		nav.Status,
		nav.FlightMode,
		orPlaceholder(nav.Route.Destination.Symbol),
		timestamp(nav.Route.Arrival),
	}}
}

// ShipNav renders the navigation state of ship.
func ShipNav(ship string, nav spacetraders.ShipNav) string {
	return app.TitleStyle.Render("Ship "+ship) + "\n" + Table(NavHeaders, NavRows(nav))
}

// ContractRows has one row per contract.
func ContractRows(contracts []spacetraders.Contract) [][]string {
	rows := make([][]string, 0, len(contracts))
	for _, c := range contracts {
		rows = append(rows, []string{
			c.ID,
			c.FactionSymbol,
			c.Type,
			yesNo(c.Accepted),
			yesNo(c.Fulfilled),
			timestamp(c.Terms.Deadline),
			strconv.FormatInt(c.Terms.Payment.OnAccepted, 10),
			strconv.FormatInt(c.Terms.Payment.OnFulfilled, 10),
		})
	}
	return rows
}

// Contracts renders the contract list.
func Contracts(contracts []spacetraders.Contract) string {
	return Table(ContractHeaders, ContractRows(contracts))
}

// DeliverRows has one row per good to deliver.
func DeliverRows(c spacetraders.Contract) [][]string {
	rows := make([][]string, 0, len(c.Terms.Deliver))
	for _, d := range c.Terms.Deliver {
		rows = append(rows, []string{
			d.TradeSymbol,
			d.DestinationSymbol,
			strconv.Itoa(d.UnitsRequired),
			strconv.Itoa(d.UnitsFulfilled),
		})
	}
	return rows
}

// ContractTerms renders one contract followed by its delivery terms.
func ContractTerms(c spacetraders.Contract) string {
	var b strings.Builder
	b.WriteString(Table(ContractHeaders, ContractRows([]spacetraders.Contract{c})))
	b.WriteString("\n")
	b.WriteString(app.TitleStyle.Render("Deliver"))
	b.WriteString("\n")
	b.WriteString(Table(DeliverHeaders, DeliverRows(c)))
	return b.String()
}

// Accepted summarises the result of accept_contract.
func Accepted(data spacetraders.AcceptContractData) string {
	return fmt.Sprintf("Accepted contract %s. Credits: %d", data.Contract.ID, data.Agent.Credits)
}

// WaypointRows has one row per waypoint. Orbitals and traits are listed one
// per line inside their cell.
func WaypointRows(waypoints []spacetraders.Waypoint) [][]string {
	rows := make([][]string, 0, len(waypoints))
	for _, w := range waypoints {
		orbitals := make([]string, 0, len(w.Orbitals))
		for _, o := range w.Orbitals {
			orbitals = append(orbitals, o.Symbol)
		}
		traits := make([]string, 0, len(w.Traits))
		for _, t := range w.Traits {
			traits = append(traits, t.Name)
		}
		rows = append(rows, []string{
			w.Symbol,
			w.Type,
			strconv.Itoa(w.X),
			strconv.Itoa(w.Y),
			strings.Join(orbitals, "\n"),
			strings.Join(traits, "\n"),
		})
	}
	return rows
}

// Waypoints renders the waypoints of a system.
func Waypoints(waypoints []spacetraders.Waypoint) string {
	return Table(WaypointHeaders, WaypointRows(waypoints))
}

// ServerStatus classifies the reachability check.
func ServerStatus(st spacetraders.ServerStatus) string {
	if st.OK() {
		return "Server is available"
	}
	return fmt.Sprintf("Server returned %s \n %s", st.Status, st.Body)
}

// Registered is shown after a successful register call.
func Registered(token string) string {
	return fmt.Sprintf("Successfully registered. Got token ( this will be saved on exit ) %s", token)
}

// Config renders cfg as indented JSON.
func Config(cfg config.GameConfig) (string, error) {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}
	return string(data), nil
}

func ratio(a, b int) string {
	return fmt.Sprintf("%d/%d", a, b)
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func timestamp(t time.Time) string {
	if t.IsZero() {
		return emptyPlaceholder
	}
	return t.UTC().Format(time.RFC3339)
}

func orPlaceholder(s string) string {
	if s == "" {
		return emptyPlaceholder
	}
	return s
}
