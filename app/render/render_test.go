package render

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/Guerrilla-Interactive/spacetraders-cli/app/spacetraders"
	config "github.com/Guerrilla-Interactive/spacetraders-cli/internal"
)

func TestEmptyListsRenderHeadersOnly(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
		rows    [][]string
		out     string
	}{
		{"ships", ShipHeaders, ShipRows(nil), Ships(nil)},
		{"contracts", ContractHeaders, ContractRows([]spacetraders.Contract{}), Contracts([]spacetraders.Contract{})},
		{"waypoints", WaypointHeaders, WaypointRows(nil), Waypoints(nil)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if len(tc.rows) != 0 {
				t.Fatalf("expected zero rows, got %d", len(tc.rows))
			}
			for _, h := range tc.headers {
				if !strings.Contains(tc.out, h) {
					t.Errorf("output lacks header %q:\n%s", h, tc.out)
				}
			}
			if tc.out != Table(tc.headers, nil) {
				t.Errorf("output differs from a header-only table:\n%s", tc.out)
			}
		})
	}
}

func TestShipRows(t *testing.T) {
	ships := []spacetraders.Ship{{
		Symbol:       "BADGER-1",
		Registration: spacetraders.ShipRegistration{Role: "COMMAND"},
		Frame:        spacetraders.ShipFrame{Name: "Frigate"},
		Nav:          spacetraders.ShipNav{Status: "DOCKED", WaypointSymbol: "X1-DF55-20250Z"},
		Fuel:         spacetraders.ShipFuel{Current: 300, Capacity: 400},
		Cargo:        spacetraders.ShipCargo{Units: 0, Capacity: 60},
	}}
	want := [][]string{{"BADGER-1", "COMMAND", "Frigate", "DOCKED", "X1-DF55-20250Z", "300/400", "0/60"}}
	if diff := cmp.Diff(want, ShipRows(ships)); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
	if out := Ships(ships); !strings.Contains(out, "BADGER-1") {
		t.Errorf("table lacks ship symbol:\n%s", out)
	}
}

func TestAgentRows(t *testing.T) {
	a := spacetraders.Agent{AccountID: "acc", Symbol: "BADGER", Headquarters: "X1-DF55-20250Z", Credits: 175000}
	want := [][]string{{"acc", "BADGER", "X1-DF55-20250Z", "175000"}}
	if diff := cmp.Diff(want, AgentRows(a)); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestNavRows(t *testing.T) {
	nav := spacetraders.ShipNav{
		SystemSymbol:   "X1-DF55",
		WaypointSymbol: "X1-DF55-20250Z",
		Status:         "IN_TRANSIT",
		FlightMode:     "CRUISE",
		Route: spacetraders.ShipNavRoute{
			Destination: spacetraders.RouteWaypoint{Symbol: "X1-DF55-A1"},
			Arrival:     time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC),
		},
	}
	want := [][]string{{"X1-DF55", "X1-DF55-20250Z", "IN_TRANSIT", "CRUISE", "X1-DF55-A1", "2025-03-04T05:06:07Z"}}
	if diff := cmp.Diff(want, NavRows(nav)); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}

	docked := NavRows(spacetraders.ShipNav{Status: "DOCKED"})
	if docked[0][4] != "-" || docked[0][5] != "-" {
		t.Errorf("missing route should show placeholders, got %v", docked[0])
	}
}

func TestContractRowsAndTerms(t *testing.T) {
	c := spacetraders.Contract{
		ID:            "c-1",
		FactionSymbol: "COSMIC",
		Type:          "PROCUREMENT",
		Accepted:      true,
		Terms: spacetraders.ContractTerms{
			Deadline: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
			Payment:  spacetraders.ContractPayment{OnAccepted: 1000, OnFulfilled: 5000},
			Deliver: []spacetraders.ContractDeliverGood{
				{TradeSymbol: "IRON_ORE", DestinationSymbol: "X1-DF55-20250Z", UnitsRequired: 40, UnitsFulfilled: 10},
			},
		},
	}
	wantRows := [][]string{{"c-1", "COSMIC", "PROCUREMENT", "yes", "no", "2025-01-02T03:04:05Z", "1000", "5000"}}
	if diff := cmp.Diff(wantRows, ContractRows([]spacetraders.Contract{c})); diff != "" {
		t.Errorf("contract rows mismatch (-want +got):\n%s", diff)
	}
	wantDeliver := [][]string{{"IRON_ORE", "X1-DF55-20250Z", "40", "10"}}
	if diff := cmp.Diff(wantDeliver, DeliverRows(c)); diff != "" {
		t.Errorf("deliver rows mismatch (-want +got):\n%s", diff)
	}

	out := ContractTerms(c)
	for _, s := range []string{"c-1", "IRON_ORE", "Trade Good"} {
		if !strings.Contains(out, s) {
			t.Errorf("output lacks %q:\n%s", s, out)
		}
	}
}

func TestWaypointRowsJoinListsWithNewlines(t *testing.T) {
	w := spacetraders.Waypoint{
		Symbol:   "X1-DF55-20250Z",
		Type:     "PLANET",
		X:        -12,
		Y:        40,
		Orbitals: []spacetraders.WaypointOrbital{{Symbol: "X1-DF55-A1"}, {Symbol: "X1-DF55-A2"}},
		Traits:   []spacetraders.WaypointTrait{{Symbol: "MARKETPLACE", Name: "Marketplace"}, {Symbol: "SHIPYARD", Name: "Shipyard"}},
	}
	want := [][]string{{"X1-DF55-20250Z", "PLANET", "-12", "40", "X1-DF55-A1\nX1-DF55-A2", "Marketplace\nShipyard"}}
	if diff := cmp.Diff(want, WaypointRows([]spacetraders.Waypoint{w})); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestServerStatus(t *testing.T) {
	if got := ServerStatus(spacetraders.ServerStatus{StatusCode: 200, Status: "200 OK"}); got != "Server is available" {
		t.Errorf("got %q", got)
	}
	got := ServerStatus(spacetraders.ServerStatus{StatusCode: 503, Status: "503 Service Unavailable", Body: "maintenance"})
	if got != "Server returned 503 Service Unavailable \n maintenance" {
		t.Errorf("got %q", got)
	}
}

func TestConfig(t *testing.T) {
	cfg := config.Default()
	cfg.AccessToken = "tkn123"
	cfg.CallSign = "BADGER"

	out, err := Config(cfg)
	if err != nil {
		t.Fatalf("Config: %v", err)
	}
	var back config.GameConfig
	if err := json.Unmarshal([]byte(out), &back); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if diff := cmp.Diff(cfg, back); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(out, "\n  \"call_sign\": \"BADGER\"") {
		t.Errorf("expected indented output, got:\n%s", out)
	}
}
