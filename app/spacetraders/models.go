package spacetraders

import "time"

// Agent is the player's account as returned by GET /my/agent.
type Agent struct {
	AccountID       string `json:"accountId"`
	Symbol          string `json:"symbol"`
	Headquarters    string `json:"headquarters"`
	Credits         int64  `json:"credits"`
	StartingFaction string `json:"startingFaction"`
	ShipCount       int    `json:"shipCount"`
}

// Faction is the subset of faction details the client displays.
type Faction struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	Faction string `json:"faction"`
	Symbol  string `json:"symbol"`
	Email   string `json:"email,omitempty"`
}

// RegisterData is returned after a successful registration.
type RegisterData struct {
	Token    string   `json:"token"`
	Agent    Agent    `json:"agent"`
	Faction  Faction  `json:"faction"`
	Contract Contract `json:"contract"`
	Ship     Ship     `json:"ship"`
}

type ShipRegistration struct {
	Name          string `json:"name"`
	FactionSymbol string `json:"factionSymbol"`
	Role          string `json:"role"`
}

type ShipFrame struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

type ShipFuel struct {
	Current  int `json:"current"`
	Capacity int `json:"capacity"`
}

type ShipCargo struct {
	Capacity int `json:"capacity"`
	Units    int `json:"units"`
}

type RouteWaypoint struct {
	Symbol       string `json:"symbol"`
	Type         string `json:"type"`
	SystemSymbol string `json:"systemSymbol"`
	X            int    `json:"x"`
	Y            int    `json:"y"`
}

type ShipNavRoute struct {
	Destination   RouteWaypoint `json:"destination"`
	Origin        RouteWaypoint `json:"origin"`
	DepartureTime time.Time     `json:"departureTime"`
	Arrival       time.Time     `json:"arrival"`
}

// ShipNav describes where a ship is and how it is travelling.
type ShipNav struct {
	SystemSymbol   string       `json:"systemSymbol"`
	WaypointSymbol string       `json:"waypointSymbol"`
	Route          ShipNavRoute `json:"route"`
	Status         string       `json:"status"`
	FlightMode     string       `json:"flightMode"`
}

// Ship is one entry of GET /my/ships.
type Ship struct {
	Symbol       string           `json:"symbol"`
	Registration ShipRegistration `json:"registration"`
	Nav          ShipNav          `json:"nav"`
	Frame        ShipFrame        `json:"frame"`
	Fuel         ShipFuel         `json:"fuel"`
	Cargo        ShipCargo        `json:"cargo"`
}

type ContractPayment struct {
	OnAccepted  int64 `json:"onAccepted"`
	OnFulfilled int64 `json:"onFulfilled"`
}

type ContractDeliverGood struct {
	TradeSymbol       string `json:"tradeSymbol"`
	DestinationSymbol string `json:"destinationSymbol"`
	UnitsRequired     int    `json:"unitsRequired"`
	UnitsFulfilled    int    `json:"unitsFulfilled"`
}

type ContractTerms struct {
	Deadline time.Time             `json:"deadline"`
	Payment  ContractPayment       `json:"payment"`
	Deliver  []ContractDeliverGood `json:"deliver"`
}

// Contract is a delivery obligation offered by a faction.
type Contract struct {
	ID               string        `json:"id"`
	FactionSymbol    string        `json:"factionSymbol"`
	Type             string        `json:"type"`
	Terms            ContractTerms `json:"terms"`
	Accepted         bool          `json:"accepted"`
	Fulfilled        bool          `json:"fulfilled"`
	DeadlineToAccept *time.Time    `json:"deadlineToAccept,omitempty"`
}

// AcceptContractData is returned by POST /my/contracts/{id}/accept.
type AcceptContractData struct {
	Agent    Agent    `json:"agent"`
	Contract Contract `json:"contract"`
}

type WaypointOrbital struct {
	Symbol string `json:"symbol"`
}

type WaypointTrait struct {
	Symbol      string `json:"symbol"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Waypoint is a location inside a star system.
type Waypoint struct {
	Symbol       string            `json:"symbol"`
	Type         string            `json:"type"`
	SystemSymbol string            `json:"systemSymbol"`
	X            int               `json:"x"`
	Y            int               `json:"y"`
	Orbitals     []WaypointOrbital `json:"orbitals"`
	Traits       []WaypointTrait   `json:"traits"`
}

// ServerStatus is the raw outcome of a reachability check.
type ServerStatus struct {
	StatusCode int
	Status     string
	Body       string
}

// OK reports whether the server answered 200.
func (s ServerStatus) OK() bool {
	return s.StatusCode == 200
}
