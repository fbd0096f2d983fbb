package app

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/Guerrilla-Interactive/spacetraders-cli/app/spacetraders"
	config "github.com/Guerrilla-Interactive/spacetraders-cli/internal"
)

// Gateway is the set of remote operations command handlers can call.
// *spacetraders.Client implements it.
type Gateway interface {
	Status(ctx context.Context) (spacetraders.ServerStatus, error)
	Register(ctx context.Context, req spacetraders.RegisterRequest) (spacetraders.RegisterData, error)
	GetMyAgent(ctx context.Context) (spacetraders.Agent, error)
	GetMyShips(ctx context.Context) ([]spacetraders.Ship, error)
	GetShipNav(ctx context.Context, symbol string) (spacetraders.ShipNav, error)
	GetContracts(ctx context.Context) ([]spacetraders.Contract, error)
	GetContract(ctx context.Context, id string) (spacetraders.Contract, error)
	AcceptContract(ctx context.Context, id string) (spacetraders.AcceptContractData, error)
	GetSystemWaypoints(ctx context.Context, system string) ([]spacetraders.Waypoint, error)
}

// GatewayFactory builds a Gateway for one client configuration.
type GatewayFactory func(cfg spacetraders.Configuration, logger *log.Logger) Gateway

// DialSpaceTraders is the production GatewayFactory.
func DialSpaceTraders(cfg spacetraders.Configuration, logger *log.Logger) Gateway {
	return spacetraders.NewClient(cfg, spacetraders.WithLogger(logger))
}

// Registration is what a successful register call changes in the session.
type Registration struct {
	Token        string
	CallSign     string
	Faction      string
	Headquarters string
}

// Session is the state of one run of the REPL: the loaded config, where it
// lives on disk, and how to reach the API with it.
type Session struct {
	ID string

	cfg    config.GameConfig
	path   string
	dial   GatewayFactory
	logger *log.Logger
}

// NewSession wraps cfg loaded from path. A nil dial uses DialSpaceTraders.
func NewSession(cfg config.GameConfig, path string, dial GatewayFactory, logger *log.Logger) *Session {
	if dial == nil {
		dial = DialSpaceTraders
	}
	id := uuid.NewString()
	if logger == nil {
		logger = log.Default()
	}
	return &Session{
		ID:     id,
		cfg:    cfg,
		path:   path,
		dial:   dial,
		logger: logger.With("session", id),
	}
}

// Config returns a copy of the current config.
func (s *Session) Config() config.GameConfig {
	return s.cfg
}

// ConfigPath is the file the session saves to.
func (s *Session) ConfigPath() string {
	return s.path
}

// Logger returns the session-scoped logger.
func (s *Session) Logger() *log.Logger {
	return s.logger
}

// ClientConfig derives the API client configuration from the current config.
func (s *Session) ClientConfig() spacetraders.Configuration {
	return spacetraders.Configuration{
		BasePath:    s.cfg.BasePath,
		BearerToken: s.cfg.AccessToken,
		Timeout:     s.cfg.RequestTimeout(),
	}
}

// Gateway returns a Gateway built from ClientConfig. A new one is built on
// every call, so a token applied by registration is used immediately.
func (s *Session) Gateway() Gateway {
	return s.dial(s.ClientConfig(), s.logger)
}

// ApplyRegistration stores the identity returned by the register call.
func (s *Session) ApplyRegistration(r Registration) {
	s.cfg.AccessToken = r.Token
	s.cfg.CallSign = r.CallSign
	s.cfg.Faction = r.Faction
	if r.Headquarters != "" {
		s.cfg.Headquarters = r.Headquarters
	}
	s.logger.Info("registered", "call_sign", r.CallSign, "faction", r.Faction)
}

// Replace swaps the whole config, e.g. after the file has been rotated.
func (s *Session) Replace(cfg config.GameConfig) {
	s.cfg = cfg
}

// Save writes the current config to the session path.
func (s *Session) Save() error {
	if err := config.Save(s.cfg, s.path); err != nil {
		return fmt.Errorf("save session config: %w", err)
	}
	s.logger.Debug("config saved", "path", s.path)
	return nil
}

// Shutdown persists the session before the process leaves the REPL.
func (s *Session) Shutdown() error {
	return s.Save()
}

// Shared styles.
var (
	TitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF"))
	HeaderStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFA500")).Padding(0, 1)
	CellStyle      = lipgloss.NewStyle().Padding(0, 1)
	BorderStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#555555"))
	HighlightStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFA500"))
	HelpStyle      = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#888888"))
	ErrorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F"))
	PathStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)
