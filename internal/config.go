package config

import (
	"errors"
	"fmt"
	"time"
)

// DefaultBasePath is the root of the production SpaceTraders v2 API.
const DefaultBasePath = "https://api.spacetraders.io/v2"

// DefaultFileName is the config file used when no --config-file is given.
const DefaultFileName = "spacetraders.json"

// defaultRequestTimeoutSecs bounds every remote call made with a fresh config.
const defaultRequestTimeoutSecs = 5

// GameConfig represents the session settings stored on disk.
// Identity fields stay empty until the player registers.
type GameConfig struct {
	// General settings
	RequestTimeoutSecs int `json:"request_timeout_secs" yaml:"request_timeout_secs"`

	// Game settings
	BasePath    string `json:"base_path" yaml:"base_path"`
	AccessToken string `json:"access_token" yaml:"access_token"`
	CallSign    string `json:"call_sign" yaml:"call_sign"`
	Faction     string `json:"faction" yaml:"faction"`

	// State
	Headquarters string `json:"headquarters" yaml:"headquarters"`
}

// Default returns the config written the first time a user opts in to create one.
func Default() GameConfig {
	return GameConfig{
		RequestTimeoutSecs: defaultRequestTimeoutSecs,
		BasePath:           DefaultBasePath,
	}
}

// RequestTimeout converts RequestTimeoutSecs to a duration. Zero or negative
// values mean no client-side timeout.
func (c GameConfig) RequestTimeout() time.Duration {
	if c.RequestTimeoutSecs <= 0 {
		return 0
	}
	return time.Duration(c.RequestTimeoutSecs) * time.Second
}

// ErrNotFound is returned by Load when no file exists at the given path.
var ErrNotFound = errors.New("config file not found")

// ParseError reports a config file that exists but does not match the GameConfig schema.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse config file %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
