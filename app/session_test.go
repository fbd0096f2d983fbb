package app

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"

	config "github.com/Guerrilla-Interactive/spacetraders-cli/internal"
	"github.com/Guerrilla-Interactive/spacetraders-cli/app/spacetraders"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestClientConfigFromConfig(t *testing.T) {
	cfg := config.GameConfig{RequestTimeoutSecs: 7, BasePath: "http://example.test/v2", AccessToken: "abc"}
	s := NewSession(cfg, "x.json", nil, quietLogger())

	want := spacetraders.Configuration{BasePath: "http://example.test/v2", BearerToken: "abc", Timeout: 7 * time.Second}
	if diff := cmp.Diff(want, s.ClientConfig()); diff != "" {
		t.Errorf("ClientConfig mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyRegistrationUpdatesClientConfig(t *testing.T) {
	tokens := []string{"tkn123", "a", "eyJhbGciOiJSUzI1NiIsInR5cCI6IkpXVCJ9.x.y", "with space"}
	for _, tok := range tokens {
		s := NewSession(config.Default(), "x.json", nil, quietLogger())
		s.ApplyRegistration(Registration{Token: tok, CallSign: "BADGER", Faction: "COSMIC", Headquarters: "X1-DF55-20250Z"})

		cc := s.ClientConfig()
		if cc.BearerToken != tok {
			t.Errorf("BearerToken = %q, want %q", cc.BearerToken, tok)
		}
		if cc.BasePath != config.DefaultBasePath {
			t.Errorf("BasePath = %q, want %q", cc.BasePath, config.DefaultBasePath)
		}
		got := s.Config()
		if got.CallSign != "BADGER" || got.Faction != "COSMIC" || got.Headquarters != "X1-DF55-20250Z" {
			t.Errorf("identity not applied: %+v", got)
		}
	}
}

func TestApplyRegistrationKeepsHeadquartersWhenMissing(t *testing.T) {
	cfg := config.Default()
	cfg.Headquarters = "X1-OLD-A1"
	s := NewSession(cfg, "x.json", nil, quietLogger())
	s.ApplyRegistration(Registration{Token: "t", CallSign: "NEW", Faction: "VOID"})
	if s.Config().Headquarters != "X1-OLD-A1" {
		t.Errorf("Headquarters = %q", s.Config().Headquarters)
	}
}

func TestGatewayUsesCurrentClientConfig(t *testing.T) {
	var seen []spacetraders.Configuration
	dial := func(cfg spacetraders.Configuration, _ *log.Logger) Gateway {
		seen = append(seen, cfg)
		return spacetraders.NewClient(cfg)
	}
	s := NewSession(config.Default(), "x.json", dial, quietLogger())

	s.Gateway()
	s.ApplyRegistration(Registration{Token: "fresh", CallSign: "BADGER", Faction: "COSMIC"})
	s.Gateway()

	if len(seen) != 2 {
		t.Fatalf("dial called %d times, want 2", len(seen))
	}
	if seen[0].BearerToken != "" || seen[1].BearerToken != "fresh" {
		t.Errorf("unexpected tokens: %q then %q", seen[0].BearerToken, seen[1].BearerToken)
	}
}

func TestShutdownSavesSessionConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spacetraders.json")
	s := NewSession(config.Default(), path, nil, quietLogger())
	s.ApplyRegistration(Registration{Token: "tkn123", CallSign: "BADGER", Faction: "COSMIC"})

	if err := s.Shutdown(); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	got, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(s.Config(), got); diff != "" {
		t.Errorf("saved config mismatch (-want +got):\n%s", diff)
	}
}

func TestReplace(t *testing.T) {
	cfg := config.Default()
	cfg.AccessToken = "old"
	s := NewSession(cfg, "x.json", nil, quietLogger())
	s.Replace(config.Default())
	if s.ClientConfig().BearerToken != "" {
		t.Errorf("token survived Replace")
	}
}

func TestSessionIDsAreUnique(t *testing.T) {
	a := NewSession(config.Default(), "x.json", nil, quietLogger())
	b := NewSession(config.Default(), "x.json", nil, quietLogger())
	if a.ID == "" || a.ID == b.ID {
		t.Errorf("expected distinct non-empty IDs, got %q and %q", a.ID, b.ID)
	}
}
