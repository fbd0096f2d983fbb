package config

import (
	"os"
	"strings"
	"testing"
)

func TestLoadEnv_Defaults(t *testing.T) {
	for _, k := range []string{"SPACETRADERS_CONFIG_FILE", "SPACETRADERS_LOG_LEVEL", "SPACETRADERS_LOG_FILE"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	e, err := LoadEnv()
	if err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if e.ConfigFile != DefaultFileName {
		t.Errorf("ConfigFile = %q, want %q", e.ConfigFile, DefaultFileName)
	}
	if e.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", e.LogLevel)
	}
	if e.LogFile != "" {
		t.Errorf("LogFile = %q, want empty", e.LogFile)
	}
}

func TestLoadEnv_Overrides(t *testing.T) {
	t.Setenv("SPACETRADERS_CONFIG_FILE", "/tmp/agent.yaml")
	t.Setenv("SPACETRADERS_LOG_LEVEL", "debug")
	t.Setenv("SPACETRADERS_LOG_FILE", "/tmp/st.log")

	e, err := LoadEnv()
	if err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if e.ConfigFile != "/tmp/agent.yaml" || e.LogLevel != "debug" || e.LogFile != "/tmp/st.log" {
		t.Errorf("unexpected env: %+v", e)
	}
}

type envTestConfig struct {
	Timeout int `env:"SPACETRADERS_TEST_TIMEOUT" envDefault:"5"`
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("SPACETRADERS_TEST_TIMEOUT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
