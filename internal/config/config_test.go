package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hazelsoft/userdir/internal/config"
)

func TestNew(t *testing.T) {
	cfgJSON := `{
  "app": {"env": "development", "log_level": "debug"},
  "server": {"port": 8080, "read_timeout": "10s", "shutdown_timeout": "5s", "max_body_bytes": 1048576},
  "db": {"driver": "memory", "ping_timeout": "5s"}
}`

	cfgFile := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(cfgFile, []byte(cfgJSON), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	opts, err := config.New(cfgFile)
	if err != nil {
		t.Fatalf("config.New(%q) = %v, want no error", cfgFile, err)
	}

	if opts.App.Env != "development" {
		t.Errorf("opts.App.Env = %q, want: %q", opts.App.Env, "development")
	}
	if opts.Server.Port != 8080 {
		t.Errorf("opts.Server.Port = %d, want: 8080", opts.Server.Port)
	}
	if opts.Server.ReadTimeout.Duration != 10*time.Second {
		t.Errorf("opts.Server.ReadTimeout = %v, want: 10s", opts.Server.ReadTimeout.Duration)
	}
	if opts.DB.Driver != "memory" {
		t.Errorf("opts.DB.Driver = %q, want: %q", opts.DB.Driver, "memory")
	}
}

func TestNew_EnvOverrides(t *testing.T) {
	cfgJSON := `{
  "app": {"env": "development"},
  "server": {"port": 8080},
  "db": {"driver": "memory"}
}`

	cfgFile := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(cfgFile, []byte(cfgJSON), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "pgx")

	opts, err := config.New(cfgFile)
	if err != nil {
		t.Fatalf("config.New(%q) = %v, want no error", cfgFile, err)
	}

	if opts.Server.Port != 9090 {
		t.Errorf("opts.Server.Port = %d, want: 9090", opts.Server.Port)
	}
	if opts.DB.Driver != "pgx" {
		t.Errorf("opts.DB.Driver = %q, want: %q", opts.DB.Driver, "pgx")
	}
}

func TestNew_MissingFile(t *testing.T) {
	if _, err := config.New(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("config.New(missing) = nil, want an error")
	}
}
