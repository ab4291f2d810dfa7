package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/hazelsoft/userdir/internal/pkg/timex"
)

type AppOptions struct {
	Env      string `json:"env,omitempty"`
	LogLevel string `json:"log_level,omitempty"`
}

type ServerOptions struct {
	URL             string         `json:"url,omitempty"`
	Port            int            `json:"port,omitempty"`
	ReadTimeout     timex.Duration `json:"read_timeout,omitempty"`
	WriteTimeout    timex.Duration `json:"write_timeout,omitempty"`
	IdleTimeout     timex.Duration `json:"idle_timeout,omitempty"`
	ShutdownTimeout timex.Duration `json:"shutdown_timeout,omitempty"`
	MaxBodyBytes    int64          `json:"max_body_bytes,omitempty"`
}

// DBOptions configures the durable store. Driver "memory" selects the
// in-process repository instead of a database connection.
type DBOptions struct {
	Driver          string         `json:"driver,omitempty"`
	MaxOpenConns    int            `json:"max_open_conns,omitempty"`
	MaxIdleConns    int            `json:"max_idle_conns,omitempty"`
	ConnMaxIdleTime timex.Duration `json:"conn_max_idle_time,omitempty"`
	ConnMaxLifetime timex.Duration `json:"conn_max_lifetime,omitempty"`
	PingTimeout     timex.Duration `json:"ping_timeout,omitempty"`
}

type Options struct {
	App    *AppOptions    `json:"app,omitempty"`
	Server *ServerOptions `json:"server,omitempty"`
	DB     *DBOptions     `json:"db,omitempty"`
}

func (o *Options) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("app", o.App),
		slog.Any("server", o.Server),
		slog.Any("db", o.DB),
	)
}

func New(cfgFile string) (*Options, error) {
	slog.Info("Loading config...")
	opts, err := parseCfgFile(cfgFile)
	if err != nil {
		return nil, err
	}

	if err := overrideWithEnv(opts); err != nil {
		return nil, err
	}

	slog.Info("Config loaded.", "config_file", cfgFile, slog.Any("config", opts))
	return opts, nil
}

func parseCfgFile(cfgFile string) (*Options, error) {
	cfgFile = filepath.Clean(cfgFile)
	configFile, err := os.ReadFile(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", cfgFile, err)
	}

	var opts Options
	if err := json.Unmarshal(configFile, &opts); err != nil {
		return nil, fmt.Errorf("decode json config %s: %w", cfgFile, err)
	}

	return &opts, nil
}

func overrideWithEnv(opts *Options) error {
	if env, ok := os.LookupEnv("ENV"); ok {
		opts.App.Env = env
	}

	if url, ok := os.LookupEnv("URL"); ok {
		opts.Server.URL = url
	}

	if portStr, ok := os.LookupEnv("PORT"); ok {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return err
		}
		opts.Server.Port = port
	}

	if driver, ok := os.LookupEnv("DB_DRIVER"); ok {
		opts.DB.Driver = driver
	}
	return nil
}
