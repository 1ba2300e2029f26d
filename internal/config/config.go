package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Map       MapConfig       `yaml:"map"`
	Geo       GeoConfig       `yaml:"geo"`
	Tailscale TailscaleConfig `yaml:"tailscale"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type DatabaseConfig struct {
	// Backend selects the slot store: "sqlite" (default) or "file".
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
}

// MapConfig is the fallback map view used when geolocation fails or is
// disabled.
type MapConfig struct {
	DefaultLat float64 `yaml:"default_lat"`
	DefaultLng float64 `yaml:"default_lng"`
	Zoom       int     `yaml:"zoom"`
}

type GeoConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Endpoint string `yaml:"endpoint"`
}

type TailscaleConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Hostname string `yaml:"hostname"`
	StateDir string `yaml:"state_dir"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. Env vars use the prefix MAPFIT_ and underscore-separated paths:
//
//	MAPFIT_SERVER_HOST, MAPFIT_SERVER_PORT,
//	MAPFIT_DB_BACKEND, MAPFIT_DB_PATH,
//	MAPFIT_GEO_ENDPOINT
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)
	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("MAPFIT_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("MAPFIT_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("MAPFIT_DB_BACKEND"); v != "" {
		cfg.Database.Backend = v
	}
	if v := os.Getenv("MAPFIT_DB_PATH"); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv("MAPFIT_GEO_ENDPOINT"); v != "" {
		cfg.Geo.Endpoint = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Database.Backend == "" {
		cfg.Database.Backend = "sqlite"
	}
	if cfg.Map.Zoom == 0 {
		cfg.Map.Zoom = 13
	}
}

func (c *Config) validate() error {
	if c.Server.Port == 0 {
		return fmt.Errorf("server.port is required")
	}
	if c.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}
	if c.Database.Backend != "sqlite" && c.Database.Backend != "file" {
		return fmt.Errorf("database.backend must be sqlite or file, got %q", c.Database.Backend)
	}
	if c.Geo.Enabled && c.Geo.Endpoint == "" {
		return fmt.Errorf("geo.endpoint is required when geo.enabled")
	}
	if c.Tailscale.Enabled && c.Tailscale.Hostname == "" {
		return fmt.Errorf("tailscale.hostname is required when tailscale.enabled")
	}
	return nil
}
