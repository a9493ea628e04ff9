package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds the optional project overrides for a dev session.
// Zero values mean "unspecified" and are replaced by defaults in devctl.
type Config struct {
	BackendDir     string   `json:"backend_dir" yaml:"backend_dir" toml:"backend_dir"`
	FrontendDir    string   `json:"frontend_dir" yaml:"frontend_dir" toml:"frontend_dir"`
	BackendPort    int      `json:"backend_port" yaml:"backend_port" toml:"backend_port"`
	FrontendPort   int      `json:"frontend_port" yaml:"frontend_port" toml:"frontend_port"`
	LaunchDelayMS  int      `json:"launch_delay_ms" yaml:"launch_delay_ms" toml:"launch_delay_ms"`
	GraceTimeoutMS int      `json:"grace_timeout_ms" yaml:"grace_timeout_ms" toml:"grace_timeout_ms"`
	PythonModules  []string `json:"python_modules" yaml:"python_modules" toml:"python_modules"`
	StatusAddr     string   `json:"status_addr" yaml:"status_addr" toml:"status_addr"`
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	if cfg.BackendPort < 0 || cfg.BackendPort > 65535 {
		return cfg, fmt.Errorf("backend_port out of range: %d", cfg.BackendPort)
	}
	if cfg.FrontendPort < 0 || cfg.FrontendPort > 65535 {
		return cfg, fmt.Errorf("frontend_port out of range: %d", cfg.FrontendPort)
	}
	if cfg.LaunchDelayMS < 0 || cfg.GraceTimeoutMS < 0 {
		return cfg, fmt.Errorf("durations must not be negative")
	}
	return cfg, nil
}
