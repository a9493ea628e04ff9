package devctl

import (
	"fmt"
	"path/filepath"
	"time"

	"pricememory/internal/common/fsutil"
	"pricememory/internal/config"
)

const (
	defaultBackendDir   = "spider"
	defaultFrontendDir  = "admin"
	defaultBackendPort  = 8000
	defaultFrontendPort = 5173
	defaultLaunchDelay  = 3 * time.Second
	defaultGraceTimeout = 5 * time.Second
)

var defaultPythonModules = []string{"uvicorn", "fastapi", "supabase"}

// Config carries everything one dev session needs. Paths are relative to Root.
type Config struct {
	LogLvl        string
	Root          string
	ConfigFile    string
	StatusAddr    string
	BackendDir    string
	FrontendDir   string
	BackendPort   int
	FrontendPort  int
	LaunchDelay   time.Duration
	GraceTimeout  time.Duration
	PythonModules []string
}

// DefaultConfig returns the built-in settings with environment overrides applied.
func DefaultConfig() *Config {
	return &Config{
		LogLvl:        envStr("DEVCTL_LOG_LEVEL", "info"),
		Root:          envStr("DEVCTL_ROOT", "."),
		ConfigFile:    envStr("DEVCTL_CONFIG", ""),
		StatusAddr:    envStr("DEVCTL_STATUS_ADDR", ""),
		BackendDir:    defaultBackendDir,
		FrontendDir:   defaultFrontendDir,
		BackendPort:   envInt("DEVCTL_BACKEND_PORT", defaultBackendPort),
		FrontendPort:  envInt("DEVCTL_FRONTEND_PORT", defaultFrontendPort),
		LaunchDelay:   envDuration("DEVCTL_LAUNCH_DELAY", defaultLaunchDelay),
		GraceTimeout:  envDuration("DEVCTL_GRACE_TIMEOUT", defaultGraceTimeout),
		PythonModules: append([]string(nil), defaultPythonModules...),
	}
}

// loadFile merges the project file named by ConfigFile, if any. Non-zero file
// values win over built-in defaults; an explicit --status-addr still wins over the file.
func (c *Config) loadFile() error {
	if c.ConfigFile == "" {
		return nil
	}
	p, err := fsutil.ExpandHome(c.ConfigFile)
	if err != nil {
		return err
	}
	fc, err := config.Load(p)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	c.apply(fc)
	return nil
}

func (c *Config) apply(fc config.Config) {
	if fc.BackendDir != "" {
		c.BackendDir = fc.BackendDir
	}
	if fc.FrontendDir != "" {
		c.FrontendDir = fc.FrontendDir
	}
	if fc.BackendPort != 0 {
		c.BackendPort = fc.BackendPort
	}
	if fc.FrontendPort != 0 {
		c.FrontendPort = fc.FrontendPort
	}
	if fc.LaunchDelayMS != 0 {
		c.LaunchDelay = time.Duration(fc.LaunchDelayMS) * time.Millisecond
	}
	if fc.GraceTimeoutMS != 0 {
		c.GraceTimeout = time.Duration(fc.GraceTimeoutMS) * time.Millisecond
	}
	if len(fc.PythonModules) > 0 {
		c.PythonModules = append([]string(nil), fc.PythonModules...)
	}
	if fc.StatusAddr != "" && c.StatusAddr == "" {
		c.StatusAddr = fc.StatusAddr
	}
}

// path joins elem onto the session root.
func (c *Config) path(elem ...string) string {
	return filepath.Join(append([]string{c.Root}, elem...)...)
}

func (c *Config) backendURL() string  { return fmt.Sprintf("http://localhost:%d", c.BackendPort) }
func (c *Config) frontendURL() string { return fmt.Sprintf("http://localhost:%d", c.FrontendPort) }
