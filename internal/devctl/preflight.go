package devctl

import (
	"context"
	"fmt"
	"path/filepath"

	"pricememory/internal/common/fsutil"
)

// checkDependencies verifies the Python modules and the frontend node_modules.
// It has no side effects and is not cancellable: the probes run detached from ctx cancellation.
func checkDependencies(ctx context.Context, cfg *Config) error {
	info("Checking dependencies...")
	ctx = context.WithoutCancel(ctx)

	backendDir := cfg.path(cfg.BackendDir)
	syncHint := fmt.Sprintf("cd %s && uv sync", filepath.ToSlash(cfg.BackendDir))
	if !fsutil.IsDir(backendDir) {
		return dependencyMissingError{what: "backend directory " + cfg.BackendDir, hint: syncHint}
	}
	runner, err := selectCandidate(ctx, backendDir, backendCandidates(cfg.BackendPort))
	if err != nil {
		return err
	}
	for _, mod := range cfg.PythonModules {
		argv := append(append([]string(nil), runner.Interpreter...), "-c", "import "+mod)
		if !fnProbe(ctx, Cmd{Path: argv[0], Args: argv[1:], Dir: backendDir}) {
			errl("Python dependency missing: %s", mod)
			return dependencyMissingError{what: "python module " + mod, hint: syncHint}
		}
	}
	info("Python dependencies installed")

	if !fsutil.PathExists(cfg.path(cfg.FrontendDir, "node_modules")) {
		errl("Node.js dependencies missing")
		return dependencyMissingError{
			what: filepath.ToSlash(filepath.Join(cfg.FrontendDir, "node_modules")),
			hint: fmt.Sprintf("cd %s && npm install", filepath.ToSlash(cfg.FrontendDir)),
		}
	}
	info("Node.js dependencies installed")

	warnBusyPorts(map[string]int{"backend": cfg.BackendPort, "frontend": cfg.FrontendPort})
	return nil
}
