package devctl

import (
	"fmt"
	"path/filepath"

	"pricememory/internal/common/fsutil"
)

const (
	backendEnvFile     = ".env"
	backendEnvTemplate = ".env.example"
	frontendEnvFile    = ".env.local"
)

// frontendEnvContent is the single line written to the frontend env file.
func frontendEnvContent(backendPort int) string {
	return fmt.Sprintf("VITE_API_URL=http://localhost:%d/api/v1\n", backendPort)
}

// setupEnvironment creates the backend and frontend env files when absent.
// Existing files are never touched.
func setupEnvironment(cfg *Config) error {
	info("Setting up environment...")

	backendEnv := cfg.path(cfg.BackendDir, backendEnvFile)
	rel := filepath.ToSlash(filepath.Join(cfg.BackendDir, backendEnvFile))
	if !fsutil.PathExists(backendEnv) {
		example := cfg.path(cfg.BackendDir, backendEnvTemplate)
		warn("%s does not exist, copying from %s...", rel, backendEnvTemplate)
		if !fsutil.PathExists(example) {
			errl("%s does not exist", filepath.ToSlash(filepath.Join(cfg.BackendDir, backendEnvTemplate)))
			return configTemplateMissingError{path: example}
		}
		if err := fsutil.CopyFile(example, backendEnv); err != nil {
			return fmt.Errorf("create %s: %w", rel, err)
		}
		info("Created %s; edit it as needed", rel)
	}

	frontendEnv := cfg.path(cfg.FrontendDir, frontendEnvFile)
	rel = filepath.ToSlash(filepath.Join(cfg.FrontendDir, frontendEnvFile))
	if !fsutil.PathExists(frontendEnv) {
		warn("%s does not exist, writing defaults...", rel)
		if err := fsutil.WriteFileAtomic(frontendEnv, []byte(frontendEnvContent(cfg.BackendPort)), 0o644); err != nil {
			return fmt.Errorf("create %s: %w", rel, err)
		}
		info("Created %s", rel)
	}
	return nil
}
