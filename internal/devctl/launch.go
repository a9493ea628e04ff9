package devctl

import "context"

func startBackend(ctx context.Context, cfg *Config) (*Service, error) {
	info("Starting backend service...")
	return launch(ctx, "backend", cfg.path(cfg.BackendDir), backendCandidates(cfg.BackendPort))
}

func startFrontend(ctx context.Context, cfg *Config) (*Service, error) {
	info("Starting frontend service...")
	return launch(ctx, "frontend", cfg.path(cfg.FrontendDir), frontendCandidates())
}

// launch selects a candidate and spawns it in dir. Detection ignores cancellation
// so an interrupt never changes the selected tool; an interrupt that arrived by
// the time detection finishes prevents the spawn.
func launch(ctx context.Context, name, dir string, candidates []Candidate) (*Service, error) {
	c, err := selectCandidate(context.WithoutCancel(ctx), dir, candidates)
	if err != nil {
		return nil, spawnError{service: name, err: err}
	}
	if err := ctx.Err(); err != nil {
		debug("[launch] %s not started: %v", name, err)
		return nil, err
	}
	return fnStartService(name, c.Command, dir)
}
