package devctl

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"pricememory/internal/httpapi"
)

const statusShutdownTimeout = 5 * time.Second

// startStatusServer serves the session status API on addr until the returned
// stop func is called.
func startStatusServer(cfg *Config, svc httpapi.Service) (func(), error) {
	httpapi.SetLogger(Logger())
	httpapi.SetCORSOptions(envBool("DEVCTL_STATUS_CORS", true), []string{
		cfg.frontendURL(),
		fmt.Sprintf("http://127.0.0.1:%d", cfg.FrontendPort),
	}, nil, nil)

	ln, err := net.Listen("tcp", cfg.StatusAddr)
	if err != nil {
		return nil, fmt.Errorf("status server: %w", err)
	}
	srv := httpapi.NewServer(cfg.StatusAddr, svc)
	go func() {
		info("status API listening on http://%s", ln.Addr())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errl("status server: %v", err)
		}
	}()
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), statusShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			warn("status server shutdown: %v", err)
		}
	}, nil
}
