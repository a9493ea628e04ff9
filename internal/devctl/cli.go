package devctl

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// runUp runs one session, turning SIGINT/SIGTERM into a clean teardown.
// Further signals during teardown are swallowed until the session ends.
func runUp(ctx context.Context, cfg *Config, out io.Writer) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	return fnRunSession(ctx, cfg, out)
}

func runSession(ctx context.Context, cfg *Config, out io.Writer) error {
	sess := NewSession(cfg, out)
	if cfg.StatusAddr != "" {
		stop, err := startStatusServer(cfg, sess)
		if err != nil {
			return err
		}
		defer stop()
	}
	return sess.Run(ctx)
}

// MainWithArgs is a testable variant of Main that accepts args explicitly.
// It returns an exit code (0 for success or interrupt, 1 on any failure).
func MainWithArgs(args []string) int {
	return mainWith(DefaultConfig(), args, os.Stdout)
}

func mainWith(cfg *Config, args []string, out io.Writer) int {
	root := buildRootCmdWith(cfg)
	root.SetArgs(args)
	root.SetOut(out)
	if err := root.ExecuteContext(context.Background()); err != nil {
		errl("%v", err)
		return 1
	}
	return 0
}

// Main returns an exit code for use by cmd/devctl.
func Main() int { return MainWithArgs(os.Args[1:]) }
