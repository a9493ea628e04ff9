package devctl

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"
)

// probeTimeout bounds a single availability probe such as `uv --version`.
const probeTimeout = 15 * time.Second

// Cmd describes a short-lived command.
type Cmd struct {
	Path  string
	Args  []string
	Env   map[string]string // additional env vars
	Dir   string            // working directory
	Quiet bool              // discard stdout/stderr
}

// RunCmd runs c to completion.
func RunCmd(ctx context.Context, c Cmd) error {
	cmd := exec.CommandContext(ctx, c.Path, c.Args...)
	if c.Dir != "" {
		cmd.Dir = c.Dir
	}
	// inherit environment
	cmd.Env = os.Environ()
	for k, v := range c.Env {
		cmd.Env = append(cmd.Env, fmt.Sprintf("%s=%s", k, v))
	}
	if c.Quiet {
		cmd.Stdout = io.Discard
		cmd.Stderr = io.Discard
	} else {
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}
	return cmd.Run()
}

// probe runs c quietly and reports whether it exited zero. A missing binary counts as failure.
func probe(ctx context.Context, c Cmd) bool {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()
	c.Quiet = true
	err := RunCmd(ctx, c)
	if err != nil {
		debug("[probe] %s %v failed: %v", c.Path, c.Args, err)
		return false
	}
	debug("[probe] %s %v ok", c.Path, c.Args)
	return true
}
