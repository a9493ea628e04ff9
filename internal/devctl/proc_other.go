//go:build !unix

package devctl

import (
	"errors"
	"os"
	"syscall"
)

func sysProcAttr() *syscall.SysProcAttr { return &syscall.SysProcAttr{} }

// No SIGTERM equivalent for console children here; graceful terminate is a kill.
func terminateProcess(p *os.Process) error { return killProcess(p) }

func killProcess(p *os.Process) error {
	if p == nil {
		return nil
	}
	if err := p.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return err
	}
	return nil
}
