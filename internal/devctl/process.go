package devctl

import (
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"
)

// reapTimeout bounds the wait for a process after SIGKILL.
const reapTimeout = 5 * time.Second

var (
	childStdout io.Writer = os.Stdout
	childStderr io.Writer = os.Stderr
)

// ServiceState is the lifecycle state of one child process.
type ServiceState string

const (
	ServiceRunning ServiceState = "running"
	ServiceExited  ServiceState = "exited"
	ServiceStopped ServiceState = "stopped"
	ServiceKilled  ServiceState = "killed"
)

// Service is the orchestrator's handle on one long-running child process.
// A handle is never restarted; once the process is reaped, signalling it is a no-op.
type Service struct {
	Name    string
	Command []string
	Dir     string

	cmd       *exec.Cmd
	startedAt time.Time
	done      chan struct{}

	mu       sync.Mutex
	state    ServiceState
	waitErr  error
	termSent bool
	killSent bool
}

// startService spawns argv in dir as a background process in its own process group.
func startService(name string, argv []string, dir string) (*Service, error) {
	if len(argv) == 0 {
		return nil, spawnError{service: name, err: errors.New("empty command")}
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = dir
	cmd.Env = os.Environ()
	cmd.Stdout = childStdout
	cmd.Stderr = childStderr
	cmd.SysProcAttr = sysProcAttr()
	info("Running command: %s (in %s)", strings.Join(argv, " "), dir)
	if err := cmd.Start(); err != nil {
		spawnsTotal.WithLabelValues(name, "error").Inc()
		return nil, spawnError{service: name, err: err}
	}
	spawnsTotal.WithLabelValues(name, "ok").Inc()
	s := &Service{
		Name:      name,
		Command:   append([]string(nil), argv...),
		Dir:       dir,
		cmd:       cmd,
		startedAt: time.Now(),
		done:      make(chan struct{}),
		state:     ServiceRunning,
	}
	go s.reap()
	return s, nil
}

func (s *Service) reap() {
	err := s.cmd.Wait()
	s.mu.Lock()
	s.waitErr = err
	switch {
	case s.killSent:
		s.state = ServiceKilled
	case s.termSent:
		s.state = ServiceStopped
	default:
		s.state = ServiceExited
	}
	s.mu.Unlock()
	close(s.done)
}

// Done is closed once the process has been reaped.
func (s *Service) Done() <-chan struct{} { return s.done }

// Pid returns the OS process id.
func (s *Service) Pid() int { return s.cmd.Process.Pid }

// StartedAt returns the spawn time.
func (s *Service) StartedAt() time.Time { return s.startedAt }

func (s *Service) State() ServiceState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Err returns the wait error once the process has exited.
func (s *Service) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.waitErr
}

func (s *Service) exited() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// Terminate asks the service's process group to shut down gracefully.
func (s *Service) Terminate() error {
	if s.exited() {
		return nil
	}
	s.mu.Lock()
	s.termSent = true
	s.mu.Unlock()
	return terminateProcess(s.cmd.Process)
}

// Kill forcibly stops the service's process group.
func (s *Service) Kill() error {
	if s.exited() {
		return nil
	}
	s.mu.Lock()
	s.killSent = true
	s.mu.Unlock()
	return killProcess(s.cmd.Process)
}

// awaitExit waits up to grace for the process to exit and kills it otherwise.
// It reports whether a kill was needed.
func (s *Service) awaitExit(grace time.Duration) (bool, error) {
	timer := time.NewTimer(grace)
	defer timer.Stop()
	select {
	case <-s.done:
		return false, nil
	case <-timer.C:
	}
	warn("%s did not exit within %s, killing (pid %d)", s.Name, grace, s.Pid())
	if err := s.Kill(); err != nil {
		return true, err
	}
	select {
	case <-s.done:
		return true, nil
	case <-time.After(reapTimeout):
		return true, errors.New(s.Name + ": process not reaped after kill")
	}
}

// StopOutcome records how one service was brought down.
type StopOutcome struct {
	Name   string
	Killed bool
	Err    error
}

// ProcManager tracks started services in launch order.
type ProcManager struct {
	mu    sync.Mutex
	procs []*Service
}

func NewProcManager() *ProcManager { return &ProcManager{} }

func (pm *ProcManager) Add(s *Service) {
	pm.mu.Lock()
	pm.procs = append(pm.procs, s)
	pm.mu.Unlock()
}

// Services returns the tracked services in launch order.
func (pm *ProcManager) Services() []*Service {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	return append([]*Service(nil), pm.procs...)
}

// StopAll sends a graceful terminate to every tracked service, then waits on each
// in launch order with its own grace window, killing any that outlive it.
// A failure on one service never prevents handling the next.
func (pm *ProcManager) StopAll(grace time.Duration) []StopOutcome {
	pm.mu.Lock()
	procs := append([]*Service(nil), pm.procs...)
	pm.procs = nil
	pm.mu.Unlock()

	for _, s := range procs {
		if err := s.Terminate(); err != nil {
			warn("terminate %s: %v", s.Name, err)
		}
	}
	out := make([]StopOutcome, 0, len(procs))
	for _, s := range procs {
		killed, err := s.awaitExit(grace)
		mode := "graceful"
		if killed {
			mode = "forced"
		}
		terminationsTotal.WithLabelValues(s.Name, mode).Inc()
		if err != nil {
			errl("stop %s: %v", s.Name, err)
		}
		out = append(out, StopOutcome{Name: s.Name, Killed: killed, Err: err})
	}
	return out
}
