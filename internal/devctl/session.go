package devctl

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"

	"pricememory/pkg/types"
)

// State is an orchestrator state.
type State string

const (
	StateInit                State = "INIT"
	StateDependenciesChecked State = "DEPENDENCIES_CHECKED"
	StateConfigReady         State = "CONFIG_READY"
	StateBackendStarted      State = "BACKEND_STARTED"
	StateFrontendStarted     State = "FRONTEND_STARTED"
	StateRunning             State = "RUNNING"
	StateExited              State = "EXITED"
	StateInterrupted         State = "INTERRUPTED"
	StateTerminating         State = "TERMINATING"
	StateStopped             State = "STOPPED"
	StateKilled              State = "KILLED"
	StateAborted             State = "ABORTED"
)

var allStates = []State{
	StateInit, StateDependenciesChecked, StateConfigReady, StateBackendStarted,
	StateFrontendStarted, StateRunning, StateExited, StateInterrupted,
	StateTerminating, StateStopped, StateKilled, StateAborted,
}

// Terminal reports whether no further transition can happen.
func (s State) Terminal() bool {
	switch s {
	case StateExited, StateStopped, StateKilled, StateAborted:
		return true
	}
	return false
}

const (
	msgStopped = "Services stopped"
	msgExited  = "All services exited"
)

// Session runs one dev environment: preconditions, config files, backend, frontend,
// then a join that ends on child exit or interrupt. A Session is single-use.
type Session struct {
	ID string

	cfg       *Config
	out       io.Writer
	procs     *ProcManager
	publisher EventPublisher
	startedAt time.Time

	mu       sync.RWMutex
	state    State
	services []*Service
}

// NewSession prepares a session; banners and addresses are printed to out.
func NewSession(cfg *Config, out io.Writer) *Session {
	if out == nil {
		out = os.Stdout
	}
	return &Session{
		ID:        uuid.NewString(),
		cfg:       cfg,
		out:       out,
		procs:     NewProcManager(),
		publisher: noopPublisher{},
		startedAt: time.Now(),
		state:     StateInit,
	}
}

// SetPublisher installs an EventPublisher for lifecycle events.
func (s *Session) SetPublisher(p EventPublisher) {
	if p == nil {
		s.publisher = noopPublisher{}
		return
	}
	s.publisher = p
}

func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Session) transition(st State) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
	setStateMetric(st)
	debug("[session] state=%s", st)
	s.publisher.Publish(Event{Name: "state", Fields: map[string]any{"state": string(st)}})
}

func (s *Session) track(svc *Service) {
	s.procs.Add(svc)
	s.mu.Lock()
	s.services = append(s.services, svc)
	s.mu.Unlock()
	s.publisher.Publish(Event{Name: "spawn", Service: svc.Name, Fields: map[string]any{"pid": svc.Pid(), "command": strings.Join(svc.Command, " ")}})
}

// Run drives the session to a terminal state. An interrupt (ctx cancellation) once
// services are launching is a clean stop, not an error; every other failure aborts
// the session and is returned.
func (s *Session) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, "Price Memory dev environment")
	fmt.Fprintln(s.out, strings.Repeat("=", 50))
	info("session %s", s.ID)
	s.transition(StateInit)

	if err := fnCheckDependencies(ctx, s.cfg); err != nil {
		if hint := DependencyHint(err); hint != "" {
			fmt.Fprintf(s.out, "Please run: %s\n", hint)
		}
		return s.abort("Dependency check failed; install dependencies first", err)
	}
	s.transition(StateDependenciesChecked)

	if err := fnSetupEnvironment(s.cfg); err != nil {
		return s.abort("Environment setup failed", err)
	}
	s.transition(StateConfigReady)

	// Preconditions and config run to completion; an interrupt during them stops
	// the session before anything is spawned.
	if ctx.Err() != nil {
		return s.teardown()
	}

	fmt.Fprintln(s.out, "\nStarting services...")
	backend, err := fnStartBackend(ctx, s.cfg)
	if err != nil && ctx.Err() != nil {
		return s.teardown()
	}
	if err != nil {
		s.publisher.Publish(Event{Name: "spawn_failed", Service: "backend", Fields: map[string]any{"error": err.Error()}})
		return s.abort("Backend failed to start", err)
	}
	s.track(backend)
	s.transition(StateBackendStarted)

	info("Waiting %s for the backend to start...", s.cfg.LaunchDelay)
	timer := time.NewTimer(s.cfg.LaunchDelay)
	select {
	case <-timer.C:
	case <-ctx.Done():
		timer.Stop()
		return s.teardown()
	}

	if ctx.Err() != nil {
		return s.teardown()
	}
	frontend, err := fnStartFrontend(ctx, s.cfg)
	if err != nil && ctx.Err() != nil {
		return s.teardown()
	}
	if err != nil {
		s.publisher.Publish(Event{Name: "spawn_failed", Service: "frontend", Fields: map[string]any{"error": err.Error()}})
		s.procs.StopAll(s.cfg.GraceTimeout)
		return s.abort("Frontend failed to start", err)
	}
	s.track(frontend)
	s.transition(StateFrontendStarted)

	s.printAddresses()
	s.transition(StateRunning)
	return s.join(ctx, backend, frontend)
}

// join waits for the services in launch order; an interrupt at any point tears all down.
func (s *Session) join(ctx context.Context, svcs ...*Service) error {
	for _, svc := range svcs {
		select {
		case <-svc.Done():
			info("%s exited (%v)", svc.Name, exitDesc(svc.Err()))
			s.publisher.Publish(Event{Name: "exit", Service: svc.Name, Fields: map[string]any{"state": string(svc.State())}})
		case <-ctx.Done():
			return s.teardown()
		}
	}
	s.transition(StateExited)
	fmt.Fprintln(s.out, msgExited)
	return nil
}

func (s *Session) teardown() error {
	s.transition(StateInterrupted)
	fmt.Fprintln(s.out, "\nStopping services...")
	s.transition(StateTerminating)

	var forced []string
	for _, o := range s.procs.StopAll(s.cfg.GraceTimeout) {
		s.publisher.Publish(Event{Name: "terminate", Service: o.Name})
		if o.Killed {
			forced = append(forced, o.Name)
			s.publisher.Publish(Event{Name: "kill", Service: o.Name})
		}
	}
	if len(forced) > 0 {
		s.transition(StateKilled)
		fmt.Fprintf(s.out, "%s (killed: %s)\n", msgStopped, strings.Join(forced, ", "))
		return nil
	}
	s.transition(StateStopped)
	fmt.Fprintln(s.out, msgStopped)
	return nil
}

func (s *Session) abort(msg string, err error) error {
	fmt.Fprintln(s.out, msg)
	s.transition(StateAborted)
	return err
}

func (s *Session) printAddresses() {
	fmt.Fprintln(s.out, "\nServices started")
	t := tablewriter.NewWriter(s.out)
	t.Header("Service", "Address")
	_ = t.Append([]string{"Frontend", s.cfg.frontendURL()})
	_ = t.Append([]string{"Backend", s.cfg.backendURL()})
	_ = t.Append([]string{"API docs", s.cfg.backendURL() + "/docs"})
	_ = t.Render()
	fmt.Fprintln(s.out, "\nPress Ctrl+C to stop services")
}

// Status returns a point-in-time view of the session for the status API.
func (s *Session) Status() types.SessionStatus {
	s.mu.RLock()
	st := s.state
	svcs := append([]*Service(nil), s.services...)
	s.mu.RUnlock()

	out := types.SessionStatus{
		SessionID:   s.ID,
		State:       string(st),
		StartedUnix: s.startedAt.Unix(),
		FrontendURL: s.cfg.frontendURL(),
		BackendURL:  s.cfg.backendURL(),
		Services:    make([]types.ServiceStatus, 0, len(svcs)),
	}
	for _, svc := range svcs {
		ss := types.ServiceStatus{
			Name:        svc.Name,
			Command:     strings.Join(svc.Command, " "),
			Dir:         svc.Dir,
			PID:         svc.Pid(),
			State:       string(svc.State()),
			StartedUnix: svc.StartedAt().Unix(),
		}
		if svc.State() == ServiceRunning {
			if ps, err := fnProcessStats(ss.PID); err == nil {
				ss.RSSBytes = ps.RSSBytes
				ss.CPUPercent = ps.CPUPercent
			}
		}
		out.Services = append(out.Services, ss)
	}
	return out
}

func exitDesc(err error) string {
	if err == nil {
		return "status 0"
	}
	return err.Error()
}
