package devctl

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_DependencyMissingAbortsBeforeSpawn(t *testing.T) {
	spawns := 0
	cleanup := withCLIStubs(t, func() {
		fnCheckDependencies = func(context.Context, *Config) error {
			return dependencyMissingError{what: "python module fastapi", hint: "cd spider && uv sync"}
		}
		fnSetupEnvironment = func(*Config) error { t.Fatal("setup must not run"); return nil }
		fnStartBackend = func(context.Context, *Config) (*Service, error) { spawns++; return nil, nil }
		fnStartFrontend = func(context.Context, *Config) (*Service, error) { spawns++; return nil, nil }
	})
	defer cleanup()

	out := &syncBuffer{}
	s := NewSession(testConfig(t), out)
	err := s.Run(context.Background())
	require.Error(t, err)
	assert.True(t, IsDependencyMissing(err))
	assert.Equal(t, StateAborted, s.State())
	assert.Zero(t, spawns)
	assert.Contains(t, out.String(), "Please run: cd spider && uv sync")
}

func TestSession_ConfigTemplateMissingAborts(t *testing.T) {
	cleanup := withCLIStubs(t, func() {
		fnCheckDependencies = func(context.Context, *Config) error { return nil }
		fnSetupEnvironment = func(*Config) error { return configTemplateMissingError{path: "spider/.env.example"} }
		fnStartBackend = func(context.Context, *Config) (*Service, error) { t.Fatal("backend must not start"); return nil, nil }
	})
	defer cleanup()

	s := NewSession(testConfig(t), &syncBuffer{})
	err := s.Run(context.Background())
	require.Error(t, err)
	assert.True(t, IsConfigTemplateMissing(err))
	assert.Equal(t, StateAborted, s.State())
}

func TestSession_BackendSpawnFailureSkipsFrontend(t *testing.T) {
	frontendCalls := 0
	pub := NewMemoryPublisher()
	cleanup := withCLIStubs(t, func() {
		okChecks()
		fnStartBackend = func(context.Context, *Config) (*Service, error) {
			return nil, spawnError{service: "backend", err: errors.New("exec: \"uv\": not found")}
		}
		fnStartFrontend = func(context.Context, *Config) (*Service, error) { frontendCalls++; return nil, nil }
	})
	defer cleanup()

	out := &syncBuffer{}
	s := NewSession(testConfig(t), out)
	s.SetPublisher(pub)
	err := s.Run(context.Background())
	require.Error(t, err)
	assert.True(t, IsSpawnFailure(err))
	assert.Zero(t, frontendCalls)
	assert.Equal(t, StateAborted, s.State())
	assert.Contains(t, pub.Names(), "spawn_failed")
	assert.Contains(t, out.String(), "Backend failed to start")
}

func TestSession_StateTransitionsPublished(t *testing.T) {
	pub := NewMemoryPublisher()
	cleanup := withCLIStubs(t, func() {
		fnCheckDependencies = func(context.Context, *Config) error { return nil }
		fnSetupEnvironment = func(*Config) error { return errors.New("disk full") }
	})
	defer cleanup()

	s := NewSession(testConfig(t), &syncBuffer{})
	s.SetPublisher(pub)
	_ = s.Run(context.Background())

	var states []string
	for _, e := range pub.Events() {
		if e.Name == "state" {
			states = append(states, e.Fields["state"].(string))
		}
	}
	assert.Equal(t, []string{"INIT", "DEPENDENCIES_CHECKED", "ABORTED"}, states)
}

func TestStateTerminal(t *testing.T) {
	for _, st := range allStates {
		want := st == StateExited || st == StateStopped || st == StateKilled || st == StateAborted
		assert.Equal(t, want, st.Terminal(), string(st))
	}
}

func TestSession_StatusBeforeRun(t *testing.T) {
	s := NewSession(testConfig(t), &syncBuffer{})
	st := s.Status()
	assert.Equal(t, "INIT", st.State)
	assert.Equal(t, s.ID, st.SessionID)
	assert.Equal(t, "http://localhost:5173", st.FrontendURL)
	assert.Equal(t, "http://localhost:8000", st.BackendURL)
	assert.NotNil(t, st.Services)
	assert.Empty(t, st.Services)
	assert.True(t, strings.Count(s.ID, "-") == 4, "session id should be a uuid: %s", s.ID)
}

func TestSession_InterruptBeforeLaunchSpawnsNothing(t *testing.T) {
	spawns := 0
	cleanup := withCLIStubs(t, func() {
		okChecks()
		fnStartBackend = func(context.Context, *Config) (*Service, error) { spawns++; return nil, nil }
	})
	defer cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out := &syncBuffer{}
	s := NewSession(testConfig(t), out)
	require.NoError(t, s.Run(ctx))
	assert.Zero(t, spawns)
	assert.Equal(t, StateStopped, s.State())
	assert.Contains(t, out.String(), msgStopped)
}
