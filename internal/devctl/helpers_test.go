package devctl

import (
	"bytes"
	"context"
	"net"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func init() {
	SetLogOutput(os.Stderr)
	SetLogLevel("error")
}

// withCLIStubs swaps the fn* indirections for the duration of a test.
func withCLIStubs(t *testing.T, stubs func()) func() {
	t.Helper()
	oldCheck := fnCheckDependencies
	oldSetup := fnSetupEnvironment
	oldBackend := fnStartBackend
	oldFrontend := fnStartFrontend
	oldService := fnStartService
	oldRun := fnRunSession
	oldProbe := fnProbe
	oldStats := fnProcessStats
	stubs()
	return func() {
		fnCheckDependencies = oldCheck
		fnSetupEnvironment = oldSetup
		fnStartBackend = oldBackend
		fnStartFrontend = oldFrontend
		fnStartService = oldService
		fnRunSession = oldRun
		fnProbe = oldProbe
		fnProcessStats = oldStats
	}
}

func testConfig(t *testing.T) *Config {
	t.Helper()
	return &Config{
		LogLvl:        "error",
		Root:          t.TempDir(),
		BackendDir:    defaultBackendDir,
		FrontendDir:   defaultFrontendDir,
		BackendPort:   defaultBackendPort,
		FrontendPort:  defaultFrontendPort,
		LaunchDelay:   10 * time.Millisecond,
		GraceTimeout:  defaultGraceTimeout,
		PythonModules: append([]string(nil), defaultPythonModules...),
	}
}

func mkdirs(t *testing.T, root string, dirs ...string) {
	t.Helper()
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(root, d), 0o755); err != nil {
			t.Fatal(err)
		}
	}
}

func freePort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close()
	return ln.Addr().(*net.TCPAddr).Port
}

func waitForState(t *testing.T, s *Session, want State, within time.Duration) {
	t.Helper()
	deadline := time.Now().Add(within)
	for time.Now().Before(deadline) {
		if s.State() == want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("session did not reach %s within %s (state=%s)", want, within, s.State())
}

// syncBuffer is a bytes.Buffer safe for the session goroutine and the test to share.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func okChecks() {
	fnCheckDependencies = func(context.Context, *Config) error { return nil }
	fnSetupEnvironment = func(*Config) error { return nil }
}
