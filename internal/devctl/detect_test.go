package devctl

import (
	"context"
	"reflect"
	"testing"
)

func probeStub(available ...string) func(context.Context, Cmd) bool {
	set := map[string]bool{}
	for _, a := range available {
		set[a] = true
	}
	return func(_ context.Context, c Cmd) bool { return set[c.Path] }
}

func TestSelectCandidate_BackendPrefersUV(t *testing.T) {
	cleanup := withCLIStubs(t, func() { fnProbe = probeStub("uv") })
	defer cleanup()

	c, err := selectCandidate(context.Background(), t.TempDir(), backendCandidates(8000))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"uv", "run", "uvicorn", "main:app", "--reload", "--host", "0.0.0.0", "--port", "8000"}
	if !reflect.DeepEqual(c.Command, want) {
		t.Fatalf("command = %v, want %v", c.Command, want)
	}
}

func TestSelectCandidate_BackendFallsBackToPython(t *testing.T) {
	cleanup := withCLIStubs(t, func() { fnProbe = probeStub() })
	defer cleanup()

	c, err := selectCandidate(context.Background(), t.TempDir(), backendCandidates(8000))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"python", "-m", "uvicorn", "main:app", "--reload", "--host", "0.0.0.0", "--port", "8000"}
	if !reflect.DeepEqual(c.Command, want) {
		t.Fatalf("command = %v, want %v", c.Command, want)
	}
	if !reflect.DeepEqual(c.Interpreter, []string{"python"}) {
		t.Fatalf("interpreter = %v", c.Interpreter)
	}
}

func TestSelectCandidate_Frontend(t *testing.T) {
	cases := []struct {
		available []string
		want      []string
	}{
		{[]string{"pnpm"}, []string{"pnpm", "dev"}},
		{nil, []string{"npm", "run", "dev"}},
	}
	for _, tc := range cases {
		cleanup := withCLIStubs(t, func() { fnProbe = probeStub(tc.available...) })
		c, err := selectCandidate(context.Background(), t.TempDir(), frontendCandidates())
		cleanup()
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(c.Command, tc.want) {
			t.Fatalf("available=%v: command = %v, want %v", tc.available, c.Command, tc.want)
		}
	}
}

func TestSelectCandidate_ProbesInOrderInDir(t *testing.T) {
	var seen []string
	dir := t.TempDir()
	cleanup := withCLIStubs(t, func() {
		fnProbe = func(_ context.Context, c Cmd) bool {
			if c.Dir != dir {
				t.Fatalf("probe ran in %q, want %q", c.Dir, dir)
			}
			seen = append(seen, c.Path)
			return c.Path == "b"
		}
	})
	defer cleanup()

	cands := []Candidate{
		{Name: "a", Probe: []string{"a", "--version"}, Command: []string{"a"}},
		{Name: "b", Probe: []string{"b", "--version"}, Command: []string{"b"}},
		{Name: "c", Probe: []string{"c", "--version"}, Command: []string{"c"}},
	}
	c, err := selectCandidate(context.Background(), dir, cands)
	if err != nil || c.Name != "b" {
		t.Fatalf("got %q, %v", c.Name, err)
	}
	if !reflect.DeepEqual(seen, []string{"a", "b"}) {
		t.Fatalf("probe order = %v", seen)
	}
}

func TestSelectCandidate_Errors(t *testing.T) {
	cleanup := withCLIStubs(t, func() { fnProbe = probeStub() })
	defer cleanup()

	if _, err := selectCandidate(context.Background(), "", nil); err == nil {
		t.Fatal("expected error for empty candidate list")
	}
	if _, err := selectCandidate(context.Background(), "", []Candidate{{Name: "x"}}); err == nil {
		t.Fatal("expected error for candidate without command")
	}
	only := []Candidate{{Name: "x", Probe: []string{"x"}, Command: []string{"x"}}}
	if _, err := selectCandidate(context.Background(), "", only); err == nil {
		t.Fatal("expected error when no probe succeeds and there is no fallback")
	}
}
