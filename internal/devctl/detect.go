package devctl

import (
	"context"
	"errors"
	"fmt"
)

// Candidate is one way of launching a service, guarded by an availability probe.
type Candidate struct {
	Name string
	// Probe is run quietly; exit 0 selects this candidate. Empty means always available.
	Probe []string
	// Command is the long-running service command.
	Command []string
	// Interpreter runs ad-hoc code in the service's environment (used by the import check).
	Interpreter []string
}

// selectCandidate returns the first candidate whose probe succeeds, evaluating in order.
func selectCandidate(ctx context.Context, dir string, candidates []Candidate) (Candidate, error) {
	if len(candidates) == 0 {
		return Candidate{}, errors.New("no launch candidates")
	}
	for _, c := range candidates {
		if len(c.Command) == 0 {
			return Candidate{}, fmt.Errorf("candidate %q has no command", c.Name)
		}
		if len(c.Probe) == 0 {
			debug("[detect] using fallback %s", c.Name)
			return c, nil
		}
		if fnProbe(ctx, Cmd{Path: c.Probe[0], Args: c.Probe[1:], Dir: dir}) {
			debug("[detect] %s available", c.Name)
			return c, nil
		}
	}
	return Candidate{}, fmt.Errorf("no launch candidate available (tried %d)", len(candidates))
}

func backendCandidates(port int) []Candidate {
	uvicorn := []string{"uvicorn", "main:app", "--reload", "--host", "0.0.0.0", "--port", fmt.Sprint(port)}
	return []Candidate{
		{
			Name:        "uv",
			Probe:       []string{"uv", "--version"},
			Command:     append([]string{"uv", "run"}, uvicorn...),
			Interpreter: []string{"uv", "run", "--no-sync", "python"},
		},
		{
			Name:        "python",
			Command:     append([]string{"python", "-m"}, uvicorn...),
			Interpreter: []string{"python"},
		},
	}
}

func frontendCandidates() []Candidate {
	return []Candidate{
		{Name: "pnpm", Probe: []string{"pnpm", "--version"}, Command: []string{"pnpm", "dev"}},
		{Name: "npm", Command: []string{"npm", "run", "dev"}},
	}
}
