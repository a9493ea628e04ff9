package devctl

import "errors"

// dependencyMissingError signals a failed precondition; hint tells the user how to fix it.
type dependencyMissingError struct {
	what string
	hint string
}

func (e dependencyMissingError) Error() string { return "missing dependency: " + e.what }

// Hint returns the remediation command for the missing dependency.
func (e dependencyMissingError) Hint() string { return e.hint }

// IsDependencyMissing reports whether err comes from the precondition check.
func IsDependencyMissing(err error) bool {
	var e dependencyMissingError
	return errors.As(err, &e)
}

// DependencyHint extracts the remediation hint from err, if any.
func DependencyHint(err error) string {
	var e dependencyMissingError
	if errors.As(err, &e) {
		return e.hint
	}
	return ""
}

type configTemplateMissingError struct{ path string }

func (e configTemplateMissingError) Error() string { return "config template not found: " + e.path }

// IsConfigTemplateMissing reports whether a config file could not be materialized
// because its template is absent.
func IsConfigTemplateMissing(err error) bool {
	var e configTemplateMissingError
	return errors.As(err, &e)
}

// spawnError wraps a failure to start a child process.
type spawnError struct {
	service string
	err     error
}

func (e spawnError) Error() string { return "start " + e.service + ": " + e.err.Error() }

func (e spawnError) Unwrap() error { return e.err }

// IsSpawnFailure reports whether err indicates a child process could not be started.
func IsSpawnFailure(err error) bool {
	var e spawnError
	return errors.As(err, &e)
}
