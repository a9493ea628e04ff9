package dbinit

import (
	"errors"
	"strings"
)

type missingDirError struct{ dir string }

func (e missingDirError) Error() string { return "migrations directory does not exist: " + e.dir }

// IsMissingDir reports whether err means the migrations directory is absent.
func IsMissingDir(err error) bool {
	var e missingDirError
	return errors.As(err, &e)
}

type missingEnvError struct{ keys []string }

func (e missingEnvError) Error() string {
	return "please set the " + strings.Join(e.keys, " and ") + " environment variables"
}

// IsMissingEnv reports whether err means required credentials are not set.
func IsMissingEnv(err error) bool {
	var e missingEnvError
	return errors.As(err, &e)
}
