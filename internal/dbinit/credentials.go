package dbinit

import (
	"os"
	"strings"
)

const (
	envURL = "SUPABASE_URL"
	envKey = "SUPABASE_SERVICE_ROLE_KEY"
)

// Credentials identify the Supabase project. They are validated but never used
// to connect: migrations are only announced.
type Credentials struct {
	URL            string
	ServiceRoleKey string
}

// CredentialsFromEnv reads the project URL and service-role key. Empty counts as unset.
func CredentialsFromEnv() (Credentials, error) {
	c := Credentials{
		URL:            os.Getenv(envURL),
		ServiceRoleKey: os.Getenv(envKey),
	}
	var missing []string
	if c.URL == "" {
		missing = append(missing, envURL)
	}
	if c.ServiceRoleKey == "" {
		missing = append(missing, envKey)
	}
	if len(missing) > 0 {
		return Credentials{}, missingEnvError{keys: missing}
	}
	return c, nil
}

// MaskedKey returns a form of the service-role key safe to print.
func (c Credentials) MaskedKey() string {
	k := c.ServiceRoleKey
	if len(k) <= 12 {
		return strings.Repeat("*", 8)
	}
	return k[:4] + strings.Repeat("*", 8) + k[len(k)-4:]
}
