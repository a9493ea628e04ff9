package devctl

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupEnvironment_CreatesBothFiles(t *testing.T) {
	cfg := testConfig(t)
	mkdirs(t, cfg.Root, "spider", "admin")
	example := []byte("SUPABASE_URL=\nSUPABASE_SERVICE_ROLE_KEY=\n# comment\x00binary-safe\n")
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Root, "spider", ".env.example"), example, 0o600))

	require.NoError(t, setupEnvironment(cfg))

	got, err := os.ReadFile(filepath.Join(cfg.Root, "spider", ".env"))
	require.NoError(t, err)
	assert.Equal(t, example, got)

	local, err := os.ReadFile(filepath.Join(cfg.Root, "admin", ".env.local"))
	require.NoError(t, err)
	assert.Equal(t, "VITE_API_URL=http://localhost:8000/api/v1\n", string(local))
}

func TestSetupEnvironment_NeverOverwrites(t *testing.T) {
	cfg := testConfig(t)
	mkdirs(t, cfg.Root, "spider", "admin")
	envPath := filepath.Join(cfg.Root, "spider", ".env")
	localPath := filepath.Join(cfg.Root, "admin", ".env.local")
	require.NoError(t, os.WriteFile(envPath, []byte("KEEP=1\n"), 0o600))
	require.NoError(t, os.WriteFile(localPath, []byte("VITE_API_URL=custom\n"), 0o644))

	// no example present: fine, because .env already exists
	require.NoError(t, setupEnvironment(cfg))

	got, _ := os.ReadFile(envPath)
	assert.Equal(t, "KEEP=1\n", string(got))
	got, _ = os.ReadFile(localPath)
	assert.Equal(t, "VITE_API_URL=custom\n", string(got))
}

func TestSetupEnvironment_MissingTemplateIsFatal(t *testing.T) {
	cfg := testConfig(t)
	mkdirs(t, cfg.Root, "spider", "admin")

	err := setupEnvironment(cfg)
	require.Error(t, err)
	assert.True(t, IsConfigTemplateMissing(err))
	_, statErr := os.Stat(filepath.Join(cfg.Root, "admin", ".env.local"))
	assert.True(t, os.IsNotExist(statErr), "frontend env must not be written after a fatal backend error")
}

func TestFrontendEnvContent_UsesBackendPort(t *testing.T) {
	assert.Equal(t, "VITE_API_URL=http://localhost:9001/api/v1\n", frontendEnvContent(9001))
}
