package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gloovup/portal/internal/config"
	"github.com/gloovup/portal/internal/validation"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	for _, key := range []string{
		"PORTAL_CONFIG_PATH", "PORTAL_SERVER_HOST", "PORTAL_SERVER_PORT", "PORTAL_TRANSPORT",
		"PORTAL_DB_PATH", "PORTAL_LOG_LEVEL", "PORTAL_LOG_FORMAT", "PORTAL_LOG_FILE", "PORTAL_ACTOR",
	} {
		t.Setenv(key, "")
	}
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "portal.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9090
  transport: stdio
db:
  path: /var/lib/portal/data.db
log:
  format: json
`), 0o644))
	t.Setenv("PORTAL_CONFIG_PATH", path)
	t.Setenv("PORTAL_SERVER_PORT", "9191")
	t.Setenv("PORTAL_ACTOR", "ops_2")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, 9191, cfg.Server.Port)
	require.Equal(t, config.TransportStdio, cfg.Server.Transport)
	require.Equal(t, "/var/lib/portal/data.db", cfg.DB.Path)
	require.Equal(t, "json", cfg.Log.Format)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "ops_2", cfg.Portal.Actor)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("PORTAL_DB_PATH=from-dotenv.db\n"), 0o644))
	// godotenv never overrides variables that are already set, even to "".
	require.NoError(t, os.Unsetenv("PORTAL_DB_PATH"))
	t.Cleanup(func() { _ = os.Unsetenv("PORTAL_DB_PATH") })

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "from-dotenv.db", cfg.DB.Path)
}

func TestLoad_Invalid(t *testing.T) {
	isolate(t)

	t.Setenv("PORTAL_SERVER_PORT", "eighty")
	_, err := config.Load()
	require.ErrorContains(t, err, "PORTAL_SERVER_PORT")

	t.Setenv("PORTAL_SERVER_PORT", "")
	t.Setenv("PORTAL_TRANSPORT", "carrier-pigeon")
	_, err = config.Load()
	var fe validation.FieldError
	require.ErrorAs(t, err, &fe)
	require.Equal(t, "transport", fe.Field)
}
