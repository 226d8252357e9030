package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("TEL_WHITE_LIST", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 4000, cfg.Server.Port)
	assert.Equal(t, "8085", cfg.Verification.WhitelistCode)
	assert.Equal(t, DefaultWhitelist, cfg.Verification.Whitelist)
	assert.Equal(t, 30*time.Minute, cfg.VerificationTTL())
	assert.Equal(t, 12*time.Hour, cfg.AccessTTL())
	assert.Equal(t, 60*24*time.Hour, cfg.RefreshTTL())
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 8080
  allowed_origins: ["https://axas.house"]
verification:
  ttl_minutes: 5
listing:
  page_size: 10
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("TEL_WHITE_LIST", "79990000000,79990000001")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, []string{"https://axas.house"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 5*time.Minute, cfg.VerificationTTL())
	assert.Equal(t, 10, cfg.Listing.PageSize)
	assert.Equal(t, []string{"79990000000", "79990000001"}, cfg.Verification.Whitelist)
	// значения, которых нет в файле, остаются по умолчанию
	assert.Equal(t, 64, cfg.Tokens.Length)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
