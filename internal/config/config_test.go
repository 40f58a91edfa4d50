package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalConfig = `
server:
  port: "8080"
  mode: debug

database:
  host: localhost
  port: 3306
  user: lexilearn
  password: lexilearn
  dbname: lexilearn

jwt:
  secret: test-secret
  expire_hours: 72

storage:
  type: minio
`

// Tunables left out of the file fall back to sane defaults instead of zero
// values, so a minimal deployment config still gets a working pool, log
// rotation and rate limits.
func TestLoadConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(minimalConfig), 0644))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, 72*time.Hour, cfg.JWT.ExpireTime)

	assert.Equal(t, 20, cfg.Redis.PoolSize)
	assert.Equal(t, 4, cfg.Redis.MinIdleConns)

	assert.Equal(t, "logs/lexilearn.log", cfg.Log.File)
	assert.Equal(t, 64, cfg.Log.MaxSizeMB)
	assert.Equal(t, 7, cfg.Log.MaxBackups)
	assert.Equal(t, 28, cfg.Log.MaxAgeDays)

	assert.Equal(t, 1.0, cfg.Tracing.SampleRatio)

	assert.Equal(t, 600, cfg.RateLimit.MaxRequests)
	assert.Equal(t, 1, cfg.RateLimit.WindowMinutes)
	assert.Equal(t, 10, cfg.RateLimit.LoginMaxRequests)
}
