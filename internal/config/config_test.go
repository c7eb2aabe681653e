package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) lookupFunc {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestApplyEnv_OverridesDefaults(t *testing.T) {
	cfg := Defaults()
	err := applyEnv(&cfg, envMap(map[string]string{
		"PORT":            "9090",
		"DB_DSN":          "postgres://localhost/pawfam",
		"JWT_SECRET":      "s3cret",
		"JWT_TTL":         "24h",
		"REDIS_DB":        "2",
		"KAFKA_BROKERS":   "k1:9092, k2:9092,",
		"S3_PATH_STYLE":   "true",
		"MAIL_DRIVER":     "smtp",
		"SMTP_HOST":       "smtp.example.com",
		"DB_AUTO_MIGRATE": "1",
	}))
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "postgres://localhost/pawfam", cfg.DBDSN)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.True(t, cfg.S3PathStyle)
	assert.True(t, cfg.DBAutoMigrate)
	assert.Equal(t, "pawfam.lifecycle", cfg.KafkaTopic)
	assert.NoError(t, cfg.Validate())
}

func TestApplyEnv_HTTPAddrWinsOverPort(t *testing.T) {
	cfg := Defaults()
	require.NoError(t, applyEnv(&cfg, envMap(map[string]string{"PORT": "9090", "HTTP_ADDR": "127.0.0.1:7000"})))
	assert.Equal(t, "127.0.0.1:7000", cfg.HTTPAddr)
}

func TestApplyEnv_BadValues(t *testing.T) {
	cfg := Defaults()
	err := applyEnv(&cfg, envMap(map[string]string{"JWT_TTL": "a week", "REDIS_DB": "x"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_TTL")
	assert.Contains(t, err.Error(), "REDIS_DB")
}

func TestValidate(t *testing.T) {
	cfg := Defaults()
	assert.ErrorContains(t, cfg.Validate(), "JWT_SECRET")

	cfg.AuthDevMode = true
	assert.NoError(t, cfg.Validate())

	cfg.MailDriver = "pigeon"
	assert.ErrorContains(t, cfg.Validate(), "MAIL_DRIVER")

	cfg.MailDriver = MailDriverRelay
	assert.ErrorContains(t, cfg.Validate(), "MAIL_RELAY_URL")
}

func TestLoad_YAMLThenEnvThenFlags(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pawfam.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http_addr: ":7000"
jwt_secret: from-file
jwt_ttl: 48h
kafka_topic: file.topic
`), 0o600))

	t.Setenv("KAFKA_TOPIC", "env.topic")
	t.Setenv("JWT_SECRET", "")

	cfg, err := Load([]string{"--config", path, "--addr", ":7100"})
	require.NoError(t, err)

	assert.Equal(t, ":7100", cfg.HTTPAddr)
	assert.Equal(t, "from-file", cfg.JWTSecret)
	assert.Equal(t, 48*time.Hour, cfg.JWTTTL)
	assert.Equal(t, "env.topic", cfg.KafkaTopic)
}

func TestLoad_UnknownFlag(t *testing.T) {
	_, err := Load([]string{"--nope"})
	assert.Error(t, err)
}
