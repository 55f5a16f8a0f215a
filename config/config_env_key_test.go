package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"storage": map[string]any{
			"bucketURL":     "",
			"presignExpiry": "15m",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "STORAGE_BUCKETURL", want: "storage.bucketURL"},
		{envKey: "STORAGE_PRESIGNEXPIRY", want: "storage.presignExpiry"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyLegacyEnv(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("JWT_SECRET", "legacy-secret")
	t.Setenv("AWS_S3_BUCKET_NAME", "tnp-docs")
	t.Setenv("AWS_REGION", "eu-west-1")

	cfg := &Config{}
	applyLegacyEnv(cfg)

	assert.Equal(t, 8081, cfg.HTTP.Port)
	assert.Equal(t, "legacy-secret", cfg.SecretKey.Access)
	require.NotNil(t, cfg.Storage)
	assert.Equal(t, "tnp-docs", cfg.Storage.Bucket)
	assert.Equal(t, "eu-west-1", cfg.Storage.Region)
}

func TestApplyLegacyEnv_IgnoresMalformedPort(t *testing.T) {
	t.Setenv("PORT", "not-a-number")

	cfg := &Config{}
	cfg.HTTP.Port = 9000
	applyLegacyEnv(cfg)

	assert.Equal(t, 9000, cfg.HTTP.Port)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultPort, cfg.HTTP.Port)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 30*24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 15*time.Minute, cfg.Storage.PresignExpiry)
	assert.Equal(t, "documents", cfg.Storage.KeyPrefix)
	assert.Equal(t, 20, cfg.Pagination.DefaultLimit)
	assert.Equal(t, 100, cfg.Pagination.MaxLimit)
	assert.Equal(t, 200*time.Millisecond, cfg.Database.SlowQueryThreshold)
	assert.Equal(t, 5*time.Second, cfg.Database.PoolMonitorInterval)
	assert.Equal(t, 50*time.Millisecond, cfg.Database.PoolWaitWarnThreshold)
}

func TestApplyDefaults_ZeroSlowThresholdStaysDisabled(t *testing.T) {
	cfg := &Config{Database: &DatabaseConfig{}}
	applyDefaults(cfg)

	assert.Zero(t, cfg.Database.SlowQueryThreshold)
	assert.Equal(t, 5*time.Second, cfg.Database.PoolMonitorInterval)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Auth:       &AuthConfig{TokenTTL: time.Hour},
		Storage:    &StorageConfig{KeyPrefix: "uploads", PresignExpiry: time.Minute},
		Pagination: &PaginationConfig{DefaultLimit: 50, MaxLimit: 40},
	}
	applyDefaults(cfg)

	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "uploads", cfg.Storage.KeyPrefix)
	assert.Equal(t, time.Minute, cfg.Storage.PresignExpiry)
	assert.Equal(t, 50, cfg.Pagination.DefaultLimit)
	assert.Equal(t, 100, cfg.Pagination.MaxLimit)
}
