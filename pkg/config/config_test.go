package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("BLOB_DRIVER", "memory")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "obras-api", cfg.App.Name)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, 5*time.Second, cfg.Notification.Timeout)
	assert.True(t, cfg.DB.AutoMigrate)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoad_LeeVariablesDeEntorno(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("NOTIFICATION_TIMEOUT", "2s")
	t.Setenv("AI_TIMEOUT", "45")
	t.Setenv("DB_AUTO_MIGRATE", "false")
	t.Setenv("BLOB_DRIVER", "s3")
	t.Setenv("BLOB_BUCKET", "obras-docs")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 2*time.Second, cfg.Notification.Timeout)
	assert.Equal(t, 45*time.Second, cfg.AI.Timeout)
	assert.False(t, cfg.DB.AutoMigrate)
	assert.Equal(t, "obras-docs", cfg.Blob.Bucket)
}

func TestLoad_ProductionSinSecretoFalla(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("BLOB_DRIVER", "memory")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_S3SinBucketFalla(t *testing.T) {
	t.Setenv("BLOB_DRIVER", "s3")
	t.Setenv("BLOB_BUCKET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestDBConfig_DSNEscapaPassword(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "obras", Password: "p@ss:w/rd", DBName: "obras", SSLMode: "disable"}
	assert.Equal(t, "postgres://obras:p%40ss%3Aw%2Frd@db:5432/obras?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}
