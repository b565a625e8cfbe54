package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ":5000", cfg.Server.Addr)
	assert.Equal(t, "auth_", cfg.Session.Prefix)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "/tmp/files_manager", cfg.Storage.FolderPath)
	assert.Equal(t, "fileQueue", cfg.Queue.Name)
	assert.Equal(t, 1, cfg.Worker.MaxAttempts)
}

func TestLoadConfig_YamlOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  addr: ":8080"
database:
  driver: mongo
session:
  ttl: 1h
worker:
  max_attempts: 3
  retry_backoff: 2s
  dead_letter: true
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, DriverMongo, cfg.Database.Driver)
	assert.Equal(t, time.Hour, cfg.Session.TTL)
	assert.Equal(t, 3, cfg.Worker.MaxAttempts)
	assert.Equal(t, 2*time.Second, cfg.Worker.RetryBackoff)
	assert.True(t, cfg.Worker.DeadLetter)
	assert.Equal(t, "auth_", cfg.Session.Prefix)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DB_HOST", "mongo")
	t.Setenv("DB_DATABASE", "fm")
	t.Setenv("FOLDER_PATH", "/data/files")
	t.Setenv("S3_ENDPOINT", "http://minio:9000")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, "mongodb://mongo:27017", cfg.Database.MongoURI)
	assert.Equal(t, "fm", cfg.Database.MongoName)
	assert.Equal(t, "/data/files", cfg.Storage.FolderPath)
	assert.Equal(t, "http://minio:9000", cfg.Storage.S3.Endpoint)
	assert.True(t, cfg.Storage.S3.Local)
}

func TestLoadConfig_BadWorkerConcurrencyEnv(t *testing.T) {
	t.Setenv("WORKER_CONCURRENCY", "many")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_BrokenYaml(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "server: [\n"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *AppConfig)
		wantErr bool
	}{
		{name: "значения по умолчанию", mutate: func(*AppConfig) {}},
		{name: "неизвестная база", mutate: func(c *AppConfig) { c.Database.Driver = "sqlite" }, wantErr: true},
		{name: "неизвестное хранилище", mutate: func(c *AppConfig) { c.Storage.Driver = "ftp" }, wantErr: true},
		{name: "пустой путь", mutate: func(c *AppConfig) { c.Storage.FolderPath = "" }, wantErr: true},
		{name: "s3 без bucket", mutate: func(c *AppConfig) { c.Storage.Driver = DriverS3 }, wantErr: true},
		{name: "s3 с bucket", mutate: func(c *AppConfig) {
			c.Storage.Driver = DriverS3
			c.Storage.S3.Bucket = "files"
		}},
		{name: "неизвестная очередь", mutate: func(c *AppConfig) { c.Queue.Driver = "kafka" }, wantErr: true},
		{name: "нулевой ttl", mutate: func(c *AppConfig) { c.Session.TTL = 0 }, wantErr: true},
		{name: "нет потребителей", mutate: func(c *AppConfig) { c.Worker.Concurrency = 0 }, wantErr: true},
		{name: "нет попыток", mutate: func(c *AppConfig) { c.Worker.MaxAttempts = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
