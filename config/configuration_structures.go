package config

import "time"

type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	RequestTimeout  time.Duration `yaml:"request_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"`
}

// DatabaseConfig : хранилище метаданных, postgres (по умолчанию) или mongo
type DatabaseConfig struct {
	Driver    string `yaml:"driver"`
	DSN       string `yaml:"dsn"`
	MongoURI  string `yaml:"mongo_uri"`
	MongoName string `yaml:"mongo_name"`
	Migrate   bool   `yaml:"migrate"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type SessionConfig struct {
	Prefix string        `yaml:"prefix"`
	TTL    time.Duration `yaml:"ttl"`
}

type SecurityConfig struct {
	LegacySHA1 bool `yaml:"legacy_sha1"`
}

// StorageConfig : хранилище содержимого файлов, local (FolderPath) или s3
type StorageConfig struct {
	Driver     string   `yaml:"driver"`
	FolderPath string   `yaml:"folder_path"`
	S3         S3Config `yaml:"s3"`
}

// S3Config : Local включает path-style клиент со статическими ключами (minio)
type S3Config struct {
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"`
	Prefix    string `yaml:"prefix"`
	Local     bool   `yaml:"local"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
}

type QueueConfig struct {
	Driver string `yaml:"driver"`
	Name   string `yaml:"name"`
	Buffer int    `yaml:"buffer"`
}

// WorkerConfig : MaxAttempts = 1 означает, что упавшая задача не повторяется
type WorkerConfig struct {
	Concurrency  int           `yaml:"concurrency"`
	MaxAttempts  int           `yaml:"max_attempts"`
	RetryBackoff time.Duration `yaml:"retry_backoff"`
	PollTimeout  time.Duration `yaml:"poll_timeout"`
	DeadLetter   bool          `yaml:"dead_letter"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}
