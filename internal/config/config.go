package config

import (
	"net"
	"strconv"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Database    DatabaseConfig    `yaml:"database"`
	Auth        AuthConfig        `yaml:"auth"`
	Storage     StorageConfig     `yaml:"storage"`
	Attachments AttachmentsConfig `yaml:"attachments"`
	Idempotency IdempotencyConfig `yaml:"idempotency"`
	Log         LogConfig         `yaml:"log"`
	CORS        CORSConfig        `yaml:"cors"`
	RateLimit   RateLimitConfig   `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,Idempotency-Key"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	ConnectTimeout  time.Duration `yaml:"connect_timeout"    env:"DATABASE_CONNECT_TIMEOUT"    env-default:"5s"`
	ApplicationName string        `yaml:"application_name"   env:"DATABASE_APPLICATION_NAME"   env-default:"itemlog-backend"`
}

// AuthConfig holds settings for validating tokens issued by the identity provider.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER"`
	// JWTAudience, when set, must be present in the token's aud claim.
	JWTAudience string `yaml:"jwt_audience" env:"AUTH_JWT_AUDIENCE"`
}

// StorageConfig holds S3-compatible blob store settings.
type StorageConfig struct {
	Enabled         bool   `yaml:"enabled"           env:"STORAGE_ENABLED"           env-default:"true"`
	Endpoint        string `yaml:"endpoint"          env:"STORAGE_ENDPOINT"`
	Region          string `yaml:"region"            env:"STORAGE_REGION"            env-default:"us-east-1"`
	Bucket          string `yaml:"bucket"            env:"STORAGE_BUCKET"            env-default:"repair-files"`
	AccessKeyID     string `yaml:"access_key_id"     env:"STORAGE_ACCESS_KEY_ID"`
	SecretAccessKey string `yaml:"secret_access_key" env:"STORAGE_SECRET_ACCESS_KEY"`
	// PublicBaseURL prefixes object keys to form the URL stored on records.
	PublicBaseURL string `yaml:"public_base_url" env:"STORAGE_PUBLIC_BASE_URL"`
	UsePathStyle  bool   `yaml:"use_path_style"  env:"STORAGE_USE_PATH_STYLE"  env-default:"true"`
}

// AttachmentsConfig holds upload limits.
type AttachmentsConfig struct {
	MaxFileSize     int64 `yaml:"max_file_size"     env:"ATTACHMENTS_MAX_FILE_SIZE"     env-default:"10485760"`
	MaxPerRecord    int   `yaml:"max_per_record"    env:"ATTACHMENTS_MAX_PER_RECORD"    env-default:"20"`
	MaxPerUpload    int   `yaml:"max_per_upload"    env:"ATTACHMENTS_MAX_PER_UPLOAD"    env-default:"10"`
	ReclaimOnDelete bool  `yaml:"reclaim_on_delete" env:"ATTACHMENTS_RECLAIM_ON_DELETE" env-default:"true"`
}

// IdempotencyConfig holds settings for the bolt-backed idempotency store.
type IdempotencyConfig struct {
	Enabled bool          `yaml:"enabled" env:"IDEMPOTENCY_ENABLED" env-default:"true"`
	Path    string        `yaml:"path"    env:"IDEMPOTENCY_PATH"    env-default:"./data/idempotency.db"`
	TTL     time.Duration `yaml:"ttl"     env:"IDEMPOTENCY_TTL"     env-default:"24h"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-client request limits.
type RateLimitConfig struct {
	Enabled         bool          `yaml:"enabled"          env:"RATE_LIMIT_ENABLED"          env-default:"true"`
	RequestsPerMin  int           `yaml:"requests_per_min" env:"RATE_LIMIT_REQUESTS_PER_MIN" env-default:"120"`
	UploadsPerMin   int           `yaml:"uploads_per_min"  env:"RATE_LIMIT_UPLOADS_PER_MIN"  env-default:"20"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

// Addr returns the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}
