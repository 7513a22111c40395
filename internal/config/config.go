package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Redis      RedisConfig      `yaml:"redis"`
	Store      StoreConfig      `yaml:"store"`
	Extraction ExtractionConfig `yaml:"extraction"`
	Auth       AuthConfig       `yaml:"auth"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"120s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings for remote mode.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// RedisConfig holds Redis settings for the redis local backend.
type RedisConfig struct {
	Addr      string `yaml:"addr"       env:"REDIS_ADDR"       env-default:"localhost:6379"`
	Password  string `yaml:"password"   env:"REDIS_PASSWORD"`
	DB        int    `yaml:"db"         env:"REDIS_DB"         env-default:"0"`
	KeyPrefix string `yaml:"key_prefix" env:"REDIS_KEY_PREFIX" env-default:"fairway:"`
}

// Store backends for local mode.
const (
	LocalBackendMemory = "memory"
	LocalBackendFile   = "file"
	LocalBackendRedis  = "redis"
)

// StoreConfig selects and tunes the persistence adapter.
type StoreConfig struct {
	Mode          string `yaml:"mode"            env:"STORE_MODE"            env-default:"local"`
	LocalBackend  string `yaml:"local_backend"   env:"STORE_LOCAL_BACKEND"   env-default:"file"`
	DataDir       string `yaml:"data_dir"        env:"STORE_DATA_DIR"        env-default:"./data"`
	SeedOnStart   bool   `yaml:"seed_on_start"   env:"STORE_SEED_ON_START"   env-default:"true"`
	SeedBatchSize int    `yaml:"seed_batch_size" env:"STORE_SEED_BATCH_SIZE" env-default:"400"`
}

// ExtractionConfig holds the document extraction client settings.
type ExtractionConfig struct {
	APIKey          string        `yaml:"api_key"           env:"EXTRACTION_API_KEY"`
	Model           string        `yaml:"model"             env:"EXTRACTION_MODEL"             env-default:"claude-sonnet-4-5"`
	MaxTokens       int64         `yaml:"max_tokens"        env:"EXTRACTION_MAX_TOKENS"        env-default:"8192"`
	MaxPayloadBytes int64         `yaml:"max_payload_bytes" env:"EXTRACTION_MAX_PAYLOAD_BYTES" env-default:"20971520"`
	MaxAttempts     int           `yaml:"max_attempts"      env:"EXTRACTION_MAX_ATTEMPTS"      env-default:"3"`
	BaseDelay       time.Duration `yaml:"base_delay"        env:"EXTRACTION_BASE_DELAY"        env-default:"1s"`
	MaxDelay        time.Duration `yaml:"max_delay"         env:"EXTRACTION_MAX_DELAY"         env-default:"30s"`
	Jitter          float64       `yaml:"jitter"            env:"EXTRACTION_JITTER"            env-default:"0"`
	Timeout         time.Duration `yaml:"timeout"           env:"EXTRACTION_TIMEOUT"           env-default:"90s"`
	AutoCreate      bool          `yaml:"auto_create"       env:"EXTRACTION_AUTO_CREATE"       env-default:"true"`
}

// AuthConfig holds session token settings.
type AuthConfig struct {
	JWTSecret  string        `yaml:"jwt_secret"  env:"AUTH_JWT_SECRET"  env-required:"true"`
	JWTIssuer  string        `yaml:"jwt_issuer"  env:"AUTH_JWT_ISSUER"  env-default:"fairway"`
	SessionTTL time.Duration `yaml:"session_ttl" env:"AUTH_SESSION_TTL" env-default:"12h"`
	// PasswordHashCost is the bcrypt cost for new password hashes.
	PasswordHashCost int `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST" env-default:"12"`
	// AdminEmail and AdminPassword, when set, make sure an approved
	// administrator with these credentials exists at startup.
	AdminEmail    string `yaml:"admin_email"    env:"AUTH_ADMIN_EMAIL"`
	AdminPassword string `yaml:"admin_password" env:"AUTH_ADMIN_PASSWORD"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig bounds expensive endpoints per client IP.
type RateLimitConfig struct {
	UploadsPerMinute int           `yaml:"uploads_per_minute" env:"RATE_LIMIT_UPLOADS_PER_MINUTE" env-default:"10"`
	LoginsPerMinute  int           `yaml:"logins_per_minute"  env:"RATE_LIMIT_LOGINS_PER_MINUTE"  env-default:"20"`
	CleanupInterval  time.Duration `yaml:"cleanup_interval"   env:"RATE_LIMIT_CLEANUP_INTERVAL"   env-default:"5m"`
}

// IsRemote reports whether the remote document database is selected.
func (s StoreConfig) IsRemote() bool {
	return strings.EqualFold(s.Mode, "remote")
}
