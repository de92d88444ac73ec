package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration values
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	OTP       OTPConfig
	Email     EmailConfig
	CORS      CORSConfig
	Upload    UploadConfig
	Storage   StorageConfig
	Security  SecurityConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string
	// TrustedProxies lists proxy IPs or CIDRs whose forwarding headers are
	// believed. Empty means the client IP is always the socket peer.
	TrustedProxies []string
}

// DatabaseConfig holds database configuration. DSN wins over the parts when set.
type DatabaseConfig struct {
	DSN      string
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// URL returns the database connection URL
func (c DatabaseConfig) URL() string {
	if c.DSN != "" {
		return c.DSN
	}
	return "postgres://" + c.User + ":" + c.Password + "@" + c.Host + ":" + strconv.Itoa(c.Port) + "/" + c.DBName + "?sslmode=" + c.SSLMode
}

// RedisConfig holds Redis configuration. An empty URL disables redis.
type RedisConfig struct {
	URL      string
	Password string
}

// JWTConfig holds session token configuration
type JWTConfig struct {
	Secret string
	Expiry time.Duration
}

// OTPConfig holds signup code lifetime and sweep cadence
type OTPConfig struct {
	TTL           time.Duration
	SweepInterval time.Duration
}

// EmailConfig holds the mail provider settings. No API key means dev mode.
type EmailConfig struct {
	APIKey string
	From   string
}

// CORSConfig holds the allowed browser origins
type CORSConfig struct {
	AllowedOrigins []string
}

// UploadConfig holds avatar upload limits
type UploadConfig struct {
	Dir      string
	MaxBytes int64
}

// StorageConfig selects and configures the avatar storage driver
type StorageConfig struct {
	Driver    string
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string
	Endpoint  string
}

// SecurityConfig holds admin credentials
type SecurityConfig struct {
	AdminToken string
}

// RateLimitConfig holds the per-IP limits for auth routes
type RateLimitConfig struct {
	AuthRPS   float64
	AuthBurst int
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           getEnv("SERVER_PORT", "3000"),
			Env:            getEnv("SERVER_ENV", "development"),
			TrustedProxies: getEnvAsList("TRUSTED_PROXIES", nil),
		},
		Database: DatabaseConfig{
			DSN:      getEnv("DATABASE_URL", ""),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "lawconnect"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "change-this-in-production"),
			Expiry: getEnvAsDuration("JWT_EXPIRY", 24*time.Hour),
		},
		OTP: OTPConfig{
			TTL:           getEnvAsDuration("OTP_TTL", 5*time.Minute),
			SweepInterval: getEnvAsDuration("OTP_SWEEP_INTERVAL", 30*time.Second),
		},
		Email: EmailConfig{
			APIKey: getEnv("EMAIL_PROVIDER_API_KEY", ""),
			From:   getEnv("EMAIL_FROM", "LawConnect <no-reply@lawconnect.app>"),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173"}),
		},
		Upload: UploadConfig{
			Dir:      getEnv("UPLOAD_DIR", "uploads"),
			MaxBytes: int64(getEnvAsInt("UPLOAD_MAX_BYTES", 5<<20)),
		},
		Storage: StorageConfig{
			Driver:    getEnv("STORAGE_DRIVER", "local"),
			Bucket:    getEnv("S3_BUCKET", ""),
			Region:    getEnv("S3_REGION", "us-east-1"),
			AccessKey: getEnv("S3_ACCESS_KEY", ""),
			SecretKey: getEnv("S3_SECRET_KEY", ""),
			Endpoint:  getEnv("S3_ENDPOINT", ""),
		},
		Security: SecurityConfig{
			AdminToken: getEnv("ADMIN_TOKEN", ""),
		},
		RateLimit: RateLimitConfig{
			AuthRPS:   getEnvAsFloat("AUTH_RATE_LIMIT_RPS", 1),
			AuthBurst: getEnvAsInt("AUTH_RATE_LIMIT_BURST", 5),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
