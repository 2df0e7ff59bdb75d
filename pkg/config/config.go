package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Storage  StorageConfig
	Sync     SyncConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string
	Host            string
	Environment     string
	AllowedOrigins  []string
	ShutdownTimeout int
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int
	MinConns int
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// StorageConfig holds raw payload archive configuration
type StorageConfig struct {
	Enabled         bool
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	UseSSL          bool
}

// SyncConfig holds scraping pipeline configuration
type SyncConfig struct {
	// InterSourceDelay is the pause between sources during a full run
	InterSourceDelay time.Duration

	// LockTTL bounds how long a crashed run can keep a source locked
	LockTTL time.Duration

	// RequestTimeout applies per upstream HTTP request
	RequestTimeout time.Duration

	// RetryMaxElapsed caps the total retry window for one request
	RetryMaxElapsed time.Duration

	// RequestsPerSecond and RequestBurst rate-limit each upstream host
	RequestsPerSecond float64
	RequestBurst      int

	// Feed endpoints per source
	SAFMCAmendmentsURL string
	SAFMCMeetingsURL   string
	SAFMCCommentsURL   string
	SSCMeetingsURL     string
	CMODWorkshopsURL   string
	EcosystemURL       string

	// FisheryPulseFeeds lists the aggregated council and state agency feeds
	FisheryPulseFeeds       []string
	FisheryPulseConcurrency int
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", "0.0.0.0"),
			Environment:     getEnv("ENVIRONMENT", "development"),
			AllowedOrigins:  getEnvAsSlice("ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 10),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			Name:     getEnv("DB_NAME", "councilpulse"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: getEnvAsInt("DB_MAX_CONNS", 25),
			MinConns: getEnvAsInt("DB_MIN_CONNS", 5),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Storage: StorageConfig{
			Enabled:         getEnvAsBool("ARCHIVE_ENABLED", false),
			Endpoint:        getEnv("ARCHIVE_ENDPOINT", "localhost:9000"),
			AccessKeyID:     getEnv("ARCHIVE_ACCESS_KEY", "minioadmin"),
			SecretAccessKey: getEnv("ARCHIVE_SECRET_KEY", "minioadmin"),
			BucketName:      getEnv("ARCHIVE_BUCKET", "councilpulse-raw"),
			UseSSL:          getEnvAsBool("ARCHIVE_USE_SSL", false),
		},
		Sync: SyncConfig{
			InterSourceDelay:  getEnvAsDuration("SYNC_INTER_SOURCE_DELAY", "1500ms"),
			LockTTL:           getEnvAsDuration("SYNC_LOCK_TTL", "10m"),
			RequestTimeout:    getEnvAsDuration("SYNC_REQUEST_TIMEOUT", "30s"),
			RetryMaxElapsed:   getEnvAsDuration("SYNC_RETRY_MAX_ELAPSED", "2m"),
			RequestsPerSecond: getEnvAsFloat("SYNC_REQUESTS_PER_SECOND", 2),
			RequestBurst:      getEnvAsInt("SYNC_REQUEST_BURST", 4),

			SAFMCAmendmentsURL: getEnv("SAFMC_AMENDMENTS_URL", "https://safmc.net/api/amendments"),
			SAFMCMeetingsURL:   getEnv("SAFMC_MEETINGS_URL", "https://safmc.net/api/meetings"),
			SAFMCCommentsURL:   getEnv("SAFMC_COMMENTS_URL", "https://safmc.net/api/comments"),
			SSCMeetingsURL:     getEnv("SSC_MEETINGS_URL", "https://safmc.net/api/ssc-meetings"),
			CMODWorkshopsURL:   getEnv("CMOD_WORKSHOPS_URL", "https://safmc.net/api/cmod-workshops"),
			EcosystemURL:       getEnv("ECOSYSTEM_URL", "https://safmc.net/api/ecosystem-indicators"),

			FisheryPulseFeeds:       getEnvAsSlice("FISHERYPULSE_FEEDS", nil),
			FisheryPulseConcurrency: getEnvAsInt("FISHERYPULSE_CONCURRENCY", 4),
		},
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Name == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	if c.Sync.RequestsPerSecond <= 0 {
		return fmt.Errorf("SYNC_REQUESTS_PER_SECOND must be positive")
	}
	if c.Storage.Enabled && c.Storage.BucketName == "" {
		return fmt.Errorf("ARCHIVE_BUCKET is required when the archive is enabled")
	}
	return nil
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}
	return duration
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	parts := strings.Split(valueStr, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
