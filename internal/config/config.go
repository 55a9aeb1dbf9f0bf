package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	LogDir      string
	Environment string
	Version     string
	APIKey      string // API key for authentication

	StoreMode  string // offline or connected
	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	DBSSLMode  string
	DBMaxConns int

	SeedFile      string
	MediaDir      string
	MediaBaseURL  string
	MaxImageBytes int

	ResyncInterval time.Duration
	ViewCacheSize  int
	ViewCacheTTL   time.Duration
	WorkerCount    int

	TrustedProxies []string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:     strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel)),
		LogFormat:    strings.ToLower(getEnv("LOG_FORMAT", DefaultLogFormat)),
		LogDir:       getEnv("LOG_DIR", DefaultLogDir),
		Environment:  getEnv("ENVIRONMENT", DefaultEnvironment),
		Version:      getEnv("VERSION", DefaultVersion),
		APIKey:       getEnv("API_KEY", ""),
		StoreMode:    strings.ToLower(getEnv("STORE_MODE", StoreModeOffline)),
		DBUser:       getEnv("DB_USER", "postgres"),
		DBPassword:   getEnv("DB_PASSWORD", "postgres"),
		DBHost:       getEnv("DB_HOST", "localhost"),
		DBPort:       getEnv("DB_PORT", "5432"),
		DBName:       getEnv("DB_NAME", DefaultDBName),
		DBSSLMode:    getEnv("DB_SSLMODE", "disable"),
		SeedFile:     getEnv("SEED_FILE", ""),
		MediaDir:     getEnv("MEDIA_DIR", DefaultMediaDir),
		MediaBaseURL: strings.TrimRight(getEnv("MEDIA_BASE_URL", DefaultMediaBaseURL), "/"),
	}

	portStr := getEnv("PORT", strconv.Itoa(DefaultPort))
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	cfg.DBMaxConns = getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns)
	cfg.MaxImageBytes = getEnvAsInt("MAX_IMAGE_BYTES", DefaultMaxImageBytes)
	cfg.ViewCacheSize = getEnvAsInt("VIEW_CACHE_SIZE", DefaultViewCacheSize)
	cfg.WorkerCount = getEnvAsInt("WORKER_COUNT", DefaultWorkerCount)
	cfg.ResyncInterval = getEnvAsDuration("RESYNC_INTERVAL", 0)
	cfg.ViewCacheTTL = getEnvAsDuration("VIEW_CACHE_TTL", DefaultViewCacheTTL)

	if proxies := getEnv("TRUSTED_PROXIES", ""); proxies != "" {
		for _, p := range strings.Split(proxies, ",") {
			if p = strings.TrimSpace(p); p != "" {
				cfg.TrustedProxies = append(cfg.TrustedProxies, p)
			}
		}
	}

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}
	if cfg.StoreMode != StoreModeOffline && cfg.StoreMode != StoreModeConnected {
		return nil, fmt.Errorf("invalid STORE_MODE %q: expected %s or %s", cfg.StoreMode, StoreModeOffline, StoreModeConnected)
	}

	return cfg, nil
}

// IsConnected reports whether writes go through the external store
func (c *Config) IsConnected() bool {
	return c.StoreMode == StoreModeConnected
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to the default when unset or invalid
func getEnvAsInt(key string, defaultValue int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}

// getEnvAsDuration parses a duration variable, falling back to the default when unset or invalid
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	sslMode := c.DBSSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
		sslMode,
	)
}
