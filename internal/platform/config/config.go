package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is the top-level service configuration.
type Config struct {
	Server   ServerConfig   `json:"server"`
	Database DatabaseConfig `json:"database"`
	JWT      JWTConfig      `json:"jwt"`
	Cache    CacheConfig    `json:"cache"`
	App      AppConfig      `json:"app"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Host  string `json:"host"`
	Port  int    `json:"port"`
	Debug bool   `json:"debug"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Postgres PostgreSQLConfig `json:"postgres"`
}

// PostgreSQLConfig holds PostgreSQL-specific configuration
type PostgreSQLConfig struct {
	Host            string        `json:"host"`
	Port            int           `json:"port"`
	Username        string        `json:"username"`
	Password        string        `json:"password"`
	Database        string        `json:"database"`
	SSLMode         string        `json:"sslMode"`
	ConnectTimeout  int           `json:"connectTimeout"`
	MaxOpenConns    int           `json:"maxOpenConns"`
	MaxIdleConns    int           `json:"maxIdleConns"`
	ConnMaxLifetime time.Duration `json:"connMaxLifetime"`
}

// JWTConfig holds JWT-related configuration
type JWTConfig struct {
	PublicKey  string `json:"publicKey"`
	PrivateKey string `json:"privateKey"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	Enabled       bool          `json:"enabled"`
	Backend       string        `json:"backend"`
	TTL           time.Duration `json:"ttl"`
	RedisAddress  string        `json:"redisAddress"`
	RedisPassword string        `json:"redisPassword"`
	RedisDatabase int           `json:"redisDatabase"`
}

// AppConfig holds application-related configuration
type AppConfig struct {
	Name      string `json:"name"`
	WebDomain string `json:"webDomain"`
}

// LoadFromEnv builds the configuration from the process environment.
// A .env file, when present, seeds values that are not already set.
func LoadFromEnv() (*Config, error) {
	envPaths := []string{
		".env",
		"../.env",
		"../../.env",
	}

	loaded := false
	for _, envPath := range envPaths {
		if err := godotenv.Load(envPath); err == nil {
			loaded = true
			break
		}
	}
	if !loaded {
		fmt.Println("INFO: .env file not found, using environment variables and defaults.")
	}

	config := &Config{
		Server: ServerConfig{
			Host:  getEnvOrDefault("HOST", "localhost"),
			Port:  getEnvAsInt("SERVER_PORT", 8080),
			Debug: getEnvAsBool("DEBUG", false),
		},
		Database: DatabaseConfig{
			Postgres: PostgreSQLConfig{
				Host:            getEnvOrDefault("POSTGRES_HOST", "localhost"),
				Port:            getEnvAsInt("POSTGRES_PORT", 5432),
				Username:        getEnvOrDefault("POSTGRES_USERNAME", ""),
				Password:        getEnvOrDefault("POSTGRES_PASSWORD", ""),
				Database:        getEnvOrDefault("POSTGRES_DATABASE", "clipstream"),
				SSLMode:         getEnvOrDefault("POSTGRES_SSL_MODE", "disable"),
				ConnectTimeout:  getEnvAsInt("POSTGRES_CONNECT_TIMEOUT", 10),
				MaxOpenConns:    getEnvAsInt("POSTGRES_MAX_OPEN_CONNS", 25),
				MaxIdleConns:    getEnvAsInt("POSTGRES_MAX_IDLE_CONNS", 25),
				ConnMaxLifetime: time.Duration(getEnvAsInt("POSTGRES_CONN_MAX_LIFETIME", 300)) * time.Second,
			},
		},
		JWT: JWTConfig{
			PublicKey:  getEnvOrDefault("JWT_PUBLIC_KEY", ""),
			PrivateKey: getEnvOrDefault("JWT_PRIVATE_KEY", ""),
		},
		Cache: CacheConfig{
			Enabled:       getEnvAsBool("CACHE_ENABLED", false),
			Backend:       getEnvOrDefault("CACHE_BACKEND", "memory"),
			TTL:           time.Duration(getEnvAsInt("CACHE_TTL_SECONDS", 3600)) * time.Second,
			RedisAddress:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
			RedisPassword: getEnvOrDefault("REDIS_PASSWORD", ""),
			RedisDatabase: getEnvAsInt("REDIS_DATABASE", 0),
		},
		App: AppConfig{
			Name:      getEnvOrDefault("APP_NAME", "clipstream"),
			WebDomain: getEnvOrDefault("WEB_DOMAIN", "http://localhost:3000"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks required configuration values.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Database.Postgres.Host == "" {
		return fmt.Errorf("postgres host is required")
	}
	if c.Database.Postgres.Database == "" {
		return fmt.Errorf("postgres database name is required")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
