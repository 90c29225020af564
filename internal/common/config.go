package common

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	OCR      OCRConfig
	LLM      LLMConfig
	Auth     AuthConfig
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	DialTimeout     time.Duration
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	GRPCAddr string
}

// OCRConfig holds text-extraction configuration.
type OCRConfig struct {
	TessdataDir   string
	TesseractLang string
	ScratchDir    string
}

// LLMConfig holds summarization configuration.
type LLMConfig struct {
	BaseURL string
	Model   string
	Timeout time.Duration
}

// AuthConfig holds token signing configuration.
type AuthConfig struct {
	JWTSecret string
	AccessTTL time.Duration
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:             getEnv("DB_URL", ""),
			MaxConns:        getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:        getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:     getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		OCR: OCRConfig{
			TessdataDir:   getEnv("TESSDATA_PREFIX", ""),
			TesseractLang: getEnv("TESSERACT_LANG", "fra"),
			ScratchDir:    getEnv("SCRATCH_DIR", os.TempDir()),
		},
		LLM: LLMConfig{
			BaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			Model:   getEnv("OLLAMA_MODEL", "llama3"),
			Timeout: getEnvAsDuration("OLLAMA_TIMEOUT", 2*time.Minute),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
			AccessTTL: getEnvAsDuration("JWT_ACCESS_TTL", 24*time.Hour),
		},
	}
}

// Validate reports configuration the server cannot start without.
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return errors.New("DB_URL is required")
	}
	if c.Server.GRPCAddr == "" {
		return errors.New("GRPC_ADDR is required")
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
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
