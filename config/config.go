package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageLocal = "local"
	StorageS3    = "s3"
)

type Config struct {
	Port     string
	DBUrl    string
	LogLevel string
	AppEnv   string
	// Auth
	JWTSecret   string
	TokenTTL    time.Duration
	RequireAuth bool
	// HTTP
	CORSAllowedOrigins []string
	ExposeErrorDetails bool
	// CV storage
	StorageType   string
	UploadDir     string
	PublicBaseURL string
	S3            S3Config
	// Antivirus
	ClamAVAddress string
	ClamAVTimeout time.Duration
	// Database
	BootstrapSchema bool
}

// S3Config holds settings for the S3-compatible CV storage backend
type S3Config struct {
	Provider        string // "aws" or "wasabi"
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	Bucket          string
	WasabiEndpoint  string
}

func LoadConfig() (*Config, error) {
	// Load .env file when present (local development only)
	_ = godotenv.Load()

	cfg := &Config{
		Port:     getEnv("PORT", "5000"),
		DBUrl:    getEnv("DATABASE_URL", ""),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		AppEnv:   getEnv("APP_ENV", "development"),

		JWTSecret:   getEnv("JWT_SECRET", ""),
		TokenTTL:    time.Duration(getEnvInt("TOKEN_TTL_HOURS", 12)) * time.Hour,
		RequireAuth: getEnvBool("REQUIRE_AUTH", false),

		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		ExposeErrorDetails: getEnvBool("EXPOSE_ERROR_DETAILS", true),

		StorageType:   strings.ToLower(getEnv("STORAGE_TYPE", StorageLocal)),
		UploadDir:     getEnv("UPLOAD_DIR", "uploads/cvs"),
		PublicBaseURL: strings.TrimRight(getEnv("PUBLIC_BASE_URL", ""), "/"),
		S3: S3Config{
			Provider:        getEnv("S3_PROVIDER", "aws"),
			AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", ""),
			Region:          getEnv("S3_REGION", ""),
			Bucket:          getEnv("S3_BUCKET", ""),
			WasabiEndpoint:  getEnv("WASABI_ENDPOINT", ""),
		},

		ClamAVAddress: getEnv("CLAMAV_ADDRESS", ""),
		ClamAVTimeout: time.Duration(getEnvInt("CLAMAV_TIMEOUT_SECONDS", 30)) * time.Second,

		BootstrapSchema: getEnvBool("BOOTSTRAP_SCHEMA", true),
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	if cfg.TokenTTL <= 0 {
		return nil, fmt.Errorf("TOKEN_TTL_HOURS must be positive")
	}

	switch cfg.StorageType {
	case StorageLocal:
	case StorageS3:
		if cfg.S3.Bucket == "" || cfg.S3.Region == "" {
			return nil, errors.New("S3_BUCKET and S3_REGION are required when STORAGE_TYPE=s3")
		}
	default:
		return nil, fmt.Errorf("invalid STORAGE_TYPE %q", cfg.StorageType)
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if !cfg.RequireAuth {
		log.Println("WARNING: REQUIRE_AUTH is disabled. Every route is reachable without a token.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimRight(strings.TrimSpace(part), "/"); p != "" {
			out = append(out, p)
		}
	}
	return out
}
