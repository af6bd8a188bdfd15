package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL   string
	JWTSecret     string
	JWTExpiry     time.Duration
	ServerPort    string
	Environment   string
	CORSOrigin    string
	CloudinaryURL string
	UploadDir     string
}

func Load() *Config {
	// Try to load .env file, but don't fail if it doesn't exist
	// (containers use environment variables directly)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		JWTExpiry:     getEnvAsDuration("JWT_EXPIRY", "720h"), // tokens live 30 days
		ServerPort:    getEnv("SERVER_PORT", ":5000"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		CORSOrigin:    getEnv("CORS_ORIGIN", "http://localhost:3000"),
		CloudinaryURL: os.Getenv("CLOUDINARY_URL"),
		UploadDir:     getEnv("UPLOAD_DIR", os.TempDir()),
	}

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	return cfg
}

// IsProduction reports whether the process runs in the production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv retrieves an environment variable with a default value
func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// getEnvAsDuration retrieves an environment variable as duration with a default value
func getEnvAsDuration(key string, defaultVal string) time.Duration {
	valStr := os.Getenv(key)
	if valStr == "" {
		valStr = defaultVal
	}
	duration, err := time.ParseDuration(valStr)
	if err != nil {
		log.Printf("Invalid %s value, using default: %s", key, defaultVal)
		duration, _ = time.ParseDuration(defaultVal)
	}
	return duration
}
