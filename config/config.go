package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port     string
	DBDriver string // sqlite or postgres
	DBName   string
	DBHost   string
	DBUser   string
	DBPass   string
	DBPort   string

	JWTKey   string
	TokenTTL int // session token lifetime in hours

	ModelDir  string // directory holding preprocessor.json and model.json
	StatsCron string // schedule for the daily prediction volume log
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:     getEnv("PORT", "3000"),
		DBDriver: getEnv("DB_DRIVER", "sqlite"),
		DBName:   getEnv("DB_NAME", "scoremate.db"),
		DBHost:   getEnv("DB_HOST", "localhost"),
		DBUser:   getEnv("DB_USER", "postgres"),
		DBPass:   getEnv("DB_PASSWORD", ""),
		DBPort:   getEnv("DB_PORT", "5432"),

		JWTKey:   getEnv("JWT_SECRET_KEY", "defaultSecret"),
		TokenTTL: getEnvInt("TOKEN_TTL_HOURS", 24),

		ModelDir:  getEnv("MODEL_DIR", "./artifacts"),
		StatsCron: getEnv("STATS_CRON", "0 9 * * *"),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.DBDriver != "sqlite" && AppConfig.DBDriver != "postgres" {
		log.Printf("Warning: Unknown DB_DRIVER %q. Falling back to sqlite.", AppConfig.DBDriver)
		AppConfig.DBDriver = "sqlite"
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
