package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Branding is the site name stamped into every rendered page.
const Branding = "Professor Brown's Secret Lab"

// Config holds application configuration
type Config struct {
	Port      string
	JWTKey    string
	SaltRound int

	DBName     string // sqlite file, used when DB_HOST is unset
	DBHost     string
	DBUser     string
	DBPassword string
	DBPort     string

	QuestionsCSV string
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
		Port:      getEnv("PORT", "3000"),
		JWTKey:    getEnv("JWT_SECRET", "default-secret-for-dev"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		DBName:     getEnv("DB_NAME", "quizvibe.db"),
		DBHost:     getEnv("DB_HOST", ""),
		DBUser:     getEnv("DB_USER", ""),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBPort:     getEnv("DB_PORT", "5432"),

		QuestionsCSV: getEnv("QUESTIONS_CSV", "questions.csv"),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "default-secret-for-dev" {
		log.Println("Warning: Using default JWT_SECRET. Update it in your environment.")
	}
	if AppConfig.DBHost == "" {
		log.Printf("No DB_HOST set, falling back to local sqlite database %q.", AppConfig.DBName)
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
