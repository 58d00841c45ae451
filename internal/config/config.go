package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	AppMode    string `validate:"oneof=dev prod"`
	Port       string `validate:"required,numeric"`
	Database   DatabaseConfig
	Activity   ActivityConfig
	RateLimit  int `validate:"gte=0"`
	HealthCron string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver   string `validate:"oneof=mysql postgres sqlite"`
	Host     string `validate:"required_unless=Driver sqlite"`
	Port     string `validate:"required_unless=Driver sqlite"`
	User     string
	Password string
	DBName   string `validate:"required"`
	MaxIdle  int    `validate:"gte=0"`
	MaxOpen  int    `validate:"gte=0"`
}

// ActivityConfig locates the third-party activity API
type ActivityConfig struct {
	Host string `validate:"required,url"`
	Path string `validate:"startswith=/"`
}

// Global config instance
var AppConfig *Config

var validate = validator.New()

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	config, err := FromEnv()
	if err != nil {
		return nil, err
	}

	// Set global config
	AppConfig = config

	log.Printf("✅ Configuration loaded successfully [MODE: %s]", config.AppMode)
	return config, nil
}

// DefaultHealthSchedule applies when HEALTH_CRON is unset; set it empty to disable the probe
const DefaultHealthSchedule = "@every 5m"

// FromEnv builds and validates a config from the process environment
func FromEnv() (*Config, error) {
	// trim spaces for Windows compatibility
	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	config := &Config{
		AppMode:    appMode,
		Port:       getEnv("PORT", "3000"),
		Database:   loadDatabaseConfig(appMode),
		Activity:   loadActivityConfig(),
		RateLimit:  getEnvInt("RATE_LIMIT_MAX", 100),
		HealthCron: os.Getenv("HEALTH_CRON"),
	}
	if _, set := os.LookupEnv("HEALTH_CRON"); !set {
		config.HealthCron = DefaultHealthSchedule
	}

	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// loadDatabaseConfig loads database config based on mode
func loadDatabaseConfig(mode string) DatabaseConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	return DatabaseConfig{
		Driver:   getEnv(prefix+"DB_DRIVER", "mysql"),
		Host:     getEnv(prefix+"DB_HOST", "localhost"),
		Port:     getEnv(prefix+"DB_PORT", "3306"),
		User:     getEnv(prefix+"DB_USER", "root"),
		Password: getEnv(prefix+"DB_PASS", ""),
		DBName:   getEnv(prefix+"DB_NAME", "user_service"),
		MaxIdle:  getEnvInt("DB_MAX_IDLE", 10),
		MaxOpen:  getEnvInt("DB_MAX_OPEN", 100),
	}
}

// loadActivityConfig loads the activity API location
func loadActivityConfig() ActivityConfig {
	return ActivityConfig{
		Host: getEnv("ACTIVITY_HOST", "https://www.boredapi.com"),
		Path: getEnv("ACTIVITY_PATH", "/api/activity"),
	}
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer environment variable; unparsable values fall back to the default
func getEnvInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(getEnv(key, strconv.Itoa(defaultValue)))
	if err != nil {
		return defaultValue
	}
	return n
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" {
		return "*"
	}
	return origins
}
