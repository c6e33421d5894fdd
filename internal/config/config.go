package config

import (
	"fmt"
	"os"
)

// Config holds every environment-driven setting. It is constructed once in
// main and passed to the components that need it instead of being read from
// ambient globals.
type Config struct {
	Port     string
	LogLevel string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	FrontendURL string

	GeminiAPIKey    string
	LinkedInCookies string

	RabbitMQHost string
	RabbitMQPort string
	RabbitMQUser string
	RabbitMQPass string

	SentryDSN string
}

// Load reads the configuration from the environment. Presence of required
// values is checked by the callers that need them (ValidateDB, and the
// per-binary credential checks in main).
func Load() *Config {
	return &Config{
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		DBHost:     getEnv("DB_HOST", ""),
		DBPort:     getEnv("DB_PORT", ""),
		DBUser:     getEnv("DB_USER", ""),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", ""),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		FrontendURL: getEnv("FRONTEND_URL", ""),

		GeminiAPIKey:    getEnv("GEMINI_API_KEY", ""),
		LinkedInCookies: getEnv("LINKEDIN_COOKIES", ""),

		RabbitMQHost: getEnv("RABBITMQ_HOST", "localhost"),
		RabbitMQPort: getEnv("RABBITMQ_PORT", "5672"),
		RabbitMQUser: getEnv("RABBITMQ_USER", "guest"),
		RabbitMQPass: getEnv("RABBITMQ_PASS", "guest"),

		SentryDSN: getEnv("SENTRY_DSN", ""),
	}
}

// ValidateDB checks that every database connection value is present.
func (c *Config) ValidateDB() error {
	if c.DBHost == "" || c.DBPort == "" || c.DBUser == "" || c.DBPassword == "" || c.DBName == "" {
		return fmt.Errorf("missing required database environment variables. Please check your .env file")
	}
	return nil
}

// DSN builds the postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// AMQPURL builds the RabbitMQ connection URL.
func (c *Config) AMQPURL() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%s/", c.RabbitMQUser, c.RabbitMQPass, c.RabbitMQHost, c.RabbitMQPort)
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
