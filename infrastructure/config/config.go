package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// AWS configuration
	AWSRegion      string
	KnowledgeTable string
	SessionsTable  string
	EventBusName   string

	// KnowledgeSource selects where the corpus loads from: "seed" uses the
	// embedded data, "dynamodb" reads the knowledge table.
	KnowledgeSource string

	// Lambda configuration
	LambdaFunctionName string
	ColdStartTimeout   int // milliseconds

	// IsLambda reports whether the process runs inside AWS Lambda, where the
	// API Gateway authorizer handles token validation.
	IsLambda bool

	// Narrative generator configuration
	GeminiAPIKey string
	GeminiModel  string

	// Logging
	LogLevel string

	// Authentication
	JWTSecret string
	JWTIssuer string

	// Feature flags
	EnableMetrics bool
	EnableCORS    bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		AWSRegion:     getEnv("AWS_REGION", "us-west-2"),

		KnowledgeTable: getEnv("KNOWLEDGE_TABLE", "ziwei-knowledge"),
		// Empty keeps sessions in process memory for keyless local runs;
		// production validation requires a table.
		SessionsTable:   getEnv("SESSIONS_TABLE", ""),
		EventBusName:    getEnv("EVENT_BUS_NAME", ""),
		KnowledgeSource: getEnv("KNOWLEDGE_SOURCE", "seed"),

		// Lambda configuration
		LambdaFunctionName: getEnv("AWS_LAMBDA_FUNCTION_NAME", ""),
		ColdStartTimeout:   getEnvInt("COLD_START_TIMEOUT", 3000),

		// Narrative generator
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.0-flash"),

		// Authentication
		JWTSecret: getEnv("JWT_SECRET", ""),
		JWTIssuer: getEnv("JWT_ISSUER", "ziwei-backend"),

		// Logging and features
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		EnableMetrics: getEnvBool("ENABLE_METRICS", false),
		EnableCORS:    getEnvBool("ENABLE_CORS", true),
	}

	cfg.IsLambda = cfg.LambdaFunctionName != ""

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.KnowledgeSource != "seed" && c.KnowledgeSource != "dynamodb" {
		return fmt.Errorf("KNOWLEDGE_SOURCE must be seed or dynamodb, got %q", c.KnowledgeSource)
	}

	if c.Environment == "production" {
		if c.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET is required in production")
		}
		if c.SessionsTable == "" {
			return fmt.Errorf("SESSIONS_TABLE is required")
		}
		if c.KnowledgeSource == "dynamodb" && c.KnowledgeTable == "" {
			return fmt.Errorf("KNOWLEDGE_TABLE is required when loading knowledge from DynamoDB")
		}
	}

	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
