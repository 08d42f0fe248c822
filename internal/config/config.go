// Package config loads server configuration from the environment.
package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// LLM provider names accepted in TRAVELPAL_LLM_PROVIDER.
const (
	ProviderGoogleAI = "googleai"
	ProviderOpenAI   = "openai"
	ProviderOllama   = "ollama"
	ProviderBedrock  = "bedrock"
)

// Config holds all configuration values.
type Config struct {
	// HTTP server
	Port          string
	AllowedOrigin string
	DevMode       bool

	// Auth
	JWTSecret   string
	TokenTTL    time.Duration
	RequireAuth bool

	// MongoDB credential store
	MongoURI      string
	MongoDatabase string

	// Generative model
	LLMProvider    string
	LLMModel       string
	GeminiAPIKey   string
	OpenAIAPIKey   string
	OllamaHost     string
	BedrockModelID string

	// Geocoding / points of interest
	NominatimURL string
	OverpassURL  string
	HTTPTimeout  time.Duration

	// Logging
	LogFile  string
	LogLevel slog.Level
}

// Load reads configuration from environment variables, after loading an
// optional .env file from the working directory.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:          getEnv("PORT", "5000"),
		AllowedOrigin: getEnv("TRAVELPAL_ALLOWED_ORIGIN", "http://localhost:5173"),
		DevMode:       getEnv("TRAVELPAL_ENV", "production") == "development",

		JWTSecret:   getEnv("JWT_SECRET", "default_secret"),
		TokenTTL:    time.Hour,
		RequireAuth: getEnv("TRAVELPAL_REQUIRE_AUTH", "false") == "true",

		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGO_DATABASE", "travelpal"),

		LLMProvider:    getEnv("TRAVELPAL_LLM_PROVIDER", ProviderGoogleAI),
		LLMModel:       getEnv("TRAVELPAL_LLM_MODEL", "gemini-1.5-flash"),
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		OpenAIAPIKey:   os.Getenv("OPENAI_API_KEY"),
		OllamaHost:     getEnv("OLLAMA_HOST", "http://localhost:11434"),
		BedrockModelID: getEnv("BEDROCK_MODEL_ID", "anthropic.claude-3-haiku-20240307-v1:0"),

		NominatimURL: getEnv("NOMINATIM_URL", "https://nominatim.openstreetmap.org"),
		OverpassURL:  getEnv("OVERPASS_URL", "https://overpass-api.de/api/interpreter"),
		HTTPTimeout:  10 * time.Second,

		LogFile:  getEnv("TRAVELPAL_LOG_FILE", ""),
		LogLevel: parseLogLevel(getEnv("TRAVELPAL_LOG_LEVEL", "INFO")),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
