package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the complete application configuration
type Config struct {
	Server        ServerConfig
	Model         ModelConfig
	Translation   TranslationConfig
	OCR           OCRConfig
	Speech        SpeechConfig
	CORS          CORSConfig
	Observability ObservabilityConfig
	Environment   string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// ModelConfig holds the translation model configuration.
// The model named here is loaded once at startup; the process refuses to
// serve traffic when the load fails.
type ModelConfig struct {
	Name   string // model identifier, e.g. Helsinki-NLP/opus-mt-mul-en
	Dir    string // local directory holding (or receiving) the weights
	Device string // cpu only; the inference engine is CPU-bound
}

// TranslationConfig holds translation pipeline configuration.
// The target language is not configurable: it is a property of the served
// model checkpoint, which translates into English only.
type TranslationConfig struct {
	CacheSize int // max entries in the result cache
	CacheTTL  time.Duration
}

// OCRConfig holds the image-to-text configuration
type OCRConfig struct {
	Enabled bool
}

// SpeechConfig holds the transcription backend configuration.
// The backend is any OpenAI-compatible audio endpoint (a local Whisper
// server in practice); the surface stays disabled until configured.
type SpeechConfig struct {
	Enabled bool
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// CORSConfig holds cross-origin configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// ObservabilityConfig holds logging configuration
type ObservabilityConfig struct {
	LogLevel  string
	LogFormat string // json or console
}

// New creates a new Config instance by loading environment variables
func New(ctx context.Context) (*Config, error) {
	// Load .env file if it exists (backend/.env when run from project root, .env when run from backend/)
	_ = godotenv.Load("backend/.env")
	_ = godotenv.Load(".env")

	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			Port:            getPort(),
			ReadTimeout:     getEnvAsDuration("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:    getEnvAsDuration("SERVER_WRITE_TIMEOUT", 120*time.Second),
			ShutdownTimeout: getEnvAsDuration("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Model: ModelConfig{
			Name:   getEnv("MODEL_NAME", "Helsinki-NLP/opus-mt-mul-en"),
			Dir:    getEnv("MODELS_DIR", "models"),
			Device: getEnv("MODEL_DEVICE", "cpu"),
		},
		Translation: TranslationConfig{
			CacheSize: getEnvAsInt("TRANSLATION_CACHE_SIZE", 1024),
			CacheTTL:  getEnvAsDuration("TRANSLATION_CACHE_TTL", time.Hour),
		},
		OCR: OCRConfig{
			Enabled: getEnvAsBool("OCR_ENABLED", true),
		},
		Speech: SpeechConfig{
			Enabled: getEnvAsBool("SPEECH_ENABLED", false),
			BaseURL: getEnv("SPEECH_BASE_URL", "http://localhost:9000/v1"),
			APIKey:  getEnv("SPEECH_API_KEY", ""),
			Model:   getEnv("SPEECH_MODEL", "whisper-1"),
			Timeout: getEnvAsDuration("SPEECH_TIMEOUT", 120*time.Second),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		Observability: ObservabilityConfig{
			LogLevel:  getEnv("LOG_LEVEL", "info"),
			LogFormat: getEnv("LOG_FORMAT", "json"),
		},
	}

	// Validate the configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks if all required configuration fields are set
func (c *Config) Validate() error {
	if c.Model.Name == "" {
		return fmt.Errorf("model name is required")
	}
	if c.Model.Dir == "" {
		return fmt.Errorf("models directory is required")
	}
	if c.Model.Device != "cpu" {
		return fmt.Errorf("unsupported model device %q: only cpu is supported", c.Model.Device)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server port must be between 1 and 65535")
	}

	if c.Translation.CacheSize < 0 {
		return fmt.Errorf("translation cache size must not be negative")
	}

	if c.Speech.Enabled {
		if c.Speech.BaseURL == "" {
			return fmt.Errorf("speech base URL is required when the speech surface is enabled")
		}
		if c.Speech.Model == "" {
			return fmt.Errorf("speech model is required when the speech surface is enabled")
		}
	}

	if c.Observability.LogLevel == "" {
		return fmt.Errorf("log level is required")
	}

	return nil
}

// IsProduction returns true if running in production environment
func (c *Config) IsProduction() bool {
	return c.Environment == "production" || c.Environment == "prod"
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development" || c.Environment == "dev"
}

// Address returns the HTTP server address
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Helper functions

// getPort returns the server port from PORT or SERVER_PORT env vars (default: 8000)
func getPort() int {
	if value := os.Getenv("PORT"); value != "" {
		if p, err := strconv.Atoi(value); err == nil {
			return p
		}
	}
	if value := os.Getenv("SERVER_PORT"); value != "" {
		if p, err := strconv.Atoi(value); err == nil {
			return p
		}
	}
	return 8000
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	parts := strings.Split(valueStr, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
