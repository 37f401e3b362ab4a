package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

const (
	ProviderInference = "inference"
	ProviderOpenAI    = "openai"
)

type AppConfig struct {
	Env                Environment
	LogLevel           string
	ServerPort         string
	HttpTimeoutSeconds int
}

type TextGenConfig struct {
	Provider     string
	URL          string
	Token        string
	Model        string
	MaxNewTokens int
	Temperature  float64
}

type AnalysisConfig struct {
	MinContentWords int
}

type MetaConfig struct {
	MaxLength             int
	ExcerptThresholdWords int
	ExcerptWords          int
}

type Config struct {
	App      AppConfig
	TextGen  TextGenConfig
	Analysis AnalysisConfig
	Meta     MetaConfig
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	appEnv := getEnv("APP_ENV", "development")
	env := parseEnvironment(appEnv)

	logLevel := getLogLevel(env)

	return &Config{
		App: AppConfig{
			Env:                env,
			LogLevel:           logLevel,
			ServerPort:         getEnv("APP_SERVER_PORT", "8080"),
			HttpTimeoutSeconds: getEnvInt("APP_HTTP_TIMEOUT_SECONDS", 30),
		},
		TextGen: TextGenConfig{
			Provider:     strings.ToLower(getEnv("TEXTGEN_PROVIDER", ProviderInference)),
			URL:          getEnv("TEXTGEN_URL", ""),
			Token:        getEnv("TEXTGEN_TOKEN", ""),
			Model:        getEnv("TEXTGEN_MODEL", ""),
			MaxNewTokens: getEnvInt("TEXTGEN_MAX_NEW_TOKENS", 500),
			Temperature:  getEnvFloat("TEXTGEN_TEMPERATURE", 0.7),
		},
		Analysis: AnalysisConfig{
			MinContentWords: getEnvInt("ANALYSIS_MIN_CONTENT_WORDS", 50),
		},
		Meta: MetaConfig{
			MaxLength:             getEnvInt("META_MAX_LENGTH", 160),
			ExcerptThresholdWords: getEnvInt("META_EXCERPT_THRESHOLD_WORDS", 400),
			ExcerptWords:          getEnvInt("META_EXCERPT_WORDS", 300),
		},
	}, nil
}

func (c *Config) Validate() error {
	switch c.TextGen.Provider {
	case ProviderInference:
		if c.TextGen.URL == "" || c.TextGen.Token == "" {
			return fmt.Errorf("TEXTGEN_URL and TEXTGEN_TOKEN are required")
		}
	case ProviderOpenAI:
		if c.TextGen.Token == "" {
			return fmt.Errorf("TEXTGEN_TOKEN is required")
		}
	default:
		return fmt.Errorf("unknown TEXTGEN_PROVIDER '%s'", c.TextGen.Provider)
	}
	return nil
}

func parseEnvironment(envStr string) Environment {
	env := Environment(strings.ToLower(envStr))

	switch env {
	case Development, Production:
		return env
	default:
		return Development
	}
}

func getLogLevel(env Environment) string {
	if env == Production {
		return getEnv("APP_LOG_LEVEL", "info")
	}

	return getEnv("APP_LOG_LEVEL", "debug")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
