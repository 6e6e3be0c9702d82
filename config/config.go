package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server      ServerConfig
	Recognition RecognitionConfig
	Typesense   TypesenseConfig
	Cache       CacheConfig
	Matching    MatchingConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// RecognitionConfig holds recognition oracle configuration
type RecognitionConfig struct {
	BaseURL           string  `mapstructure:"base_url"`
	APIKey            string  `mapstructure:"api_key"`
	MaxAttempts       int     `mapstructure:"max_attempts"`
	RequestsPerMinute int     `mapstructure:"requests_per_minute"`
	MinOCRQuality     float64 `mapstructure:"min_ocr_quality"`
	MinOCRWords       int     `mapstructure:"min_ocr_words"`
	MinTextConfidence float64 `mapstructure:"min_text_confidence"`
	TextModelCost     float64 `mapstructure:"text_model_cost"`
	VisionModelCost   float64 `mapstructure:"vision_model_cost"`
}

// TypesenseConfig holds product search index configuration
type TypesenseConfig struct {
	Host       string `mapstructure:"host"`
	APIKey     string `mapstructure:"api_key"`
	Collection string `mapstructure:"collection"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// MatchingConfig holds candidate matching configuration
type MatchingConfig struct {
	MinConfidenceThreshold float64 `mapstructure:"min_confidence"`
	SearchLimit            int     `mapstructure:"search_limit"`
	EnableDebugLogging     bool    `mapstructure:"enable_debug_logging"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/blackscan/")

	v.SetEnvPrefix("BLACKSCAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional; env vars and defaults cover everything
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	// Register secret/endpoint keys so AutomaticEnv can populate them
	v.SetDefault("recognition.base_url", "")
	v.SetDefault("recognition.api_key", "")
	v.SetDefault("typesense.host", "")
	v.SetDefault("typesense.api_key", "")

	v.SetDefault("recognition.max_attempts", 3)
	v.SetDefault("recognition.requests_per_minute", 60)
	v.SetDefault("recognition.min_ocr_quality", 0.7)
	v.SetDefault("recognition.min_ocr_words", 5)
	v.SetDefault("recognition.min_text_confidence", 0.7)
	v.SetDefault("recognition.text_model_cost", 0.002)
	v.SetDefault("recognition.vision_model_cost", 0.015)

	v.SetDefault("typesense.collection", "products")

	v.SetDefault("cache.ttl", "24h")

	v.SetDefault("matching.min_confidence", 0.3)
	v.SetDefault("matching.search_limit", 20)
	v.SetDefault("matching.enable_debug_logging", false)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Recognition.BaseURL == "" {
		return fmt.Errorf("recognition base URL is required (set BLACKSCAN_RECOGNITION_BASE_URL)")
	}
	if config.Recognition.APIKey == "" {
		return fmt.Errorf("recognition API key is required (set BLACKSCAN_RECOGNITION_API_KEY)")
	}
	if config.Typesense.Host == "" {
		return fmt.Errorf("typesense host is required (set BLACKSCAN_TYPESENSE_HOST)")
	}
	if config.Typesense.APIKey == "" {
		return fmt.Errorf("typesense API key is required (set BLACKSCAN_TYPESENSE_API_KEY)")
	}
	if config.Matching.MinConfidenceThreshold < 0 || config.Matching.MinConfidenceThreshold > 1 {
		return fmt.Errorf("matching min_confidence must be within [0,1], got: %f", config.Matching.MinConfidenceThreshold)
	}
	return nil
}
