package config

import (
	"errors"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Port                             string `mapstructure:"PORT"`
	GinMode                          string `mapstructure:"GIN_MODE"`
	FirebaseProjectID                string `mapstructure:"FIREBASE_PROJECT_ID"`
	FirebaseDatabaseURL              string `mapstructure:"FIREBASE_DATABASE_URL"`
	GoogleApplicationCredentials     string `mapstructure:"GOOGLE_APPLICATION_CREDENTIALS"`
	FirebaseServiceAccountJSONBase64 string `mapstructure:"FIREBASE_SERVICE_ACCOUNT_JSON_BASE64"`
	ClientURL                        string `mapstructure:"CLIENT_URL"`
	MaxMessageLength                 int    `mapstructure:"MAX_MESSAGE_LENGTH"`

	// Optional membership snapshot cache. Leaving REDIS_ADDR empty disables it.
	RedisAddr                 string `mapstructure:"REDIS_ADDR"`
	RedisPassword             string `mapstructure:"REDIS_PASSWORD"`
	RedisDB                   int    `mapstructure:"REDIS_DB"`
	MembershipCacheTTLSeconds int    `mapstructure:"MEMBERSHIP_CACHE_TTL_SECONDS"`

	// Optional message event publishing. Leaving AMQP_URL empty disables it.
	AMQPUrl    string `mapstructure:"AMQP_URL"`
	EventQueue string `mapstructure:"EVENT_QUEUE"`
}

var appConfig *Config

// LoadConfig loads configuration from the environment using Viper. A .env
// file in the working directory is honored when present.
func LoadConfig() (*Config, error) {
	// Best effort; the environment itself is the source of truth.
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set default values
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("GIN_MODE", "debug")
	viper.SetDefault("MAX_MESSAGE_LENGTH", 2000)
	viper.SetDefault("MEMBERSHIP_CACHE_TTL_SECONDS", 30)
	viper.SetDefault("EVENT_QUEUE", "vacation-events")

	// Bind environment variables
	viper.BindEnv("PORT")
	viper.BindEnv("GIN_MODE")
	viper.BindEnv("FIREBASE_PROJECT_ID")
	viper.BindEnv("FIREBASE_DATABASE_URL")
	viper.BindEnv("GOOGLE_APPLICATION_CREDENTIALS")
	viper.BindEnv("FIREBASE_SERVICE_ACCOUNT_JSON_BASE64")
	viper.BindEnv("CLIENT_URL")
	viper.BindEnv("MAX_MESSAGE_LENGTH")
	viper.BindEnv("REDIS_ADDR")
	viper.BindEnv("REDIS_PASSWORD")
	viper.BindEnv("REDIS_DB")
	viper.BindEnv("MEMBERSHIP_CACHE_TTL_SECONDS")
	viper.BindEnv("AMQP_URL")
	viper.BindEnv("EVENT_QUEUE")

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.New("failed to unmarshal config: " + err.Error())
	}

	// Validate required fields
	if cfg.FirebaseProjectID == "" {
		return nil, errors.New("FIREBASE_PROJECT_ID is required")
	}
	if cfg.FirebaseDatabaseURL == "" {
		return nil, errors.New("FIREBASE_DATABASE_URL is required")
	}
	if cfg.GoogleApplicationCredentials == "" && cfg.FirebaseServiceAccountJSONBase64 == "" {
		return nil, errors.New("either GOOGLE_APPLICATION_CREDENTIALS or FIREBASE_SERVICE_ACCOUNT_JSON_BASE64 is required")
	}
	if cfg.MaxMessageLength <= 0 {
		return nil, errors.New("MAX_MESSAGE_LENGTH must be positive")
	}

	appConfig = &cfg
	return appConfig, nil
}

// GetConfig returns the loaded application configuration.
// It will panic if LoadConfig has not been called successfully.
func GetConfig() *Config {
	if appConfig == nil {
		panic("config not loaded; call LoadConfig first")
	}
	return appConfig
}
