package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	Env string `mapstructure:"APP_ENV"` // development | production

	// Database
	DBPath string `mapstructure:"DB_PATH"`
	// SchemaVersion is compared against the store's recorded version at
	// startup. A mismatch triggers a destructive reset: all tables are
	// dropped and recreated. This data loss on version bump is intentional.
	SchemaVersion int `mapstructure:"SCHEMA_VERSION"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DB_PATH", "huerto_hogar.db")
	viper.SetDefault("SCHEMA_VERSION", 1)

	// Optional .env file for local development; does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
