package main

import (
	"fmt"

	"github.com/spf13/viper"

	"wtfTimeline/logger"
)

// Config holds all application configuration. It's read from a .config.json
// file if one is present, otherwise the dev defaults apply.
type Config struct {
	Port     int            `mapstructure:"port"`
	Env      string         `mapstructure:"env"`
	Pepper   string         `mapstructure:"pepper"`
	HMACKey  string         `mapstructure:"hmac_key"`
	CSRFKey  string         `mapstructure:"csrf_key"`
	Database PostgresConfig `mapstructure:"database"`
}

// IsProd reports whether the app runs in production mode.
func (c Config) IsProd() bool {
	return c.Env == "prod"
}

// PostgresConfig holds the database connection parameters.
type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
}

// ConnectionInfo returns the postgres DSN built from the config values.
func (pc PostgresConfig) ConnectionInfo() string {
	if pc.Password == "" {
		return fmt.Sprintf("host=%s port=%d user=%s dbname=%s sslmode=disable",
			pc.Host, pc.Port, pc.User, pc.Name)
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		pc.Host, pc.Port, pc.User, pc.Password, pc.Name)
}

// LoadConfig reads .config.json through viper, falling back to dev defaults
// for anything not set. In production the file is required and the app
// panics if it's missing, so a prod deploy can't silently run on dev secrets.
func LoadConfig(prod bool) Config {
	v := viper.New()
	v.SetConfigFile(".config.json")
	v.SetConfigType("json")

	v.SetDefault("port", 1111)
	v.SetDefault("env", "dev")
	v.SetDefault("pepper", "secret-random-string")
	v.SetDefault("hmac_key", "secret-hmac-key")
	v.SetDefault("csrf_key", "32-byte-long-auth-key-for-dev-00")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "wtf_timeline")

	if err := v.ReadInConfig(); err != nil {
		if prod {
			panic(fmt.Errorf("a .config.json file is required in production: %w", err))
		}
	} else {
		logger.Info("loaded .config.json")
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		panic(err)
	}
	return c
}
