// Package config provides application configuration loading and management.
package config

import (
	"errors"
	"log"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds application configuration values loaded from file or environment variables.
type Config struct {
	Port     string `mapstructure:"PORT"`
	DataDir  string `mapstructure:"DATA_DIR"`
	RedisURL string `mapstructure:"REDIS_URL"`
}

// UsersFile returns the path of the users collection file.
func (c *Config) UsersFile() string {
	return filepath.Join(c.DataDir, "users.json")
}

// PostsFile returns the path of the posts collection file.
func (c *Config) PostsFile() string {
	return filepath.Join(c.DataDir, "posts.json")
}

// LoadConfig loads application configuration from file and environment variables.
func LoadConfig() *Config {
	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if errors.As(err, &notFoundErr) {
			log.Println("Config file not found; using environment variables and defaults")
		} else {
			log.Fatalf("Error reading config file: %s", err)
		}
	}

	// Set default values
	viper.SetDefault("PORT", "5000")
	viper.SetDefault("DATA_DIR", "./data")
	viper.SetDefault("REDIS_URL", "localhost:6379")

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		log.Fatalf("Unable to decode config into struct, %v", err)
	}

	return &config
}
