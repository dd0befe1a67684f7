package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds everything the process reads from the environment. The only
// knob the API contract requires is the listen port; the rest locates the
// collaborators.
type Config struct {
	Port        string
	DB          DBConfig
	RabbitMQURL string // empty disables event publishing
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// URL assembles the postgres connection string.
func (c DBConfig) URL() string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

// Load reads the environment, applying local-development defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Port: getenv("PORT", "3000"),
		DB: DBConfig{
			Host:     getenv("DB_HOST", "localhost"),
			Port:     getenv("DB_PORT", "5432"),
			User:     getenv("DB_USER", "postgres"),
			Password: getenv("DB_PASSWORD", "postgres"),
			Name:     getenv("DB_NAME", "tasks"),
			SSLMode:  getenv("DB_SSLMODE", "disable"),
		},
		RabbitMQURL: os.Getenv("RABBITMQ_URL"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate ensures the config can actually start a listener and reach a
// database.
func (c *Config) Validate() error {
	if port, err := strconv.Atoi(c.Port); err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("PORT must be a valid port number, got %q", c.Port)
	}
	if c.DB.Host == "" {
		return fmt.Errorf("DB_HOST must not be empty")
	}
	if c.DB.User == "" {
		return fmt.Errorf("DB_USER must not be empty")
	}
	if c.DB.Name == "" {
		return fmt.Errorf("DB_NAME must not be empty")
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
