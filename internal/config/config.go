package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration.
// yaml tags name the file keys; mapstructure tags name the same keys for env overrides.
type Config struct {
	Server struct {
		Port         string `yaml:"port" mapstructure:"port"`
		Mode         string `yaml:"mode" mapstructure:"mode"`
		ReadTimeout  string `yaml:"read_timeout" mapstructure:"read_timeout"`
		WriteTimeout string `yaml:"write_timeout" mapstructure:"write_timeout"`
		IdleTimeout  string `yaml:"idle_timeout" mapstructure:"idle_timeout"`
	} `yaml:"server" mapstructure:"server"`

	Database struct {
		Host              string `yaml:"host" mapstructure:"host"`
		Port              string `yaml:"port" mapstructure:"port"`
		User              string `yaml:"user" mapstructure:"user"`
		Password          string `yaml:"password" mapstructure:"password"`
		DBName            string `yaml:"dbname" mapstructure:"dbname"`
		SSLMode           string `yaml:"sslmode" mapstructure:"sslmode"`
		MaxIdleConns      int    `yaml:"max_idle_conns" mapstructure:"max_idle_conns"`
		MaxOpenConns      int    `yaml:"max_open_conns" mapstructure:"max_open_conns"`
		ConnMaxLifetime   string `yaml:"conn_max_lifetime" mapstructure:"conn_max_lifetime"`
		MigrationsEnabled bool   `yaml:"migrations_enabled" mapstructure:"migrations_enabled"`
	} `yaml:"database" mapstructure:"database"`

	Security struct {
		BcryptCost int `yaml:"bcrypt_cost" mapstructure:"bcrypt_cost"`
	} `yaml:"security" mapstructure:"security"`

	// Registration holds the provisional student profile placeholders
	Registration struct {
		StudentEntryYear int `yaml:"student_entry_year" mapstructure:"student_entry_year"`
		StudentGrade     int `yaml:"student_grade" mapstructure:"student_grade"`
	} `yaml:"registration" mapstructure:"registration"`

	Logging struct {
		Level  string `yaml:"level" mapstructure:"level"`
		Format string `yaml:"format" mapstructure:"format"`
	} `yaml:"logging" mapstructure:"logging"`
}

// envBindings maps config keys to the environment variables that override them
var envBindings = map[string]string{
	"server.port":          "SERVER_PORT",
	"server.mode":          "SERVER_MODE",
	"server.read_timeout":  "SERVER_READ_TIMEOUT",
	"server.write_timeout": "SERVER_WRITE_TIMEOUT",
	"server.idle_timeout":  "SERVER_IDLE_TIMEOUT",

	"database.host":               "DB_HOST",
	"database.port":               "DB_PORT",
	"database.user":               "DB_USER",
	"database.password":           "DB_PASSWORD",
	"database.dbname":             "DB_NAME",
	"database.sslmode":            "DB_SSLMODE",
	"database.max_idle_conns":     "DB_MAX_IDLE_CONNS",
	"database.max_open_conns":     "DB_MAX_OPEN_CONNS",
	"database.conn_max_lifetime":  "DB_CONN_MAX_LIFETIME",
	"database.migrations_enabled": "DB_MIGRATIONS_ENABLED",

	"security.bcrypt_cost": "SECURITY_BCRYPT_COST",

	"registration.student_entry_year": "REGISTRATION_STUDENT_ENTRY_YEAR",
	"registration.student_grade":      "REGISTRATION_STUDENT_GRADE",

	"logging.level":  "LOG_LEVEL",
	"logging.format": "LOG_FORMAT",
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// The file is optional; env vars alone are enough to run
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.ReadTimeout = "10s"
	config.Server.WriteTimeout = "10s"
	config.Server.IdleTimeout = "120s"

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "campuslink"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 5
	config.Database.MaxOpenConns = 20
	config.Database.ConnMaxLifetime = "1h"
	config.Database.MigrationsEnabled = true

	config.Security.BcryptCost = 12

	config.Registration.StudentEntryYear = 2024
	config.Registration.StudentGrade = 1

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with the variables in envBindings.
// Unset variables leave the file or default value in place.
func loadFromEnv(config *Config) error {
	v := viper.New()
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if err := v.Unmarshal(config); err != nil {
		return fmt.Errorf("failed to decode environment overrides: %w", err)
	}
	return nil
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if config.Database.DBName == "" {
		return fmt.Errorf("database name is required")
	}

	if config.Database.MaxOpenConns <= 0 {
		return fmt.Errorf("database max_open_conns must be positive")
	}

	if config.Database.MaxIdleConns < 0 || config.Database.MaxIdleConns > config.Database.MaxOpenConns {
		return fmt.Errorf("database max_idle_conns must be between 0 and max_open_conns")
	}

	durations := map[string]string{
		"database conn_max_lifetime": config.Database.ConnMaxLifetime,
		"server read_timeout":        config.Server.ReadTimeout,
		"server write_timeout":       config.Server.WriteTimeout,
		"server idle_timeout":        config.Server.IdleTimeout,
	}
	for name, value := range durations {
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid %s format: %w", name, err)
		}
	}

	if config.Security.BcryptCost < bcrypt.MinCost || config.Security.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("bcrypt cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}

	if config.Registration.StudentEntryYear <= 0 {
		return fmt.Errorf("registration student_entry_year must be positive")
	}

	if config.Registration.StudentGrade <= 0 {
		return fmt.Errorf("registration student_grade must be positive")
	}

	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}

// Duration parses a duration setting that validateConfig has already checked
func Duration(value string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
