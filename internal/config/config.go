package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Mongo    MongoConfig    `mapstructure:"mongo"    validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// ShutdownTimeout bounds graceful shutdown after SIGINT/SIGTERM.
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"  validate:"gt=0"`
	// ErrorLogTimeout bounds a single error-log write, independent of the
	// request context that triggered it.
	ErrorLogTimeout time.Duration `mapstructure:"error_log_timeout" validate:"gt=0"`
}

// DatabaseConfig contains the relational store settings.
type DatabaseConfig struct {
	// Driver selects the relational backend: "pgx" for PostgreSQL or
	// "sqlite3" for a local database file.
	Driver       string `mapstructure:"driver"         validate:"required,oneof=pgx sqlite3"`
	URL          string `mapstructure:"url"            validate:"required"`
	MaxOpenConns int    `mapstructure:"max_open_conns" validate:"gte=1"`
}

// MongoConfig contains the document store settings.
type MongoConfig struct {
	URI            string        `mapstructure:"uri"             validate:"required"`
	Database       string        `mapstructure:"database"        validate:"required"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout" validate:"gt=0"`
}

// AuthConfig contains credential storage settings.
type AuthConfig struct {
	// BcryptCost is the work factor used when hashing user passwords.
	BcryptCost int `mapstructure:"bcrypt_cost" validate:"gte=4,lte=31"`
}
