// Package config handles configuration loading, parsing, and validation
// from defaults, an optional config file, a .env file and environment
// variables. It gives the server type-safe access to its settings.
package config
