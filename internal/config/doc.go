// Package config loads and validates application settings from defaults,
// an optional config file, a .env file and environment variables.
package config
