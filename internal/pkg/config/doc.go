// Package config provides functionality for loading and managing application configuration.
//
// Settings are read from YAML files and CTB_* environment variables through viper and
// validated with go-playground/validator before any component is constructed from them.
package config
