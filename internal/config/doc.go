// Package config loads and validates application configuration.
//
// Configuration is resolved in two layers: environment variables with the
// CINEPULSE_ prefix take precedence over an optional YAML file (config.yaml
// next to the executable, or the file named by CINEPULSE_CONFIG). Relative
// paths are anchored at the executable directory so the binary can be run
// from anywhere.
package config
