// Package config loads the optional run configuration from a YAML file.
package config
