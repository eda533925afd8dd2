// Package config defines the application configuration structure and
// loads it from the environment with viper.
package config
