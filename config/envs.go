// Package config loads the heatloss driver's settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Environment variable names.
const (
	EnvInput    = "CRUCIBLE_INPUT"
	EnvLogLevel = "CRUCIBLE_LOG_LEVEL"
	EnvVariants = "CRUCIBLE_VARIANTS"
)

// Defaults applied when a variable is unset.
const (
	DefaultInput    = "data/day17.txt"
	DefaultLogLevel = "info"
	DefaultVariants = "standard,ultra"
)

// ErrNoVariants indicates the variant list is empty after trimming.
var ErrNoVariants = errors.New("config: at least one variant is required")

// Config holds the driver's configuration values.
type Config struct {
	InputPath string       // Path to the digit grid
	LogLevel  logrus.Level // Minimum level the driver logs at
	Variants  []string     // Policy names to solve, in output order
}

// Load reads an optional .env file from the working directory (or the
// given files) and then builds a Config from the process environment.
// A missing .env file is not an error.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("config: load env file: %w", err)
	}

	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() (Config, error) {
	level, err := logrus.ParseLevel(getEnvWithDefault(EnvLogLevel, DefaultLogLevel))
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", EnvLogLevel, err)
	}
	variants, err := SplitVariants(getEnvWithDefault(EnvVariants, DefaultVariants))
	if err != nil {
		return Config{}, err
	}

	return Config{
		InputPath: getEnvWithDefault(EnvInput, DefaultInput),
		LogLevel:  level,
		Variants:  variants,
	}, nil
}

// SplitVariants parses a comma-separated list of variant names,
// dropping blanks.
func SplitVariants(raw string) ([]string, error) {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return nil, ErrNoVariants
	}

	return out, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && strings.TrimSpace(value) != "" {
		return value
	}

	return defaultValue
}
