// Package config loads runtime settings from the environment, with an
// optional .env file for local development.
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/aniolquer/node-smart-form/pkg/form"
)

// Config is everything the serve command needs beyond the built-in tables.
type Config struct {
	Port            int
	DefaultLanguage string
	RatesFile       string // optional YAML override for the rate table
	SubmitEndpoint  string // third-party form-processing endpoint
	Limits          form.Limits
}

// Load reads configuration from the environment. A missing .env file is
// fine; explicit environment variables always win.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	return Config{
		Port:            getEnvAsInt("PORT", 3000),
		DefaultLanguage: getEnv("DEFAULT_LANGUAGE", "es"),
		RatesFile:       getEnv("RATES_FILE", ""),
		SubmitEndpoint:  getEnv("SUBMIT_ENDPOINT", ""),
		Limits: form.Limits{
			MaxFileBytes:        getEnvAsInt64("MAX_FILE_BYTES", form.DefaultLimits.MaxFileBytes),
			MaxFilesPerCategory: getEnvAsInt("MAX_FILES_PER_CATEGORY", form.DefaultLimits.MaxFilesPerCategory),
			MaxTotalBytes:       getEnvAsInt64("MAX_TOTAL_BYTES", form.DefaultLimits.MaxTotalBytes),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("environment variable %s=%q is not an int, using default %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return valueInt
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueInt, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		log.Printf("environment variable %s=%q is not an int, using default %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return valueInt
}
