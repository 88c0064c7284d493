// Package config provides configuration management for the bot.
// It loads environment variables and makes them available throughout the application.
package config

import (
	"fmt"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the bot
type Config struct {
	// Discord
	BotToken   string
	DevGuildID string
	DevUserID  string

	// Moderation data
	DataDir string

	// MQTT telemetry (optional, disabled when host is empty)
	MQTTHost     string
	MQTTPort     string
	MQTTUser     string
	MQTTPassword string

	// Web Server
	Port string

	// Environment
	Environment string

	// Webhooks
	ErrorWebhook string
	LogsWebhook  string
}

var (
	Version   = "Dev-Local"
	BuildTime = "Hoy"
)

// cfg holds the global configuration instance
var (
	cfg     *Config
	cfgOnce sync.Once
)

// resetForTesting resets the configuration for testing purposes.
// This function should only be called from test code.
func resetForTesting() {
	cfg = nil
	cfgOnce = sync.Once{}
}

// loadConfig performs the actual configuration loading
func loadConfig() {
	// Load .env file if it exists (ignoring error if it doesn't)
	_ = godotenv.Load()

	cfg = &Config{
		// Discord
		BotToken:   getEnv("botToken", ""),
		DevGuildID: getEnv("devGuildId", ""),
		DevUserID:  getEnv("devUserId", ""),

		// Moderation data
		DataDir: getEnv("dataDir", "data/mod"),

		// MQTT
		MQTTHost:     getEnv("MQTT_Host", ""),
		MQTTPort:     getEnv("MQTT_Port", "1883"),
		MQTTUser:     getEnv("MQTT_User", ""),
		MQTTPassword: getEnv("MQTT_Password", ""),

		// Web Server
		Port: getEnv("PORT", "3000"),

		// Environment
		Environment: getEnv("enviroment", "dev"),

		// Webhooks
		ErrorWebhook: getEnv("errorWebhook", ""),
		LogsWebhook:  getEnv("logsWebhook", ""),
	}
}

// Load loads the configuration, returning an error when the required
// values are missing
func Load() (*Config, error) {
	cfgOnce.Do(loadConfig)

	if cfg.BotToken == "" {
		return nil, fmt.Errorf("la variable de entorno 'botToken' es obligatoria")
	}
	return cfg, nil
}

// Get returns the global configuration instance, loading it if needed
func Get() *Config {
	cfgOnce.Do(loadConfig)
	return cfg
}

// IsProd returns true when running in the production environment
func (c *Config) IsProd() bool {
	return c.Environment == "prod" || c.Environment == "production"
}

// TelemetryEnabled reports whether the MQTT telemetry publisher should run
func (c *Config) TelemetryEnabled() bool {
	return c.MQTTHost != ""
}

// getEnv reads an environment variable with a fallback default
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
