package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds process configuration read from the environment.
type Config struct {
	Port      string
	GinMode   string
	JWTSecret []byte
	LogLevel  string
}

// Load reads a .env file if one is present and assembles the config.
// Every value has a development default.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:      getenv("PORT", "8080"),
		GinMode:   getenv("GIN_MODE", "debug"),
		JWTSecret: []byte(getenv("JWT_SECRET", "your_secret_key_change_this")),
		LogLevel:  getenv("LOG_LEVEL", "info"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
