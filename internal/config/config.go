package config

import "os"

type Config struct {
	Port        string
	DatabaseURL string
	GinMode     string
}

// Load reads configuration from the environment. An empty DATABASE_URL
// selects the in-memory artifact store.
func Load() Config {
	return Config{
		Port:        getenv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		GinMode:     getenv("GIN_MODE", "debug"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
