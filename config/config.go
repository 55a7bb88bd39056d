package config

import "os"

// Config carries process-level settings read once at startup. The store
// handle and everything else is injected explicitly; there is no package
// global state.
type Config struct {
	Addr      string
	GinMode   string
	JWTSecret []byte
	DSN       string // sqlite DSN; defaults to an in-memory database
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads configuration from the environment with fallbacks.
func Load() Config {
	return Config{
		Addr:      ":" + getEnv("PORT", "8080"),
		GinMode:   os.Getenv("GIN_MODE"),
		JWTSecret: []byte(getEnv("JWT_SECRET", "savefood_super_secret_2024")),
		DSN:       getEnv("DB_DSN", ":memory:"),
	}
}
