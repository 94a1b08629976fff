package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// Config holds every parameter the process needs, built once at startup
// and passed by reference into whatever opens connections.
type Config struct {
	Port string

	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string
	// DBTLS switches the MySQL connection to the skip-verify TLS profile.
	// Managed MySQL offerings (Azure) require it.
	DBTLS bool
}

// Load reads configuration from environment with sensible defaults.
// Precedence: explicit env var > .env file (if loaded by caller) > default.
func Load() *Config {
	cfg := &Config{
		Port:       getEnv("PORT", "8000"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnvInt("DB_PORT", 3306),
		DBUser:     getEnv("DB_USER", "root"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "pos_db"),
	}

	// Azure-hosted MySQL only accepts TLS connections; detect it from the
	// hostname, with DB_TLS as an explicit override either way.
	cfg.DBTLS = parseBool("DB_TLS", strings.Contains(cfg.DBHost, "azure.com"))

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("invalid integer for %s: %s", key, v)
			return def
		}
		return n
	}
	return def
}

func parseBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %s", key, v)
			return def
		}
		return b
	}
	return def
}
