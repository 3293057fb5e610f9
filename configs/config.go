package configs

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver       string
	DBSource       string
	Port           string
	CORSOrigins    []string
	LogLevel       string
	SeedSampleData bool
}

func LoadConfig() *Config {
	// .env is optional; the process environment always wins
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("could not read .env file", slog.Any("error", err))
	}

	return &Config{
		DBDriver:       strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
		DBSource:       getEnv("DATABASE_URL", "cafe.db"),
		Port:           getEnv("PORT", "5000"),
		CORSOrigins:    parseOrigins(getEnv("CORS_ORIGINS", "*")),
		LogLevel:       getEnv("LOG_LEVEL", "INFO"),
		SeedSampleData: getBool("SEED_SAMPLE_DATA", false),
	}
}

// AllowAllOrigins reports whether CORS_ORIGINS was the wildcard.
func (c *Config) AllowAllOrigins() bool {
	return len(c.CORSOrigins) == 1 && c.CORSOrigins[0] == "*"
}

func parseOrigins(raw string) []string {
	if strings.TrimSpace(raw) == "*" {
		return []string{"*"}
	}
	var out []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return b
}
