package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config is the env-driven configuration shared by the server wiring.
type Config struct {
	Port         string
	DataDir      string
	JWTSecret    []byte
	MongoURI     string
	DBName       string
	AllowOrigins []string
	FallbackPath string
}

// Load reads .env when present and assembles the configuration. Every value
// has a development default except MONGO_URI, which switches the slot store
// to the Mongo backend when set.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		DataDir:      getEnv("DATA_DIR", "data"),
		JWTSecret:    []byte(getEnv("JWT_SECRET", "udyambridge-dev-secret")),
		MongoURI:     os.Getenv("MONGO_URI"),
		DBName:       getEnv("DB_NAME", "udyambridge"),
		FallbackPath: getEnv("FALLBACK_PATH", "/business"),
	}
	if origins := os.Getenv("ALLOW_ORIGINS"); origins != "" {
		cfg.AllowOrigins = strings.Split(origins, ",")
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
