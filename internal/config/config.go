package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

const defaultSecretKey = "your-secret-key-change-in-production"

type Config struct {
	MongoURL          string
	MongoDatabase     string
	SecretKey         string // Secret key for JWT token signing
	AccessTokenTTLMin int    // JWT token expiration time in minutes
	PasswordHasher    string // "bcrypt" or "argon2id"
	BcryptCost        int
	Port              string
	CORSOrigins       []string // Frontend origins allowed by CORS
	LogLevel          string
	LogFormat         string // "console" or "json"
}

func Load() *Config {
	// Try to load .env file (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found, using environment variables or defaults")
	}

	cfg := &Config{
		MongoURL:          getEnv("MONGODB_URL", "mongodb://localhost:27017"),
		MongoDatabase:     getEnv("MONGODB_DATABASE", "todolist_db"),
		SecretKey:         getEnv("SECRET_KEY", defaultSecretKey),
		AccessTokenTTLMin: getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30),
		PasswordHasher:    strings.ToLower(getEnv("PASSWORD_HASHER", "bcrypt")),
		BcryptCost:        getEnvInt("BCRYPT_COST", bcrypt.DefaultCost),
		Port:              getEnv("PORT", "8080"),
		CORSOrigins: getEnvList("CORS_ORIGINS", []string{
			"http://localhost:5173", // Vite dev server
			"http://localhost:3000",
			"http://127.0.0.1:5173",
			"http://127.0.0.1:3000",
		}),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "console"),
	}

	if cfg.SecretKey == defaultSecretKey {
		log.Warn().Msg("SECRET_KEY is not set, using the development default")
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
		log.Warn().Str("key", key).Str("value", value).Msg("Ignoring non-integer environment value")
	}
	return defaultValue
}

// getEnvList splits a comma separated variable, dropping empty entries.
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}
