package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort       string
	FirestoreProject string
	CredentialsFile  string
	Environment      string
	CORSOrigins      []string
	SeedStaticData   bool
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		FirestoreProject: getEnv("FIRESTORE_PROJECT_ID", ""),
		CredentialsFile:  getEnv("GOOGLE_APPLICATION_CREDENTIALS", ""),
		Environment:      getEnv("ENVIRONMENT", "development"),
		CORSOrigins:      getEnvAsSlice("CORS_ORIGINS", []string{"http://localhost:8088", "http://localhost:5173"}),
		SeedStaticData:   getEnvAsBool("SEED_STATIC_DATA", true),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		boolValue, err := strconv.ParseBool(value)
		if err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}

	parts := strings.Split(value, ",")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}
