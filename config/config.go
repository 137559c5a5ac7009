package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DataDir string
	DBFile  string
	LogMode string
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	return &Config{
		DataDir: getEnv("DATA_DIR", "./data"),
		DBFile:  getEnv("DB_FILE", "lms.db"),
		LogMode: getEnv("LOG_MODE", "dev"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
