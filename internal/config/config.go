package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	JWTSecret         string
	ControlPassword   string
	ServerPort        string
	PollInterval      string
	RaceWindowSeconds string
	BulkInputLimit    string
}

func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Println("loaded environment from .env")
	}

	return &Config{
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBName:            getEnv("DB_NAME", "typingrace"),
		JWTSecret:         getEnv("JWT_SECRET", "super-secret-key-change-me"),
		ControlPassword:   getEnv("CONTROL_PASSWORD", "devaccess123"),
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		PollInterval:      getEnv("POLL_INTERVAL", "1"),
		RaceWindowSeconds: getEnv("RACE_WINDOW_SECONDS", "600"),
		BulkInputLimit:    getEnv("BULK_INPUT_LIMIT", "16"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
