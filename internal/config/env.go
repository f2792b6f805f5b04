package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr    string
	GinMode    string
	DBUser     string
	DBPassword string
	DBHost     string
	DBName     string
	JWTSecret  string
	ExportDir  string
}

func LoadEnv() Env {
	// Optional .env for local development; real deployments set env vars.
	_ = godotenv.Load()

	return Env{
		AppAddr:    getenv("APP_ADDR", ":8000"),
		GinMode:    strings.TrimSpace(os.Getenv("GIN_MODE")),
		DBUser:     getenv("DB_USER", "root"),
		DBPassword: strings.TrimSpace(os.Getenv("DB_PASSWORD")),
		DBHost:     getenv("DB_HOST", "127.0.0.1:3306"),
		DBName:     getenv("DB_NAME", "hotel_reservation_db"),
		JWTSecret:  getenv("JWT_SECRET", "super-secret-key-change-me"),
		ExportDir:  getenv("DATASET_EXPORT_DIR", "."),
	}
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
