package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is read from the environment once at startup. godotenv fills the
// environment from .env first, so local runs need no exported variables.
type Config struct {
	Port           string
	DatabaseURL    string // postgres DSN; the sqlite file is used when empty
	DBPath         string
	Timezone       string
	ModelPath      string
	PredictURL     string // external model service; empty selects the local artifact
	HistoryLimit   int
	ExportLimit    int
	RequestTimeout time.Duration
	AllowOrigins   []string
}

func Load() Config {
	return Config{
		Port:           getEnv("PORT", "8080"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		DBPath:         getEnv("DB_PATH", "crop_data.db"),
		Timezone:       getEnv("TIMEZONE", "Asia/Dhaka"),
		ModelPath:      getEnv("MODEL_PATH", "models/crop_model.json"),
		PredictURL:     os.Getenv("PREDICT_URL"),
		HistoryLimit:   getEnvInt("HISTORY_LIMIT", 50),
		ExportLimit:    getEnvInt("EXPORT_LIMIT", 1000),
		RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 5*time.Second),
		AllowOrigins:   strings.Split(getEnv("ALLOW_ORIGINS", "http://localhost:3000"), ","),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
