package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string
	SnapshotDB  string
	Port        string
	Env         string

	// LLM augmentation
	OpenAIKey        string
	GeminiKey        string
	LLMProvider      string
	AugmentEnabled   bool
	AugmentThreshold int

	// Session context store
	SessionStore string // postgres | redis
	RedisAddr    string

	// Email
	ResendAPIKey string
	EmailFrom    string

	// Content scheduler
	BlogCronSpec    string
	UseCaseCronSpec string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ .env file not found, using system environment variables")
	}

	cfg := &Config{
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		SnapshotDB:       os.Getenv("SNAPSHOT_DB"),
		Port:             os.Getenv("PORT"),
		Env:              os.Getenv("ENV"),
		OpenAIKey:        os.Getenv("OPENAI_API_KEY"),
		GeminiKey:        os.Getenv("GEMINI_API_KEY"),
		LLMProvider:      os.Getenv("LLM_PROVIDER"),
		AugmentEnabled:   os.Getenv("LLM_AUGMENT_ENABLED") == "true",
		AugmentThreshold: envInt("LLM_AUGMENT_FALLBACK_THRESHOLD", 3),
		SessionStore:     os.Getenv("SESSION_STORE"),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		ResendAPIKey:     os.Getenv("RESEND_API_KEY"),
		EmailFrom:        os.Getenv("EMAIL_FROM"),
		BlogCronSpec:     os.Getenv("BLOG_CRON_SPEC"),
		UseCaseCronSpec:  os.Getenv("USECASE_CRON_SPEC"),
	}

	// Default values
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if cfg.SnapshotDB == "" {
		cfg.SnapshotDB = "snapshots.db"
	}
	if cfg.SessionStore == "" {
		cfg.SessionStore = "postgres"
	}
	if cfg.RedisAddr == "" {
		cfg.RedisAddr = "localhost:6379"
	}
	if cfg.EmailFrom == "" {
		cfg.EmailFrom = "hello@leadagent.dev"
	}
	if cfg.BlogCronSpec == "" {
		cfg.BlogCronSpec = "0 0 9 * * 1" // Monday 9 AM
	}
	if cfg.UseCaseCronSpec == "" {
		cfg.UseCaseCronSpec = "0 0 9 * * 4" // Thursday 9 AM
	}

	return cfg
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
