package config

import (
	"log"
	"os"
	"strconv"
	"sync"
	"time"
)

type AppConfig struct {
	Name           string
	Env            string
	Port           string
	BaseURL        string
	FrontendOrigin string
	UploadMaxBytes int64
	LinkCacheTTL   time.Duration
	// EvaluationsPerMinute is the per-user limit on POST /api/avaliacoes.
	EvaluationsPerMinute int
}

var (
	appConfig *AppConfig
	appOnce   sync.Once
)

func LoadAppConfig() *AppConfig {
	appOnce.Do(func() {
		env := os.Getenv("APP_ENV")
		if env == "" {
			env = "development"
			log.Printf("Warning: APP_ENV not set, defaulting to %s", env)
		}
		port := os.Getenv("APP_PORT")
		if port == "" {
			port = ":5000"
		}
		origin := os.Getenv("FRONTEND_ORIGIN")
		if origin == "" {
			origin = "http://localhost:5173"
		}
		appConfig = &AppConfig{
			Name:           os.Getenv("APP_NAME"),
			Env:            env,
			Port:           port,
			BaseURL:        os.Getenv("APP_URL"),
			FrontendOrigin: origin,
			UploadMaxBytes: int64(envInt("UPLOAD_MAX_MB", 10)) * 1024 * 1024,
			LinkCacheTTL:   time.Duration(envInt("LINK_CACHE_TTL_MINUTES", 60)) * time.Minute,

			EvaluationsPerMinute: envInt("EVALUATIONS_PER_MINUTE", 3),
		}
	})
	return appConfig
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("Warning: %s=%q is not a number, using %d", key, raw, fallback)
		return fallback
	}
	return v
}

func envFloat(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("Warning: %s=%q is not a number, using %v", key, raw, fallback)
		return fallback
	}
	return v
}
