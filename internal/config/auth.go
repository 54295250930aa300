package config

import (
	"errors"
	"log"
	"os"
	"sync"
	"time"
)

const devJWTSecret = "dev-secret-change-me"

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

var (
	authConfig *AuthConfig
	authOnce   sync.Once
)

func LoadAuthConfig() *AuthConfig {
	authOnce.Do(func() {
		secret, err := resolveJWTSecret(os.Getenv("JWT_SECRET"), LoadAppConfig().Env)
		if err != nil {
			log.Fatal(err)
		}
		authConfig = &AuthConfig{
			JWTSecret: secret,
			TokenTTL:  time.Duration(envInt("JWT_TTL_HOURS", 8)) * time.Hour,
		}
	})
	return authConfig
}

// resolveJWTSecret only falls back to the development secret outside
// production; anyone can read it here and sign admin tokens with it.
func resolveJWTSecret(secret, env string) (string, error) {
	if secret != "" {
		return secret, nil
	}
	if env == "production" {
		return "", errors.New("JWT_SECRET must be set when APP_ENV=production")
	}
	log.Printf("Warning: JWT_SECRET not set, using an insecure development secret")
	return devJWTSecret, nil
}
