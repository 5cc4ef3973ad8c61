// Package config reads the server settings from the environment.
package config

import (
	"log"
	"os"
	"time"
)

// Config holds the environment-driven settings of the SciBind server
type Config struct {
	Port        string
	Env         string
	DatabaseURL string
	RedisURL    string
	MediaRoot   string

	FirebaseCredentialsPath string
	FirebaseAPIKey          string
	FirebaseAuthDomain      string
	FirebaseProjectID       string

	BinderCacheTTL time.Duration
}

// Load reads the configuration. Call godotenv.Load first to pick up a .env file.
func Load() Config {
	return Config{
		Port:                    getEnv("PORT", "8080"),
		Env:                     getEnv("ENV", "development"),
		DatabaseURL:             os.Getenv("DATABASE_URL"),
		RedisURL:                os.Getenv("REDIS_URL"),
		MediaRoot:               getEnv("MEDIA_ROOT", "./media"),
		FirebaseCredentialsPath: getEnv("FIREBASE_CREDENTIALS_PATH", "./firebase-service-account.json"),
		FirebaseAPIKey:          os.Getenv("FIREBASE_API_KEY"),
		FirebaseAuthDomain:      os.Getenv("FIREBASE_AUTH_DOMAIN"),
		FirebaseProjectID:       os.Getenv("FIREBASE_PROJECT_ID"),
		BinderCacheTTL:          getDuration("BINDER_CACHE_TTL", 5*time.Minute),
	}
}

// IsProduction reports whether cookies should be marked secure
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// FirebaseConfigured reports whether a Firebase project was set up for sign-in
func (c Config) FirebaseConfigured() bool {
	return c.FirebaseProjectID != "" || c.FirebaseAPIKey != ""
}

// AllowAnonymous reports whether binder pages may be served without a session.
// Only a non-production server with Firebase left unconfigured does so.
func (c Config) AllowAnonymous() bool {
	return !c.FirebaseConfigured() && !c.IsProduction()
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("Invalid %s %q, using %s: %v", key, v, fallback, err)
		return fallback
	}
	return d
}
