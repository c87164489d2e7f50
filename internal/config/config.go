package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"
)

const (
	defaultPort         = "8080"
	defaultJWTTTL       = "24h"
	defaultDisputeGrace = "48h"
	defaultDisputeCron  = "*/30 * * * *"
)

// Runtime holds everything read from the environment at startup.
type Runtime struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	JWTTTL      time.Duration

	// CORS origins, comma separated in CORS_ALLOWED_ORIGINS.
	AllowedOrigins []string

	// Dispute sweep: sessions half-completed for longer than DisputeGrace
	// after their end time are flagged DISPUTED on the DisputeCron schedule.
	DisputeGrace time.Duration
	DisputeCron  string
}

func Load() (*Runtime, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_URL is empty")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is empty")
	}

	rt := &Runtime{
		Port:        getEnv("PORT", defaultPort),
		DatabaseURL: dsn,
		JWTSecret:   secret,
		JWTTTL:      getDuration("JWT_TTL", defaultJWTTTL),
		DisputeGrace: getDuration(
			"DISPUTE_GRACE_PERIOD", defaultDisputeGrace),
		DisputeCron: getEnv("DISPUTE_CRON", defaultDisputeCron),
	}

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				rt.AllowedOrigins = append(rt.AllowedOrigins, o)
			}
		}
	}

	return rt, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key, fallback string) time.Duration {
	raw := getEnv(key, fallback)
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("config: invalid %s=%q, using default %s", key, raw, fallback)
		d, _ = time.ParseDuration(fallback)
	}
	return d
}
