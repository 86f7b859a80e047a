package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/bandroomhq/bandroom-backend/internal/schedule"
)

const prodString = "prod"

// Config holds all application configuration loaded from environment.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	HTTPAddr     string

	DBDSN         string
	RedisAddr     string
	RedisPassword string

	JWTSecret         string
	JWTAccessTokenTTL time.Duration
	BcryptCost        int

	// Room opening hours in minutes since midnight; the bookable domain of
	// the shared rehearsal room.
	RoomOpen  int
	RoomClose int

	StoragePath string
	PollTTL     time.Duration
}

// Load loads configuration from .env (optional) and environment variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("failed to load .env file: %v", err)
	}

	cfg := &Config{}

	cfg.ProdOrigins = getEnv("PROD_ORIGINS", "")
	cfg.IsProduction = getEnv("APP_ENV", "dev") == prodString
	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8080")

	cfg.DBDSN = os.Getenv("DB_DSN")
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required")
	}

	cfg.RedisAddr = getEnv("REDIS_ADDR", "localhost:6379")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")

	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	ttl, err := time.ParseDuration(getEnv("JWT_ACCESS_TOKEN_TTL", "15m"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_TOKEN_TTL: %w", err)
	}
	cfg.JWTAccessTokenTTL = ttl

	cfg.BcryptCost, err = getEnvAsInt("BCRYPT_COST", 12)
	if err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %w", err)
	}

	// Opening hours of the room. "24:00" is a legal closing time.
	cfg.RoomOpen, err = getEnvAsClock("ROOM_OPEN", "09:00")
	if err != nil {
		return nil, fmt.Errorf("invalid ROOM_OPEN: %w", err)
	}
	cfg.RoomClose, err = getEnvAsClock("ROOM_CLOSE", "24:00")
	if err != nil {
		return nil, fmt.Errorf("invalid ROOM_CLOSE: %w", err)
	}
	if cfg.RoomOpen >= cfg.RoomClose {
		return nil, fmt.Errorf("ROOM_OPEN must be before ROOM_CLOSE")
	}

	cfg.StoragePath = getEnv("STORAGE_PATH", "./data/uploads")

	// How long an open ensemble poll survives in Redis before it expires.
	cfg.PollTTL, err = time.ParseDuration(getEnv("POLL_TTL", "336h"))
	if err != nil {
		return nil, fmt.Errorf("invalid POLL_TTL: %w", err)
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable if set, otherwise the
// provided default value.
func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer, or the default
// when unset. A set but unparsable value is an error.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valStr := getEnv(key, "")
	if valStr == "" {
		return defaultValue, nil
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return 0, fmt.Errorf("env %s value %q is not a valid integer: %w", key, valStr, err)
	}
	return val, nil
}

// getEnvAsClock retrieves an "HH:MM" environment variable as minutes since
// midnight.
func getEnvAsClock(key, defaultValue string) (int, error) {
	return schedule.ParseClock(getEnv(key, defaultValue))
}
