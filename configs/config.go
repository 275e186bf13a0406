package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	DeliveryFee float64
	PlatformFee float64
}

func LoadConfig() *Config {
	// .env is optional; env vars win either way.
	_ = godotenv.Load()

	return &Config{
		DBSource:    getEnv("DB_SOURCE", "quickbite.db"),
		Port:        getEnv("PORT", "8000"),
		JWTSecret:   getEnv("JWT_SECRET", "dev-secret"),
		JWTTTL:      24 * time.Hour,
		DeliveryFee: getEnvFloat("DELIVERY_FEE", 30),
		PlatformFee: getEnvFloat("PLATFORM_FEE", 5),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Fatalf("invalid %s: %v", key, err)
	}
	return f
}
