package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource     string
	Port         string
	JWTSecret    string
	JWTTTL       time.Duration
	Maintenance  bool
	PaymentPhone string // phone number printed on the ticket for the manual QR payment
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, reading configuration from environment")
	}

	return &Config{
		DBSource:     getEnv("DB_SOURCE", "menudia.db"),
		Port:         getEnv("PORT", "3001"),
		JWTSecret:    getEnv("JWT_SECRET", "changeme"),
		JWTTTL:       time.Duration(24) * time.Hour,
		Maintenance:  getEnv("MAINTENANCE_MODE", "false") == "true",
		PaymentPhone: getEnv("PAYMENT_PHONE", "981008142"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
