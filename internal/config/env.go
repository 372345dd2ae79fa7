package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr string
	GinMode string

	DBUser string
	DBPass string
	DBHost string
	DBName string
}

func LoadEnv() Env {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	return Env{
		AppAddr: getenv("APP_ADDR", ":5000"),
		GinMode: strings.TrimSpace(os.Getenv("GIN_MODE")),
		DBUser:  getenv("DB_USER", "root"),
		DBPass:  strings.TrimSpace(os.Getenv("DB_PASS")),
		DBHost:  getenv("DB_HOST", "127.0.0.1:3306"),
		DBName:  getenv("DB_NAME", "bus_tickets_db"),
	}
}

// DSN builds the MySQL connection string. parseTime is required so that
// departure_time and purchase_time scan into time.Time.
func (e Env) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&loc=UTC&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s",
		e.DBUser, e.DBPass, e.DBHost, e.DBName)
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
