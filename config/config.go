package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// InitDB opens the database connection from environment variables.
// DB_DRIVER=sqlite uses a file database (handy for local development);
// anything else connects to MySQL.
func InitDB() (*gorm.DB, error) {
	if getEnv("DB_DRIVER", "mysql") == "sqlite" {
		return gorm.Open(sqlite.Open(getEnv("DB_PATH", "amandier.db")), &gorm.Config{})
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		getEnv("DB_USER", "root"),
		getEnv("DB_PASSWORD", ""),
		getEnv("DB_HOST", "127.0.0.1"),
		getEnv("DB_PORT", "3306"),
		getEnv("DB_NAME", "amandier"),
	)
	return gorm.Open(mysql.Open(dsn), &gorm.Config{})
}
