// database/db.go - PostgreSQL connection lifecycle
package database

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

// Pool defaults; override with DB_MAX_IDLE_CONNS, DB_MAX_OPEN_CONNS and
// DB_CONN_MAX_LIFETIME.
const (
	defaultMaxIdleConns    = 10
	defaultMaxOpenConns    = 100
	defaultConnMaxLifetime = time.Hour
)

// InitDB opens the PostgreSQL connection, configures the pool and runs
// migrations. The caller decides whether a failure is fatal.
func InitDB() error {
	dsn := dsnFromEnv(os.Getenv)

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return fmt.Errorf("access sql.DB handle: %w", err)
	}
	sqlDB.SetMaxIdleConns(envInt(os.Getenv, "DB_MAX_IDLE_CONNS", defaultMaxIdleConns))
	sqlDB.SetMaxOpenConns(envInt(os.Getenv, "DB_MAX_OPEN_CONNS", defaultMaxOpenConns))
	sqlDB.SetConnMaxLifetime(envDuration(os.Getenv, "DB_CONN_MAX_LIFETIME", defaultConnMaxLifetime))

	db = conn
	log.Println("✅ PostgreSQL database connected successfully")

	if err := RunMigrations(); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// dsnFromEnv builds the connection string. DATABASE_URL wins; otherwise the
// DSN is assembled from the individual DB_* variables.
func dsnFromEnv(getenv func(string) string) string {
	if dsn := getenv("DATABASE_URL"); dsn != "" {
		return dsn
	}

	lookup := func(key, fallback string) string {
		if value := getenv(key); value != "" {
			return value
		}
		return fallback
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		lookup("DB_HOST", "localhost"),
		lookup("DB_PORT", "5432"),
		lookup("DB_USER", "postgres"),
		lookup("DB_PASSWORD", ""),
		lookup("DB_NAME", "hexfit"),
		lookup("DB_SSLMODE", "disable"))
}

func envInt(getenv func(string) string, key string, fallback int) int {
	raw := getenv(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		log.Printf("Ignoring invalid %s=%q, using %d", key, raw, fallback)
		return fallback
	}
	return n
}

func envDuration(getenv func(string) string, key string, fallback time.Duration) time.Duration {
	raw := getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("Ignoring invalid %s=%q, using %s", key, raw, fallback)
		return fallback
	}
	return d
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	if db == nil {
		log.Fatal("Database not initialized. Call InitDB() first.")
	}
	return db
}

// CloseDB closes the database connection
func CloseDB() error {
	if db == nil {
		return nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}

	log.Println("Database connection closed")
	return nil
}
