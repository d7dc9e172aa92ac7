package db

import (
	"fmt"
	"log"
	"os"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	authadapters "medtrack_backend/internal/feature/auth/adapters"
	authentity "medtrack_backend/internal/feature/auth/domain/entity"
	donationentity "medtrack_backend/internal/feature/donations/domain/entity"
	medicineentity "medtrack_backend/internal/feature/medicines/domain/entity"
	ngoentity "medtrack_backend/internal/feature/ngos/domain/entity"
)

// Config holds the PostgreSQL connection parameters, read from the
// environment in ConfigFromEnv.
type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// ConfigFromEnv builds a Config from DB_* environment variables.
func ConfigFromEnv() Config {
	sslmode := os.Getenv("DB_SSLMODE")
	if sslmode == "" {
		sslmode = "disable"
	}
	return Config{
		Host:     os.Getenv("DB_HOST"),
		Port:     os.Getenv("DB_PORT"),
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     os.Getenv("DB_NAME"),
		SSLMode:  sslmode,
	}
}

// BuildDSN renders the Config as a libpq key/value DSN.
func BuildDSN(cfg Config) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)
}

// OpenDB connects to PostgreSQL, retrying for up to a minute so the server
// can come up after the database container in local compose setups.
// When RUN_MIGRATIONS=true it also runs the schema migration.
func OpenDB() *gorm.DB {
	dsn := BuildDSN(ConfigFromEnv())

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(gpostgres.Open(dsn), &gorm.Config{})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := db.AutoMigrate(
			&authentity.User{},
			&authadapters.SessionModel{},
			&medicineentity.Medicine{},
			&donationentity.Donation{},
			&ngoentity.NGO{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
