// Package db provides the process-wide database handle lifecycle.
package db

import (
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	authentity "stockmarket_backend/internal/feature/auth/domain/entity"
	stocksentity "stockmarket_backend/internal/feature/stocks/domain/entity"
)

// OpenDB connects to PostgreSQL using the DATABASE_URL environment variable.
// The connection is retried for up to 60 seconds before giving up.
// When RUN_MIGRATIONS=true, the schema is migrated on startup.
func OpenDB() *gorm.DB {
	dsn := os.Getenv("DATABASE_URL")

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
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
		// マイグレーション（User, Sector, Stock）
		if err := db.AutoMigrate(
			&authentity.User{},
			&stocksentity.Sector{},
			&stocksentity.Stock{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}

// CloseDB releases the underlying connection pool.
// Intended to be deferred from main.
func CloseDB(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("failed to get sql.DB for close: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("failed to close database: %v", err)
	}
}
