package infra

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"tripgenie/internal/models/db_models"
)

func InitPostgresql() *gorm.DB {
	dsn := os.Getenv("POSTGRES_URL")

	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	// pgvector must exist before the place_embeddings migration
	if err := connectionPool.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		log.Printf("Error creating vector extension: %v", err)
	}

	if err := connectionPool.AutoMigrate(
		&db_models.Account{},
		&db_models.Trip{},
		&db_models.Attraction{},
		&db_models.Restaurant{},
		&db_models.NearbyPlace{},
		&db_models.PlaceEmbedding{},
	); err != nil {
		log.Printf("Error running migrations: %v", err)
		log.Fatal("Error running migrations")
	}

	return connectionPool
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}
