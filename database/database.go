package database

import (
	"fmt"
	"log"

	"santix-backoffice/config"
	"santix-backoffice/internal/domain/assets"
	"santix-backoffice/internal/domain/fun"
	"santix-backoffice/internal/domain/movies"
	"santix-backoffice/internal/domain/orders"
	"santix-backoffice/internal/domain/payments"
	"santix-backoffice/internal/domain/showtimes"
	"santix-backoffice/internal/domain/theaters"
	"santix-backoffice/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := config.DB_URL
	if dsn == "" {
		log.Fatal("DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	DB = db

	if err := DB.AutoMigrate(
		&assets.Asset{},
		&movies.Movie{},
		&theaters.Theater{},
		&showtimes.Showtime{},
		&orders.Order{},
		&payments.Payment{},
		&users.User{},
		&fun.Item{},
	); err != nil {
		log.Fatal("AutoMigrate error:", err)
	}

	fmt.Println("Connected and migrated successfully")
}
