package repository

import (
	"gorm.io/gorm"

	"github.com/farellandr/airport-service/internal/models"
)

func enableUUIDExtension(db *gorm.DB) error {
	return db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\"").Error
}

// Migrate creates or updates every table, including the ticket seat index.
func Migrate(db *gorm.DB) error {
	if err := enableUUIDExtension(db); err != nil {
		return err
	}

	return db.AutoMigrate(
		&models.User{},
		&models.Airport{},
		&models.AirplaneType{},
		&models.Airplane{},
		&models.Route{},
		&models.Crew{},
		&models.Flight{},
		&models.Order{},
		&models.Ticket{},
	)
}
