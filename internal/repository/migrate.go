package repository

import "gorm.io/gorm"

// Migrate creates or updates all tables. Used by cmd/api on startup and by
// the sqlite-backed tests.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&profileModel{},
		&sessionModel{},
		&ratingModel{},
		&ticketModel{},
		&chatMessageModel{},
	)
}
