package database

import (
	"gorm.io/gorm"

	"github.com/dailydish/backend/internal/model"
)

// RunMigrations brings the schema up to date. Both Postgres and the SQLite
// test databases use gorm auto-migration; the models carry the JSONB/column
// definitions.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Recipe{},
		&model.DeviceProfile{},
		&model.RecipeFavorite{},
	)
}
