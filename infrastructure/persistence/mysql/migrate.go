package mysql

import (
	"videorental/infrastructure/persistence/mysql/po"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates the schema. Development convenience;
// production schemas are managed externally.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&po.CustomerPO{},
		&po.FilmPO{},
		&po.RentalPO{},
	)
}
