package dbhelper

import (
	"fmt"

	"gorm.io/gorm"

	"wardrobeapi/models"
)

func SetupCleaner(db *gorm.DB) func() {
	return func() {
		db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.StoreEntry{})
	}
}

func Migrate(db *gorm.DB, model interface{}) error {
	if err := db.AutoMigrate(model); err != nil {
		return fmt.Errorf("migrating %T: %w", model, err)
	}
	return nil
}
