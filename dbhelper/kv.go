package dbhelper

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"wardrobeapi/models"
)

// GormKV stores named blobs as rows of store_entries.
type GormKV struct {
	DB *gorm.DB
}

func NewGormKV(db *gorm.DB) *GormKV {
	return &GormKV{DB: db}
}

func (kv *GormKV) Get(key string) (string, bool, error) {
	var entry models.StoreEntry
	r := kv.DB.Limit(1).Find(&entry, "store_key = ?", key)
	if r.Error != nil {
		return "", false, r.Error
	}
	if r.RowsAffected == 0 {
		return "", false, nil
	}
	return entry.Value, true, nil
}

func (kv *GormKV) Set(key, value string) error {
	entry := models.StoreEntry{StoreKey: key, Value: value}
	return kv.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "store_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}
