package models

import "time"

const (
	WardrobeKey = "wardrobe"
	ProfileKey  = "userProfile"
)

// StoreEntry is one named JSON blob of persisted state.
type StoreEntry struct {
	StoreKey  string `gorm:"primaryKey;size:64"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

func (StoreEntry) TableName() string {
	return "store_entries"
}
