package dbhelper

import (
	"fmt"
	"time"

	zlog "github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"wardrobeapi/models"
	"wardrobeapi/services"
)

// SetupDB opens the store database selected by STORE_DRIVER and migrates it.
func SetupDB() (*gorm.DB, error) {
	driver := services.GetEnv("STORE_DRIVER", "sqlite")
	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(fmt.Sprintf(
			"postgres://%s:%s@%s:%s/%s",
			services.GetEnv("DB_USERNAME", ""),
			services.GetEnv("DB_PASSWORD", ""),
			services.GetEnv("DB_HOST", "localhost"),
			services.GetEnv("DB_PORT", "5432"),
			services.GetEnv("DB_NAME", ""),
		))
	case "sqlite":
		dialector = sqlite.Open(services.GetEnv("STORE_PATH", "wardrobe.db"))
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if driver == "sqlite" {
		// single writer, keeps "database is locked" away
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(50)
		sqlDB.SetConnMaxLifetime(time.Minute * 5)
	}
	if err := Migrate(db, &models.StoreEntry{}); err != nil {
		return nil, err
	}
	zlog.Info().Str("driver", driver).Msg("[Store] database ready")
	return db, nil
}

// SetupTestDB opens a private in-memory sqlite database.
func SetupTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic(err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		panic(err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := Migrate(db, &models.StoreEntry{}); err != nil {
		panic(err)
	}
	return db
}
