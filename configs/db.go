package configs

import (
	"log"

	"github.com/phonkluver/forel-app-sub000/entity"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

// ConnectDB opens the process-wide connection. Startup is refused if
// the store cannot be opened.
func ConnectDB(cfg *Config) {
	var (
		database *gorm.DB
		err      error
	)
	switch cfg.DBDriver {
	case "postgres":
		database, err = gorm.Open(postgres.Open(cfg.DBSource), &gorm.Config{})
	default:
		database, err = gorm.Open(sqlite.Open(cfg.DBSource), &gorm.Config{})
	}
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	db = database
}

// Migrate creates any missing tables. Shared with tests, which run it
// against their own in-memory database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Category{},
		&entity.MenuItem{},
		&entity.Banner{},
		&entity.Order{},
		&entity.Reservation{},
		&entity.Review{},
	)
}

func SetupDatabase() {
	if err := Migrate(db); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}
}
