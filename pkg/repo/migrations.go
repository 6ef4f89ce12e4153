package repo

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	m := gormigrate.New(db, &gormigrate.Options{
		TableName:                 "gorm_migrations",
		IDColumnName:              "id",
		IDColumnSize:              255,
		UseTransaction:            false,
		ValidateUnknownMigrations: false,
	}, getMigrations())

	return m.Migrate()
}

func getMigrations() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: "2024_11_02_Documents",
			Migrate: func(db *gorm.DB) error {
				return db.AutoMigrate(&documentRow{})
			},
			Rollback: func(db *gorm.DB) error {
				return db.Migrator().DropTable(&documentRow{})
			},
		},
		{
			ID: "2024_11_02_Settings",
			Migrate: func(db *gorm.DB) error {
				return db.AutoMigrate(&settingRow{})
			},
			Rollback: func(db *gorm.DB) error {
				return db.Migrator().DropTable(&settingRow{})
			},
		},
	}
}
