package migration

import (
	"github.com/faizanyounusrcmemon-blip/madina-lights-backend/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Item{},
		&models.Purchase{},
		&models.Sale{},
		&models.SaleReturn{},
		&models.StockLedger{},
		&models.StockSnapshot{},
		&models.SnapshotLog{},
		&models.ArchiveEntry{},
		&models.Customer{},
		&models.AppUser{},
	)
}
