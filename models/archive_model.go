package models

import "time"

// ArchiveEntry is the per-barcode summary produced by the archive
// transfer. Date is the latest contributing event date across the
// three sources.
type ArchiveEntry struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Barcode     string    `json:"barcode" gorm:"index;not null"`
	ItemName    string    `json:"item_name"`
	PurchaseQty int       `json:"purchase_qty" gorm:"default:0"`
	SaleQty     int       `json:"sale_qty" gorm:"default:0"`
	ReturnQty   int       `json:"return_qty" gorm:"default:0"`
	Date        time.Time `json:"date" gorm:"type:date"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (ArchiveEntry) TableName() string {
	return "archive"
}
