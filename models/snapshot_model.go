package models

import "time"

// StockSnapshot rows are append-only. Several snap_dates can coexist;
// reconstruction always picks the latest snap_date <= the query date.
type StockSnapshot struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	SnapDate time.Time `json:"snap_date" gorm:"type:date;index"`
	Barcode  string    `json:"barcode" gorm:"index;not null"`
	ItemName string    `json:"item_name"`
	StockQty int       `json:"stock_qty" gorm:"default:0"`
}

func (StockSnapshot) TableName() string {
	return "stock_snapshots"
}

// SnapshotLog records one row per snapshot-create invocation.
type SnapshotLog struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	FromDate      time.Time `json:"from_date" gorm:"type:date"`
	ToDate        time.Time `json:"to_date" gorm:"type:date"`
	ItemsInserted int       `json:"items_inserted" gorm:"default:0"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (SnapshotLog) TableName() string {
	return "snapshot_logs"
}
