package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase and Sale are soft-deletable through IsDeleted; aggregation
// queries always filter is_deleted = FALSE. SaleReturn has no such flag.

type Purchase struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	Barcode      string          `json:"barcode" gorm:"index;not null"`
	ItemName     string          `json:"item_name"`
	Qty          int             `json:"qty" gorm:"default:0"`
	SalePrice    decimal.Decimal `json:"sale_price" gorm:"type:decimal(12,2);default:0"`
	PurchaseDate time.Time       `json:"purchase_date" gorm:"type:date;index"`
	InvoiceNo    string          `json:"invoice_no" gorm:"index"`
	IsDeleted    bool            `json:"is_deleted" gorm:"default:false"`
	CreatedAt    time.Time       `json:"created_at"`
}

func (Purchase) TableName() string {
	return "purchases"
}

type Sale struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Barcode   string    `json:"barcode" gorm:"index;not null"`
	ItemName  string    `json:"item_name"`
	Qty       int       `json:"qty" gorm:"default:0"`
	SaleDate  time.Time `json:"sale_date" gorm:"type:date;index"`
	InvoiceNo string    `json:"invoice_no" gorm:"index"`
	IsDeleted bool      `json:"is_deleted" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at"`
}

func (Sale) TableName() string {
	return "sales"
}

type SaleReturn struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Barcode   string    `json:"barcode" gorm:"index;not null"`
	ItemName  string    `json:"item_name"`
	ReturnQty int       `json:"return_qty" gorm:"default:0"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (SaleReturn) TableName() string {
	return "sale_returns"
}

// StockLedger holds already-netted in/out movements per barcode and is
// read by the stock report on top of the latest snapshot.
type StockLedger struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Barcode   string    `json:"barcode" gorm:"index;not null"`
	InQty     int       `json:"in_qty" gorm:"default:0"`
	OutQty    int       `json:"out_qty" gorm:"default:0"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (StockLedger) TableName() string {
	return "stock_ledger"
}
