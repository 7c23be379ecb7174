package models

import (
	"github.com/shopspring/decimal"
)

type Item struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	Barcode       string          `json:"barcode" gorm:"unique;not null"`
	ItemName      string          `json:"item_name"`
	PurchasePrice decimal.Decimal `json:"purchase_price" gorm:"type:decimal(12,2);default:0"`
	SalePrice     decimal.Decimal `json:"sale_price" gorm:"type:decimal(12,2);default:0"`
}

func (Item) TableName() string {
	return "items"
}
