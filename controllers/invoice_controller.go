package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type InvoiceController struct {
	DB *gorm.DB
}

func NewInvoiceController(db *gorm.DB) *InvoiceController {
	return &InvoiceController{DB: db}
}

type invoiceItem struct {
	Barcode   string          `json:"barcode"`
	ItemName  string          `json:"item_name"`
	Qty       int             `json:"qty"`
	SalePrice decimal.Decimal `json:"sale_price"`
}

// GetInvoiceItems lists the non-deleted purchase lines of one invoice.
func (c *InvoiceController) GetInvoiceItems(ctx *fiber.Ctx) error {
	invoiceNo := ctx.Query("invoice_no")
	if invoiceNo == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invoice number required"})
	}

	var items []invoiceItem
	sql := `
		SELECT barcode, item_name, qty, sale_price
		FROM purchases
		WHERE invoice_no = ? AND is_deleted = FALSE
	`
	if err := c.DB.Raw(sql, invoiceNo).Scan(&items).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	if items == nil {
		items = []invoiceItem{}
	}
	return ctx.JSON(fiber.Map{"success": true, "items": items})
}
