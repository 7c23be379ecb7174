package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/faizanyounusrcmemon-blip/madina-lights-backend/repositories"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

func (c *ReportController) StockReport(ctx *fiber.Ctx) error {
	repo := repositories.NewReportRepository(c.DB)
	snapDate, rows, err := repo.StockReport()
	if err != nil {
		return ctx.JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"success": true, "snapshot_date": snapDate, "rows": rows})
}

// StockReportExcel renders the same report as an .xlsx attachment.
func (c *ReportController) StockReportExcel(ctx *fiber.Ctx) error {
	repo := repositories.NewReportRepository(c.DB)
	_, rows, err := repo.StockReport()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	f := excelize.NewFile()
	sheet := "Sheet1"

	f.SetCellValue(sheet, "A1", "Barcode")
	f.SetCellValue(sheet, "B1", "Item Name")
	f.SetCellValue(sheet, "C1", "Stock Qty")
	f.SetCellValue(sheet, "D1", "Rate")
	f.SetCellValue(sheet, "E1", "Amount")

	for i, row := range rows {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), row.Barcode)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), row.ItemName)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", i+2), row.StockQty)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", i+2), row.Rate.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("E%d", i+2), row.Amount.InexactFloat64())
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="stock-report.xlsx"`)

	if err := f.Write(ctx.Response().BodyWriter()); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).SendString("Failed to generate Excel")
	}
	return nil
}
