package controllers

import (
	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/faizanyounusrcmemon-blip/madina-lights-backend/middleware"
	"github.com/faizanyounusrcmemon-blip/madina-lights-backend/repositories"
	"github.com/faizanyounusrcmemon-blip/madina-lights-backend/services"
)

type ArchiveController struct {
	DB      *gorm.DB
	Service *services.ArchiveService
	Auth    middleware.Authorizer
}

func NewArchiveController(db *gorm.DB, service *services.ArchiveService, auth middleware.Authorizer) *ArchiveController {
	return &ArchiveController{DB: db, Service: service, Auth: auth}
}

type archiveRangeInput struct {
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
	Password  string `json:"password"`
}

func parseArchiveRange(ctx *fiber.Ctx) (*archiveRangeInput, string) {
	var input archiveRangeInput
	if err := ctx.BodyParser(&input); err != nil {
		return nil, "Invalid request body"
	}
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return nil, "Missing dates"
	}
	return &input, ""
}

func (c *ArchiveController) Preview(ctx *fiber.Ctx) error {
	input, errMsg := parseArchiveRange(ctx)
	if errMsg != "" {
		return ctx.JSON(fiber.Map{"success": false, "error": errMsg})
	}

	repo := repositories.NewArchiveRepository(c.DB)
	rows, err := repo.Preview(input.StartDate, input.EndDate)
	if err != nil {
		return ctx.JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	if rows == nil {
		rows = []repositories.ArchivePreviewRow{}
	}
	return ctx.JSON(fiber.Map{"success": true, "rows": rows})
}

func (c *ArchiveController) Transfer(ctx *fiber.Ctx) error {
	input, errMsg := parseArchiveRange(ctx)
	if errMsg != "" {
		return ctx.JSON(fiber.Map{"success": false, "error": errMsg})
	}
	if !c.Auth.Authorize(input.Password) {
		return ctx.JSON(fiber.Map{"success": false, "error": "Wrong password"})
	}

	repo := repositories.NewArchiveRepository(c.DB)
	inserted, err := repo.Transfer(input.StartDate, input.EndDate)
	if err != nil {
		return ctx.JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"success": true, "message": "Transfer Completed!", "inserted": inserted})
}

// Delete wipes the ledger rows of the range across all three tables.
// Callers are expected to have run Transfer (or taken an archive
// bundle) for the same range first; nothing here verifies that.
func (c *ArchiveController) Delete(ctx *fiber.Ctx) error {
	input, errMsg := parseArchiveRange(ctx)
	if errMsg != "" {
		return ctx.JSON(fiber.Map{"success": false, "error": errMsg})
	}
	if !c.Auth.Authorize(input.Password) {
		return ctx.JSON(fiber.Map{"success": false, "error": "Wrong password"})
	}

	repo := repositories.NewArchiveRepository(c.DB)
	if err := repo.DeleteRange(input.StartDate, input.EndDate); err != nil {
		return ctx.JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"success": true, "message": "Data Deleted Successfully!"})
}

// Backup uploads the range bundle to the archive bucket and streams
// the same zip back to the caller.
func (c *ArchiveController) Backup(ctx *fiber.Ctx) error {
	input, errMsg := parseArchiveRange(ctx)
	if errMsg != "" {
		return ctx.JSON(fiber.Map{"success": false, "error": errMsg})
	}

	fileName, data, err := c.Service.Bundle(ctx.Context(), input.StartDate, input.EndDate)
	if err != nil {
		return ctx.JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	ctx.Set("Content-Type", "application/zip")
	ctx.Set("Content-Disposition", "attachment; filename="+fileName)
	return ctx.Send(data)
}
