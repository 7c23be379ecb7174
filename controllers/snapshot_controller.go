package controllers

import (
	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/faizanyounusrcmemon-blip/madina-lights-backend/middleware"
	"github.com/faizanyounusrcmemon-blip/madina-lights-backend/repositories"
)

type SnapshotController struct {
	DB   *gorm.DB
	Auth middleware.Authorizer
}

func NewSnapshotController(db *gorm.DB, auth middleware.Authorizer) *SnapshotController {
	return &SnapshotController{DB: db, Auth: auth}
}

func (c *SnapshotController) Preview(ctx *fiber.Ctx) error {
	var input struct {
		EndDate string `json:"end_date" validate:"required"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.JSON(fiber.Map{"success": false, "error": "End date is required"})
	}

	repo := repositories.NewSnapshotRepository(c.DB)
	rows, err := repo.Preview(input.EndDate)
	if err != nil {
		return ctx.JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	if rows == nil {
		rows = []repositories.SnapshotRow{}
	}
	return ctx.JSON(fiber.Map{"success": true, "rows": rows})
}

func (c *SnapshotController) Create(ctx *fiber.Ctx) error {
	var input struct {
		StartDate string `json:"start_date"`
		EndDate   string `json:"end_date" validate:"required"`
		Password  string `json:"password"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	if !c.Auth.Authorize(input.Password) {
		return ctx.JSON(fiber.Map{"success": false, "error": "Wrong password"})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.JSON(fiber.Map{"success": false, "error": "End date is required"})
	}

	repo := repositories.NewSnapshotRepository(c.DB)
	inserted, err := repo.Create(input.StartDate, input.EndDate)
	if err != nil {
		return ctx.JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"success": true, "message": "Snapshot created!", "inserted": inserted})
}

func (c *SnapshotController) History(ctx *fiber.Ctx) error {
	repo := repositories.NewSnapshotRepository(c.DB)
	logs, err := repo.History()
	if err != nil {
		return ctx.JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"success": true, "rows": logs})
}
