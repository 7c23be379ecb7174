package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type PingController struct {
	DB *gorm.DB
}

func NewPingController(db *gorm.DB) *PingController {
	return &PingController{DB: db}
}

// Ping keeps the managed database awake on free hosting plans.
func (c *PingController) Ping(ctx *fiber.Ctx) error {
	if err := c.DB.Exec("SELECT 1").Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"success": true, "message": "DB is awake"})
}
