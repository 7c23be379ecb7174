package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/faizanyounusrcmemon-blip/madina-lights-backend/middleware"
	"github.com/faizanyounusrcmemon-blip/madina-lights-backend/services"
)

type BackupController struct {
	Service *services.BackupService
	Auth    middleware.Authorizer
}

func NewBackupController(service *services.BackupService, auth middleware.Authorizer) *BackupController {
	return &BackupController{Service: service, Auth: auth}
}

// CreateBackup serves both the POST trigger and the GET trigger used
// by external cron services. Failures come back as success:false with
// status 200 so the callers keep polling.
func (c *BackupController) CreateBackup(ctx *fiber.Ctx) error {
	fileName, err := c.Service.Create(ctx.Context())
	if err != nil {
		return ctx.JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"success": true, "file": fileName})
}

func (c *BackupController) ListBackups(ctx *fiber.Ctx) error {
	files, err := c.Service.List(ctx.Context())
	if err != nil {
		return ctx.JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	if files == nil {
		files = []services.BackupFile{}
	}
	return ctx.JSON(fiber.Map{"success": true, "files": files})
}

func (c *BackupController) RestoreFromBucket(ctx *fiber.Ctx) error {
	var input struct {
		Password string `json:"password"`
		FileName string `json:"fileName"`
		Mode     string `json:"mode"`
		Table    string `json:"table"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	if !c.Auth.Authorize(input.Password) {
		return ctx.JSON(fiber.Map{"success": false, "error": "Invalid password"})
	}
	if input.FileName == "" {
		return ctx.JSON(fiber.Map{"success": false, "error": "Missing file name"})
	}

	attempted, err := c.Service.Restore(ctx.Context(), input.FileName, input.Mode, input.Table)
	if err != nil {
		return ctx.JSON(fiber.Map{"success": false, "error": err.Error(), "attempted": attempted})
	}
	return ctx.JSON(fiber.Map{"success": true, "attempted": attempted})
}

func (c *BackupController) DownloadBackup(ctx *fiber.Ctx) error {
	name := ctx.Params("name")

	data, err := c.Service.Download(ctx.Context(), name)
	if err != nil || len(data) == 0 {
		return ctx.Status(fiber.StatusNotFound).SendString("File not found")
	}

	ctx.Set("Content-Type", "application/zip")
	ctx.Set("Content-Disposition", `attachment; filename="`+name+`"`)
	return ctx.Send(data)
}

func (c *BackupController) DeleteBackup(ctx *fiber.Ctx) error {
	var input struct {
		FileName string `json:"fileName"`
		Password string `json:"password"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	if !c.Auth.Authorize(input.Password) {
		return ctx.JSON(fiber.Map{"success": false, "error": "Invalid password"})
	}
	if input.FileName == "" {
		return ctx.JSON(fiber.Map{"success": false, "error": "Missing file name"})
	}

	if err := c.Service.Delete(ctx.Context(), input.FileName); err != nil {
		return ctx.JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"success": true})
}

func (c *BackupController) CleanupBackups(ctx *fiber.Ctx) error {
	deleted, err := c.Service.Cleanup(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"success": true, "result": fiber.Map{"deleted": deleted}})
}
