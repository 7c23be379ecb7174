package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/faizanyounusrcmemon-blip/madina-lights-backend/config"
	"github.com/faizanyounusrcmemon-blip/madina-lights-backend/controllers"
)

func SetupBackupRoutes(app *fiber.App, controller *controllers.BackupController) {
	api := app.Group(config.MAIN_ROUTES)

	// GET trigger kept for external cron services
	api.Post("/backup", controller.CreateBackup)
	api.Get("/backup", controller.CreateBackup)

	api.Get("/list-backups", controller.ListBackups)
	api.Post("/restore-from-bucket", controller.RestoreFromBucket)
	api.Get("/download-backup/:name", controller.DownloadBackup)
	api.Post("/delete-backup", controller.DeleteBackup)
	api.Get("/cleanup-backups", controller.CleanupBackups)
}
