package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/faizanyounusrcmemon-blip/madina-lights-backend/config"
	"github.com/faizanyounusrcmemon-blip/madina-lights-backend/controllers"
)

func SetupArchiveRoutes(app *fiber.App, controller *controllers.ArchiveController) {
	api := app.Group(config.MAIN_ROUTES)

	api.Post("/archive-preview", controller.Preview)
	api.Post("/archive-transfer", controller.Transfer)
	api.Post("/archive-delete", controller.Delete)
	api.Post("/archive-backup", controller.Backup)
}
