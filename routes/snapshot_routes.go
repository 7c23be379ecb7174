package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/faizanyounusrcmemon-blip/madina-lights-backend/config"
	"github.com/faizanyounusrcmemon-blip/madina-lights-backend/controllers"
)

func SetupSnapshotRoutes(app *fiber.App, controller *controllers.SnapshotController) {
	api := app.Group(config.MAIN_ROUTES)

	api.Post("/snapshot-preview", controller.Preview)
	api.Post("/snapshot-create", controller.Create)
	api.Get("/snapshot-history", controller.History)
}
