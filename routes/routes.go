package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/faizanyounusrcmemon-blip/madina-lights-backend/config"
	"github.com/faizanyounusrcmemon-blip/madina-lights-backend/controllers"
)

func SetupMiscRoutes(app *fiber.App, ping *controllers.PingController, invoice *controllers.InvoiceController) {
	app.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"ok": true})
	})

	api := app.Group(config.MAIN_ROUTES)
	api.Get("/ping", ping.Ping)
	api.Get("/invoice-items", invoice.GetInvoiceItems)
}
