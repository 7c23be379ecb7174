package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/faizanyounusrcmemon-blip/madina-lights-backend/config"
	"github.com/faizanyounusrcmemon-blip/madina-lights-backend/controllers"
)

func SetupReportRoutes(app *fiber.App, controller *controllers.ReportController) {
	app.Get("/stock-report", controller.StockReport)

	api := app.Group(config.MAIN_ROUTES)
	api.Get("/stock-report/excel", controller.StockReportExcel)
}
