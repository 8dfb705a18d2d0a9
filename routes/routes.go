package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/telartis/picqer-ontime/config"
	"github.com/telartis/picqer-ontime/controllers/shipment"
	"github.com/telartis/picqer-ontime/middleware"
)

func SetupRoutes(app *fiber.App, cfg *config.Config, shipmentController *shipment.ShipmentController) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	/*=============================================================================
	| Webhook Routes
	===============================================================================*/
	api := app.Group("/api", middleware.RequireBasicAuth(cfg.WebhookUser, cfg.WebhookPassword))
	api.Post("/shipments", shipmentController.Create)
	api.Get("/products", shipmentController.Products)
	api.Get("/countries", shipmentController.Countries)
	api.Post("/dispatch", shipmentController.Dispatch)
}
