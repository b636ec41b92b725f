package webhookRoutes

import (
	"zpbot/config"
	controller "zpbot/controllers/webhook"
	validator "zpbot/validators/webhook"

	"github.com/gofiber/fiber/v2"
)

func SetupWebhookRoutes(app *fiber.App, cfg *config.Config, ctl *controller.Controller) {
	webhook := app.Group("/webhook")

	webhook.Get("/", controller.VerifyWebhook(cfg.VerifyToken))
	webhook.Post("/", validator.ParseWebhook(), ctl.HandleWebhook)
}
