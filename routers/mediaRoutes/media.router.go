package mediaRoutes

import (
	"zpbot/config"
	controller "zpbot/controllers/media"
	"zpbot/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupMediaRoutes(app *fiber.App, cfg *config.Config) {
	media := app.Group("/media")

	media.Get("/:file", middleware.MediaTokenMiddleware(cfg), controller.ServeMedia(cfg))
}
