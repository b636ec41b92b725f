package mediaControllers

import (
	"path/filepath"
	"zpbot/config"
	"zpbot/middleware"

	"github.com/gofiber/fiber/v2"
)

// ServeMedia streams a stored media file. The token middleware has already
// verified access; the Base call keeps requests inside the media dir.
func ServeMedia(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fileName := filepath.Base(c.Params("file"))
		if fileName == "." || fileName == string(filepath.Separator) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid file name!", nil)
		}
		return c.SendFile(filepath.Join(cfg.MediaDir, fileName))
	}
}
