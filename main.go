package main

import (
	"log"
	"time"
	"zpbot/config"
	webhookControllers "zpbot/controllers/webhook"
	"zpbot/database"
	mediaRoutes "zpbot/routers/mediaRoutes"
	webhookRoutes "zpbot/routers/webhookRoutes"
	"zpbot/services/geocode"
	"zpbot/services/openai"
	"zpbot/services/whatsapp"
	"zpbot/store"
	"zpbot/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig

	database.ConnectDb(cfg)
	st := store.NewGormStore(database.Database.Db)

	wa := whatsapp.NewClient(cfg)
	ai := openai.NewClient(cfg)
	geo := geocode.NewClient(cfg)
	ctl := webhookControllers.New(cfg, st, wa, ai, geo)

	app := fiber.New()

	app.Use(recover.New())

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 15 * time.Minute,
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	webhookRoutes.SetupWebhookRoutes(app, cfg, ctl)
	mediaRoutes.SetupMediaRoutes(app, cfg)

	utils.StartDraftScheduler(st, wa)

	log.Printf("ZP Pune Chatbot is running on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
