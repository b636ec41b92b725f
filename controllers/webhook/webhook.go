package webhookControllers

import (
	"log"
	webhookValidators "zpbot/validators/webhook"

	"github.com/gofiber/fiber/v2"
)

// VerifyWebhook answers the Cloud API subscription handshake.
func VerifyWebhook(verifyToken string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		mode := c.Query("hub.mode")
		token := c.Query("hub.verify_token")
		challenge := c.Query("hub.challenge")

		if mode != "" && token != "" {
			if mode == "subscribe" && token == verifyToken {
				log.Println("WEBHOOK_VERIFIED")
				return c.Status(fiber.StatusOK).SendString(challenge)
			}
			return c.SendStatus(fiber.StatusForbidden)
		}
		return c.SendStatus(fiber.StatusNotFound)
	}
}

// HandleWebhook processes one validated inbound event. Modality handlers
// swallow collaborator failures and reply with an apology, so reaching the
// end of this function means the event was processed.
func (ctl *Controller) HandleWebhook(c *fiber.Ctx) error {
	event, ok := c.Locals("webhookEvent").(*webhookValidators.Event)
	if !ok {
		return c.SendStatus(fiber.StatusNotFound)
	}

	if event.Kind == "status" {
		log.Printf("Reply Status => %s", event.Status)
		return c.SendStatus(fiber.StatusOK)
	}

	unlock := ctl.lockCitizen(event.From)
	defer unlock()

	if err := ctl.Store.EnsureCitizen(event.From, event.FromName); err != nil {
		log.Printf("Error ensuring citizen %s: %v", event.From, err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	switch event.MsgType {
	case "text":
		ctl.handleText(event)
	case "audio":
		ctl.handleAudio(event)
	case "image":
		ctl.handleImage(event)
	case "location":
		ctl.handleLocation(event)
	case "interactive":
		ctl.handleInteractive(event)
	default:
		log.Printf("Unsupported message type => %s", event.MsgType)
	}

	return c.SendStatus(fiber.StatusOK)
}
