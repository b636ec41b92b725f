package webhookValidators

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Event is one inbound webhook delivery flattened out of the Cloud API
// envelope. Kind is either "message" or "status".
type Event struct {
	Kind     string
	From     string
	FromName string
	To       string
	MsgID    string
	MsgType  string
	Text     string
	MediaID  string
	Lat      float64
	Lng      float64
	Status   string
}

type envelope struct {
	Object string `json:"object"`
	Entry  []struct {
		Changes []struct {
			Value struct {
				Metadata struct {
					DisplayPhoneNumber string `json:"display_phone_number"`
				} `json:"metadata"`
				Contacts []struct {
					Profile struct {
						Name string `json:"name"`
					} `json:"profile"`
				} `json:"contacts"`
				Messages []struct {
					From string `json:"from"`
					ID   string `json:"id"`
					Type string `json:"type"`
					Text struct {
						Body string `json:"body"`
					} `json:"text"`
					Audio struct {
						ID string `json:"id"`
					} `json:"audio"`
					Image struct {
						ID string `json:"id"`
					} `json:"image"`
					Location struct {
						Latitude  float64 `json:"latitude"`
						Longitude float64 `json:"longitude"`
					} `json:"location"`
				} `json:"messages"`
				Statuses []struct {
					Status string `json:"status"`
				} `json:"statuses"`
			} `json:"value"`
		} `json:"changes"`
	} `json:"entry"`
}

// ParseWebhook validates the inbound envelope and stashes the extracted
// Event in Locals. Envelopes missing the expected structure are rejected
// with 404; envelopes carrying neither messages nor statuses are simply
// acknowledged.
func ParseWebhook() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body envelope
		if err := c.BodyParser(&body); err != nil {
			return c.SendStatus(fiber.StatusNotFound)
		}
		if body.Object == "" {
			return c.SendStatus(fiber.StatusNotFound)
		}

		if len(body.Entry) == 0 || len(body.Entry[0].Changes) == 0 {
			return c.SendStatus(fiber.StatusOK)
		}
		value := body.Entry[0].Changes[0].Value

		if len(value.Messages) > 0 {
			msg := value.Messages[0]

			event := &Event{
				Kind:    "message",
				From:    msg.From,
				To:      value.Metadata.DisplayPhoneNumber,
				MsgID:   msg.ID,
				MsgType: msg.Type,
				Text:    strings.TrimSpace(msg.Text.Body),
				Lat:     msg.Location.Latitude,
				Lng:     msg.Location.Longitude,
			}
			if len(value.Contacts) > 0 {
				event.FromName = value.Contacts[0].Profile.Name
			}
			switch msg.Type {
			case "audio":
				event.MediaID = msg.Audio.ID
			case "image":
				event.MediaID = msg.Image.ID
			}
			if event.From == "" {
				return c.SendStatus(fiber.StatusNotFound)
			}

			c.Locals("webhookEvent", event)
			return c.Next()
		}

		if len(value.Statuses) > 0 {
			c.Locals("webhookEvent", &Event{
				Kind:   "status",
				Status: value.Statuses[0].Status,
			})
			return c.Next()
		}

		log.Println("Webhook change without messages or statuses")
		return c.SendStatus(fiber.StatusOK)
	}
}
